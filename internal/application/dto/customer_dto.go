package dto

import (
	"time"

	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/entity"
)

// CreateCustomerRequest input for registering a wholesale customer.
type CreateCustomerRequest struct {
	BusinessName string                 `json:"business_name" validate:"required,min=1,max=200"`
	Email        string                 `json:"email" validate:"required,email"`
	Phone        string                 `json:"phone" validate:"omitempty,max=30"`
	Profile      BusinessProfileRequest `json:"profile"`
}

// BusinessProfileRequest declared business attributes.
type BusinessProfileRequest struct {
	Tier         string            `json:"tier" validate:"omitempty,oneof=bronze silver gold platinum"`
	VenueType    string            `json:"venue_type" validate:"omitempty,max=100"`
	CuisineStyle string            `json:"cuisine_style" validate:"omitempty,max=100"`
	City         string            `json:"city" validate:"omitempty,max=100"`
	State        string            `json:"state" validate:"omitempty,max=100"`
	Country      string            `json:"country" validate:"omitempty,max=100"`
	BudgetBand   string            `json:"budget_band" validate:"omitempty,oneof=low mid premium"`
	Extra        map[string]string `json:"extra"`
}

// ToEntity maps the request profile onto the typed domain profile.
func (r BusinessProfileRequest) ToEntity() entity.BusinessProfile {
	return entity.BusinessProfile{
		Tier:         r.Tier,
		VenueType:    r.VenueType,
		CuisineStyle: r.CuisineStyle,
		Location: entity.Location{
			City:    r.City,
			State:   r.State,
			Country: r.Country,
		},
		BudgetBand: r.BudgetBand,
		Extra:      r.Extra,
	}
}

// CustomerResponse output for a customer.
type CustomerResponse struct {
	ID              string                  `json:"id"`
	BusinessName    string                  `json:"business_name"`
	Email           string                  `json:"email"`
	Phone           string                  `json:"phone"`
	Profile         entity.BusinessProfile  `json:"profile"`
	CurationSummary *entity.CurationSummary `json:"curation_summary,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}
