package repository

import "github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/entity"

// CustomerRepository persistence port for Customer (DIP).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	// UpdateCurationSummary writes the best-effort curation summary only.
	UpdateCurationSummary(id string, summary entity.CurationSummary) error
}
