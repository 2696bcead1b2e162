package dto

import (
	"time"

	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/entity"
)

// StartSessionRequest input for starting (or resuming) an onboarding session.
type StartSessionRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid4"`
}

// SubmitResponseRequest input for one questionnaire answer.
type SubmitResponseRequest struct {
	Step     string `json:"step" validate:"required"`
	Question string `json:"question" validate:"required,max=500"`
	Answer   string `json:"answer" validate:"required,max=2000"`
}

// SessionResponse output for an onboarding session.
type SessionResponse struct {
	ID              string                `json:"id"`
	CustomerID      string                `json:"customer_id"`
	CurrentStep     entity.OnboardingStep `json:"current_step"`
	Responses       []entity.StepResponse `json:"responses"`
	CuratedProducts []entity.Product      `json:"curated_products"`
	Status          entity.SessionStatus  `json:"status"`
	StartedAt       time.Time             `json:"started_at"`
	CompletedAt     *time.Time            `json:"completed_at,omitempty"`
	LastActivityAt  time.Time             `json:"last_activity_at"`
}

// ToSessionResponse maps the entity onto the API shape.
func ToSessionResponse(s *entity.OnboardingSession) *SessionResponse {
	return &SessionResponse{
		ID:              s.ID,
		CustomerID:      s.CustomerID,
		CurrentStep:     s.CurrentStep,
		Responses:       s.Responses,
		CuratedProducts: s.CuratedProducts,
		Status:          s.Status,
		StartedAt:       s.StartedAt,
		CompletedAt:     s.CompletedAt,
		LastActivityAt:  s.LastActivityAt,
	}
}
