package repository

import "github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/entity"

// SessionRepository persistence port for OnboardingSession (DIP).
// FindActiveByCustomer must be an efficient lookup; the idempotent start
// transition depends on it.
type SessionRepository interface {
	Save(session *entity.OnboardingSession) error
	GetByID(id string) (*entity.OnboardingSession, error)
	FindActiveByCustomer(customerID string) (*entity.OnboardingSession, error)
	Update(session *entity.OnboardingSession) error
}
