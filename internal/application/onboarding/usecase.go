package onboarding

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/application/curation"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/entity"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/repository"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/pkg/logger"
)

// UseCase drives the onboarding step sequence: collects profile answers and
// triggers curation exactly once, at the COMPLETION transition.
type UseCase struct {
	sessions     repository.SessionRepository
	customers    repository.CustomerRepository
	orchestrator *curation.Orchestrator
	maxProducts  int
	locks        *sessionLocks
	log          *logger.Logger
}

// NewUseCase wires the onboarding workflow.
func NewUseCase(
	sessions repository.SessionRepository,
	customers repository.CustomerRepository,
	orchestrator *curation.Orchestrator,
	maxProducts int,
	log *logger.Logger,
) *UseCase {
	if maxProducts <= 0 {
		maxProducts = curation.DefaultMaxProducts
	}
	return &UseCase{
		sessions:     sessions,
		customers:    customers,
		orchestrator: orchestrator,
		maxProducts:  maxProducts,
		locks:        newSessionLocks(),
		log:          log,
	}
}

// Start returns the customer's ACTIVE session, creating one at WELCOME when
// none exists. Idempotent: calling it repeatedly never creates a duplicate.
func (uc *UseCase) Start(customerID string) (*entity.OnboardingSession, error) {
	customer, err := uc.customers.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}

	existing, err := uc.sessions.FindActiveByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	now := time.Now()
	session := &entity.OnboardingSession{
		ID:             uuid.New().String(),
		CustomerID:     customerID,
		CurrentStep:    entity.StepWelcome,
		Responses:      []entity.StepResponse{},
		Status:         entity.SessionActive,
		StartedAt:      now,
		LastActivityAt: now,
	}
	if err := uc.sessions.Save(session); err != nil {
		return nil, err
	}
	uc.log.Info().Str("session_id", session.ID).Str("customer_id", customerID).Msg("onboarding session started")
	return session, nil
}

// GetByID fetches a session.
func (uc *UseCase) GetByID(sessionID string) (*entity.OnboardingSession, error) {
	session, err := uc.sessions.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// SubmitResponse records one answer and advances the step. When the advance
// reaches COMPLETION the curation orchestrator runs once and its products are
// attached to the session. Fails without mutation on a missing or non-ACTIVE
// session.
func (uc *UseCase) SubmitResponse(ctx context.Context, sessionID string, step entity.OnboardingStep, question, answer string) (*entity.OnboardingSession, error) {
	unlock := uc.locks.acquire(sessionID)
	defer unlock()

	session, err := uc.sessions.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrSessionNotFound
	}
	if session.IsTerminal() {
		return nil, domain.ErrSessionNotActive
	}

	now := time.Now()
	session.Responses = append(session.Responses, entity.StepResponse{
		Step:      step,
		Question:  question,
		Answer:    answer,
		Timestamp: now,
	})
	session.CurrentStep = entity.NextStep(session.CurrentStep)
	session.LastActivityAt = now

	if session.CurrentStep == entity.StepCompletion {
		uc.completeWithCuration(ctx, session, now)
	}

	if err := uc.sessions.Update(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Complete marks the session COMPLETED without running curation again.
func (uc *UseCase) Complete(sessionID string) (*entity.OnboardingSession, error) {
	return uc.terminate(sessionID, entity.SessionCompleted)
}

// Abandon marks the session ABANDONED.
func (uc *UseCase) Abandon(sessionID string) (*entity.OnboardingSession, error) {
	return uc.terminate(sessionID, entity.SessionAbandoned)
}

func (uc *UseCase) terminate(sessionID string, status entity.SessionStatus) (*entity.OnboardingSession, error) {
	unlock := uc.locks.acquire(sessionID)
	defer unlock()

	session, err := uc.sessions.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrSessionNotFound
	}
	if session.IsTerminal() {
		return nil, domain.ErrSessionNotActive
	}

	now := time.Now()
	session.Status = status
	session.CompletedAt = &now
	session.LastActivityAt = now
	if err := uc.sessions.Update(session); err != nil {
		return nil, err
	}
	return session, nil
}

// completeWithCuration fires the one-time COMPLETION side effect: build the
// profile from the collected answers, run curation and attach the products.
// Curation is total, so completion never fails because of it.
func (uc *UseCase) completeWithCuration(ctx context.Context, session *entity.OnboardingSession, now time.Time) {
	customer, err := uc.customers.GetByID(session.CustomerID)
	if err != nil || customer == nil {
		// The customer disappeared mid-onboarding; complete without products.
		uc.log.Warn().Err(err).Str("customer_id", session.CustomerID).Msg("customer unavailable at completion")
		session.CuratedProducts = []entity.Product{}
	} else {
		mergeResponses(&customer.Profile, session.Responses)
		result := uc.orchestrator.CurateForCustomer(ctx, customer, uc.maxProducts)
		session.CuratedProducts = result.CuratedProducts
		uc.log.Info().
			Str("session_id", session.ID).
			Int("products", len(result.CuratedProducts)).
			Str("outcome", string(result.Outcome)).
			Msg("onboarding completed with curated products")
	}

	session.Status = entity.SessionCompleted
	session.CompletedAt = &now
}

// mergeResponses folds questionnaire answers into the typed profile.
// Known steps land on their field; anything else goes into Extra.
func mergeResponses(profile *entity.BusinessProfile, responses []entity.StepResponse) {
	for _, r := range responses {
		answer := strings.TrimSpace(r.Answer)
		if answer == "" {
			continue
		}
		switch r.Step {
		case entity.StepVenueType:
			profile.VenueType = answer
		case entity.StepCuisineStyle:
			profile.CuisineStyle = answer
		case entity.StepLocation:
			if profile.Location.City == "" {
				profile.Location.City = answer
			}
		default:
			if profile.Extra == nil {
				profile.Extra = make(map[string]string)
			}
			profile.Extra[string(r.Step)] = answer
		}
	}
}
