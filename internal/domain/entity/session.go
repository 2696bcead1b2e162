package entity

import "time"

// OnboardingStep one step of the fixed onboarding sequence.
type OnboardingStep string

// Steps in strict order. COMPLETION is terminal.
const (
	StepWelcome          OnboardingStep = "WELCOME"
	StepVenueType        OnboardingStep = "VENUE_TYPE"
	StepCuisineStyle     OnboardingStep = "CUISINE_STYLE"
	StepLocation         OnboardingStep = "LOCATION"
	StepPreferences      OnboardingStep = "PREFERENCES"
	StepProductSelection OnboardingStep = "PRODUCT_SELECTION"
	StepCompletion       OnboardingStep = "COMPLETION"
)

// StepOrder the fixed ordering of onboarding steps.
var StepOrder = []OnboardingStep{
	StepWelcome,
	StepVenueType,
	StepCuisineStyle,
	StepLocation,
	StepPreferences,
	StepProductSelection,
	StepCompletion,
}

// NextStep returns the step after s in the fixed ordering. Advancing past the
// last value yields COMPLETION.
func NextStep(s OnboardingStep) OnboardingStep {
	for i, step := range StepOrder {
		if step == s {
			if i+1 < len(StepOrder) {
				return StepOrder[i+1]
			}
			return StepCompletion
		}
	}
	return StepCompletion
}

// SessionStatus lifecycle status layered on top of the step sequence.
type SessionStatus string

const (
	SessionActive    SessionStatus = "ACTIVE"
	SessionCompleted SessionStatus = "COMPLETED"
	SessionAbandoned SessionStatus = "ABANDONED"
	SessionExpired   SessionStatus = "EXPIRED"
)

// StepResponse one questionnaire answer recorded during onboarding.
type StepResponse struct {
	Step      OnboardingStep `json:"step"`
	Question  string         `json:"question"`
	Answer    string         `json:"answer"`
	Timestamp time.Time      `json:"timestamp"`
}

// OnboardingSession stateful record of a customer's progress through the
// onboarding sequence. At most one ACTIVE session exists per customer;
// CuratedProducts stays empty until the COMPLETION transition fires, once.
type OnboardingSession struct {
	ID              string         `json:"id"`
	CustomerID      string         `json:"customer_id"`
	CurrentStep     OnboardingStep `json:"current_step"`
	Responses       []StepResponse `json:"responses"`
	CuratedProducts []Product      `json:"curated_products"`
	Status          SessionStatus  `json:"status"`
	StartedAt       time.Time      `json:"started_at"`
	CompletedAt     *time.Time     `json:"completed_at,omitempty"`
	LastActivityAt  time.Time      `json:"last_activity_at"`
}

// IsTerminal reports whether the session can no longer accept responses.
func (s *OnboardingSession) IsTerminal() bool {
	return s.Status != SessionActive
}
