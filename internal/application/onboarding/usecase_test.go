package onboarding_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcuration "github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/application/curation"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/application/onboarding"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/application/ports"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/catalog"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/entity"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/pkg/logger"
)

// ── in-memory fakes ───────────────────────────────────────────────────────────

type memSessionRepo struct {
	sessions map[string]*entity.OnboardingSession
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: map[string]*entity.OnboardingSession{}}
}

func (m *memSessionRepo) Save(s *entity.OnboardingSession) error {
	cp := *s
	m.sessions[s.ID] = &cp
	return nil
}

func (m *memSessionRepo) GetByID(id string) (*entity.OnboardingSession, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memSessionRepo) FindActiveByCustomer(customerID string) (*entity.OnboardingSession, error) {
	for _, s := range m.sessions {
		if s.CustomerID == customerID && s.Status == entity.SessionActive {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memSessionRepo) Update(s *entity.OnboardingSession) error {
	if _, ok := m.sessions[s.ID]; !ok {
		return domain.ErrSessionNotFound
	}
	cp := *s
	m.sessions[s.ID] = &cp
	return nil
}

type memCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: map[string]*entity.Customer{}}
}

func (m *memCustomerRepo) Create(c *entity.Customer) error { m.customers[c.ID] = c; return nil }
func (m *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return m.customers[id], nil
}
func (m *memCustomerRepo) Update(c *entity.Customer) error { m.customers[c.ID] = c; return nil }
func (m *memCustomerRepo) UpdateCurationSummary(id string, s entity.CurationSummary) error {
	return nil
}

type failingDelegate struct{}

func (failingDelegate) Curate(ctx context.Context, profile entity.BusinessProfile, maxProducts int) (*ports.DelegateResponse, error) {
	return nil, errors.New("delegate offline")
}

type recordSource struct {
	records []catalog.RawRecord
}

func (s *recordSource) ListRecords(ctx context.Context) ([]catalog.RawRecord, error) {
	return s.records, nil
}

// ── harness ───────────────────────────────────────────────────────────────────

type harness struct {
	uc        *onboarding.UseCase
	sessions  *memSessionRepo
	customers *memCustomerRepo
}

func newHarness(t *testing.T, catalogSize, maxProducts int) *harness {
	t.Helper()

	var records []catalog.RawRecord
	for i := 0; i < catalogSize; i++ {
		records = append(records, catalog.RawRecord{
			ID:             fmt.Sprintf("p%d", i),
			Name:           fmt.Sprintf("Product %d", i),
			CategoryLevel1: "spirits",
			LoyaltyPoints:  "30",
			Rank:           fmt.Sprintf("%d", i),
			HideOnPublic:   "0",
		})
	}
	snap := catalog.NewSnapshot(&recordSource{records: records})
	require.NoError(t, snap.Reload(context.Background()))

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	customers := newMemCustomerRepo()
	sessions := newMemSessionRepo()

	// The delegate always fails here: completion exercises the degraded path,
	// which is deterministic and needs no network.
	orch := appcuration.NewOrchestrator(failingDelegate{}, snap, customers, appcuration.Config{
		Timeout: time.Second,
	}, log)

	return &harness{
		uc:        onboarding.NewUseCase(sessions, customers, orch, maxProducts, log),
		sessions:  sessions,
		customers: customers,
	}
}

func (h *harness) addCustomer(id string) {
	h.customers.customers[id] = &entity.Customer{ID: id, BusinessName: "Test Venue"}
}

// runToCompletion answers every step from WELCOME through PRODUCT_SELECTION.
func runToCompletion(t *testing.T, h *harness, sessionID string) *entity.OnboardingSession {
	t.Helper()
	answers := map[entity.OnboardingStep]string{
		entity.StepWelcome:          "ready",
		entity.StepVenueType:        "bar",
		entity.StepCuisineStyle:     "pub food",
		entity.StepLocation:         "Sydney",
		entity.StepPreferences:      "local craft",
		entity.StepProductSelection: "looks good",
	}
	var session *entity.OnboardingSession
	for _, step := range entity.StepOrder[:len(entity.StepOrder)-1] {
		var err error
		session, err = h.uc.SubmitResponse(context.Background(), sessionID, step, "q", answers[step])
		require.NoError(t, err, "step %s", step)
	}
	return session
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestStart_CreatesActiveSessionAtWelcome(t *testing.T) {
	h := newHarness(t, 5, 100)
	h.addCustomer("c1")

	session, err := h.uc.Start("c1")
	require.NoError(t, err)
	assert.Equal(t, entity.StepWelcome, session.CurrentStep)
	assert.Equal(t, entity.SessionActive, session.Status)
	assert.Empty(t, session.CuratedProducts)
}

func TestStart_IsIdempotentForActiveSession(t *testing.T) {
	h := newHarness(t, 5, 100)
	h.addCustomer("c1")

	first, err := h.uc.Start("c1")
	require.NoError(t, err)
	second, err := h.uc.Start("c1")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "start must never create a duplicate active session")
	assert.Len(t, h.sessions.sessions, 1)
}

func TestStart_UnknownCustomerFails(t *testing.T) {
	h := newHarness(t, 5, 100)
	_, err := h.uc.Start("ghost")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestSubmitResponse_AdvancesSteps(t *testing.T) {
	h := newHarness(t, 5, 100)
	h.addCustomer("c1")
	session, _ := h.uc.Start("c1")

	updated, err := h.uc.SubmitResponse(context.Background(), session.ID, entity.StepWelcome, "ready?", "yes")
	require.NoError(t, err)
	assert.Equal(t, entity.StepVenueType, updated.CurrentStep)
	require.Len(t, updated.Responses, 1)
	assert.Equal(t, "yes", updated.Responses[0].Answer)
	assert.False(t, updated.Responses[0].Timestamp.IsZero())
}

func TestSubmitResponse_MissingSessionFails(t *testing.T) {
	h := newHarness(t, 5, 100)
	_, err := h.uc.SubmitResponse(context.Background(), "nope", entity.StepWelcome, "q", "a")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestCompletion_PopulatesCuratedProductsOnce(t *testing.T) {
	h := newHarness(t, 20, 100)
	h.addCustomer("c1")
	session, _ := h.uc.Start("c1")

	completed := runToCompletion(t, h, session.ID)
	assert.Equal(t, entity.StepCompletion, completed.CurrentStep)
	assert.Equal(t, entity.SessionCompleted, completed.Status)
	assert.NotEmpty(t, completed.CuratedProducts)
	assert.NotNil(t, completed.CompletedAt)

	// A further submit must fail and leave the session untouched.
	_, err := h.uc.SubmitResponse(context.Background(), session.ID, entity.StepCompletion, "q", "a")
	assert.ErrorIs(t, err, domain.ErrSessionNotActive)

	stored, _ := h.uc.GetByID(session.ID)
	assert.Len(t, stored.Responses, len(completed.Responses), "no mutation after terminal state")
	assert.Len(t, stored.CuratedProducts, len(completed.CuratedProducts))
}

func TestCompletion_RespectsMaxProducts(t *testing.T) {
	h := newHarness(t, 50, 8)
	h.addCustomer("c1")
	session, _ := h.uc.Start("c1")

	completed := runToCompletion(t, h, session.ID)
	assert.LessOrEqual(t, len(completed.CuratedProducts), 8)
}

func TestAbandon_BlocksFurtherResponses(t *testing.T) {
	h := newHarness(t, 5, 100)
	h.addCustomer("c1")
	session, _ := h.uc.Start("c1")

	abandoned, err := h.uc.Abandon(session.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionAbandoned, abandoned.Status)
	assert.NotNil(t, abandoned.CompletedAt)

	_, err = h.uc.SubmitResponse(context.Background(), session.ID, entity.StepWelcome, "q", "a")
	assert.ErrorIs(t, err, domain.ErrSessionNotActive)

	stored, _ := h.uc.GetByID(session.ID)
	assert.Empty(t, stored.Responses)
}

func TestAbandon_AllowsFreshStart(t *testing.T) {
	h := newHarness(t, 5, 100)
	h.addCustomer("c1")
	first, _ := h.uc.Start("c1")
	_, err := h.uc.Abandon(first.ID)
	require.NoError(t, err)

	second, err := h.uc.Start("c1")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID, "a terminal session must not block a new one")
}

func TestCompletion_AnswersShapeTheProfile(t *testing.T) {
	h := newHarness(t, 20, 100)
	h.addCustomer("c1")
	session, _ := h.uc.Start("c1")

	completed := runToCompletion(t, h, session.ID)
	require.NotEmpty(t, completed.CuratedProducts)

	// The degraded fallback filtered on the answered profile: all spirits
	// products match the declared bar venue, so nothing was exhausted.
	for _, p := range completed.CuratedProducts {
		assert.Equal(t, entity.CategorySpirits, p.Category)
	}
}

func TestConcurrentSubmits_SerializedPerSession(t *testing.T) {
	h := newHarness(t, 5, 100)
	h.addCustomer("c1")
	session, _ := h.uc.Start("c1")

	done := make(chan struct{}, 2)
	for i := 0; i < 2; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_, _ = h.uc.SubmitResponse(context.Background(), session.ID, entity.StepWelcome, "q", "a")
		}()
	}
	<-done
	<-done

	stored, err := h.uc.GetByID(session.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Responses, 2, "both responses must be recorded, none lost")
}
