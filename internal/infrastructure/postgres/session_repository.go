package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"

	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/entity"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo SessionRepository implementation. Responses and curated
// products are stored as JSONB. A partial unique index on
// (customer_id) WHERE status = 'ACTIVE' enforces the one-active-session
// invariant at the storage level and makes FindActiveByCustomer an index hit.
type SessionRepo struct {
	q Querier
}

// NewSessionRepository builds the adapter. Pass a pool or tx (Querier).
func NewSessionRepository(q Querier) *SessionRepo {
	return &SessionRepo{q: q}
}

// Save persists a new session.
func (r *SessionRepo) Save(session *entity.OnboardingSession) error {
	responses, products, err := marshalSessionBlobs(session)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO onboarding_sessions
			(id, customer_id, current_step, responses, curated_products, status, started_at, completed_at, last_activity_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(context.Background(), query,
		session.ID, session.CustomerID, string(session.CurrentStep), responses, products,
		string(session.Status), session.StartedAt, session.CompletedAt, session.LastActivityAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetByID fetches a session by ID. Returns nil when absent.
func (r *SessionRepo) GetByID(id string) (*entity.OnboardingSession, error) {
	query := sessionSelect + ` WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// FindActiveByCustomer fetches the customer's ACTIVE session, nil when none.
func (r *SessionRepo) FindActiveByCustomer(customerID string) (*entity.OnboardingSession, error) {
	query := sessionSelect + ` WHERE customer_id = $1 AND status = 'ACTIVE'`
	return r.scanOne(r.q.QueryRow(context.Background(), query, customerID))
}

// Update rewrites the session's mutable state.
func (r *SessionRepo) Update(session *entity.OnboardingSession) error {
	responses, products, err := marshalSessionBlobs(session)
	if err != nil {
		return err
	}
	query := `
		UPDATE onboarding_sessions
		SET current_step = $2, responses = $3, curated_products = $4, status = $5,
		    completed_at = $6, last_activity_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		session.ID, string(session.CurrentStep), responses, products,
		string(session.Status), session.CompletedAt, session.LastActivityAt,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

const sessionSelect = `
	SELECT id, customer_id, current_step, responses, curated_products, status,
	       started_at, completed_at, last_activity_at
	FROM onboarding_sessions`

func (r *SessionRepo) scanOne(row pgx.Row) (*entity.OnboardingSession, error) {
	var (
		s            entity.OnboardingSession
		step, status string
		responsesRaw []byte
		productsRaw  []byte
	)
	err := row.Scan(
		&s.ID, &s.CustomerID, &step, &responsesRaw, &productsRaw, &status,
		&s.StartedAt, &s.CompletedAt, &s.LastActivityAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	s.CurrentStep = entity.OnboardingStep(step)
	s.Status = entity.SessionStatus(status)
	if len(responsesRaw) > 0 {
		if err := json.Unmarshal(responsesRaw, &s.Responses); err != nil {
			return nil, fmt.Errorf("unmarshal responses: %w", err)
		}
	}
	if len(productsRaw) > 0 {
		if err := json.Unmarshal(productsRaw, &s.CuratedProducts); err != nil {
			return nil, fmt.Errorf("unmarshal curated products: %w", err)
		}
	}
	return &s, nil
}

func marshalSessionBlobs(session *entity.OnboardingSession) (responses, products []byte, err error) {
	responses, err = json.Marshal(session.Responses)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal responses: %w", err)
	}
	products, err = json.Marshal(session.CuratedProducts)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal curated products: %w", err)
	}
	return responses, products, nil
}
