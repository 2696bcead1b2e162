package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"

	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/entity"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo CustomerRepository implementation (usable with pool or tx).
// The business profile and curation summary are stored as JSONB.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository builds the adapter. Pass a pool or tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persists a new customer.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	profile, err := json.Marshal(customer.Profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	query := `
		INSERT INTO customers (id, business_name, email, phone, profile, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(context.Background(), query,
		customer.ID, customer.BusinessName, customer.Email, customer.Phone, profile,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID fetches a customer by ID. Returns nil when absent.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `
		SELECT id, business_name, email, phone, profile, curation_summary, created_at, updated_at
		FROM customers WHERE id = $1`
	var (
		c          entity.Customer
		profileRaw []byte
		summaryRaw []byte
	)
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.BusinessName, &c.Email, &c.Phone, &profileRaw, &summaryRaw, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if len(profileRaw) > 0 {
		if err := json.Unmarshal(profileRaw, &c.Profile); err != nil {
			return nil, fmt.Errorf("unmarshal profile: %w", err)
		}
	}
	if len(summaryRaw) > 0 {
		var summary entity.CurationSummary
		if err := json.Unmarshal(summaryRaw, &summary); err != nil {
			return nil, fmt.Errorf("unmarshal curation summary: %w", err)
		}
		c.CurationSummary = &summary
	}
	return &c, nil
}

// Update rewrites the mutable customer fields.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	profile, err := json.Marshal(customer.Profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	query := `
		UPDATE customers
		SET business_name = $2, email = $3, phone = $4, profile = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.BusinessName, customer.Email, customer.Phone, profile, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// UpdateCurationSummary writes only the best-effort curation summary.
func (r *CustomerRepo) UpdateCurationSummary(id string, summary entity.CurationSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal curation summary: %w", err)
	}
	query := `UPDATE customers SET curation_summary = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, raw, time.Now())
	if err != nil {
		return fmt.Errorf("update curation summary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}
