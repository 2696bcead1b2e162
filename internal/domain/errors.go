package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrSessionNotFound    = errors.New("onboarding session not found")
	ErrSessionNotActive   = errors.New("onboarding session is not active")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrCatalogUnavailable = errors.New("product catalog unavailable")
)
