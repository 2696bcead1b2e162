package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/application/dto"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/entity"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/repository"
)

// CustomerUseCase thin CRUD over wholesale customers.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create registers a customer with their declared business profile.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	now := time.Now()
	customer := &entity.Customer{
		ID:           uuid.New().String(),
		BusinessName: in.BusinessName,
		Email:        in.Email,
		Phone:        in.Phone,
		Profile:      in.Profile.ToEntity(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID fetches a customer.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return toCustomerResponse(customer), nil
}

// GetEntity fetches the raw customer entity (used by the curation flow).
func (uc *CustomerUseCase) GetEntity(id string) (*entity.Customer, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return customer, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:              c.ID,
		BusinessName:    c.BusinessName,
		Email:           c.Email,
		Phone:           c.Phone,
		Profile:         c.Profile,
		CurationSummary: c.CurationSummary,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
