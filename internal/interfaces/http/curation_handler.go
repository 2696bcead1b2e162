package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appcuration "github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/application/curation"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/application/dto"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/application/usecase"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain"
)

// CurationHandler exposes the recommended-products endpoint. Curation itself
// never fails; only an unknown customer produces an error status.
type CurationHandler struct {
	orchestrator *appcuration.Orchestrator
	customers    *usecase.CustomerUseCase
}

// NewCurationHandler builds the handler.
func NewCurationHandler(orchestrator *appcuration.Orchestrator, customers *usecase.CustomerUseCase) *CurationHandler {
	return &CurationHandler{orchestrator: orchestrator, customers: customers}
}

// Recommended godoc
// @Summary      Curated product recommendations for a customer
// @Description  Delegates to the AI curation service and degrades to the rule-based recommender on failure.
// @Tags         products
// @Produce      json
// @Param        customerId  path   string  true   "Customer ID"
// @Param        limit       query  int     false  "Maximum products"  default(100)
// @Success      200  {object}  dto.CurationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/recommended/{customerId} [get]
func (h *CurationHandler) Recommended(c *fiber.Ctx) error {
	customerID := c.Params("customerId")
	if customerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "customerId is required"})
	}
	limit := c.QueryInt("limit", 0)

	customer, err := h.customers.GetEntity(customerID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "customer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	result := h.orchestrator.CurateForCustomer(c.Context(), customer, limit)
	return c.JSON(dto.ToCurationResponse(result))
}
