package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/application/dto"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/application/onboarding"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain"
	"github.com/hmtahiraziz/Onboarding-launchpad-sub000/internal/domain/entity"
)

// OnboardingHandler handles HTTP requests for the onboarding workflow.
type OnboardingHandler struct {
	uc *onboarding.UseCase
}

// NewOnboardingHandler builds the handler.
func NewOnboardingHandler(uc *onboarding.UseCase) *OnboardingHandler {
	return &OnboardingHandler{uc: uc}
}

// Start godoc
// @Summary      Start or resume an onboarding session
// @Description  Idempotent: an existing ACTIVE session for the customer is returned unchanged.
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StartSessionRequest  true  "Customer reference"
// @Success      200   {object}  dto.SessionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/onboarding/start [post]
func (h *OnboardingHandler) Start(c *fiber.Ctx) error {
	var in dto.StartSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	session, err := h.uc.Start(in.CustomerID)
	if err != nil {
		return mapSessionError(c, err)
	}
	return c.JSON(dto.ToSessionResponse(session))
}

// GetByID godoc
// @Summary      Get an onboarding session
// @Tags         onboarding
// @Produce      json
// @Param        id   path  string  true  "Session ID"
// @Success      200  {object}  dto.SessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/onboarding/{id} [get]
func (h *OnboardingHandler) GetByID(c *fiber.Ctx) error {
	session, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapSessionError(c, err)
	}
	return c.JSON(dto.ToSessionResponse(session))
}

// SubmitResponse godoc
// @Summary      Submit a questionnaire answer
// @Description  Appends the answer and advances the step; reaching COMPLETION triggers product curation once.
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Session ID"
// @Param        body  body  dto.SubmitResponseRequest  true  "Step answer"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/onboarding/{id}/responses [post]
func (h *OnboardingHandler) SubmitResponse(c *fiber.Ctx) error {
	var in dto.SubmitResponseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	session, err := h.uc.SubmitResponse(c.Context(), c.Params("id"), entity.OnboardingStep(in.Step), in.Question, in.Answer)
	if err != nil {
		return mapSessionError(c, err)
	}
	return c.JSON(dto.ToSessionResponse(session))
}

// Abandon godoc
// @Summary      Abandon an onboarding session
// @Tags         onboarding
// @Produce      json
// @Param        id   path  string  true  "Session ID"
// @Success      200  {object}  dto.SessionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/onboarding/{id}/abandon [post]
func (h *OnboardingHandler) Abandon(c *fiber.Ctx) error {
	session, err := h.uc.Abandon(c.Params("id"))
	if err != nil {
		return mapSessionError(c, err)
	}
	return c.JSON(dto.ToSessionResponse(session))
}

// mapSessionError translates domain errors onto the HTTP error taxonomy.
func mapSessionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "session not found"})
	case errors.Is(err, domain.ErrCustomerNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "customer not found"})
	case errors.Is(err, domain.ErrSessionNotActive):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATE", Message: "session is not active"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
