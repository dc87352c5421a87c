package handlers

import (
	"errors"

	"bells-pay/internal/core/domain"
	"bells-pay/internal/core/services"
	"bells-pay/internal/pkg/response"
	"bells-pay/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles fee catalog and payment endpoints
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// ListFees returns the active fee catalog
// @Summary List fee types
// @Description List the active fee catalog entries
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /fees [get]
func (h *PaymentHandler) ListFees(c *fiber.Ctx) error {
	fees, err := h.paymentService.ListFees(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load fee types")
	}

	return response.Success(c, "Fee types retrieved successfully", fiber.Map{
		"fees": fees,
	})
}

// Pay submits a payment attempt
// @Summary Pay a fee
// @Description Run a payment attempt through the simulated processor. Every attempt is recorded, successful or not.
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.PayInput true "Payment data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 402 {object} response.Response
// @Router /payments [post]
func (h *PaymentHandler) Pay(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.PayInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if fieldErrors := validation.Struct(&input); fieldErrors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(response.Response{
			Success: false,
			Error:   "Validation failed",
			Data:    fiber.Map{"fields": fieldErrors},
		})
	}

	tx, err := h.paymentService.Pay(c.Context(), userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPaymentDeclined):
			// The failed attempt is still in the ledger; return it so the
			// client can show the reference.
			return response.PaymentRequired(c, "Payment failed. Please try again.", fiber.Map{
				"transaction": tx.ToResponse(),
			})
		case errors.Is(err, domain.ErrFeeTypeNotFound):
			return response.NotFound(c, "Fee type not found")
		case errors.Is(err, domain.ErrValidationFailed):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to process payment")
		}
	}

	return response.Created(c, "Payment successful", fiber.Map{
		"transaction": tx.ToResponse(),
	})
}
