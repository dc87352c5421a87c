package handlers

import (
	"errors"
	"strconv"

	"bells-pay/internal/adapters/persistence/models"
	"bells-pay/internal/core/domain"
	"bells-pay/internal/core/services"
	"bells-pay/internal/pkg/pagination"
	"bells-pay/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TransactionHandler handles payment history endpoints
type TransactionHandler struct {
	transactionService *services.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// List returns the caller's payment history, newest first
// @Summary List my transactions
// @Description List the authenticated student's transactions, newest first
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	params := pagination.GetParams(c)

	transactions, total, err := h.transactionService.ListMine(c.Context(), userID, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to load transactions")
	}

	responses := make([]*models.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		responses = append(responses, tx.ToResponse())
	}

	return response.Success(c, "Transactions retrieved successfully",
		pagination.NewResponse(responses, params, total))
}

// Get returns one of the caller's transactions
// @Summary Get a transaction
// @Description Get one of the authenticated student's transactions by id
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /transactions/{id} [get]
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	txID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid transaction id")
	}

	tx, err := h.transactionService.GetMine(c.Context(), userID, uint(txID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Transaction not found")
		}
		return response.InternalServerError(c, "Failed to load transaction")
	}

	return response.Success(c, "Transaction retrieved successfully", fiber.Map{
		"transaction": tx.ToResponse(),
	})
}

// Receipt returns a print-ready receipt for one transaction
// @Summary Get a receipt
// @Description Get a formatted receipt for one of the authenticated student's transactions
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /transactions/{id}/receipt [get]
func (h *TransactionHandler) Receipt(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	txID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid transaction id")
	}

	receipt, err := h.transactionService.GetReceipt(c.Context(), userID, uint(txID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Transaction not found")
		}
		return response.InternalServerError(c, "Failed to build receipt")
	}

	return response.Success(c, "Receipt retrieved successfully", fiber.Map{
		"receipt": receipt,
	})
}
