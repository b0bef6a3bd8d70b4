package handlers_fiber

import (
	"net/http"
	"time"

	"github.com/XEXEU22/volleyapp/internal/entities"
	"github.com/XEXEU22/volleyapp/internal/mapper"
	api "github.com/XEXEU22/volleyapp/internal/transport/http/api"
	"github.com/gofiber/fiber/v2"
)

// GetTransactions lists the cash ledger, newest first.
func (h *Handler) GetTransactions(c *fiber.Ctx) error {
	txs, err := h.uc.Transactions(c.Context(), ownerID(c))
	if err != nil {
		h.log.Errorw("failed to list transactions", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Transactions []api.Transaction `json:"transactions"`
	}{Transactions: mapper.ToAPITransactionList(txs)}
	return c.Status(http.StatusOK).JSON(resp)
}

// PostTransaction appends a deposit or withdrawal to the ledger.
func (h *Handler) PostTransaction(c *fiber.Ctx) error {
	var body api.TransactionRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	var date time.Time
	if body.Date != nil {
		date = *body.Date
	}

	tx, err := h.uc.AddTransaction(c.Context(), entities.CashTransaction{
		OwnerID:     ownerID(c),
		Type:        entities.TransactionType(body.Type),
		Amount:      body.Amount,
		Description: body.Description,
		Category:    body.Category,
		Date:        date,
	})
	if err != nil {
		h.log.Errorw("failed to add transaction", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPITransaction(*tx))
}

// GetBalance reports paid dues plus signed ledger entries.
func (h *Handler) GetBalance(c *fiber.Ctx) error {
	balance, err := h.uc.CashBalance(c.Context(), ownerID(c))
	if err != nil {
		h.log.Errorw("failed to compute balance", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.BalanceResponse{Balance: balance})
}
