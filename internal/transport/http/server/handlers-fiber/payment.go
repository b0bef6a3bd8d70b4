package handlers_fiber

import (
	"net/http"

	"github.com/XEXEU22/volleyapp/internal/entities"
	"github.com/XEXEU22/volleyapp/internal/mapper"
	api "github.com/XEXEU22/volleyapp/internal/transport/http/api"
	"github.com/gofiber/fiber/v2"
)

// GetPayments lists dues facts for a month/year period.
func (h *Handler) GetPayments(c *fiber.Ctx) error {
	month := c.QueryInt("month")
	year := c.QueryInt("year")

	payments, err := h.uc.Payments(c.Context(), ownerID(c), month, year)
	if err != nil {
		h.log.Errorw("failed to list payments", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Payments []api.Payment `json:"payments"`
	}{Payments: mapper.ToAPIPaymentList(payments)}
	return c.Status(http.StatusOK).JSON(resp)
}

// PostPayment upserts a dues fact for one player and period.
func (h *Handler) PostPayment(c *fiber.Ctx) error {
	var body api.PaymentRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	payment, err := h.uc.SavePayment(c.Context(), entities.Payment{
		OwnerID:  ownerID(c),
		PlayerID: body.PlayerID,
		Month:    body.Month,
		Year:     body.Year,
		Paid:     body.IsPaid,
		Amount:   body.Amount,
	})
	if err != nil {
		h.log.Errorw("failed to save payment", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIPayment(*payment))
}

// GetPaymentSummary counts paid players against the roster for one period.
func (h *Handler) GetPaymentSummary(c *fiber.Ctx) error {
	month := c.QueryInt("month")
	year := c.QueryInt("year")

	summary, err := h.uc.PaymentSummary(c.Context(), ownerID(c), month, year)
	if err != nil {
		h.log.Errorw("failed to get payment summary", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(summary)
}
