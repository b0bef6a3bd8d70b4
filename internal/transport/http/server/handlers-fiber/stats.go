package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// GetStats returns aggregated roster statistics.
func (h *Handler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(c.Context(), ownerID(c))
	if err != nil {
		h.log.Errorw("failed to get stats", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(stats)
}
