package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// GetExportPlayers streams the roster as a downloadable JSON document.
func (h *Handler) GetExportPlayers(c *fiber.Ctx) error {
	doc, err := h.uc.ExportRoster(c.Context(), ownerID(c))
	if err != nil {
		h.log.Errorw("failed to export roster", "error", err.Error())
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="volleyapp_players.json"`)
	return c.Status(http.StatusOK).Send(doc)
}
