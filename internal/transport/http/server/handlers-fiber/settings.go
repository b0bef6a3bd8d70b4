package handlers_fiber

import (
	"net/http"

	"github.com/XEXEU22/volleyapp/internal/entities"
	"github.com/XEXEU22/volleyapp/internal/mapper"
	api "github.com/XEXEU22/volleyapp/internal/transport/http/api"
	"github.com/gofiber/fiber/v2"
)

// GetSettings returns per-account application state, created with defaults on
// first access.
func (h *Handler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.uc.Settings(c.Context(), ownerID(c))
	if err != nil {
		h.log.Errorw("failed to get settings", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPISettings(*settings))
}

// PutSettings updates per-account application state.
func (h *Handler) PutSettings(c *fiber.Ctx) error {
	var body api.SettingsRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	settings, err := h.uc.SaveSettings(c.Context(), entities.Settings{
		OwnerID: ownerID(c),
		Theme:   entities.Theme(body.Theme),
	})
	if err != nil {
		h.log.Errorw("failed to save settings", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPISettings(*settings))
}
