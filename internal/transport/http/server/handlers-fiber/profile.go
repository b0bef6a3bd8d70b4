package handlers_fiber

import (
	"net/http"

	"github.com/XEXEU22/volleyapp/internal/mapper"
	api "github.com/XEXEU22/volleyapp/internal/transport/http/api"
	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the owner profile.
func (h *Handler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.uc.Profile(c.Context(), ownerID(c))
	if err != nil {
		h.log.Errorw("failed to get profile", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIProfile(*profile))
}

// PutProfile upserts the owner profile.
func (h *Handler) PutProfile(c *fiber.Ctx) error {
	var body api.ProfileRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	profile, err := h.uc.SaveProfile(c.Context(), mapper.FromAPIProfile(ownerID(c), body))
	if err != nil {
		h.log.Errorw("failed to save profile", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIProfile(*profile))
}
