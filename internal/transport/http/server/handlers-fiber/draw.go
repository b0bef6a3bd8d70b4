package handlers_fiber

import (
	"net/http"

	"github.com/XEXEU22/volleyapp/internal/entities"
	"github.com/XEXEU22/volleyapp/internal/mapper"
	api "github.com/XEXEU22/volleyapp/internal/transport/http/api"
	"github.com/gofiber/fiber/v2"
)

// PostDraw partitions the selected players into balanced teams.
func (h *Handler) PostDraw(c *fiber.Ctx) error {
	var body api.DrawRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	result, err := h.uc.DrawTeams(c.Context(), ownerID(c), body.PlayerIDs, body.TeamSize, entities.DrawMethod(body.Method))
	if err != nil {
		h.log.Errorw("failed to draw teams", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIDrawResponse(*result))
}
