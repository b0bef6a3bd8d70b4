package handlers_fiber

import (
	"net/http"

	"github.com/XEXEU22/volleyapp/internal/mapper"
	api "github.com/XEXEU22/volleyapp/internal/transport/http/api"
	"github.com/gofiber/fiber/v2"
)

// GetPlayers returns the full roster, newest first.
func (h *Handler) GetPlayers(c *fiber.Ctx) error {
	players, err := h.uc.Players(c.Context(), ownerID(c))
	if err != nil {
		h.log.Errorw("failed to list players", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Players []api.Player `json:"players"`
	}{Players: mapper.ToAPIPlayerList(players)}
	return c.Status(http.StatusOK).JSON(resp)
}

// PostPlayer creates a roster member with a server-derived rating.
func (h *Handler) PostPlayer(c *fiber.Ctx) error {
	var body api.PlayerInput
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	player, err := h.uc.CreatePlayer(c.Context(), mapper.FromAPIPlayerInput(ownerID(c), "", body))
	if err != nil {
		h.log.Errorw("failed to create player", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPIPlayer(*player))
}

// PutPlayer replaces the caller-settable fields of an existing member.
func (h *Handler) PutPlayer(c *fiber.Ctx) error {
	var body api.PlayerInput
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	player, err := h.uc.UpdatePlayer(c.Context(), mapper.FromAPIPlayerInput(ownerID(c), c.Params("id"), body))
	if err != nil {
		h.log.Errorw("failed to update player", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIPlayer(*player))
}

// DeletePlayer removes a roster member.
func (h *Handler) DeletePlayer(c *fiber.Ctx) error {
	if err := h.uc.DeletePlayer(c.Context(), ownerID(c), c.Params("id")); err != nil {
		h.log.Errorw("failed to delete player", "error", err.Error())
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// PostAvatar accepts a multipart image upload and returns its public URL.
func (h *Handler) PostAvatar(c *fiber.Ctx) error {
	file, err := c.FormFile("avatar")
	if err != nil {
		h.log.Errorw("failed to read avatar form file", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "avatar file is required"))
	}

	src, err := file.Open()
	if err != nil {
		h.log.Errorw("failed to open avatar upload", "error", err.Error())
		return writeError(c, err)
	}
	defer src.Close()

	url, err := h.uc.UploadAvatar(c.Context(), ownerID(c), file.Filename, file.Header.Get(fiber.HeaderContentType), file.Size, src)
	if err != nil {
		h.log.Errorw("failed to upload avatar", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(api.AvatarResponse{AvatarURL: url})
}
