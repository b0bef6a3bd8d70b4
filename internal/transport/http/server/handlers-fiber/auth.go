package handlers_fiber

import (
	"net/http"

	"github.com/XEXEU22/volleyapp/internal/mapper"
	api "github.com/XEXEU22/volleyapp/internal/transport/http/api"
	"github.com/gofiber/fiber/v2"
)

// PostSignUp registers an account and opens a session.
func (h *Handler) PostSignUp(c *fiber.Ctx) error {
	var body api.SignUpRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	account, token, err := h.uc.SignUp(c.Context(), body.Email, body.Password)
	if err != nil {
		h.log.Errorw("failed to sign up", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(api.SessionResponse{
		Token:   token,
		Account: mapper.ToAPIAccount(*account),
	})
}

// PostSignOut acknowledges a sign-out. Tokens are stateless, so the client
// discards its copy; the endpoint exists for API symmetry.
func (h *Handler) PostSignOut(c *fiber.Ctx) error {
	return c.SendStatus(http.StatusNoContent)
}

// PostSignIn opens a session for an existing account.
func (h *Handler) PostSignIn(c *fiber.Ctx) error {
	var body api.SignInRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	account, token, err := h.uc.SignIn(c.Context(), body.Email, body.Password)
	if err != nil {
		h.log.Errorw("failed to sign in", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.SessionResponse{
		Token:   token,
		Account: mapper.ToAPIAccount(*account),
	})
}
