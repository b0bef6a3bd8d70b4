package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/XEXEU22/volleyapp/internal/entities"
	api "github.com/XEXEU22/volleyapp/internal/transport/http/api"
	"github.com/XEXEU22/volleyapp/internal/transport/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		code = api.INVALIDCREDENTIALS
		msg = "invalid email or password"
	case errors.Is(err, entities.ErrUnauthorized):
		status = http.StatusUnauthorized
		code = api.UNAUTHORIZED
		msg = "session required"
	case errors.Is(err, entities.ErrEmailTaken):
		status = http.StatusConflict
		code = api.EMAILTAKEN
		msg = "email already registered"
	case errors.Is(err, entities.ErrPlayerNotFound),
		errors.Is(err, entities.ErrAccountNotFound),
		errors.Is(err, entities.ErrProfileNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "resource not found"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorBody{Code: code, Message: msg}}
}

func ownerID(c *fiber.Ctx) string {
	id, _ := c.Locals(middleware.OwnerIDKey).(string)
	return id
}
