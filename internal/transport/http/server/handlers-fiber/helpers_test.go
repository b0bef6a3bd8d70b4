package handlers_fiber

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/XEXEU22/volleyapp/internal/entities"
	api "github.com/XEXEU22/volleyapp/internal/transport/http/api"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorEmailTaken(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, entities.ErrEmailTaken)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.EMAILTAKEN, body.Error.Code)
	require.Equal(t, "email already registered", body.Error.Message)
}

func TestWriteErrorNotFoundMessage(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, entities.ErrPlayerNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.NOTFOUND, body.Error.Code)
	require.Equal(t, "resource not found", body.Error.Message)
}

func TestWriteErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    api.ErrorCode
		message string
	}{
		{
			name:    "invalid_credentials",
			err:     entities.ErrInvalidCredentials,
			status:  http.StatusUnauthorized,
			code:    api.INVALIDCREDENTIALS,
			message: "invalid email or password",
		},
		{
			name:    "unauthorized",
			err:     entities.ErrUnauthorized,
			status:  http.StatusUnauthorized,
			code:    api.UNAUTHORIZED,
			message: "session required",
		},
		{
			name:    "account_not_found",
			err:     entities.ErrAccountNotFound,
			status:  http.StatusNotFound,
			code:    api.NOTFOUND,
			message: "resource not found",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.code, body.Error.Code)
			require.Equal(t, tt.message, body.Error.Message)
		})
	}
}

func TestWriteErrorInvalidArgumentKeepsMessage(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, entities.ErrInvalidArgument)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.INVALIDARGUMENT, body.Error.Code)
	require.Equal(t, entities.ErrInvalidArgument.Error(), body.Error.Message)
}
