package middleware

import (
	"net/http"
	"strings"

	"github.com/XEXEU22/volleyapp/internal/auth"
	api "github.com/XEXEU22/volleyapp/internal/transport/http/api"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OwnerIDKey is the fiber.Ctx locals key holding the authenticated account id.
const OwnerIDKey = "owner_id"

const bearerPrefix = "Bearer "

// RequireSession verifies the bearer token and stores the owner id in locals.
func RequireSession(log *zap.SugaredLogger, tokens *auth.Tokens) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			return unauthorized(c, "missing bearer token")
		}

		ownerID, err := tokens.Parse(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			log.Infow("session rejected", "error", err.Error())
			return unauthorized(c, "invalid or expired token")
		}

		c.Locals(OwnerIDKey, ownerID)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusUnauthorized).JSON(api.ErrorResponse{
		Error: api.ErrorBody{Code: api.UNAUTHORIZED, Message: msg},
	})
}
