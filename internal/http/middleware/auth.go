package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"expedientes/internal/auth"
)

const (
	// AuthUserIDLocalKey is the key used to store the authenticated user ID
	// in Fiber's context locals.
	AuthUserIDLocalKey = "auth_user_id"
	// AuthUsernameLocalKey is the key used to store the authenticated
	// username in Fiber's context locals.
	AuthUsernameLocalKey = "auth_username"
)

// Auth returns a middleware that requires a valid Bearer token on every
// request. On success the user identity is stored in context locals for
// downstream handlers.
func Auth(issuer *auth.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return unauthorized(c)
		}

		claims, err := issuer.Verify(token)
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(AuthUserIDLocalKey, claims.Subject)
		c.Locals(AuthUsernameLocalKey, claims.Username)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	rid, _ := c.Locals(RequestIDLocalKey).(string)
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":      "unauthorized",
		"message":    "a valid bearer token is required",
		"request_id": rid,
	})
}
