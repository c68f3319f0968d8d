package middleware

import (
	"github.com/gofiber/fiber/v2"

	"snapgram/apperr"
	"snapgram/auth"
)

const identityKey = "identity"

// Identify resolves the bearer credential once per request and stashes the
// identity in the request locals. No credential passes through as anonymous;
// a bad credential ends the request here.
func Identify(resolver *auth.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := resolver.Resolve(c.Get("Authorization"))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
				"code":  apperr.InvalidToken,
			})
		}
		if ident != nil {
			c.Locals(identityKey, ident)
		}
		return c.Next()
	}
}

// Identity returns the authenticated caller, or nil for anonymous requests.
func Identity(c *fiber.Ctx) *auth.Identity {
	ident, _ := c.Locals(identityKey).(*auth.Identity)
	return ident
}
