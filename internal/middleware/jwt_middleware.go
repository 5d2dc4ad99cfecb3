package middleware

import (
	"log"
	"strings"

	"cardvault/internal/services"
	"cardvault/internal/session"

	"github.com/gofiber/fiber/v2"
)

const sessionKey = "session"

// AuthRequired is a Fiber middleware that checks for a valid bearer token
// and stores the resulting authenticated session context for downstream
// handlers. The acting identity comes solely from the verified token; no
// client-supplied owner parameter is ever trusted.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		username, ok := claims["username"].(string)
		if !ok || username == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   "token is missing the username claim",
			})
		}

		c.Locals(sessionKey, session.Verified(username))
		return c.Next()
	}
}

// SessionFrom returns the authenticated session context stored by
// AuthRequired, or an unauthenticated one when the middleware did not run.
func SessionFrom(c *fiber.Ctx) *session.Context {
	if sess, ok := c.Locals(sessionKey).(*session.Context); ok {
		return sess
	}
	return session.New()
}
