package middleware

import (
	"context"
	"strings"

	"property-manager/config"
	"property-manager/session"

	"github.com/gofiber/fiber/v2"
	"google.golang.org/api/idtoken"
)

// AuthRequired resolves the caller's identity from either the session cookie
// or a Bearer ID token and stores the opaque user ID in locals. Everything
// below this middleware only ever sees that identifier.
func AuthRequired(sessionStore *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies("session_id")
		if sessionID != "" {
			sess, err := sessionStore.Get(sessionID)
			if err == nil && sess != nil {
				sessionStore.Touch(sessionID)
				c.Locals("userID", sess.UserID)
				c.Locals("userEmail", sess.Email)
				c.Locals("session", sess)
				return c.Next()
			}
			c.ClearCookie("session_id")
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		payload, err := idtoken.Validate(context.Background(), parts[1], config.AppConfig.GoogleClientID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		c.Locals("userID", payload.Subject)
		if email, ok := payload.Claims["email"].(string); ok {
			c.Locals("userEmail", email)
		}
		return c.Next()
	}
}

// GetUserID returns the authenticated user's ID from locals.
func GetUserID(c *fiber.Ctx) string {
	if userID, ok := c.Locals("userID").(string); ok {
		return userID
	}
	return ""
}
