package handlers

import (
	"log/slog"

	"property-manager/app"
	"property-manager/config"
	"property-manager/models"

	"github.com/gofiber/fiber/v2"
)

// Login authenticates against the identity provider and opens a session
func Login(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		var sess *models.Session
		var err error

		switch {
		case req.IDToken != "":
			sess, err = a.AuthService.LoginWithIDToken(req.IDToken)
		case req.AccessToken != "":
			sess, err = a.AuthService.LoginWithAccessToken(req.AccessToken)
		default:
			return badRequest(c, "Either id_token or access_token is required")
		}

		if err != nil {
			slog.Warn("login failed", "error", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication failed",
			})
		}

		c.Cookie(&fiber.Cookie{
			Name:     "session_id",
			Value:    sess.ID,
			Expires:  sess.ExpiresAt,
			HTTPOnly: true,
			Secure:   config.AppConfig.Env == "production",
			SameSite: "Lax",
			Path:     "/",
		})

		return c.JSON(fiber.Map{
			"success": true,
			"user": fiber.Map{
				"id":      sess.UserID,
				"email":   sess.Email,
				"name":    sess.Name,
				"picture": sess.Picture,
			},
		})
	}
}

// Logout closes the session
func Logout(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies("session_id")
		if sessionID != "" {
			a.AuthService.Logout(sessionID)
		}

		c.ClearCookie("session_id")

		return c.JSON(fiber.Map{"success": true})
	}
}

// Me returns the current user's session information
func Me(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies("session_id")
		if sessionID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"authenticated": false,
			})
		}

		sess, err := a.AuthService.GetSessionInfo(sessionID)
		if err != nil {
			c.ClearCookie("session_id")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"authenticated": false,
			})
		}

		return c.JSON(fiber.Map{
			"authenticated": true,
			"user": fiber.Map{
				"id":      sess.UserID,
				"email":   sess.Email,
				"name":    sess.Name,
				"picture": sess.Picture,
			},
		})
	}
}
