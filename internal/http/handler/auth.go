package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"jobboard/internal/http/middleware"
	"jobboard/internal/service"
	"jobboard/internal/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates an admin user and sets the session cookie.
func Login(svc service.AuthService, cookieName string, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in loginRequest
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		token, sess, err := svc.Login(c.UserContext(), in.Email, in.Password)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidInput):
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "email and password are required")
			case errors.Is(err, service.ErrUnauthorized):
				return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "invalid credentials")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}

		c.Cookie(&fiber.Cookie{
			Name:     cookieName,
			Value:    token,
			Expires:  time.Now().Add(ttl),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Path:     "/",
		})
		return c.JSON(fiber.Map{"user_id": sess.UserID, "roles": sess.Roles})
	}
}

// Logout deletes the current session and clears the cookie.
func Logout(svc service.AuthService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := c.Cookies(cookieName); token != "" {
			if err := svc.Logout(c.UserContext(), token); err != nil {
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		c.Cookie(&fiber.Cookie{
			Name:     cookieName,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Path:     "/",
		})
		return c.JSON(fiber.Map{"status": "logged_out"})
	}
}

// Me echoes the authenticated admin's session.
func Me() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := c.Locals(middleware.SessionLocalKey).(*session.Session)
		if !ok || sess == nil {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		}
		return c.JSON(fiber.Map{"user_id": sess.UserID, "roles": sess.Roles})
	}
}
