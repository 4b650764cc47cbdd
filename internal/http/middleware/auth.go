package middleware

import (
	"crypto/subtle"
	"errors"

	"github.com/gofiber/fiber/v2"

	"jobboard/internal/model"
	"jobboard/internal/session"
)

// SessionLocalKey is the key under which the authenticated admin session
// is stored in Fiber's context locals.
const SessionLocalKey = "admin_session"

// AdminTokenHeader carries the bootstrap secret for setups that have no
// admin user yet. The fallback is disabled when the secret is empty.
const AdminTokenHeader = "X-Admin-Token"

// RequireAdmin authenticates requests against the session store. A valid
// session cookie with the admin role passes; so does a matching bootstrap
// header. Everything else is rejected before the handler runs.
func RequireAdmin(store session.Store, cookieName, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := c.Cookies(cookieName); token != "" {
			sess, err := store.Get(c.UserContext(), token)
			switch {
			case err == nil:
				if !sess.HasRole(model.RoleAdmin) {
					return fiber.NewError(fiber.StatusUnauthorized, "admin role required")
				}
				c.Locals(SessionLocalKey, sess)
				return c.Next()
			case errors.Is(err, session.ErrNotFound):
				// Expired or bogus cookie, fall through to the header check.
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "session lookup failed")
			}
		}

		if secret != "" {
			header := c.Get(AdminTokenHeader)
			if header != "" && subtle.ConstantTimeCompare([]byte(header), []byte(secret)) == 1 {
				c.Locals(SessionLocalKey, &session.Session{UserID: "bootstrap", Roles: []string{model.RoleAdmin}})
				return c.Next()
			}
		}

		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}
}
