package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

// SessionChecker reports whether a session token is currently valid.
type SessionChecker interface {
	Check(ctx context.Context, token string) bool
}

// RequireAdmin gates admin-only routes behind the session cookie. A missing
// cookie is an ordinary unauthenticated state, not a fault.
func RequireAdmin(sessions SessionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(CookieName)
		if !sessions.Check(c.UserContext(), token) {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}
