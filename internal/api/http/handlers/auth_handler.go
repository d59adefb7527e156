package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/api/dto"
	"github.com/spec-kit/helpdesk/internal/auth"
	"github.com/spec-kit/helpdesk/internal/config"
	"github.com/spec-kit/helpdesk/internal/service"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

// AuthHandler exposes the admin session surface.
type AuthHandler struct {
	sessions *service.SessionService
	cfg      config.AuthConfig
}

// NewAuthHandler constructs handler.
func NewAuthHandler(sessions *service.SessionService, cfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{sessions: sessions, cfg: cfg}
}

// Login POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewUnauthorized("invalid password")
	}
	if err := dto.Validate(req); err != nil {
		// A malformed request and a wrong password look identical to the caller.
		return apperrors.NewUnauthorized("invalid password")
	}

	token, _, err := h.sessions.Login(c.UserContext(), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			return apperrors.NewUnauthorized("invalid password")
		}
		return err
	}

	c.Cookie(h.sessionCookie(token, int(h.cfg.SessionTTL().Seconds())))
	return c.JSON(fiber.Map{"success": true})
}

// Logout POST /api/auth/logout. Idempotent: succeeds with no active session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Logout(c.UserContext(), c.Cookies(auth.CookieName)); err != nil {
		return err
	}
	c.Cookie(h.sessionCookie("", -1))
	return c.JSON(fiber.Map{"success": true})
}

// Check GET /api/auth/check. Absence of a token is a valid unauthenticated
// state, never an error.
func (h *AuthHandler) Check(c *fiber.Ctx) error {
	authenticated := h.sessions.Check(c.UserContext(), c.Cookies(auth.CookieName))
	return c.JSON(fiber.Map{"isAuthenticated": authenticated})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     auth.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}
