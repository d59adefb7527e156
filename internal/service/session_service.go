package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/auth"
	"github.com/spec-kit/helpdesk/internal/config"
)

// ErrInvalidPassword signals a failed admin login. The message never reveals
// whether the candidate was malformed or merely wrong.
var ErrInvalidPassword = errors.New("invalid password")

// SessionService gates admin-only operations behind a single shared secret.
// There is no per-user identity: a session is a signed token with a fixed
// expiry, invalidated early via the revocation store on logout.
type SessionService struct {
	cfg     config.AuthConfig
	tokens  *auth.TokenManager
	revoked auth.RevocationStore
	logger  *zap.Logger
}

// SessionDependencies bundles collaborators for the session service.
type SessionDependencies struct {
	Revocations auth.RevocationStore
	Logger      *zap.Logger
}

// NewSessionService builds the service.
func NewSessionService(cfg config.AuthConfig, deps SessionDependencies) *SessionService {
	return &SessionService{
		cfg:     cfg,
		tokens:  auth.NewTokenManager(cfg.SessionSecret, cfg.SessionTTL()),
		revoked: deps.Revocations,
		logger:  deps.Logger,
	}
}

// Login compares the candidate against the configured secret and issues a
// session token on match.
func (s *SessionService) Login(_ context.Context, candidate string) (string, time.Time, error) {
	if !auth.VerifySecret(s.cfg.AdminPasswordHash, s.cfg.AdminPassword, candidate) {
		return "", time.Time{}, ErrInvalidPassword
	}
	return s.tokens.Issue()
}

// Logout invalidates the presented session token. Calling it with no active
// session, a garbage token, or an already-expired one still succeeds.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := s.tokens.Parse(token)
	if err != nil || claims.ExpiresAt == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.revoked.Revoke(ctx, claims.ID, ttl)
}

// Check reports whether the caller holds a valid, unexpired, unrevoked
// session token. Absence is an ordinary unauthenticated state; a revocation
// store fault fails closed.
func (s *SessionService) Check(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return false
	}
	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.logger.Warn("session revocation check failed", zap.Error(err))
		return false
	}
	return !revoked
}
