package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/scoutworks/supplierscout-backend/internal/users"
	"github.com/scoutworks/supplierscout-backend/pkg/config"
	pkgerrors "github.com/scoutworks/supplierscout-backend/pkg/errors"
	"github.com/scoutworks/supplierscout-backend/pkg/security"
	"github.com/scoutworks/supplierscout-backend/pkg/session"
)

const invalidCredentialsMessage = "invalid credentials"

// Service defines the behavior needed by the auth controller.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	SSOLogin(ctx context.Context, req SSORequest) (*AuthResponse, error)
	GuestLogin(ctx context.Context) (*AuthResponse, error)
	Validate(ctx context.Context, token string) (*users.UserDTO, error)
	Logout(ctx context.Context, token string) error
}

type sessionManager interface {
	Create(ctx context.Context, userID uuid.UUID, ttl time.Duration, sso bool) (session.Session, error)
	Validate(ctx context.Context, token string) (session.Session, error)
	Revoke(ctx context.Context, token string) error
}

type inboxNotifier interface {
	Welcome(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	users       users.Repository
	sessions    sessionManager
	inbox       inboxNotifier
	sessionCfg  config.SessionConfig
	ssoCfg      config.SSOConfig
	passwordCfg config.PasswordConfig
	now         func() time.Time
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	UserRepo       users.Repository
	SessionManager sessionManager
	Inbox          inboxNotifier
	SessionConfig  config.SessionConfig
	SSOConfig      config.SSOConfig
	PasswordConfig config.PasswordConfig
}

// NewService constructs an auth service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if params.SessionManager == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	return &service{
		users:       params.UserRepo,
		sessions:    params.SessionManager,
		inbox:       params.Inbox,
		sessionCfg:  params.SessionConfig,
		ssoCfg:      params.SSOConfig,
		passwordCfg: params.PasswordConfig,
		now:         time.Now,
	}, nil
}

// Register creates a password-backed account and opens its first session.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || strings.TrimSpace(req.Password) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "username and password are required")
	}

	hash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user := &users.User{
		Username:     username,
		DisplayName:  displayName(req.Name, username),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		Role:         users.RoleUser,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, users.ErrDuplicateUsername) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "username already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
	}

	if s.inbox != nil {
		// Registration already succeeded; a missing welcome message is not
		// worth failing the request over.
		_ = s.inbox.Welcome(ctx, user.ID)
	}

	return s.openSession(ctx, user, s.sessionCfg.UserTTL, false)
}

// Login authenticates username/password credentials and opens a session.
func (s *service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}
	if user.PasswordHash == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	ok, err := security.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	s.recordLogin(ctx, user)
	return s.openSession(ctx, user, s.sessionCfg.UserTTL, false)
}

// SSOLogin verifies a signed assertion, provisioning the account on first
// sight, and opens a long-lived SSO session.
func (s *service) SSOLogin(ctx context.Context, req SSORequest) (*AuthResponse, error) {
	claims, err := verifyAssertion(req.Assertion, s.ssoCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid sso assertion")
	}

	user, err := s.users.FindByUsername(ctx, claims.WalmartID)
	switch {
	case err == nil:
	case errors.Is(err, users.ErrNotFound):
		role := users.RoleUser
		if isManagerID(claims.WalmartID) {
			role = users.RoleAdmin
		}
		user = &users.User{
			Username:    claims.WalmartID,
			DisplayName: displayName(claims.Name, claims.WalmartID),
			Email:       claims.Email,
			Role:        role,
			SSO:         true,
			WalmartID:   claims.WalmartID,
			CreatedAt:   s.now().UTC(),
		}
		if createErr := s.users.Create(ctx, user); createErr != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, createErr, "provision sso user")
		}
	default:
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}

	s.recordLogin(ctx, user)
	return s.openSession(ctx, user, s.sessionCfg.SSOTTL, true)
}

// GuestLogin provisions a throwaway guest account with a short session.
func (s *service) GuestLogin(ctx context.Context) (*AuthResponse, error) {
	id := uuid.New()
	user := &users.User{
		ID:          id,
		Username:    "guest-" + id.String()[:8],
		DisplayName: "Guest",
		Role:        users.RoleGuest,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "provision guest user")
	}
	return s.openSession(ctx, user, s.sessionCfg.GuestTTL, false)
}

// Validate resolves a session token to its user.
func (s *service) Validate(ctx context.Context, token string) (*users.UserDTO, error) {
	sess, err := s.sessions.Validate(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrInvalidSession) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid session")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "session lookup")
	}

	user, err := s.users.FindByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			// The session outlived the account, so stop honoring it.
			_ = s.sessions.Revoke(ctx, sess.Token)
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid session")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}
	return users.FromModel(user), nil
}

// Logout revokes the session. Unknown tokens are not an error.
func (s *service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Revoke(ctx, token); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
	}
	return nil
}

func (s *service) openSession(ctx context.Context, user *users.User, ttl time.Duration, sso bool) (*AuthResponse, error) {
	sess, err := s.sessions.Create(ctx, user.ID, ttl, sso)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create session")
	}
	return &AuthResponse{
		Session: SessionDTO{
			SessionToken: sess.Token,
			ExpiresAt:    sess.ExpiresAt,
			SSO:          sess.SSO,
		},
		User: users.FromModel(user),
	}, nil
}

func (s *service) recordLogin(ctx context.Context, user *users.User) {
	at := s.now().UTC()
	user.LastLoginAt = &at
	_ = s.users.UpdateLastLogin(ctx, user.ID, at)
}

func displayName(name, fallback string) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}
	return fallback
}
