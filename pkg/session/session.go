// Package session issues and validates the opaque bearer tokens that tie a
// request to an authenticated user for a bounded time window.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const tokenBytes = 32

// ErrInvalidSession covers unknown tokens and tokens past their expiry.
var ErrInvalidSession = errors.New("invalid or expired session")

// Session maps an opaque token to a user for a bounded window. There is no
// renewal: a session lives until logout or natural expiry.
type Session struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"user_id"`
	SSO       bool      `json:"sso"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given instant.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Store persists sessions keyed by token. Implementations must tolerate
// deletes of absent tokens (logout is idempotent).
type Store interface {
	Put(ctx context.Context, s Session) error
	Get(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, token string) error
}

// Manager creates, validates, and revokes sessions against a Store.
type Manager struct {
	store Store
	now   func() time.Time
}

// NewManager builds a manager over the provided store.
func NewManager(store Store) (*Manager, error) {
	if store == nil {
		return nil, fmt.Errorf("session store is required")
	}
	return &Manager{store: store, now: time.Now}, nil
}

// Create mints a fresh token for the user and stores it with the given TTL.
func (m *Manager) Create(ctx context.Context, userID uuid.UUID, ttl time.Duration, sso bool) (Session, error) {
	if userID == uuid.Nil {
		return Session{}, fmt.Errorf("user id is required")
	}
	if ttl <= 0 {
		return Session{}, fmt.Errorf("session ttl must be positive")
	}

	token, err := generateToken()
	if err != nil {
		return Session{}, err
	}

	now := m.now().UTC()
	s := Session{
		Token:     token,
		UserID:    userID,
		SSO:       sso,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := m.store.Put(ctx, s); err != nil {
		return Session{}, err
	}
	return s, nil
}

// Validate resolves the token to its session, removing it when expired.
func (m *Manager) Validate(ctx context.Context, token string) (Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Session{}, ErrInvalidSession
	}

	s, err := m.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ErrInvalidSession) {
			return Session{}, ErrInvalidSession
		}
		return Session{}, err
	}
	if s.Expired(m.now().UTC()) {
		_ = m.store.Delete(ctx, token)
		return Session{}, ErrInvalidSession
	}
	return s, nil
}

// Revoke removes the session unconditionally. Revoking an unknown token is
// not an error.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, token)
}

func generateToken() (string, error) {
	bytes := make([]byte, tokenBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
