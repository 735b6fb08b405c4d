package users

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateUsername is returned when a username is already taken.
	ErrDuplicateUsername = errors.New("username already registered")
)

// Repository exposes user persistence operations.
type Repository interface {
	Create(ctx context.Context, user *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	Count(ctx context.Context) int
}

// MemoryRepository keeps accounts in process memory. Usernames are matched
// case-insensitively so "Alice" and "alice" are the same account.
type MemoryRepository struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]*User
	byUsername map[string]uuid.UUID
}

// NewMemoryRepository constructs an empty in-memory user store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:       make(map[uuid.UUID]*User),
		byUsername: make(map[string]uuid.UUID),
	}
}

// Create inserts a new user, assigning an ID when one is not set.
func (r *MemoryRepository) Create(_ context.Context, user *User) error {
	if user == nil {
		return errors.New("user is required")
	}
	key := usernameKey(user.Username)
	if key == "" {
		return errors.New("username is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byUsername[key]; taken {
		return ErrDuplicateUsername
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	stored := *user
	r.byID[stored.ID] = &stored
	r.byUsername[key] = stored.ID
	return nil
}

// FindByUsername retrieves the user matching the provided username.
func (r *MemoryRepository) FindByUsername(_ context.Context, username string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[usernameKey(username)]
	if !ok {
		return nil, ErrNotFound
	}
	return copyUser(r.byID[id])
}

// FindByID loads a user by their UUID.
func (r *MemoryRepository) FindByID(_ context.Context, id uuid.UUID) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyUser(r.byID[id])
}

// UpdateLastLogin refreshes the user's last login timestamp.
func (r *MemoryRepository) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	ts := at
	user.LastLoginAt = &ts
	return nil
}

// Count reports how many accounts exist.
func (r *MemoryRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

func usernameKey(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func copyUser(u *User) (*User, error) {
	if u == nil {
		return nil, ErrNotFound
	}
	out := *u
	if u.LastLoginAt != nil {
		ts := *u.LastLoginAt
		out.LastLoginAt = &ts
	}
	return &out, nil
}
