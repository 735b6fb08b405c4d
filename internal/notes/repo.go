package notes

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a note does not exist for the caller.
var ErrNotFound = errors.New("note not found")

// Note is free-form text a user keeps about a supplier. Content is stored
// as opaque text; escaping is a presentation concern.
type Note struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"-"`
	SupplierID int       `json:"supplier_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Repository exposes note persistence operations. Lookups are scoped to the
// owning user so a caller can never touch another user's notes.
type Repository interface {
	Create(ctx context.Context, note *Note) error
	Update(ctx context.Context, userID, noteID uuid.UUID, content string, at time.Time) (*Note, error)
	Delete(ctx context.Context, userID, noteID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Note, error)
}

// MemoryRepository keeps per-user note lists in creation order.
type MemoryRepository struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID][]*Note
}

// NewMemoryRepository constructs an empty in-memory notes store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byUser: make(map[uuid.UUID][]*Note)}
}

// Create stores a new note, assigning an ID when one is not set.
func (r *MemoryRepository) Create(_ context.Context, note *Note) error {
	if note == nil {
		return errors.New("note is required")
	}
	if note.UserID == uuid.Nil {
		return errors.New("user id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}
	stored := *note
	r.byUser[note.UserID] = append(r.byUser[note.UserID], &stored)
	return nil
}

// Update replaces the content of the caller's note.
func (r *MemoryRepository) Update(_ context.Context, userID, noteID uuid.UUID, content string, at time.Time) (*Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.byUser[userID] {
		if n.ID == noteID {
			n.Content = content
			n.UpdatedAt = at
			out := *n
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// Delete removes the caller's note.
func (r *MemoryRepository) Delete(_ context.Context, userID, noteID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ns := r.byUser[userID]
	for i, n := range ns {
		if n.ID == noteID {
			r.byUser[userID] = append(ns[:i], ns[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ListByUser returns the caller's notes in creation order.
func (r *MemoryRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ns := r.byUser[userID]
	out := make([]Note, len(ns))
	for i, n := range ns {
		out[i] = *n
	}
	return out, nil
}
