package inbox

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a message does not exist for the caller.
var ErrNotFound = errors.New("message not found")

// Repository exposes inbox persistence operations.
type Repository interface {
	Append(ctx context.Context, msg *Message) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Message, error)
	MarkRead(ctx context.Context, userID, messageID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
	Delete(ctx context.Context, userID, messageID uuid.UUID) error
}

// MemoryRepository keeps per-user message lists in append order.
type MemoryRepository struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID][]*Message
}

// NewMemoryRepository constructs an empty in-memory inbox store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byUser: make(map[uuid.UUID][]*Message)}
}

// Append stores a new message, assigning an ID when one is not set.
func (r *MemoryRepository) Append(_ context.Context, msg *Message) error {
	if msg == nil {
		return errors.New("message is required")
	}
	if msg.UserID == uuid.Nil {
		return errors.New("user id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	stored := *msg
	r.byUser[msg.UserID] = append(r.byUser[msg.UserID], &stored)
	return nil
}

// ListByUser returns the caller's messages in append order.
func (r *MemoryRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msgs := r.byUser[userID]
	out := make([]Message, len(msgs))
	for i, m := range msgs {
		out[i] = *m
	}
	return out, nil
}

// MarkRead flips the read flag on one of the caller's messages.
func (r *MemoryRepository) MarkRead(_ context.Context, userID, messageID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.byUser[userID] {
		if m.ID == messageID {
			m.Read = true
			return nil
		}
	}
	return ErrNotFound
}

// MarkAllRead flips every unread message for the caller, returning how many
// were flipped.
func (r *MemoryRepository) MarkAllRead(_ context.Context, userID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	flipped := 0
	for _, m := range r.byUser[userID] {
		if !m.Read {
			m.Read = true
			flipped++
		}
	}
	return flipped, nil
}

// Delete removes one of the caller's messages.
func (r *MemoryRepository) Delete(_ context.Context, userID, messageID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	msgs := r.byUser[userID]
	for i, m := range msgs {
		if m.ID == messageID {
			r.byUser[userID] = append(msgs[:i], msgs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
