package favorites

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Favorite marks a supplier for a user. Re-adding refreshes CreatedAt but
// keeps the entry's original position in the list.
type Favorite struct {
	SupplierID   int       `json:"supplier_id"`
	SupplierName string    `json:"supplier_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// Repository exposes favorite persistence operations.
type Repository interface {
	Upsert(ctx context.Context, userID uuid.UUID, fav Favorite) error
	Remove(ctx context.Context, userID uuid.UUID, supplierID int) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Favorite, error)
	Exists(ctx context.Context, userID uuid.UUID, supplierID int) (bool, error)
}

// MemoryRepository keeps per-user favorites in insertion order.
type MemoryRepository struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID][]*Favorite
}

// NewMemoryRepository constructs an empty in-memory favorites store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byUser: make(map[uuid.UUID][]*Favorite)}
}

// Upsert adds the favorite or refreshes its timestamp when already present.
func (r *MemoryRepository) Upsert(_ context.Context, userID uuid.UUID, fav Favorite) error {
	if userID == uuid.Nil {
		return errors.New("user id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byUser[userID] {
		if existing.SupplierID == fav.SupplierID {
			existing.SupplierName = fav.SupplierName
			existing.CreatedAt = fav.CreatedAt
			return nil
		}
	}
	stored := fav
	r.byUser[userID] = append(r.byUser[userID], &stored)
	return nil
}

// Remove drops the favorite. Removing an absent entry is not an error.
func (r *MemoryRepository) Remove(_ context.Context, userID uuid.UUID, supplierID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	favs := r.byUser[userID]
	for i, f := range favs {
		if f.SupplierID == supplierID {
			r.byUser[userID] = append(favs[:i], favs[i+1:]...)
			return nil
		}
	}
	return nil
}

// ListByUser returns the caller's favorites in insertion order.
func (r *MemoryRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	favs := r.byUser[userID]
	out := make([]Favorite, len(favs))
	for i, f := range favs {
		out[i] = *f
	}
	return out, nil
}

// Exists reports whether the supplier is already favorited by the user.
func (r *MemoryRepository) Exists(_ context.Context, userID uuid.UUID, supplierID int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.byUser[userID] {
		if f.SupplierID == supplierID {
			return true, nil
		}
	}
	return false, nil
}
