package favorites

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/scoutworks/supplierscout-backend/internal/suppliers"
	pkgerrors "github.com/scoutworks/supplierscout-backend/pkg/errors"
)

// Service exposes the per-user favorites list.
type Service interface {
	Add(ctx context.Context, userID uuid.UUID, supplierID int) (*Favorite, error)
	Remove(ctx context.Context, userID uuid.UUID, supplierID int) error
	List(ctx context.Context, userID uuid.UUID) ([]Favorite, error)
}

type inboxNotifier interface {
	FavoriteAdded(ctx context.Context, userID uuid.UUID, supplierName string) error
}

type service struct {
	repo    Repository
	catalog suppliers.Service
	inbox   inboxNotifier
	now     func() time.Time
}

// ServiceParams bundles the dependencies required to build a favorites service.
type ServiceParams struct {
	Repo    Repository
	Catalog suppliers.Service
	Inbox   inboxNotifier
}

// NewService constructs a favorites service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("favorites repository is required")
	}
	if params.Catalog == nil {
		return nil, fmt.Errorf("supplier catalog is required")
	}
	return &service{
		repo:    params.Repo,
		catalog: params.Catalog,
		inbox:   params.Inbox,
		now:     time.Now,
	}, nil
}

// Add favorites the supplier for the caller. Re-adding refreshes the
// timestamp without duplicating the entry, and only the first add produces
// an inbox confirmation.
func (s *service) Add(ctx context.Context, userID uuid.UUID, supplierID int) (*Favorite, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	supplier, err := s.catalog.Get(supplierID)
	if err != nil {
		return nil, err
	}

	already, err := s.repo.Exists(ctx, userID, supplierID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check favorite")
	}

	fav := Favorite{
		SupplierID:   supplier.ID,
		SupplierName: supplier.Name,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Upsert(ctx, userID, fav); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store favorite")
	}

	if !already && s.inbox != nil {
		_ = s.inbox.FavoriteAdded(ctx, userID, supplier.Name)
	}
	return &fav, nil
}

// Remove drops the favorite; removing an absent entry succeeds.
func (s *service) Remove(ctx context.Context, userID uuid.UUID, supplierID int) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if err := s.repo.Remove(ctx, userID, supplierID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove favorite")
	}
	return nil
}

// List returns the caller's favorites in insertion order.
func (s *service) List(ctx context.Context, userID uuid.UUID) ([]Favorite, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	favs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list favorites")
	}
	return favs, nil
}
