package notes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/scoutworks/supplierscout-backend/internal/suppliers"
	pkgerrors "github.com/scoutworks/supplierscout-backend/pkg/errors"
)

// Service exposes the per-user supplier notes.
type Service interface {
	Add(ctx context.Context, userID uuid.UUID, supplierID int, content string) (*Note, error)
	Update(ctx context.Context, userID, noteID uuid.UUID, content string) (*Note, error)
	Delete(ctx context.Context, userID, noteID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, supplierID *int) ([]Note, error)
}

type service struct {
	repo    Repository
	catalog suppliers.Service
	now     func() time.Time
}

// ServiceParams bundles the dependencies required to build a notes service.
type ServiceParams struct {
	Repo    Repository
	Catalog suppliers.Service
}

// NewService constructs a notes service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("notes repository is required")
	}
	if params.Catalog == nil {
		return nil, fmt.Errorf("supplier catalog is required")
	}
	return &service{
		repo:    params.Repo,
		catalog: params.Catalog,
		now:     time.Now,
	}, nil
}

// Add attaches a note to a supplier for the caller.
func (s *service) Add(ctx context.Context, userID uuid.UUID, supplierID int, content string) (*Note, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "note content is required")
	}
	if _, err := s.catalog.Get(supplierID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	note := &Note{
		UserID:     userID,
		SupplierID: supplierID,
		Content:    content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, note); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store note")
	}
	return note, nil
}

// Update replaces the content of the caller's note.
func (s *service) Update(ctx context.Context, userID, noteID uuid.UUID, content string) (*Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "note content is required")
	}

	note, err := s.repo.Update(ctx, userID, noteID, content, s.now().UTC())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "note not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update note")
	}
	return note, nil
}

// Delete removes the caller's note.
func (s *service) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, noteID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "note not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete note")
	}
	return nil
}

// List returns the caller's notes, optionally filtered to one supplier.
func (s *service) List(ctx context.Context, userID uuid.UUID, supplierID *int) ([]Note, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	notes, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list notes")
	}
	if supplierID == nil {
		return notes, nil
	}
	filtered := make([]Note, 0, len(notes))
	for _, n := range notes {
		if n.SupplierID == *supplierID {
			filtered = append(filtered, n)
		}
	}
	return filtered, nil
}
