package notes

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/scoutworks/supplierscout-backend/internal/suppliers"
	pkgerrors "github.com/scoutworks/supplierscout-backend/pkg/errors"
	"github.com/scoutworks/supplierscout-backend/pkg/generator"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	catalog, err := suppliers.NewService(generator.Generate(generator.DefaultSeed, 100))
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	svc, err := NewService(ServiceParams{
		Repo:    NewMemoryRepository(),
		Catalog: catalog,
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func expectNotFound(t *testing.T, err error) {
	t.Helper()
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddAndListNotes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	note, err := svc.Add(ctx, userID, 1, "good lead times")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if note.ID == uuid.Nil {
		t.Fatalf("expected note to get an id")
	}

	if _, err := svc.Add(ctx, userID, 2, "pricier than quoted"); err != nil {
		t.Fatalf("second add: %v", err)
	}

	all, err := svc.List(ctx, userID, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(all))
	}

	supplierID := 1
	filtered, err := svc.List(ctx, userID, &supplierID)
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if len(filtered) != 1 || filtered[0].SupplierID != 1 {
		t.Fatalf("expected 1 note for supplier 1, got %+v", filtered)
	}
}

func TestAddRequiresContentAndKnownSupplier(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.Add(ctx, userID, 1, "   ")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for blank content, got %v", err)
	}

	_, err = svc.Add(ctx, userID, 9999, "whatever")
	expectNotFound(t, err)
}

func TestUpdateIsOwnerScoped(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()

	note, err := svc.Add(ctx, owner, 1, "draft")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	updated, err := svc.Update(ctx, owner, note.ID, "final")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Content != "final" {
		t.Fatalf("expected updated content, got %q", updated.Content)
	}
	if updated.UpdatedAt.Before(note.CreatedAt) {
		t.Fatalf("updated_at must not precede created_at")
	}

	_, err = svc.Update(ctx, other, note.ID, "hijacked")
	expectNotFound(t, err)

	all, _ := svc.List(ctx, owner, nil)
	if all[0].Content != "final" {
		t.Fatalf("foreign update must not alter the note, got %q", all[0].Content)
	}
}

func TestDeleteIsOwnerScoped(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()

	note, err := svc.Add(ctx, owner, 1, "to be removed")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	expectNotFound(t, svc.Delete(ctx, other, note.ID))

	if err := svc.Delete(ctx, owner, note.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	expectNotFound(t, svc.Delete(ctx, owner, note.ID))

	all, _ := svc.List(ctx, owner, nil)
	if len(all) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(all))
	}
}
