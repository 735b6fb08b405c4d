package favorites

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/scoutworks/supplierscout-backend/internal/suppliers"
	pkgerrors "github.com/scoutworks/supplierscout-backend/pkg/errors"
	"github.com/scoutworks/supplierscout-backend/pkg/generator"
)

type fakeInbox struct {
	events []string
}

func (f *fakeInbox) FavoriteAdded(_ context.Context, _ uuid.UUID, supplierName string) error {
	f.events = append(f.events, supplierName)
	return nil
}

func newTestService(t *testing.T) (Service, *fakeInbox) {
	t.Helper()
	catalog, err := suppliers.NewService(generator.Generate(generator.DefaultSeed, 100))
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	inbox := &fakeInbox{}
	svc, err := NewService(ServiceParams{
		Repo:    NewMemoryRepository(),
		Catalog: catalog,
		Inbox:   inbox,
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, inbox
}

func TestAddIsIdempotentByOverwrite(t *testing.T) {
	svc, inbox := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	first, err := svc.Add(ctx, userID, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := svc.Add(ctx, userID, 1)
	if err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if second.CreatedAt.Before(first.CreatedAt) {
		t.Fatalf("re-add must refresh the timestamp")
	}

	favs, err := svc.List(ctx, userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(favs) != 1 {
		t.Fatalf("expected 1 favorite after re-add, got %d", len(favs))
	}
	if len(inbox.events) != 1 {
		t.Fatalf("expected 1 inbox event, got %d", len(inbox.events))
	}
}

func TestAddUnknownSupplierIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Add(context.Background(), uuid.New(), 9999)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	if err := svc.Remove(ctx, userID, 42); err != nil {
		t.Fatalf("remove absent: %v", err)
	}

	if _, err := svc.Add(ctx, userID, 42); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Remove(ctx, userID, 42); err != nil {
		t.Fatalf("remove: %v", err)
	}
	favs, _ := svc.List(ctx, userID)
	if len(favs) != 0 {
		t.Fatalf("expected empty list after remove, got %d", len(favs))
	}
}

func TestListIsCallerScopedAndOrdered(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	for _, id := range []int{3, 1, 2} {
		if _, err := svc.Add(ctx, alice, id); err != nil {
			t.Fatalf("add %d: %v", id, err)
		}
	}
	if _, err := svc.Add(ctx, bob, 5); err != nil {
		t.Fatalf("add for bob: %v", err)
	}

	favs, err := svc.List(ctx, alice)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(favs) != 3 {
		t.Fatalf("expected 3 favorites, got %d", len(favs))
	}
	for i, want := range []int{3, 1, 2} {
		if favs[i].SupplierID != want {
			t.Fatalf("expected insertion order [3 1 2], got %d at %d", favs[i].SupplierID, i)
		}
	}
}
