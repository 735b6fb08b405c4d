package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T) (*Manager, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	mgr, err := NewManager(store)
	if err != nil {
		t.Fatalf("unexpected manager error: %v", err)
	}
	return mgr, store
}

func TestCreateAndValidate(t *testing.T) {
	mgr, _ := newTestManager(t)
	userID := uuid.New()

	sess, err := mgr.Create(context.Background(), userID, 24*time.Hour, false)
	if err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}
	if sess.Token == "" {
		t.Fatal("expected a non-empty token")
	}

	got, err := mgr.Validate(context.Background(), sess.Token)
	if err != nil {
		t.Fatalf("unexpected validate error: %v", err)
	}
	if got.UserID != userID {
		t.Fatalf("expected user %s, got %s", userID, got.UserID)
	}
}

func TestValidateUnknownToken(t *testing.T) {
	mgr, _ := newTestManager(t)
	if _, err := mgr.Validate(context.Background(), "nope"); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}

func TestValidateExpiredTokenRemoves(t *testing.T) {
	mgr, store := newTestManager(t)

	sess, err := mgr.Create(context.Background(), uuid.New(), time.Hour, false)
	if err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}

	mgr.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	if _, err := mgr.Validate(context.Background(), sess.Token); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatal("expired session should be removed at read time")
	}
}

func TestRevokeIdempotent(t *testing.T) {
	mgr, _ := newTestManager(t)

	sess, err := mgr.Create(context.Background(), uuid.New(), time.Hour, false)
	if err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}

	if err := mgr.Revoke(context.Background(), sess.Token); err != nil {
		t.Fatalf("unexpected revoke error: %v", err)
	}
	if _, err := mgr.Validate(context.Background(), sess.Token); !errors.Is(err, ErrInvalidSession) {
		t.Fatal("revoked token must not validate")
	}
	// Second revoke of the same token is not an error.
	if err := mgr.Revoke(context.Background(), sess.Token); err != nil {
		t.Fatalf("repeat revoke should be a no-op, got %v", err)
	}
}

func TestCreateRejectsBadInput(t *testing.T) {
	mgr, _ := newTestManager(t)

	if _, err := mgr.Create(context.Background(), uuid.Nil, time.Hour, false); err == nil {
		t.Fatal("expected error for nil user id")
	}
	if _, err := mgr.Create(context.Background(), uuid.New(), 0, false); err == nil {
		t.Fatal("expected error for zero ttl")
	}
}
