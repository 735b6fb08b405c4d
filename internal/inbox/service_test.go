package inbox

import (
	"context"
	"testing"

	"github.com/google/uuid"
	pkgerrors "github.com/scoutworks/supplierscout-backend/pkg/errors"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(NewMemoryRepository())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestSystemEventsAppendMessages(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	if err := svc.Welcome(ctx, userID); err != nil {
		t.Fatalf("welcome: %v", err)
	}
	if err := svc.FavoriteAdded(ctx, userID, "Summit Steel & Metal Co."); err != nil {
		t.Fatalf("favorite added: %v", err)
	}

	msgs, err := svc.List(ctx, userID, false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Type != TypeWelcome || msgs[1].Type != TypeFavorite {
		t.Fatalf("messages out of append order: %s, %s", msgs[0].Type, msgs[1].Type)
	}
	if msgs[0].Read || msgs[1].Read {
		t.Fatalf("new messages must start unread")
	}
}

func TestUnreadCountIsDerived(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		if err := svc.Welcome(ctx, userID); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	count, err := svc.UnreadCount(ctx, userID)
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 unread, got %d", count)
	}

	msgs, _ := svc.List(ctx, userID, false)
	if err := svc.MarkRead(ctx, userID, msgs[0].ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	count, _ = svc.UnreadCount(ctx, userID)
	if count != 2 {
		t.Fatalf("expected 2 unread after mark read, got %d", count)
	}

	unread, err := svc.List(ctx, userID, true)
	if err != nil {
		t.Fatalf("list unread: %v", err)
	}
	if len(unread) != 2 {
		t.Fatalf("expected 2 unread listed, got %d", len(unread))
	}

	flipped, err := svc.MarkAllRead(ctx, userID)
	if err != nil {
		t.Fatalf("mark all read: %v", err)
	}
	if flipped != 2 {
		t.Fatalf("expected 2 flipped, got %d", flipped)
	}
	count, _ = svc.UnreadCount(ctx, userID)
	if count != 0 {
		t.Fatalf("expected 0 unread after mark all, got %d", count)
	}
}

func TestMessagesAreOwnerScoped(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()

	if err := svc.Welcome(ctx, owner); err != nil {
		t.Fatalf("welcome: %v", err)
	}
	msgs, _ := svc.List(ctx, owner, false)

	err := svc.MarkRead(ctx, other, msgs[0].ID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for foreign mark read, got %v", err)
	}

	err = svc.Delete(ctx, other, msgs[0].ID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for foreign delete, got %v", err)
	}

	otherMsgs, err := svc.List(ctx, other, false)
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(otherMsgs) != 0 {
		t.Fatalf("expected empty inbox for other user, got %d", len(otherMsgs))
	}
}

func TestDeleteRemovesMessage(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	if err := svc.Welcome(ctx, userID); err != nil {
		t.Fatalf("welcome: %v", err)
	}
	msgs, _ := svc.List(ctx, userID, false)

	if err := svc.Delete(ctx, userID, msgs[0].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	remaining, _ := svc.List(ctx, userID, false)
	if len(remaining) != 0 {
		t.Fatalf("expected empty inbox after delete, got %d", len(remaining))
	}

	err := svc.Delete(ctx, userID, msgs[0].ID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found for second delete, got %v", err)
	}
}
