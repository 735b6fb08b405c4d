package inbox

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/scoutworks/supplierscout-backend/pkg/errors"
)

// Service exposes the per-user inbox. The unread count is always derived
// from the live message list, never stored.
type Service interface {
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]Message, error)
	MarkRead(ctx context.Context, userID, messageID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
	Delete(ctx context.Context, userID, messageID uuid.UUID) error
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)

	Welcome(ctx context.Context, userID uuid.UUID) error
	FavoriteAdded(ctx context.Context, userID uuid.UUID, supplierName string) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService constructs an inbox service over the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inbox repository is required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

// List returns the caller's messages, optionally only the unread ones.
func (s *service) List(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]Message, error) {
	msgs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list inbox")
	}
	if !unreadOnly {
		return msgs, nil
	}
	unread := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if !m.Read {
			unread = append(unread, m)
		}
	}
	return unread, nil
}

// MarkRead marks one of the caller's messages as read.
func (s *service) MarkRead(ctx context.Context, userID, messageID uuid.UUID) error {
	if err := s.repo.MarkRead(ctx, userID, messageID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "message not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mark read")
	}
	return nil
}

// MarkAllRead marks every unread message for the caller.
func (s *service) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mark all read")
	}
	return n, nil
}

// Delete removes one of the caller's messages.
func (s *service) Delete(ctx context.Context, userID, messageID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, messageID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "message not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete message")
	}
	return nil
}

// UnreadCount counts the caller's unread messages at query time.
func (s *service) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	msgs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list inbox")
	}
	count := 0
	for _, m := range msgs {
		if !m.Read {
			count++
		}
	}
	return count, nil
}

// Welcome appends the registration greeting.
func (s *service) Welcome(ctx context.Context, userID uuid.UUID) error {
	return s.append(ctx, userID, TypeWelcome,
		"Welcome to SupplierScout",
		"Your account is ready. Search the catalog, favorite suppliers, and keep notes on the ones you want to follow up with.")
}

// FavoriteAdded appends the favorite confirmation.
func (s *service) FavoriteAdded(ctx context.Context, userID uuid.UUID, supplierName string) error {
	return s.append(ctx, userID, TypeFavorite,
		"Favorite added",
		fmt.Sprintf("%s was added to your favorites.", supplierName))
}

func (s *service) append(ctx context.Context, userID uuid.UUID, msgType MessageType, subject, body string) error {
	msg := &Message{
		UserID:    userID,
		Subject:   subject,
		Body:      body,
		Sender:    systemSender,
		Type:      msgType,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Append(ctx, msg); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "append message")
	}
	return nil
}
