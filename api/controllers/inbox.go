package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/scoutworks/supplierscout-backend/api/middleware"
	"github.com/scoutworks/supplierscout-backend/api/responses"
	"github.com/scoutworks/supplierscout-backend/api/validators"
	"github.com/scoutworks/supplierscout-backend/internal/inbox"
	pkgerrors "github.com/scoutworks/supplierscout-backend/pkg/errors"
	"github.com/scoutworks/supplierscout-backend/pkg/logger"
)

type inboxMessagePayload struct {
	MessageID string `json:"message_id" validate:"required,uuid"`
}

// InboxList returns the caller's messages, optionally unread only.
func InboxList(svc inbox.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inbox service unavailable"))
			return
		}

		unreadOnly := validators.ParseQueryBool(r, "unread_only")
		msgs, err := svc.List(ctx, middleware.UserIDFromContext(ctx), unreadOnly)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"count": len(msgs), "messages": msgs})
	}
}

// InboxMarkRead marks one of the caller's messages as read.
func InboxMarkRead(svc inbox.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inbox service unavailable"))
			return
		}

		messageID, ok := decodeMessageID(w, r, logg)
		if !ok {
			return
		}
		if err := svc.MarkRead(ctx, middleware.UserIDFromContext(ctx), messageID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"message": "marked read"})
	}
}

// InboxMarkAllRead marks every unread message for the caller.
func InboxMarkAllRead(svc inbox.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inbox service unavailable"))
			return
		}

		n, err := svc.MarkAllRead(ctx, middleware.UserIDFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"marked_read": n})
	}
}

// InboxDelete removes one of the caller's messages.
func InboxDelete(svc inbox.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inbox service unavailable"))
			return
		}

		messageID, ok := decodeMessageID(w, r, logg)
		if !ok {
			return
		}
		if err := svc.Delete(ctx, middleware.UserIDFromContext(ctx), messageID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"message": "message deleted"})
	}
}

// InboxUnreadCount reports the caller's unread count, derived at query time.
func InboxUnreadCount(svc inbox.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inbox service unavailable"))
			return
		}

		count, err := svc.UnreadCount(ctx, middleware.UserIDFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]int{"unread_count": count})
	}
}

func decodeMessageID(w http.ResponseWriter, r *http.Request, logg *logger.Logger) (uuid.UUID, bool) {
	var body inboxMessagePayload
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return uuid.Nil, false
	}
	messageID, err := uuid.Parse(body.MessageID)
	if err != nil {
		responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid message id"))
		return uuid.Nil, false
	}
	return messageID, true
}
