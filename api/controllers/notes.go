package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/scoutworks/supplierscout-backend/api/middleware"
	"github.com/scoutworks/supplierscout-backend/api/responses"
	"github.com/scoutworks/supplierscout-backend/api/validators"
	"github.com/scoutworks/supplierscout-backend/internal/notes"
	pkgerrors "github.com/scoutworks/supplierscout-backend/pkg/errors"
	"github.com/scoutworks/supplierscout-backend/pkg/logger"
)

type addNotePayload struct {
	SupplierID int    `json:"supplier_id" validate:"required,min=1"`
	Content    string `json:"content" validate:"required"`
}

type updateNotePayload struct {
	NoteID  string `json:"note_id" validate:"required,uuid"`
	Content string `json:"content" validate:"required"`
}

type deleteNotePayload struct {
	NoteID string `json:"note_id" validate:"required,uuid"`
}

// NotesList returns the caller's notes, optionally filtered by supplier_id.
func NotesList(svc notes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notes service unavailable"))
			return
		}

		var supplierFilter *int
		if r.URL.Query().Get("supplier_id") != "" {
			id, err := validators.ParseQueryInt(r, "supplier_id", 0, 1, 1<<30)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			supplierFilter = &id
		}

		list, err := svc.List(ctx, middleware.UserIDFromContext(ctx), supplierFilter)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"count": len(list), "notes": list})
	}
}

// NotesAdd attaches a note to a supplier.
func NotesAdd(svc notes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notes service unavailable"))
			return
		}

		var body addNotePayload
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		note, err := svc.Add(ctx, middleware.UserIDFromContext(ctx), body.SupplierID, body.Content)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, note)
	}
}

// NotesUpdate replaces the content of the caller's note.
func NotesUpdate(svc notes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notes service unavailable"))
			return
		}

		var body updateNotePayload
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		noteID, err := uuid.Parse(body.NoteID)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid note id"))
			return
		}

		note, err := svc.Update(ctx, middleware.UserIDFromContext(ctx), noteID, body.Content)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, note)
	}
}

// NotesDelete removes the caller's note.
func NotesDelete(svc notes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notes service unavailable"))
			return
		}

		var body deleteNotePayload
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		noteID, err := uuid.Parse(body.NoteID)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid note id"))
			return
		}

		if err := svc.Delete(ctx, middleware.UserIDFromContext(ctx), noteID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"message": "note deleted"})
	}
}
