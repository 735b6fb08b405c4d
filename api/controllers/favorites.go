package controllers

import (
	"net/http"

	"github.com/scoutworks/supplierscout-backend/api/middleware"
	"github.com/scoutworks/supplierscout-backend/api/responses"
	"github.com/scoutworks/supplierscout-backend/api/validators"
	"github.com/scoutworks/supplierscout-backend/internal/favorites"
	pkgerrors "github.com/scoutworks/supplierscout-backend/pkg/errors"
	"github.com/scoutworks/supplierscout-backend/pkg/logger"
)

type favoritePayload struct {
	SupplierID int `json:"supplier_id" validate:"required,min=1"`
}

// FavoritesList returns the caller's favorites in insertion order.
func FavoritesList(svc favorites.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "favorites service unavailable"))
			return
		}

		favs, err := svc.List(ctx, middleware.UserIDFromContext(ctx))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"count": len(favs), "favorites": favs})
	}
}

// FavoritesAdd favorites a supplier for the caller.
func FavoritesAdd(svc favorites.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "favorites service unavailable"))
			return
		}

		var body favoritePayload
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		fav, err := svc.Add(ctx, middleware.UserIDFromContext(ctx), body.SupplierID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, fav)
	}
}

// FavoritesRemove drops the favorite; removing an absent one succeeds.
func FavoritesRemove(svc favorites.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "favorites service unavailable"))
			return
		}

		var body favoritePayload
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Remove(ctx, middleware.UserIDFromContext(ctx), body.SupplierID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"message": "favorite removed"})
	}
}
