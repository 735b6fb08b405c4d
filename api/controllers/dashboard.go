package controllers

import (
	"net/http"

	"github.com/scoutworks/supplierscout-backend/api/responses"
	"github.com/scoutworks/supplierscout-backend/internal/suppliers"
	pkgerrors "github.com/scoutworks/supplierscout-backend/pkg/errors"
	"github.com/scoutworks/supplierscout-backend/pkg/logger"
)

// DashboardStats serves the catalog-wide aggregate.
func DashboardStats(svc suppliers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "supplier catalog unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.Stats())
	}
}
