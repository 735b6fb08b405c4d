package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/scoutworks/supplierscout-backend/api/responses"
	"github.com/scoutworks/supplierscout-backend/pkg/config"
	pkgerrors "github.com/scoutworks/supplierscout-backend/pkg/errors"
	"github.com/scoutworks/supplierscout-backend/pkg/logger"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-SupplierScout-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady probes each registered dependency and reports per-dependency
// status. Any unreachable dependency turns the whole response into a 503.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-SupplierScout-Env", cfg.App.Env)

		checks := make(map[string]string, len(deps))
		var failed string
		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(r.Context()); err != nil {
				checks[name] = "unreachable"
				failed = name
				continue
			}
			checks[name] = "ok"
		}

		if failed != "" {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("dependency %s is unreachable", failed)))
			return
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
