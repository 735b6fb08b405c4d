package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/scoutworks/supplierscout-backend/api/controllers"
	"github.com/scoutworks/supplierscout-backend/api/middleware"
	"github.com/scoutworks/supplierscout-backend/internal/auth"
	"github.com/scoutworks/supplierscout-backend/internal/favorites"
	"github.com/scoutworks/supplierscout-backend/internal/inbox"
	"github.com/scoutworks/supplierscout-backend/internal/notes"
	"github.com/scoutworks/supplierscout-backend/internal/suppliers"
	"github.com/scoutworks/supplierscout-backend/pkg/config"
	"github.com/scoutworks/supplierscout-backend/pkg/logger"
	"github.com/scoutworks/supplierscout-backend/pkg/metrics"
	"github.com/scoutworks/supplierscout-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface depends on.
type RouterParams struct {
	Config      *config.Config
	Logger      *logger.Logger
	Redis       *redis.Client
	HTTPMetrics *metrics.HTTPMetrics
	Gatherer    prometheus.Gatherer

	Auth      auth.Service
	Catalog   suppliers.Service
	Favorites favorites.Service
	Notes     notes.Service
	Inbox     inbox.Service
}

// NewRouter assembles the chi router with the full middleware stack and
// every API route.
func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(p.HTTPMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginUsernameLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterUsernameLimit,
	)

	readyDeps := map[string]controllers.Pinger{}
	if p.Redis != nil {
		readyDeps["redis"] = p.Redis
	}
	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readyDeps))
	})

	if p.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(registerPolicy, rateLimiter(p.Redis), logg)).
			Post("/register", controllers.AuthRegister(p.Auth, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, rateLimiter(p.Redis), logg)).
			Post("/login", controllers.AuthLogin(p.Auth, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, rateLimiter(p.Redis), logg)).
			Post("/sso", controllers.AuthSSO(p.Auth, logg))
		r.Post("/guest", controllers.AuthGuest(p.Auth, logg))
		r.Get("/validate", controllers.AuthValidate(p.Auth, logg))
		r.Post("/logout", controllers.AuthLogout(p.Auth, logg))
	})

	r.Route("/api/suppliers", func(r chi.Router) {
		r.Get("/", controllers.SuppliersList(p.Catalog, logg))
		r.Get("/{id}", controllers.SuppliersGet(p.Catalog, logg))
		r.Get("/search/{query}", controllers.SuppliersSearch(p.Catalog, logg))
		r.Get("/category/{category}", controllers.SuppliersByCategory(p.Catalog, logg))
	})

	r.Get("/api/dashboard/stats", controllers.DashboardStats(p.Catalog, logg))

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(p.Auth, logg))

		r.Route("/api/favorites", func(r chi.Router) {
			r.Get("/", controllers.FavoritesList(p.Favorites, logg))
			r.Post("/add", controllers.FavoritesAdd(p.Favorites, logg))
			r.Post("/remove", controllers.FavoritesRemove(p.Favorites, logg))
		})

		r.Route("/api/notes", func(r chi.Router) {
			r.Get("/", controllers.NotesList(p.Notes, logg))
			r.Post("/add", controllers.NotesAdd(p.Notes, logg))
			r.Post("/update", controllers.NotesUpdate(p.Notes, logg))
			r.Post("/delete", controllers.NotesDelete(p.Notes, logg))
		})

		r.Route("/api/inbox", func(r chi.Router) {
			r.Get("/", controllers.InboxList(p.Inbox, logg))
			r.Post("/read", controllers.InboxMarkRead(p.Inbox, logg))
			r.Post("/read-all", controllers.InboxMarkAllRead(p.Inbox, logg))
			r.Post("/delete", controllers.InboxDelete(p.Inbox, logg))
			r.Get("/unread-count", controllers.InboxUnreadCount(p.Inbox, logg))
		})
	})

	return r
}

// rateLimiter avoids handing the middleware a typed nil when Redis is not
// configured.
func rateLimiter(client *redis.Client) interface {
	IncrWithTTL(context.Context, string, time.Duration) (int64, error)
} {
	if client == nil {
		return nil
	}
	return client
}
