package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/scoutworks/supplierscout-backend/api/routes"
	"github.com/scoutworks/supplierscout-backend/internal/auth"
	"github.com/scoutworks/supplierscout-backend/internal/favorites"
	"github.com/scoutworks/supplierscout-backend/internal/inbox"
	"github.com/scoutworks/supplierscout-backend/internal/notes"
	"github.com/scoutworks/supplierscout-backend/internal/suppliers"
	"github.com/scoutworks/supplierscout-backend/internal/users"
	"github.com/scoutworks/supplierscout-backend/pkg/config"
	"github.com/scoutworks/supplierscout-backend/pkg/generator"
	"github.com/scoutworks/supplierscout-backend/pkg/logger"
	"github.com/scoutworks/supplierscout-backend/pkg/metrics"
	"github.com/scoutworks/supplierscout-backend/pkg/redis"
	"github.com/scoutworks/supplierscout-backend/pkg/session"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx := logg.WithFields(context.Background(), map[string]any{
		"seed":  cfg.Catalog.Seed,
		"count": cfg.Catalog.Count,
	})
	logg.Info(ctx, "generating supplier catalog")

	catalog, err := suppliers.NewService(generator.Generate(cfg.Catalog.Seed, cfg.Catalog.Count))
	if err != nil {
		logg.Error(ctx, "failed to build supplier catalog", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Configured() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	}

	sessionStore, err := buildSessionStore(cfg, redisClient)
	if err != nil {
		logg.Error(context.Background(), "failed to build session store", err)
		os.Exit(1)
	}
	sessionManager, err := session.NewManager(sessionStore)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	inboxSvc, err := inbox.NewService(inbox.NewMemoryRepository())
	if err != nil {
		logg.Error(context.Background(), "failed to create inbox service", err)
		os.Exit(1)
	}

	authSvc, err := auth.NewService(auth.ServiceParams{
		UserRepo:       users.NewMemoryRepository(),
		SessionManager: sessionManager,
		Inbox:          inboxSvc,
		SessionConfig:  cfg.Session,
		SSOConfig:      cfg.SSO,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	favoritesSvc, err := favorites.NewService(favorites.ServiceParams{
		Repo:    favorites.NewMemoryRepository(),
		Catalog: catalog,
		Inbox:   inboxSvc,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create favorites service", err)
		os.Exit(1)
	}

	notesSvc, err := notes.NewService(notes.ServiceParams{
		Repo:    notes.NewMemoryRepository(),
		Catalog: catalog,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create notes service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx = logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:      cfg,
			Logger:      logg,
			Redis:       redisClient,
			HTTPMetrics: httpMetrics,
			Gatherer:    registry,
			Auth:        authSvc,
			Catalog:     catalog,
			Favorites:   favoritesSvc,
			Notes:       notesSvc,
			Inbox:       inboxSvc,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func buildSessionStore(cfg *config.Config, redisClient *redis.Client) (session.Store, error) {
	if cfg.Session.UseRedis() {
		return session.NewRedisStore(redisClient)
	}
	return session.NewMemoryStore(), nil
}
