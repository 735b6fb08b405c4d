package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App           AppConfig
	Catalog       CatalogConfig
	Session       SessionConfig
	SSO           SSOConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	DB            DBConfig
	Redis         RedisConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Session.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SUPPLIERSCOUT_APP_ENV" default:"development"`
	Port         string `envconfig:"SUPPLIERSCOUT_APP_PORT" default:"8000"`
	LogLevel     string `envconfig:"SUPPLIERSCOUT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SUPPLIERSCOUT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// CatalogConfig controls the seeded supplier catalog served by the API.
type CatalogConfig struct {
	Seed  int64 `envconfig:"SUPPLIERSCOUT_CATALOG_SEED" default:"1962"`
	Count int   `envconfig:"SUPPLIERSCOUT_CATALOG_COUNT" default:"5000"`
}

// SessionConfig sets the expiry horizon per login flavor and picks the
// backing store. The memory backend needs no external services; the redis
// backend requires SUPPLIERSCOUT_REDIS_URL or _ADDR.
type SessionConfig struct {
	Backend  string        `envconfig:"SUPPLIERSCOUT_SESSION_BACKEND" default:"memory"`
	UserTTL  time.Duration `envconfig:"SUPPLIERSCOUT_SESSION_USER_TTL" default:"24h"`
	SSOTTL   time.Duration `envconfig:"SUPPLIERSCOUT_SESSION_SSO_TTL" default:"168h"`
	GuestTTL time.Duration `envconfig:"SUPPLIERSCOUT_SESSION_GUEST_TTL" default:"24h"`
}

func (s SessionConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(s.Backend)) {
	case "memory", "redis":
	default:
		return fmt.Errorf("invalid session backend %q (expected memory or redis)", s.Backend)
	}
	if s.UserTTL <= 0 || s.SSOTTL <= 0 || s.GuestTTL <= 0 {
		return fmt.Errorf("session ttls must be positive")
	}
	return nil
}

func (s SessionConfig) UseRedis() bool {
	return strings.EqualFold(strings.TrimSpace(s.Backend), "redis")
}

// SSOConfig verifies the mock identity-provider assertion on /api/auth/sso.
type SSOConfig struct {
	Secret string `envconfig:"SUPPLIERSCOUT_SSO_SECRET" default:"walmart-sso-demo-secret"`
	Issuer string `envconfig:"SUPPLIERSCOUT_SSO_ISSUER" default:"walmart-sso"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"SUPPLIERSCOUT_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"SUPPLIERSCOUT_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"SUPPLIERSCOUT_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"SUPPLIERSCOUT_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"SUPPLIERSCOUT_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow           time.Duration `envconfig:"SUPPLIERSCOUT_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginUsernameLimit    int           `envconfig:"SUPPLIERSCOUT_AUTH_RATE_LIMIT_LOGIN_USERNAME_LIMIT" default:"5"`
	LoginIPLimit          int           `envconfig:"SUPPLIERSCOUT_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow        time.Duration `envconfig:"SUPPLIERSCOUT_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterUsernameLimit int           `envconfig:"SUPPLIERSCOUT_AUTH_RATE_LIMIT_REGISTER_USERNAME_LIMIT" default:"3"`
	RegisterIPLimit       int           `envconfig:"SUPPLIERSCOUT_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

// DBConfig backs the persistent supplier database used by supplierctl.
type DBConfig struct {
	Driver string `envconfig:"SUPPLIERSCOUT_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"SUPPLIERSCOUT_DB_DSN" default:"suppliers.db"`

	AutoMigrate bool `envconfig:"SUPPLIERSCOUT_DB_AUTO_MIGRATE" default:"false"`

	MaxOpenConns    int           `envconfig:"SUPPLIERSCOUT_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"SUPPLIERSCOUT_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"SUPPLIERSCOUT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SUPPLIERSCOUT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(db.Driver)) {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("invalid db driver %q (expected sqlite or postgres)", db.Driver)
	}
	if strings.TrimSpace(db.DSN) == "" {
		return fmt.Errorf("database DSN is required")
	}
	return nil
}

func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(strings.TrimSpace(db.Driver), "sqlite")
}

type RedisConfig struct {
	URL          string        `envconfig:"SUPPLIERSCOUT_REDIS_URL"`
	Address      string        `envconfig:"SUPPLIERSCOUT_REDIS_ADDR"`
	Password     string        `envconfig:"SUPPLIERSCOUT_REDIS_PASSWORD"`
	DB           int           `envconfig:"SUPPLIERSCOUT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SUPPLIERSCOUT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SUPPLIERSCOUT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SUPPLIERSCOUT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SUPPLIERSCOUT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SUPPLIERSCOUT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Configured() bool {
	return r.URL != "" || r.Address != ""
}
