package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/yukikurage/taskforce/internal/constants"
)

// Store drivers
const (
	DriverREST     = "rest"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Session stores
const (
	SessionStoreCookie = "cookie"
	SessionStoreRedis  = "redis"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	StoreDriver string
	SupabaseURL string
	SupabaseKey string
	DatabaseDSN string
	AutoMigrate bool

	WebhookURL     string
	TriggerTimeout time.Duration
	RefreshDelay   time.Duration

	SessionSecret    string
	SessionStore     string
	RedisHost        string
	RedisPort        string
	CORSAllowOrigins []string
	WorkspaceIdleTTL time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return &Config{
		Port:     v.GetString("PORT"),
		GinMode:  v.GetString("GIN_MODE"),
		LogLevel: v.GetString("LOG_LEVEL"),

		StoreDriver: strings.ToLower(v.GetString("STORE_DRIVER")),
		SupabaseURL: strings.TrimRight(v.GetString("SUPABASE_URL"), "/"),
		SupabaseKey: v.GetString("SUPABASE_KEY"),
		DatabaseDSN: v.GetString("DATABASE_DSN"),
		AutoMigrate: v.GetBool("AUTO_MIGRATE"),

		WebhookURL:     v.GetString("WEBHOOK_URL"),
		TriggerTimeout: v.GetDuration("TRIGGER_TIMEOUT"),
		RefreshDelay:   v.GetDuration("REFRESH_DELAY"),

		SessionSecret:    v.GetString("SESSION_SECRET"),
		SessionStore:     strings.ToLower(v.GetString("SESSION_STORE")),
		RedisHost:        v.GetString("REDIS_HOST"),
		RedisPort:        v.GetString("REDIS_PORT"),
		CORSAllowOrigins: splitList(v.GetString("CORS_ALLOW_ORIGINS")),
		WorkspaceIdleTTL: v.GetDuration("WORKSPACE_IDLE_TTL"),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3001")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", DriverREST)
	v.SetDefault("SUPABASE_URL", "")
	v.SetDefault("SUPABASE_KEY", "")
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("AUTO_MIGRATE", false)
	v.SetDefault("WEBHOOK_URL", "https://n8n.nhathung.fun/webhook-test/task-assignment")
	v.SetDefault("TRIGGER_TIMEOUT", constants.DefaultTriggerTimeout)
	v.SetDefault("REFRESH_DELAY", constants.DefaultRefreshDelay)
	v.SetDefault("SESSION_SECRET", "default-secret-key-change-me")
	v.SetDefault("SESSION_STORE", SessionStoreCookie)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("WORKSPACE_IDLE_TTL", constants.DefaultWorkspaceIdleTTL)
}

// Validate reports settings the selected drivers cannot run without.
func (c *Config) Validate() error {
	var errs []error

	switch c.StoreDriver {
	case DriverREST:
		if c.SupabaseURL == "" {
			errs = append(errs, errors.New("SUPABASE_URL is required for the rest store"))
		}
		if c.SupabaseKey == "" {
			errs = append(errs, errors.New("SUPABASE_KEY is required for the rest store"))
		}
	case DriverPostgres, DriverMySQL, DriverSQLite:
		if c.DatabaseDSN == "" {
			errs = append(errs, fmt.Errorf("DATABASE_DSN is required for the %s store", c.StoreDriver))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver))
	}

	switch c.SessionStore {
	case SessionStoreCookie, SessionStoreRedis:
	default:
		errs = append(errs, fmt.Errorf("unknown SESSION_STORE %q", c.SessionStore))
	}

	if c.WebhookURL == "" {
		errs = append(errs, errors.New("WEBHOOK_URL is required"))
	}
	if c.TriggerTimeout <= 0 {
		errs = append(errs, errors.New("TRIGGER_TIMEOUT must be positive"))
	}
	if len(c.CORSAllowOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOW_ORIGINS must name at least one origin"))
	}

	return errors.Join(errs...)
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
