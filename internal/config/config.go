package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Catalog backends
const (
	SourceFile     = "file"
	SourceR2       = "r2"
	SourcePostgres = "postgres"
)

type Config struct {
	AppEnv   string
	Port     string
	LogLevel string

	CatalogSource      string
	DataDir            string
	SharedCatalogCache bool

	DatabaseURL string

	R2Endpoint  string
	R2AccessKey string
	R2SecretKey string
	R2Bucket    string
	R2Prefix    string

	SessionSecret string
	SessionTTL    time.Duration

	CORSOrigins []string
}

// Load reads the environment, pulling in .env outside production.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the config from a lookup function so tests can avoid the process env.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		AppEnv:        valueOr(getenv("APP_ENV"), "development"),
		Port:          valueOr(getenv("PORT"), "8000"),
		LogLevel:      valueOr(getenv("LOG_LEVEL"), "info"),
		CatalogSource: strings.ToLower(valueOr(getenv("CATALOG_SOURCE"), SourceFile)),
		DataDir:       valueOr(getenv("DATA_DIR"), "data"),
		DatabaseURL:   getenv("DATABASE_URL"),
		R2Endpoint:    getenv("R2_ENDPOINT"),
		R2AccessKey:   getenv("R2_ACCESS_KEY"),
		R2SecretKey:   getenv("R2_SECRET_KEY"),
		R2Bucket:      getenv("R2_BUCKET_NAME"),
		R2Prefix:      getenv("R2_PREFIX"),
		SessionSecret: getenv("SESSION_SECRET"),
		SessionTTL:    12 * time.Hour,
		CORSOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
	}

	if raw := getenv("CATALOG_SHARED_CACHE"); raw != "" {
		shared, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid CATALOG_SHARED_CACHE %q: %w", raw, err)
		}
		cfg.SharedCatalogCache = shared
	}

	if raw := getenv("SESSION_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL %q: %w", raw, err)
		}
		cfg.SessionTTL = ttl
	}

	if raw := getenv("CORS_ORIGINS"); raw != "" {
		cfg.CORSOrigins = nil
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// validate fails fast on env vars the selected catalog source cannot run without.
func (c *Config) validate() error {
	var required map[string]string

	switch c.CatalogSource {
	case SourceFile:
		required = map[string]string{}
	case SourcePostgres:
		required = map[string]string{"DATABASE_URL": c.DatabaseURL}
	case SourceR2:
		required = map[string]string{
			"R2_ENDPOINT":    c.R2Endpoint,
			"R2_ACCESS_KEY":  c.R2AccessKey,
			"R2_SECRET_KEY":  c.R2SecretKey,
			"R2_BUCKET_NAME": c.R2Bucket,
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.CatalogSource)
	}

	if c.IsProduction() {
		required["SESSION_SECRET"] = c.SessionSecret
	}

	for _, k := range sortedKeys(required) {
		if required[k] == "" {
			return fmt.Errorf("missing env var: %s", k)
		}
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
