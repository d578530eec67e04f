package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/outlay-labs/outlay/pkg/jwtx"
)

type Config struct {
	Issuer string // Required: issuer claim for tokens (defaults to "outlay-api")

	TokenSecret     string        // Optional: raw HS256 secret (dev convenience; prefer the file)
	TokenSecretFile string        // Optional: path to file containing the HS256 secret
	TokenTTL        time.Duration // Optional: access token lifetime (default: 30m)

	DBDriver     string // Database driver (sqlite, postgres) (default: sqlite)
	DatabaseFile string // Path to SQLite database file (default: ./outlay.db)
	DatabaseURL  string // Postgres connection URL (required when DBDriver is postgres)

	PepperFile string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	CORSAllowedOrigins []string // Allowed CORS origins (comma-separated env, default: *)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:          getEnvOrDefault("OUTLAY_ISSUER", "outlay-api"),
		TokenSecret:     os.Getenv("OUTLAY_TOKEN_SECRET"),
		TokenSecretFile: os.Getenv("OUTLAY_TOKEN_SECRET_FILE"),
		TokenTTL:        getEnvDurationOrDefault("OUTLAY_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),

		DBDriver:     getEnvOrDefault("OUTLAY_DB_DRIVER", "sqlite"),
		DatabaseFile: getEnvOrDefault("OUTLAY_DATABASE_FILE", "outlay.db"),
		DatabaseURL:  os.Getenv("OUTLAY_DATABASE_URL"),

		PepperFile: getEnvOrDefault("OUTLAY_PEPPER_FILE", "pepper"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	origins := getEnvOrDefault("OUTLAY_CORS_ALLOWED_ORIGINS", "*")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Integer values are taken as minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
