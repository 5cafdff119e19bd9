package config

import (
	"flag"
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress         string
	DatabaseURI        string
	JWTSecret          string
	TokenTTL           time.Duration
	ShutdownTimeout    time.Duration
	ImportMaxBytes     int64
	CORSAllowedOrigins []string
	LogLevel           string
}

const (
	defaultPort            = "5000"
	defaultTokenTTL        = 7 * 24 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
	defaultImportMaxBytes  = 10 << 20
	defaultPGPort          = "5432"
	defaultPGSSLMode       = "prefer"
	defaultLogLevel        = "info"
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", ":"+getString(lookup, "PORT", defaultPort)),
		DatabaseURI:        getString(lookup, "DATABASE_URI", postgresDSN(lookup)),
		JWTSecret:          getString(lookup, "JWT_SECRET", ""),
		TokenTTL:           getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		ImportMaxBytes:     getInt64(lookup, "IMPORT_MAX_BYTES", defaultImportMaxBytes),
		CORSAllowedOrigins: parseList(getString(lookup, "CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           strings.ToLower(getString(lookup, "LOG_LEVEL", defaultLogLevel)),
	}

	fs := flag.NewFlagSet("resi", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing session tokens")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Session token lifetime")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.Int64Var(&cfg.ImportMaxBytes, "import-max-bytes", cfg.ImportMaxBytes, "Maximum CSV upload size in bytes")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.ImportMaxBytes <= 0 {
		cfg.ImportMaxBytes = defaultImportMaxBytes
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret must be provided")
	}

	return cfg, nil
}

// postgresDSN assembles a connection URL from libpq style PG* variables.
// It returns an empty string when PGHOST is not set.
func postgresDSN(lookup envLookup) string {
	host := getString(lookup, "PGHOST", "")
	if host == "" {
		return ""
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(host, getString(lookup, "PGPORT", defaultPGPort)),
		Path:   "/" + getString(lookup, "PGDATABASE", ""),
	}
	if user := getString(lookup, "PGUSER", ""); user != "" {
		if password, ok := lookup("PGPASSWORD"); ok && password != "" {
			u.User = url.UserPassword(user, password)
		} else {
			u.User = url.User(user)
		}
	}
	u.RawQuery = url.Values{"sslmode": {getString(lookup, "PGSSLMODE", defaultPGSSLMode)}}.Encode()
	return u.String()
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func getInt64(lookup envLookup, key string, def int64) int64 {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseList(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
