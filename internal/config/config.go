package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Files that are loaded into the environment when present. Variables that
// are already set win over file values.
var envFiles = []string{".env", "config/config.env"}

type Config struct {
	Port   string
	AppEnv string

	DBDriver       string
	DatabaseURL    string
	AutoMigrate    bool
	MaxOpenConns   int
	MaxIdleConns   int
	JWTSecret      string
	JWTExpire      time.Duration
	CookieExpire   time.Duration
	FrontendURLs   []string
	// TrustedProxies lists proxy addresses or CIDRs whose forwarding
	// headers are believed. Empty means the peer address is the client.
	TrustedProxies []string
	PublicURL      string
	UploadDir      string
	MaxUploadBytes int64

	Cloudinary Cloudinary

	LoginRatePerMinute int
	LoginBurst         int

	LogLevel slog.Level
}

type Cloudinary struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// Enabled reports whether all Cloudinary credentials are present.
func (c Cloudinary) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

func (c *Config) IsProduction() bool { return c.AppEnv == "production" }

// Load reads the optional env files and builds the Config from the
// environment.
func Load() (*Config, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds the Config from the current environment only.
func FromEnv() (*Config, error) {
	var errs []error

	port := envOr("PORT", "4000")
	cfg := &Config{
		Port:        port,
		AppEnv:      envOr("APP_ENV", "development"),
		DBDriver:    strings.ToLower(envOr("DB_DRIVER", "postgres")),
		DatabaseURL: envOr("DATABASE_URL", "host=localhost user=postgres password=password dbname=jobboard port=5432 sslmode=disable"),
		JWTSecret:   os.Getenv("JWT_SECRET_KEY"),
		PublicURL:   strings.TrimRight(envOr("PUBLIC_URL", "http://localhost:"+port), "/"),
		UploadDir:   envOr("UPLOAD_DIR", "uploads"),
		Cloudinary: Cloudinary{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
			Folder:    envOr("CLOUDINARY_FOLDER", "job-board"),
		},
	}

	for _, origin := range strings.Split(envOr("FRONTEND_URL", "http://localhost:5173"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.FrontendURLs = append(cfg.FrontendURLs, origin)
		}
	}

	for _, proxy := range strings.Split(os.Getenv("TRUSTED_PROXIES"), ",") {
		if proxy = strings.TrimSpace(proxy); proxy != "" {
			cfg.TrustedProxies = append(cfg.TrustedProxies, proxy)
		}
	}

	var err error
	if cfg.AutoMigrate, err = strconv.ParseBool(envOr("DB_AUTO_MIGRATE", "true")); err != nil {
		errs = append(errs, fmt.Errorf("DB_AUTO_MIGRATE: %w", err))
	}
	cfg.MaxOpenConns = intEnv("DB_MAX_OPEN_CONNS", 25, &errs)
	cfg.MaxIdleConns = intEnv("DB_MAX_IDLE_CONNS", 10, &errs)
	cfg.LoginRatePerMinute = intEnv("LOGIN_RATE_PER_MIN", 10, &errs)
	cfg.LoginBurst = intEnv("LOGIN_BURST", 5, &errs)
	cfg.CookieExpire = time.Duration(intEnv("COOKIE_EXPIRE", 7, &errs)) * 24 * time.Hour
	cfg.MaxUploadBytes = int64(intEnv("MAX_UPLOAD_MB", 5, &errs)) << 20

	if cfg.JWTExpire, err = time.ParseDuration(envOr("JWT_EXPIRE", "168h")); err != nil {
		errs = append(errs, fmt.Errorf("JWT_EXPIRE: %w", err))
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(envOr("LOG_LEVEL", "info"))); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	if cfg.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET_KEY must be set"))
	}
	switch cfg.DBDriver {
	case "postgres", "mysql", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER: unsupported driver %q", cfg.DBDriver))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int, errs *[]error) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		*errs = append(*errs, fmt.Errorf("%s: invalid number %q", key, raw))
		return fallback
	}
	return n
}

// Mask hides all but the edges of a secret for startup logs.
func Mask(s string) string {
	if len(s) <= 10 {
		return "****"
	}
	return s[:4] + "…" + s[len(s)-4:]
}
