package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Port != "4000" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.DBDriver != "postgres" {
		t.Errorf("driver = %q", cfg.DBDriver)
	}
	if !cfg.AutoMigrate {
		t.Error("auto migrate should default to true")
	}
	if cfg.CookieExpire != 7*24*time.Hour {
		t.Errorf("cookie expire = %v", cfg.CookieExpire)
	}
	if cfg.JWTExpire != 168*time.Hour {
		t.Errorf("jwt expire = %v", cfg.JWTExpire)
	}
	if cfg.MaxUploadBytes != 5<<20 {
		t.Errorf("max upload = %d", cfg.MaxUploadBytes)
	}
	if cfg.PublicURL != "http://localhost:4000" {
		t.Errorf("public url = %q", cfg.PublicURL)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("log level = %v", cfg.LogLevel)
	}
	if cfg.Cloudinary.Enabled() {
		t.Error("cloudinary should be disabled without credentials")
	}
	if len(cfg.TrustedProxies) != 0 {
		t.Errorf("no proxy should be trusted by default, got %v", cfg.TrustedProxies)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("FRONTEND_URL", "http://a.test, http://b.test")
	t.Setenv("COOKIE_EXPIRE", "1")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 127.0.0.1,")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("driver = %q", cfg.DBDriver)
	}
	if len(cfg.FrontendURLs) != 2 || cfg.FrontendURLs[1] != "http://b.test" {
		t.Errorf("origins = %v", cfg.FrontendURLs)
	}
	if cfg.CookieExpire != 24*time.Hour {
		t.Errorf("cookie expire = %v", cfg.CookieExpire)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("log level = %v", cfg.LogLevel)
	}
	if !cfg.Cloudinary.Enabled() {
		t.Error("cloudinary should be enabled")
	}
	if len(cfg.TrustedProxies) != 2 || cfg.TrustedProxies[1] != "127.0.0.1" {
		t.Errorf("trusted proxies = %v", cfg.TrustedProxies)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	t.Setenv("DB_DRIVER", "oracle")
	t.Setenv("COOKIE_EXPIRE", "soon")

	_, err := FromEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"JWT_SECRET_KEY", "DB_DRIVER", "COOKIE_EXPIRE"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestMask(t *testing.T) {
	if got := Mask("short"); got != "****" {
		t.Errorf("Mask(short) = %q", got)
	}
	if got := Mask("abcdefghijklmnop"); got != "abcd…mnop" {
		t.Errorf("Mask(long) = %q", got)
	}
}
