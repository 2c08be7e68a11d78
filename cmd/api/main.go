package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board/internal/auth"
	"github.com/justsurfingit/job-board/internal/config"
	"github.com/justsurfingit/job-board/internal/database"
	"github.com/justsurfingit/job-board/internal/handlers"
	"github.com/justsurfingit/job-board/internal/services"
	"github.com/justsurfingit/job-board/internal/storage"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(log)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	// 2. Database
	db, err := database.Open(database.OptionsFromConfig(cfg, log))
	if err != nil {
		return err
	}
	defer database.Close(db)
	log.Info("database connected", "driver", cfg.DBDriver, "auto_migrate", cfg.AutoMigrate)

	// 3. Asset host
	assets, localDir, err := assetHost(cfg, log)
	if err != nil {
		return err
	}

	// 4. Services
	users := services.NewUserService(db, assets, log)
	jobs := services.NewJobService(db)
	applications := services.NewApplicationService(db, assets, log)

	sessions := auth.NewSessionManager(auth.SessionConfig{
		Secret:       cfg.JWTSecret,
		TTL:          cfg.JWTExpire,
		CookieMaxAge: cfg.CookieExpire,
		Secure:       cfg.IsProduction(),
	})
	log.Info("sessions configured", "jwt_secret", config.Mask(cfg.JWTSecret), "ttl", cfg.JWTExpire)

	// 5. Router
	router, err := handlers.NewRouter(handlers.Deps{
		DB:             db,
		Users:          users,
		Jobs:           jobs,
		Applications:   applications,
		Sessions:       sessions,
		AuthLimiter:    auth.NewRateLimiter(cfg.LoginRatePerMinute, cfg.LoginBurst),
		Logger:         log,
		AllowedOrigins: cfg.FrontendURLs,
		TrustedProxies: cfg.TrustedProxies,
		MaxUploadBytes: cfg.MaxUploadBytes,
		LocalUploadDir: localDir,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// assetHost picks Cloudinary when credentials are configured and the local
// disk otherwise. The returned directory is non-empty only for local disk.
func assetHost(cfg *config.Config, log *slog.Logger) (storage.AssetHost, string, error) {
	if cfg.Cloudinary.Enabled() {
		host, err := storage.NewCloudinaryHost(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret, cfg.Cloudinary.Folder)
		if err != nil {
			return nil, "", err
		}
		log.Info("asset host: cloudinary", "cloud", cfg.Cloudinary.CloudName, "api_key", config.Mask(cfg.Cloudinary.APIKey))
		return host, "", nil
	}

	host, err := storage.NewLocalHost(cfg.UploadDir, cfg.PublicURL)
	if err != nil {
		return nil, "", err
	}
	log.Info("asset host: local disk", "dir", cfg.UploadDir)
	return host, cfg.UploadDir, nil
}
