package database

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/justsurfingit/job-board/internal/config"
	"github.com/justsurfingit/job-board/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Migrations holds the versioned SQL migrations for postgres, applied by
// cmd/migrate.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// Options controls how Open connects.
type Options struct {
	Driver       string
	DSN          string
	AutoMigrate  bool
	MaxOpenConns int
	MaxIdleConns int
	Logger       *slog.Logger
	LogLevel     logger.LogLevel
}

// OptionsFromConfig maps the application config onto connection options.
func OptionsFromConfig(cfg *config.Config, log *slog.Logger) Options {
	level := logger.Warn
	if cfg.LogLevel <= slog.LevelDebug {
		level = logger.Info
	}
	return Options{
		Driver:       cfg.DBDriver,
		DSN:          cfg.DatabaseURL,
		AutoMigrate:  cfg.AutoMigrate,
		MaxOpenConns: cfg.MaxOpenConns,
		MaxIdleConns: cfg.MaxIdleConns,
		Logger:       log,
		LogLevel:     level,
	}
}

// Open connects to the database, verifies it is reachable and, when asked,
// creates or updates the tables.
func Open(opts Options) (*gorm.DB, error) {
	dialector, err := dialectorFor(opts.Driver, opts.DSN)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	level := opts.LogLevel
	if level == 0 {
		level = logger.Warn
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(slogWriter{log}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("database: open %s: %w", opts.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("database: ping: %w", err)
	}
	log.Info("database connection established", "driver", opts.Driver)

	if opts.AutoMigrate {
		log.Info("running auto migrations")
		if err := db.AutoMigrate(models.All()...); err != nil {
			return nil, fmt.Errorf("database: auto migrate: %w", err)
		}
		if err := ensureIndexes(db); err != nil {
			return nil, fmt.Errorf("database: applicant index: %w", err)
		}
	}
	return db, nil
}

// ApplicantIndex makes one application per job seeker and job. The columns
// come from two embedded structs, so struct tags cannot declare it.
const ApplicantIndex = "idx_applications_job_applicant"

func ensureIndexes(db *gorm.DB) error {
	if db.Migrator().HasIndex(&models.Application{}, ApplicantIndex) {
		return nil
	}
	return db.Exec("CREATE UNIQUE INDEX " + ApplicantIndex + " ON applications (job_id, job_seeker_user_id)").Error
}

// Close releases the pooled connections.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	}
	return nil, fmt.Errorf("database: unsupported driver %q", driver)
}

// slogWriter lets gorm's logger write through slog.
type slogWriter struct{ log *slog.Logger }

func (w slogWriter) Printf(format string, args ...any) {
	w.log.Info(fmt.Sprintf(format, args...), "component", "gorm")
}
