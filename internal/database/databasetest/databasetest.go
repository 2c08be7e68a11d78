// Package databasetest opens throwaway sqlite databases for tests.
package databasetest

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/justsurfingit/job-board/internal/database"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New returns a migrated in-memory database that is closed when the test
// ends. Every call gets its own database.
func New(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := database.Open(database.Options{
		Driver:       "sqlite",
		DSN:          "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=1",
		AutoMigrate:  true,
		MaxOpenConns: 1,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		LogLevel:     logger.Silent,
	})
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}
	tb.Cleanup(func() { _ = database.Close(db) })
	return db
}
