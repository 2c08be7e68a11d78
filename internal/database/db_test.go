package database_test

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/justsurfingit/job-board/internal/database"
	"github.com/justsurfingit/job-board/internal/database/databasetest"
	"github.com/justsurfingit/job-board/internal/models"
	"gorm.io/gorm"
)

func TestOpen_AutoMigrate(t *testing.T) {
	db := databasetest.New(t)

	for _, m := range models.All() {
		if !db.Migrator().HasTable(m) {
			t.Fatalf("table for %T not created", m)
		}
	}
	if !db.Migrator().HasIndex(&models.User{}, "Email") {
		t.Fatal("expected unique index on users.email")
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := database.Open(database.Options{Driver: "oracle", DSN: "x"})
	if err == nil || !strings.Contains(err.Error(), "unsupported driver") {
		t.Fatalf("expected unsupported driver error, got %v", err)
	}
}

func TestDuplicateEmailIsTranslated(t *testing.T) {
	db := databasetest.New(t)

	u := models.User{Name: "Alice", Email: "dup@test.com", Phone: "123", Password: "x", Role: models.RoleEmployer}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("first insert: %v", err)
	}
	again := models.User{Name: "Alice", Email: "dup@test.com", Phone: "123", Password: "x", Role: models.RoleEmployer}
	err := db.Create(&again).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}
}

func TestDuplicateApplicationIsTranslated(t *testing.T) {
	db := databasetest.New(t)
	if !db.Migrator().HasIndex(&models.Application{}, database.ApplicantIndex) {
		t.Fatal("expected unique applicant index")
	}

	newApp := func(jobID, seekerID string) *models.Application {
		return &models.Application{
			Name: "Asha Rao", Email: "asha@example.com", Phone: "1", Address: "Pune", CoverLetter: "hi",
			JobID:         jobID,
			JobSeekerInfo: models.Party{UserID: seekerID, Role: models.RoleJobSeeker},
			EmployerInfo:  models.Party{UserID: "employer-1", Role: models.RoleEmployer},
		}
	}
	if err := db.Create(newApp("job-1", "seeker-1")).Error; err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := db.Create(newApp("job-2", "seeker-1")).Error; err != nil {
		t.Fatalf("other job: %v", err)
	}
	if err := db.Create(newApp("job-1", "seeker-2")).Error; err != nil {
		t.Fatalf("other seeker: %v", err)
	}
	if err := db.Create(newApp("job-1", "seeker-1")).Error; !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(database.Migrations, "migrations")
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	var up, down int
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			up++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			down++
		}
	}
	if up == 0 || up != down {
		t.Fatalf("expected paired up/down migrations, got %d up and %d down", up, down)
	}
}
