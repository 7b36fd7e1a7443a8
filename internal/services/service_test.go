package services

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diewo77/jobboard/internal/db"
	"github.com/diewo77/jobboard/internal/models"
	"github.com/diewo77/jobboard/internal/storage"
)

// setupTestDB opens a unique in-memory DB per test name to avoid leakage via
// shared cache.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func setupResumeStore(t *testing.T) *storage.Store {
	t.Helper()
	st, err := storage.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("resume store: %v", err)
	}
	return st
}

func seedUser(t *testing.T, conn *gorm.DB, email string, employer, admin bool) *models.User {
	t.Helper()
	u := models.User{FullName: "Test User", Email: email, PasswordHash: "x", IsEmployer: employer, IsAdmin: admin}
	if err := conn.Create(&u).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return &u
}

func seedJob(t *testing.T, conn *gorm.DB, poster *models.User, title, company string) *models.Job {
	t.Helper()
	j := models.Job{Title: title, Company: company, Description: "desc", PostedByID: poster.ID}
	if err := conn.Create(&j).Error; err != nil {
		t.Fatalf("seed job %s: %v", title, err)
	}
	return &j
}
