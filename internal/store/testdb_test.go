package store_test

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/restoservice/repair-admin/internal/db"
	"github.com/restoservice/repair-admin/internal/seed"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newSeededDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := newTestDB(t)
	if err := seed.Run(db); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}
	return db
}
