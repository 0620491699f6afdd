// Package testutil provides shared helpers for setting up test databases
// and fixtures.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"artha/internal/models"
)

var allModels = []any{
	&models.User{},
	&models.Transaction{},
}

var dbCounter atomic.Int64

// SetupTestDB creates an isolated in-memory SQLite database with the full
// schema migrated. Each call returns a fresh database, so tests never see
// each other's rows. The DSN uses a unique name with a shared cache so all
// pooled connections see the same in-memory database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		TeardownTestDB(t, db)
	})
	return db
}

// TeardownTestDB closes the underlying connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Logf("failed to get underlying sql.DB: %v", err)
		return
	}
	_ = sqlDB.Close()
}
