package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/JaiyeofGod/Dualforce/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	gdb, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// single connection keeps the shared in-memory db alive and serializes
	// the report's concurrent fetches under sqlite
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Goal{},
		&models.Workout{},
		&models.StudySession{},
		&models.SleepLog{},
		&models.CalorieLog{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return gdb
}
