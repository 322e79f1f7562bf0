package repo

import (
	"testing"

	"Cepte/internal/model"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов репозитория
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:?cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	// Миграции для всех моделей, используемых в репозиториях
	if err := db.AutoMigrate(&model.User{}, &model.Document{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	// Изолируем тесты друг от друга: cache=shared переживает закрытие соединения
	if err := db.Where("1 = 1").Delete(&model.Document{}).Error; err != nil {
		t.Fatalf("failed to clean documents: %v", err)
	}
	if err := db.Where("1 = 1").Delete(&model.User{}).Error; err != nil {
		t.Fatalf("failed to clean users: %v", err)
	}
	return db
}
