package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/thinkribbon/backend/internal/domain"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Post{},
		&domain.Article{},
		&domain.ArticleRevision{},
		&domain.ArticleGame{},
		&domain.Review{},
		&domain.Comment{},
		&domain.Like{},
		&domain.Notification{},
		&domain.Game{},
		&domain.QuestLogEntry{},
		&domain.CollectionEntry{},
		&domain.Draft{},
		&domain.ContentMention{},
		&domain.Follow{},
		&domain.Upload{},
		&domain.LinkPreview{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}
