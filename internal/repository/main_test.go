package repository

import (
	"testing"
	"time"

	"chirp/internal/database"
	"chirp/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory SQLite database with foreign keys
// enforced, matching the constraint behavior the Postgres schema has.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, userName, email string) *models.User {
	t.Helper()
	user := &models.User{
		FirstName: "Test",
		LastName:  "User",
		UserName:  userName,
		Email:     email,
		Password:  "hashed",
		Birthday:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Bio:       "hello",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedTweet(t *testing.T, db *gorm.DB, userID uint, content string) *models.Tweet {
	t.Helper()
	tweet := &models.Tweet{Content: content, UserID: userID}
	if err := db.Create(tweet).Error; err != nil {
		t.Fatalf("seed tweet: %v", err)
	}
	return tweet
}
