package seed

import (
	"testing"

	"chirp/internal/database"
	"chirp/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newSeedDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSeedUsers(t *testing.T) {
	db := newSeedDB(t)
	seeder := NewSeeder(db)

	users, err := seeder.SeedUsers(8)
	if err != nil {
		t.Fatalf("seed users: %v", err)
	}
	if len(users) != 8 {
		t.Fatalf("expected 8 users, got %d", len(users))
	}

	// Well-known dev accounts come first.
	if users[0].UserName != "chirp" || users[1].UserName != "test" {
		t.Fatalf("expected well-known handles first, got %q and %q",
			users[0].UserName, users[1].UserName)
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 8 {
		t.Fatalf("expected 8 rows, got %d", count)
	}
}

func TestSeedTweetsStayWithinLimit(t *testing.T) {
	db := newSeedDB(t)
	seeder := NewSeeder(db)

	users, err := seeder.SeedUsers(3)
	if err != nil {
		t.Fatalf("seed users: %v", err)
	}

	tweets, err := seeder.SeedTweets(users, 20)
	if err != nil {
		t.Fatalf("seed tweets: %v", err)
	}
	if len(tweets) != 20 {
		t.Fatalf("expected 20 tweets, got %d", len(tweets))
	}

	for _, tweet := range tweets {
		if len(tweet.Content) == 0 || len(tweet.Content) > models.MaxTweetLength {
			t.Fatalf("tweet content length %d out of range", len(tweet.Content))
		}
	}
}

func TestSeedFollowMesh(t *testing.T) {
	db := newSeedDB(t)
	seeder := NewSeeder(db)

	users, err := seeder.SeedUsers(6)
	if err != nil {
		t.Fatalf("seed users: %v", err)
	}
	if err := seeder.SeedFollowMesh(users); err != nil {
		t.Fatalf("seed follow mesh: %v", err)
	}

	var follows []models.Follow
	if err := db.Find(&follows).Error; err != nil {
		t.Fatalf("load follows: %v", err)
	}
	if len(follows) == 0 {
		t.Fatal("expected follow edges")
	}

	seen := make(map[[2]uint]bool)
	for _, edge := range follows {
		if edge.FollowerID == edge.FollowingID {
			t.Fatalf("self-follow edge for user %d", edge.FollowerID)
		}
		key := [2]uint{edge.FollowerID, edge.FollowingID}
		if seen[key] {
			t.Fatalf("duplicate edge %d -> %d", edge.FollowerID, edge.FollowingID)
		}
		seen[key] = true
	}
}

func TestSeedFullRun(t *testing.T) {
	db := newSeedDB(t)
	seeder := NewSeeder(db)

	if err := seeder.Seed(Options{NumUsers: 5, NumTweets: 10, ShouldClean: true}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var tweetCount int64
	if err := db.Model(&models.Tweet{}).Count(&tweetCount).Error; err != nil {
		t.Fatalf("count tweets: %v", err)
	}
	if tweetCount != 10 {
		t.Fatalf("expected 10 tweets, got %d", tweetCount)
	}

	// A second cleaning run replaces everything instead of stacking.
	if err := seeder.Seed(Options{NumUsers: 3, NumTweets: 4, ShouldClean: true}); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if userCount != 3 {
		t.Fatalf("expected 3 users after reseed, got %d", userCount)
	}
}
