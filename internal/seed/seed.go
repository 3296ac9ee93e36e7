// Package seed provides database seeding utilities for development and
// testing. All generated accounts share the password "password123".
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"chirp/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures a seeding run.
type Options struct {
	NumUsers    int
	NumTweets   int
	ShouldClean bool
}

// Seeder builds fake domain entities and persists them.
type Seeder struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Seeder{db: db, rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Seed populates the database per the given options.
func (s *Seeder) Seed(opts Options) error {
	log.Printf("Seeding %d users and %d tweets...", opts.NumUsers, opts.NumTweets)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	users, err := s.SeedUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("Created %d users", len(users))

	tweets, err := s.SeedTweets(users, opts.NumTweets)
	if err != nil {
		return fmt.Errorf("failed to create tweets: %w", err)
	}
	log.Printf("Created %d tweets", len(tweets))

	if err := s.SeedEngagement(users, tweets); err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}

	if err := s.SeedFollowMesh(users); err != nil {
		return fmt.Errorf("failed to create follow graph: %w", err)
	}

	log.Println("Database seeding completed")
	return nil
}

// ClearAll removes seeded rows in dependency order so it also works on
// databases without cascading truncate.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, table := range []string{"follows", "favorites", "replies", "tweets", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

// CreateUser constructs and persists a fake user. Optional override
// functions may modify the generated user before saving.
func (s *Seeder) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	first := gofakeit.FirstName()
	last := gofakeit.LastName()
	userName := strings.ToLower(fmt.Sprintf("%s%s%d", first, last, gofakeit.Number(10, 9999)))

	user := &models.User{
		FirstName: first,
		LastName:  last,
		UserName:  userName,
		Email:     fmt.Sprintf("%s@example.com", userName),
		Password:  hashedSeedPassword(),
		Birthday: gofakeit.DateRange(
			time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC),
		),
		Bio: gofakeit.Sentence(8),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// SeedUsers creates count users. The first few are well-known handles
// so developers have predictable accounts to sign in with.
func (s *Seeder) SeedUsers(count int) ([]models.User, error) {
	users := make([]models.User, 0, count)

	for _, handle := range []string{"chirp", "test"} {
		if len(users) >= count {
			break
		}
		handle := handle
		user, err := s.CreateUser(func(u *models.User) {
			u.UserName = handle
			u.Email = fmt.Sprintf("%s@example.com", handle)
			u.Bio = "One of the OGs."
		})
		if err != nil {
			// Already present from a previous run; skip it.
			continue
		}
		users = append(users, *user)
	}

	for i := len(users); i < count; i++ {
		user, err := s.CreateUser()
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, *user)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}

	return users, nil
}

// SeedTweets spreads count tweets across the given users with
// backdated timestamps so the feed looks lived-in.
func (s *Seeder) SeedTweets(users []models.User, count int) ([]models.Tweet, error) {
	if len(users) == 0 {
		return nil, nil
	}

	tweets := make([]models.Tweet, 0, count)
	for i := 0; i < count; i++ {
		author := users[s.rand.Intn(len(users))]
		tweet := models.Tweet{
			Content:   tweetContent(s.rand),
			UserID:    author.ID,
			CreatedAt: s.backdated(90),
		}
		if err := s.db.Create(&tweet).Error; err != nil {
			return nil, err
		}
		tweets = append(tweets, tweet)
	}
	return tweets, nil
}

// SeedEngagement adds replies and favorites to the given tweets.
// Roughly half the tweets get replies and a third get favorites.
func (s *Seeder) SeedEngagement(users []models.User, tweets []models.Tweet) error {
	if len(users) == 0 || len(tweets) == 0 {
		return nil
	}

	replies := 0
	for _, tweet := range tweets {
		if s.rand.Float32() > 0.5 {
			continue
		}
		for i := 0; i < s.rand.Intn(3)+1; i++ {
			reply := models.Reply{
				Content:   tweetContent(s.rand),
				UserID:    users[s.rand.Intn(len(users))].ID,
				TweetID:   tweet.ID,
				CreatedAt: s.backdated(30),
			}
			if err := s.db.Create(&reply).Error; err != nil {
				return err
			}
			replies++
		}
	}
	log.Printf("Created %d replies", replies)

	favorites := 0
	seen := make(map[[2]uint]bool)
	for _, tweet := range tweets {
		if s.rand.Float32() > 0.33 {
			continue
		}
		for i := 0; i < s.rand.Intn(5)+1; i++ {
			user := users[s.rand.Intn(len(users))]
			key := [2]uint{user.ID, tweet.ID}
			if seen[key] {
				continue
			}
			seen[key] = true

			favorite := models.Favorite{UserID: user.ID, TweetID: tweet.ID}
			if err := s.db.Create(&favorite).Error; err != nil {
				return err
			}
			favorites++
		}
	}
	log.Printf("Created %d favorites", favorites)
	return nil
}

// SeedFollowMesh gives every user a handful of random followings,
// skipping self-edges and duplicates.
func (s *Seeder) SeedFollowMesh(users []models.User) error {
	if len(users) < 2 {
		return nil
	}

	edges := 0
	seen := make(map[[2]uint]bool)
	for _, follower := range users {
		for i := 0; i < s.rand.Intn(5)+1; i++ {
			target := users[s.rand.Intn(len(users))]
			if target.ID == follower.ID {
				continue
			}
			key := [2]uint{follower.ID, target.ID}
			if seen[key] {
				continue
			}
			seen[key] = true

			follow := models.Follow{FollowerID: follower.ID, FollowingID: target.ID}
			if err := s.db.Create(&follow).Error; err != nil {
				return err
			}
			edges++
		}
	}
	log.Printf("Created %d follow edges", edges)
	return nil
}

// backdated returns a timestamp up to maxDays in the past.
func (s *Seeder) backdated(maxDays int) time.Time {
	daysBack := s.rand.Intn(maxDays)
	hoursBack := s.rand.Intn(24)
	minsBack := s.rand.Intn(60)
	return time.Now().
		Add(-time.Duration(daysBack) * 24 * time.Hour).
		Add(-time.Duration(hoursBack) * time.Hour).
		Add(-time.Duration(minsBack) * time.Minute)
}

// tweetContent generates a short post that stays within the length limit.
func tweetContent(r *rand.Rand) string {
	content := gofakeit.Sentence(r.Intn(15) + 3)
	if len(content) > models.MaxTweetLength {
		content = content[:models.MaxTweetLength]
	}
	return content
}

func hashedSeedPassword() string {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	return string(hashed)
}
