package service

import (
	"context"
	"strings"

	"chirp/internal/models"
	"chirp/internal/observability"
	"chirp/internal/repository"
)

// TweetService owns tweet creation, deletion and listing rules.
type TweetService struct {
	tweetRepo repository.TweetRepository
}

// NewTweetService returns a TweetService backed by the given repository.
func NewTweetService(tweetRepo repository.TweetRepository) *TweetService {
	return &TweetService{tweetRepo: tweetRepo}
}

// Create validates content and inserts a tweet owned by userID.
func (s *TweetService) Create(ctx context.Context, userID uint, content string) (*models.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("content is required")
	}
	if len([]rune(content)) > models.MaxTweetLength {
		return nil, models.NewValidationError("content must be at most 280 characters")
	}

	tweet := &models.Tweet{Content: content, UserID: userID}
	if err := s.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, err
	}

	observability.TweetsCreated.Inc()
	return tweet, nil
}

// Delete removes a tweet after verifying the caller owns it.
func (s *TweetService) Delete(ctx context.Context, callerID, tweetID uint) (*models.Tweet, error) {
	tweet, err := s.tweetRepo.GetByID(ctx, tweetID)
	if err != nil {
		return nil, err
	}

	if tweet.UserID != callerID {
		return nil, models.NewForbiddenError("You don't own this tweet.")
	}

	if err := s.tweetRepo.Delete(ctx, tweetID); err != nil {
		return nil, err
	}
	return tweet, nil
}

// Feed lists every tweet with author and replies, newest first.
func (s *TweetService) Feed(ctx context.Context) ([]models.Tweet, error) {
	return s.tweetRepo.ListAll(ctx)
}

// ListByUser lists a user's tweets, optionally with their replies.
func (s *TweetService) ListByUser(ctx context.Context, userID uint, withReplies bool) ([]models.Tweet, error) {
	return s.tweetRepo.ListByUser(ctx, userID, withReplies)
}
