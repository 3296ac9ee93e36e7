package service

import (
	"context"
	"strings"

	"chirp/internal/models"
	"chirp/internal/repository"
)

// ReplyService owns reply creation and listing.
type ReplyService struct {
	replyRepo repository.ReplyRepository
}

// NewReplyService returns a ReplyService backed by the given repository.
func NewReplyService(replyRepo repository.ReplyRepository) *ReplyService {
	return &ReplyService{replyRepo: replyRepo}
}

// Create validates content and inserts a reply to tweetID. A missing
// tweet fails as NotFound from the store's foreign key.
func (s *ReplyService) Create(ctx context.Context, userID, tweetID uint, content string) (*models.Reply, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("content is required")
	}
	if len([]rune(content)) > models.MaxTweetLength {
		return nil, models.NewValidationError("content must be at most 280 characters")
	}
	if tweetID == 0 {
		return nil, models.NewValidationError("tweet id is required")
	}

	reply := &models.Reply{Content: content, UserID: userID, TweetID: tweetID}
	if err := s.replyRepo.Create(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// ListByUser lists a user's replies, newest first.
func (s *ReplyService) ListByUser(ctx context.Context, userID uint) ([]models.Reply, error) {
	return s.replyRepo.ListByUser(ctx, userID)
}
