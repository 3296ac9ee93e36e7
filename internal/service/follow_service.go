package service

import (
	"context"

	"chirp/internal/models"
	"chirp/internal/observability"
	"chirp/internal/repository"
)

// FollowService owns the social graph edge rules.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a FollowService backed by the given repositories.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// Follow creates the directed edge follower -> following. Self-follows
// are invalid; the composite unique index rejects duplicates.
func (s *FollowService) Follow(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	if followerID == followingID {
		return nil, models.NewInvalidOperationError("You cannot follow/unfollow yourself!")
	}

	if _, err := s.userRepo.GetByID(ctx, followingID); err != nil {
		return nil, err
	}

	follow := &models.Follow{FollowerID: followerID, FollowingID: followingID}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		observability.GraphMutations.WithLabelValues("follow", "rejected").Inc()
		return nil, err
	}

	observability.GraphMutations.WithLabelValues("follow", "created").Inc()
	return follow, nil
}

// Unfollow removes the directed edge follower -> following.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID uint) error {
	if followerID == followingID {
		return models.NewInvalidOperationError("You cannot follow/unfollow yourself!")
	}

	if err := s.followRepo.Delete(ctx, followerID, followingID); err != nil {
		return err
	}
	observability.GraphMutations.WithLabelValues("follow", "deleted").Inc()
	return nil
}

// Followers lists users following userID. limit <= 0 means unbounded.
func (s *FollowService) Followers(ctx context.Context, userID uint, limit int) ([]models.User, error) {
	return s.followRepo.Followers(ctx, userID, limit)
}

// Following lists users userID follows. limit <= 0 means unbounded.
func (s *FollowService) Following(ctx context.Context, userID uint, limit int) ([]models.User, error) {
	return s.followRepo.Following(ctx, userID, limit)
}
