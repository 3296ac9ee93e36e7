package service

import (
	"context"

	"chirp/internal/models"
	"chirp/internal/observability"
	"chirp/internal/repository"
)

// FavoriteService owns favorite/unfavorite rules.
type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
	tweetRepo    repository.TweetRepository
}

// NewFavoriteService returns a FavoriteService backed by the given repositories.
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, tweetRepo repository.TweetRepository) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo, tweetRepo: tweetRepo}
}

// Favorite marks tweetID as a favorite of userID. The target tweet is
// checked up front for a clean NotFound; the foreign key inside the
// insert still backstops a concurrent delete, so a favorite can never
// be created against a tweet that no longer exists.
func (s *FavoriteService) Favorite(ctx context.Context, userID, tweetID uint) (*models.Favorite, error) {
	if _, err := s.tweetRepo.GetByID(ctx, tweetID); err != nil {
		return nil, err
	}

	favorite := &models.Favorite{UserID: userID, TweetID: tweetID}
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		observability.GraphMutations.WithLabelValues("favorite", "rejected").Inc()
		return nil, err
	}

	observability.GraphMutations.WithLabelValues("favorite", "created").Inc()
	return favorite, nil
}

// Unfavorite removes the (userID, tweetID) favorite if it exists.
func (s *FavoriteService) Unfavorite(ctx context.Context, userID, tweetID uint) error {
	if err := s.favoriteRepo.Delete(ctx, userID, tweetID); err != nil {
		return err
	}
	observability.GraphMutations.WithLabelValues("favorite", "deleted").Inc()
	return nil
}

// ListByUser lists a user's favorites with their tweets, newest first.
func (s *FavoriteService) ListByUser(ctx context.Context, userID uint) ([]models.Favorite, error) {
	return s.favoriteRepo.ListByUser(ctx, userID)
}
