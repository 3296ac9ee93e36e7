package repository

import (
	"context"

	"chirp/internal/models"

	"gorm.io/gorm"
)

// FavoriteRepository defines persistence operations for favorites.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *models.Favorite) error
	Delete(ctx context.Context, userID, tweetID uint) error
	ListByUser(ctx context.Context, userID uint) ([]models.Favorite, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository returns a new FavoriteRepository implementation.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create inserts the favorite, optimistic-then-catch: the composite
// unique index decides duplicates and the tweet foreign key decides
// existence, both inside the single insert.
func (r *favoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewDuplicateFavoriteError()
		}
		if isForeignKeyError(err) {
			return models.NewNotFoundError("Tweet")
		}
		return models.NewInternalError(err)
	}

	// Load the tweet for the response payload.
	if err := r.db.WithContext(ctx).
		Preload("Tweet").
		First(favorite, favorite.ID).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, tweetID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Favorite")
	}
	return nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Tweet").
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return favorites, nil
}
