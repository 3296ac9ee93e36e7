package repository

import (
	"context"

	"chirp/internal/models"

	"gorm.io/gorm"
)

// FollowRepository defines persistence operations for follow edges.
type FollowRepository interface {
	Create(ctx context.Context, follow *models.Follow) error
	Delete(ctx context.Context, followerID, followingID uint) error
	Followers(ctx context.Context, userID uint, limit int) ([]models.User, error)
	Following(ctx context.Context, userID uint, limit int) ([]models.User, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository returns a new FollowRepository implementation.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, follow *models.Follow) error {
	if err := r.db.WithContext(ctx).Create(follow).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewDuplicateFollowError()
		}
		if isForeignKeyError(err) {
			return models.NewNotFoundError("User")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID uint) error {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Follow")
	}
	return nil
}

// Followers lists users following userID, newest edge first.
// limit <= 0 means unbounded.
func (r *followRepository) Followers(ctx context.Context, userID uint, limit int) ([]models.User, error) {
	return r.edgeUsers(ctx, "follows.follower_id", "follows.following_id", userID, limit)
}

// Following lists users that userID follows, newest edge first.
func (r *followRepository) Following(ctx context.Context, userID uint, limit int) ([]models.User, error) {
	return r.edgeUsers(ctx, "follows.following_id", "follows.follower_id", userID, limit)
}

func (r *followRepository) edgeUsers(ctx context.Context, selectCol, whereCol string, userID uint, limit int) ([]models.User, error) {
	var users []models.User
	q := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN follows ON users.id = "+selectCol).
		Where(whereCol+" = ?", userID).
		Order("follows.created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	} else {
		// The unbounded listing feeds the authenticated projection,
		// which carries each user's tweets and replies.
		q = q.Preload("Tweets").Preload("Replies")
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
