package models

import "time"

// Favorite marks a tweet as liked by a user. The composite unique index
// means a user can hold at most one favorite per tweet; unfavoriting
// deletes the row so the pair can be favorited again later.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorite_user_tweet" json:"userId"`
	TweetID   uint      `gorm:"not null;uniqueIndex:idx_favorite_user_tweet" json:"tweetId"`
	Tweet     Tweet     `gorm:"foreignKey:TweetID" json:"tweet,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
