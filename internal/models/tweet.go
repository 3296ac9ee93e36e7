package models

import "time"

// MaxTweetLength is the maximum tweet content length in characters.
const MaxTweetLength = 280

// Tweet represents a top-level post. Deleting a tweet removes its
// replies and favorites through the store-level cascade.
type Tweet struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Content   string     `gorm:"size:280;not null" json:"content"`
	UserID    uint       `gorm:"not null;index" json:"userId"`
	User      User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Replies   []Reply    `gorm:"foreignKey:TweetID;constraint:OnDelete:CASCADE" json:"replies,omitempty"`
	Favorites []Favorite `gorm:"foreignKey:TweetID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`
}
