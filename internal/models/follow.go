package models

import "time"

// Follow is a directed edge in the social graph: follower follows
// following. The composite unique index keeps edges singular and the
// check constraint rejects self-follows at the store level.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_follow_edge;check:chk_no_self_follow,follower_id <> following_id" json:"followerId"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follow_edge" json:"followingId"`
	Follower    User      `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"follower,omitempty"`
	Following   User      `gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE" json:"following,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName keeps the table name plural alongside the other models.
func (Follow) TableName() string {
	return "follows"
}
