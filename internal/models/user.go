// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered account. Rows are deleted for real rather
// than soft-deleted so unique usernames and emails become reusable.
type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	FirstName string     `gorm:"not null" json:"firstName"`
	LastName  string     `gorm:"not null" json:"lastName"`
	UserName  string     `gorm:"uniqueIndex;not null" json:"userName"`
	Email     string     `gorm:"uniqueIndex;not null" json:"email"`
	Password  string     `gorm:"not null" json:"-"`
	Birthday  time.Time  `gorm:"not null" json:"birthday"`
	Bio       string     `gorm:"not null" json:"bio"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Tweets    []Tweet    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"tweets,omitempty"`
	Replies   []Reply    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"replies,omitempty"`
	Favorites []Favorite `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`
}

// Profile is the user shape returned to the account owner. It never
// carries the numeric id or the password hash.
type Profile struct {
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	Birthday  time.Time `json:"birthday"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PublicProfile is the reduced shape shown to unauthenticated viewers.
type PublicProfile struct {
	UserName string `json:"userName"`
	Bio      string `json:"bio"`
}

// Profile converts a stored user into its owner-facing shape.
func (u *User) Profile() Profile {
	return Profile{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		UserName:  u.UserName,
		Email:     u.Email,
		Birthday:  u.Birthday,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// PublicProfile converts a stored user into its unauthenticated shape.
func (u *User) PublicProfile() PublicProfile {
	return PublicProfile{
		UserName: u.UserName,
		Bio:      u.Bio,
	}
}
