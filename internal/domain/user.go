package domain

import "time"

// User is the local shadow of an identity-provider account. ClerkID is
// the stable foreign key supplied by the provider; the row is re-synced
// on every sign-in.
type User struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ClerkID     string    `gorm:"uniqueIndex;size:64" json:"-"`
	Username    string    `gorm:"uniqueIndex;size:64" json:"username"`
	DisplayName string    `gorm:"size:128" json:"display_name"`
	Email       string    `gorm:"size:255" json:"-"`
	ImageURL    string    `gorm:"size:512" json:"image_url,omitempty"`
	Bio         string    `gorm:"size:512" json:"bio,omitempty"`
	Admin       bool      `json:"admin"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the table name
func (User) TableName() string {
	return "tr_users"
}

// UserSummary is the author shape embedded in feed and content views
type UserSummary struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	ImageURL    string `json:"image_url,omitempty"`
}

// ToSummary converts a user to its embedded summary form
func (u User) ToSummary() UserSummary {
	return UserSummary{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		ImageURL:    u.ImageURL,
	}
}

// SyncUserRequest is the profile payload pushed by the identity
// provider on sign-in.
type SyncUserRequest struct {
	Username    string `json:"username" binding:"required"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	ImageURL    string `json:"image_url"`
}
