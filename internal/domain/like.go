package domain

import "time"

// Like is a polymorphic like over any content kind. The composite
// unique index makes a concurrent duplicate toggle fail as a
// constraint error instead of inserting a second row.
type Like struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint       `gorm:"uniqueIndex:idx_like_user_target" json:"user_id"`
	TargetType TargetType `gorm:"uniqueIndex:idx_like_user_target;index:idx_like_target;size:16" json:"target_type"`
	TargetID   uint       `gorm:"uniqueIndex:idx_like_user_target;index:idx_like_target" json:"target_id"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TableName returns the table name
func (Like) TableName() string {
	return "tr_likes"
}

// ToggleLikeRequest request body for toggling a like
type ToggleLikeRequest struct {
	TargetType TargetType `json:"target_type" binding:"required"`
	TargetID   uint       `json:"target_id" binding:"required"`
}

// ToggleLikeResponse reports the post-toggle state
type ToggleLikeResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}
