package domain

import "time"

// Follow is a directed edge in the social graph
type Follow struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowerID uint      `gorm:"uniqueIndex:idx_follow_pair" json:"follower_id"`
	FollowedID uint      `gorm:"uniqueIndex:idx_follow_pair;index" json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the table name
func (Follow) TableName() string {
	return "tr_follows"
}

// FollowCounts follower/following totals for a profile page
type FollowCounts struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}
