package domain

import "time"

// Notification kinds
const (
	NotifyLikePost       = "like_post"
	NotifyLikeArticle    = "like_article"
	NotifyLikeReview     = "like_review"
	NotifyLikeComment    = "like_comment"
	NotifyCommentPost    = "comment_post"
	NotifyCommentArticle = "comment_article"
	NotifyCommentReview  = "comment_review"
	NotifyReplyComment   = "reply_comment"
	NotifyMention        = "mention"
	NotifyFollow         = "follow"
)

// Notification is written synchronously by the triggering mutation.
// Never created when actor == recipient. ViewedAt is set once, when
// the recipient opens the list while unread rows exist; the daily
// sweep deletes rows viewed more than 24h ago or unviewed for 30 days.
type Notification struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint       `gorm:"index" json:"user_id"`
	ActorID    uint       `json:"actor_id"`
	Type       string     `gorm:"size:32" json:"type"`
	TargetType TargetType `gorm:"size:16" json:"target_type,omitempty"`
	TargetID   uint       `json:"target_id"`
	ViewedAt   *time.Time `json:"viewed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TableName returns the table name
func (Notification) TableName() string {
	return "tr_notifications"
}

// Retention windows for the daily expiry sweep
const (
	NotificationViewedTTL   = 24 * time.Hour
	NotificationUnviewedTTL = 30 * 24 * time.Hour
)

// NotificationItem is a single notification in the list response
type NotificationItem struct {
	ID         uint        `json:"id"`
	Actor      UserSummary `json:"actor"`
	Type       string      `json:"type"`
	TargetType TargetType  `json:"target_type,omitempty"`
	TargetID   uint        `json:"target_id"`
	Viewed     bool        `json:"viewed"`
	CreatedAt  time.Time   `json:"created_at"`
}

// NotificationListResponse paginated notification list
type NotificationListResponse struct {
	Items       []NotificationItem `json:"items"`
	Total       int64              `json:"total"`
	UnreadCount int64              `json:"unread_count"`
	Page        int                `json:"page"`
	Limit       int                `json:"limit"`
}

// NotificationSummaryResponse unread count response
type NotificationSummaryResponse struct {
	TotalUnread int64 `json:"total_unread"`
}
