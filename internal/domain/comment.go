package domain

import "time"

// Comment attaches to any content kind via (TargetType, TargetID).
// Replies reference their parent through ParentID and are limited to
// one level; replies-to-replies are flattened under the top-level
// comment in rendering, not in storage. Deletion is soft (Deleted set)
// while replies exist, hard otherwise.
type Comment struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	TargetType TargetType `gorm:"index:idx_comment_target;size:16" json:"target_type"`
	TargetID   uint       `gorm:"index:idx_comment_target" json:"target_id"`
	AuthorID   uint       `gorm:"index" json:"author_id"`
	ParentID   *uint      `gorm:"index" json:"parent_id,omitempty"`
	Content    string     `gorm:"type:text" json:"content"`
	Deleted    bool       `json:"deleted"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// TableName returns the table name
func (Comment) TableName() string {
	return "tr_comments"
}

// CreateCommentRequest request body for creating a comment or reply
type CreateCommentRequest struct {
	TargetType TargetType `json:"target_type" binding:"required"`
	TargetID   uint       `json:"target_id" binding:"required"`
	ParentID   *uint      `json:"parent_id"`
	Content    string     `json:"content" binding:"required"`
}

// UpdateCommentRequest request body for editing a comment
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommentResponse is a comment joined with its author, like count and
// flattened replies
type CommentResponse struct {
	ID        uint              `json:"id"`
	Author    UserSummary       `json:"author"`
	ParentID  *uint             `json:"parent_id,omitempty"`
	Content   string            `json:"content"`
	Deleted   bool              `json:"deleted"`
	LikeCount int64             `json:"like_count"`
	Liked     bool              `json:"liked"`
	Replies   []CommentResponse `json:"replies,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
