package domain

import "time"

// Post is a short-form update. Posts publish immediately unless the
// author keeps them as an unpublished save.
type Post struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorID  uint      `gorm:"index" json:"author_id"`
	Content   string    `gorm:"type:text" json:"content"`
	LinkURL   string    `gorm:"size:512" json:"link_url,omitempty"`
	Published bool      `gorm:"index" json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name
func (Post) TableName() string {
	return "tr_posts"
}

// CreatePostRequest request body for creating a post
type CreatePostRequest struct {
	Content   string    `json:"content" binding:"required"`
	LinkURL   string    `json:"link_url"`
	Published *bool     `json:"published"`
	Mentions  []Mention `json:"mentions"`
}

// UpdatePostRequest request body for updating a post
type UpdatePostRequest struct {
	Content   string    `json:"content" binding:"required"`
	LinkURL   string    `json:"link_url"`
	Published *bool     `json:"published"`
	Mentions  []Mention `json:"mentions"`
}

// PostResponse is a post joined with its author and engagement counts
type PostResponse struct {
	ID           uint         `json:"id"`
	Author       UserSummary  `json:"author"`
	Content      string       `json:"content"`
	LinkURL      string       `json:"link_url,omitempty"`
	Published    bool         `json:"published"`
	LikeCount    int64        `json:"like_count"`
	CommentCount int64        `json:"comment_count"`
	Liked        bool         `json:"liked"`
	Preview      *LinkPreview `json:"preview,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}
