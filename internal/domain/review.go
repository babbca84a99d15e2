package domain

import "time"

// Review is a star review of a single game. At most one review exists
// per (author, game) pair, enforced in the service layer and backed by
// a unique index.
type Review struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorID  uint      `gorm:"uniqueIndex:idx_review_author_game" json:"author_id"`
	GameID    uint      `gorm:"uniqueIndex:idx_review_author_game" json:"game_id"`
	Rating    int       `json:"rating"`
	Title     string    `gorm:"size:255" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Published bool      `gorm:"index" json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name
func (Review) TableName() string {
	return "tr_reviews"
}

// CreateReviewRequest request body for creating a review
type CreateReviewRequest struct {
	GameID    uint      `json:"game_id" binding:"required"`
	Rating    int       `json:"rating" binding:"required"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published *bool     `json:"published"`
	Mentions  []Mention `json:"mentions"`
}

// UpdateReviewRequest request body for updating a review
type UpdateReviewRequest struct {
	Rating    int       `json:"rating" binding:"required"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published *bool     `json:"published"`
	Mentions  []Mention `json:"mentions"`
}

// ReviewResponse is a review joined with author, game and counts
type ReviewResponse struct {
	ID           uint        `json:"id"`
	Author       UserSummary `json:"author"`
	Game         *Game       `json:"game,omitempty"`
	Rating       int         `json:"rating"`
	Title        string      `json:"title,omitempty"`
	Content      string      `json:"content,omitempty"`
	Published    bool        `json:"published"`
	LikeCount    int64       `json:"like_count"`
	CommentCount int64       `json:"comment_count"`
	Liked        bool        `json:"liked"`
	CreatedAt    time.Time   `json:"created_at"`
}
