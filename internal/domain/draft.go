package domain

import "time"

// DraftKind the content kind a draft will become
type DraftKind string

const (
	DraftArticle DraftKind = "article"
	DraftReview  DraftKind = "review"
)

// MaxDraftsPerUser caps drafts per user per content kind. The cap is a
// hard rejection, not LRU eviction.
const MaxDraftsPerUser = 10

// Draft is an unpublished article or review body
type Draft struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index:idx_draft_user_kind" json:"user_id"`
	Kind      DraftKind `gorm:"index:idx_draft_user_kind;size:16" json:"kind"`
	Title     string    `gorm:"size:255" json:"title"`
	Content   string    `gorm:"type:mediumtext" json:"content"`
	GameID    *uint     `json:"game_id,omitempty"`
	Rating    *int      `json:"rating,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name
func (Draft) TableName() string {
	return "tr_drafts"
}

// SaveDraftRequest request body for creating or updating a draft
type SaveDraftRequest struct {
	Kind    DraftKind `json:"kind" binding:"required"`
	Title   string    `json:"title"`
	Content string    `json:"content" binding:"required"`
	GameID  *uint     `json:"game_id"`
	Rating  *int      `json:"rating"`
}
