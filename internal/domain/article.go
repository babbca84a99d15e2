package domain

import "time"

// Article is a long-form piece with an append-only revision history
// and a many-to-many join to games.
type Article struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorID  uint      `gorm:"index" json:"author_id"`
	Title     string    `gorm:"size:255" json:"title"`
	Slug      string    `gorm:"uniqueIndex;size:255" json:"slug"`
	Content   string    `gorm:"type:mediumtext" json:"content"`
	Excerpt   string    `gorm:"size:512" json:"excerpt,omitempty"`
	CoverURL  string    `gorm:"size:512" json:"cover_url,omitempty"`
	Published bool      `gorm:"index" json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name
func (Article) TableName() string {
	return "tr_articles"
}

// ArticleRevision is an immutable snapshot of an article, written only
// when an update explicitly asks for history to be saved.
type ArticleRevision struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ArticleID uint      `gorm:"index" json:"article_id"`
	Title     string    `gorm:"size:255" json:"title"`
	Content   string    `gorm:"type:mediumtext" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name
func (ArticleRevision) TableName() string {
	return "tr_article_revisions"
}

// ArticleGame joins an article to the games it covers
type ArticleGame struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	ArticleID uint `gorm:"uniqueIndex:idx_article_game" json:"article_id"`
	GameID    uint `gorm:"uniqueIndex:idx_article_game" json:"game_id"`
}

// TableName returns the table name
func (ArticleGame) TableName() string {
	return "tr_article_games"
}

// CreateArticleRequest request body for creating an article
type CreateArticleRequest struct {
	Title     string    `json:"title" binding:"required"`
	Slug      string    `json:"slug" binding:"required"`
	Content   string    `json:"content" binding:"required"`
	Excerpt   string    `json:"excerpt"`
	CoverURL  string    `json:"cover_url"`
	Published *bool     `json:"published"`
	GameIDs   []uint    `json:"game_ids"`
	Mentions  []Mention `json:"mentions"`
}

// UpdateArticleRequest request body for updating an article.
// SaveHistory appends the pre-update state to the revision list.
type UpdateArticleRequest struct {
	Title       string    `json:"title" binding:"required"`
	Content     string    `json:"content" binding:"required"`
	Excerpt     string    `json:"excerpt"`
	CoverURL    string    `json:"cover_url"`
	Published   *bool     `json:"published"`
	GameIDs     []uint    `json:"game_ids"`
	Mentions    []Mention `json:"mentions"`
	SaveHistory bool      `json:"save_history"`
}

// ArticleResponse is an article joined with author, games and counts
type ArticleResponse struct {
	ID           uint        `json:"id"`
	Author       UserSummary `json:"author"`
	Title        string      `json:"title"`
	Slug         string      `json:"slug"`
	Content      string      `json:"content,omitempty"`
	Excerpt      string      `json:"excerpt,omitempty"`
	CoverURL     string      `json:"cover_url,omitempty"`
	Published    bool        `json:"published"`
	Games        []Game      `json:"games,omitempty"`
	LikeCount    int64       `json:"like_count"`
	CommentCount int64       `json:"comment_count"`
	Liked        bool        `json:"liked"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
