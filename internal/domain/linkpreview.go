package domain

import "time"

// LinkPreview is the scraped Open Graph card for a post's link. At
// most one preview per post; insert-if-absent.
type LinkPreview struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID      uint      `gorm:"uniqueIndex" json:"post_id"`
	URL         string    `gorm:"size:512" json:"url"`
	Title       string    `gorm:"size:512" json:"title,omitempty"`
	Description string    `gorm:"size:1024" json:"description,omitempty"`
	ImageURL    string    `gorm:"size:512" json:"image_url,omitempty"`
	SiteName    string    `gorm:"size:255" json:"site_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the table name
func (LinkPreview) TableName() string {
	return "tr_link_previews"
}
