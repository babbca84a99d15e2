package domain

import "time"

// Upload records a completed file upload at the storage provider.
// FileKey is extracted from the URL and matched against the provider's
// listing API by the orphan sweep.
type Upload struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	URL       string    `gorm:"size:512" json:"url"`
	FileKey   string    `gorm:"uniqueIndex;size:255" json:"file_key"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name
func (Upload) TableName() string {
	return "tr_uploads"
}

// RecordUploadRequest request body posted on upload completion
type RecordUploadRequest struct {
	URL string `json:"url" binding:"required"`
}
