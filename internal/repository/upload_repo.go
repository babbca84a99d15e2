package repository

import (
	"github.com/thinkribbon/backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UploadRepository handles upload record data
type UploadRepository struct {
	db *gorm.DB
}

// NewUploadRepository creates a new UploadRepository
func NewUploadRepository(db *gorm.DB) *UploadRepository {
	return &UploadRepository{db: db}
}

// Create records a completed upload; replays of the same file key are
// ignored
func (r *UploadRepository) Create(upload *domain.Upload) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "file_key"}},
		DoNothing: true,
	}).Create(upload).Error
}

// AllFileKeys returns every recorded file key
func (r *UploadRepository) AllFileKeys() ([]string, error) {
	var keys []string
	err := r.db.Model(&domain.Upload{}).Pluck("file_key", &keys).Error
	return keys, err
}

// DeleteByFileKey removes the record of a provider-side deleted file
func (r *UploadRepository) DeleteByFileKey(fileKey string) error {
	return r.db.Where("file_key = ?", fileKey).Delete(&domain.Upload{}).Error
}
