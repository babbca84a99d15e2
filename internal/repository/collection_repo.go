package repository

import (
	"errors"

	"github.com/thinkribbon/backend/internal/domain"
	"gorm.io/gorm"
)

// CollectionRepository handles collection entry data
type CollectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository creates a new CollectionRepository
func NewCollectionRepository(db *gorm.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// FindByUserAndGame returns the user's single entry for a game, nil
// when absent
func (r *CollectionRepository) FindByUserAndGame(userID, gameID uint) (*domain.CollectionEntry, error) {
	var entry domain.CollectionEntry
	err := r.db.Where("user_id = ? AND game_id = ?", userID, gameID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// FindByID returns an entry by id, nil when missing
func (r *CollectionRepository) FindByID(id uint) (*domain.CollectionEntry, error) {
	var entry domain.CollectionEntry
	err := r.db.First(&entry, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// Create inserts a new entry
func (r *CollectionRepository) Create(entry *domain.CollectionEntry) error {
	return r.db.Create(entry).Error
}

// Update persists entry changes
func (r *CollectionRepository) Update(entry *domain.CollectionEntry) error {
	return r.db.Save(entry).Error
}

// ListByUser returns a user's collection, most recently updated first
func (r *CollectionRepository) ListByUser(userID uint, offset, limit int) ([]domain.CollectionEntry, int64, error) {
	var entries []domain.CollectionEntry
	var total int64

	if err := r.db.Model(&domain.CollectionEntry{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Where("user_id = ?", userID).
		Order("updated_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// Delete removes an entry
func (r *CollectionRepository) Delete(id uint) error {
	return r.db.Delete(&domain.CollectionEntry{}, id).Error
}
