package repository

import (
	"errors"

	"github.com/thinkribbon/backend/internal/domain"
	"gorm.io/gorm"
)

// QuestLogRepository handles quest-log entry data
type QuestLogRepository struct {
	db *gorm.DB
}

// NewQuestLogRepository creates a new QuestLogRepository
func NewQuestLogRepository(db *gorm.DB) *QuestLogRepository {
	return &QuestLogRepository{db: db}
}

// Create inserts a new entry
func (r *QuestLogRepository) Create(entry *domain.QuestLogEntry) error {
	return r.db.Create(entry).Error
}

// FindByID returns an entry by id, nil when missing
func (r *QuestLogRepository) FindByID(id uint) (*domain.QuestLogEntry, error) {
	var entry domain.QuestLogEntry
	err := r.db.First(&entry, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// FindLatestByUserAndGame returns the user's most recent entry for a
// game, nil when none exists. Used by the quick-rate shortcut.
func (r *QuestLogRepository) FindLatestByUserAndGame(userID, gameID uint) (*domain.QuestLogEntry, error) {
	var entry domain.QuestLogEntry
	err := r.db.Where("user_id = ? AND game_id = ?", userID, gameID).
		Order("created_at DESC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// ListByUser returns a user's entries, most recently updated first
func (r *QuestLogRepository) ListByUser(userID uint, offset, limit int) ([]domain.QuestLogEntry, int64, error) {
	var entries []domain.QuestLogEntry
	var total int64

	if err := r.db.Model(&domain.QuestLogEntry{}).
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

// ListNowPlaying returns a user's entries currently in playing status
func (r *QuestLogRepository) ListNowPlaying(userID uint) ([]domain.QuestLogEntry, error) {
	var entries []domain.QuestLogEntry
	err := r.db.Where("user_id = ? AND status = ?", userID, domain.StatusPlaying).
		Order("updated_at DESC").
		Find(&entries).Error
	return entries, err
}

// Update persists entry changes
func (r *QuestLogRepository) Update(entry *domain.QuestLogEntry) error {
	return r.db.Save(entry).Error
}

// Delete removes an entry
func (r *QuestLogRepository) Delete(id uint) error {
	return r.db.Delete(&domain.QuestLogEntry{}, id).Error
}
