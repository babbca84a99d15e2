package repository

import (
	"errors"

	"github.com/thinkribbon/backend/internal/domain"
	"gorm.io/gorm"
)

// DraftRepository handles draft data operations
type DraftRepository struct {
	db *gorm.DB
}

// NewDraftRepository creates a new DraftRepository
func NewDraftRepository(db *gorm.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

// CountByUserAndKind returns how many drafts of a kind the user holds
func (r *DraftRepository) CountByUserAndKind(userID uint, kind domain.DraftKind) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Draft{}).
		Where("user_id = ? AND kind = ?", userID, kind).
		Count(&count).Error
	return count, err
}

// Create inserts a new draft
func (r *DraftRepository) Create(draft *domain.Draft) error {
	return r.db.Create(draft).Error
}

// FindByID returns a draft by id, nil when missing
func (r *DraftRepository) FindByID(id uint) (*domain.Draft, error) {
	var draft domain.Draft
	err := r.db.First(&draft, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &draft, nil
}

// ListByUser returns a user's drafts of a kind, most recently updated
// first
func (r *DraftRepository) ListByUser(userID uint, kind domain.DraftKind) ([]domain.Draft, error) {
	var drafts []domain.Draft
	err := r.db.Where("user_id = ? AND kind = ?", userID, kind).
		Order("updated_at DESC").
		Find(&drafts).Error
	return drafts, err
}

// Update persists draft changes
func (r *DraftRepository) Update(draft *domain.Draft) error {
	return r.db.Save(draft).Error
}

// Delete removes a draft
func (r *DraftRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Draft{}, id).Error
}
