package repository

import (
	"github.com/thinkribbon/backend/internal/domain"
	"gorm.io/gorm"
)

// MentionRepository persists the mention list of content items so a
// later save can diff against it
type MentionRepository struct {
	db *gorm.DB
}

// NewMentionRepository creates a new MentionRepository
func NewMentionRepository(db *gorm.DB) *MentionRepository {
	return &MentionRepository{db: db}
}

// ListByTarget returns the stored mention list of a content item
func (r *MentionRepository) ListByTarget(targetType domain.TargetType, targetID uint) ([]domain.ContentMention, error) {
	var mentions []domain.ContentMention
	err := r.db.Where("target_type = ? AND target_id = ?", targetType, targetID).
		Find(&mentions).Error
	return mentions, err
}

// Replace swaps the stored mention list of a content item
func (r *MentionRepository) Replace(targetType domain.TargetType, targetID uint, mentions []domain.Mention) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_type = ? AND target_id = ?", targetType, targetID).
			Delete(&domain.ContentMention{}).Error; err != nil {
			return err
		}
		for _, m := range mentions {
			row := domain.ContentMention{
				TargetType:  targetType,
				TargetID:    targetID,
				Kind:        m.Kind,
				SubjectID:   m.SubjectID,
				Slug:        m.Slug,
				DisplayText: m.DisplayText,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
