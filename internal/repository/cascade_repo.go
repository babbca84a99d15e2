package repository

import (
	"github.com/thinkribbon/backend/internal/domain"
	"gorm.io/gorm"
)

// CascadeRepository removes a top-level content item together with
// everything hanging off it: revisions and game joins (articles),
// mentions, likes, comments, the comments' replies, and likes on all
// of those. The whole cascade runs in one transaction so a mid-cascade
// failure leaves no orphaned rows.
type CascadeRepository struct {
	db *gorm.DB
}

// NewCascadeRepository creates a new CascadeRepository
func NewCascadeRepository(db *gorm.DB) *CascadeRepository {
	return &CascadeRepository{db: db}
}

// DeleteContent deletes a post, article or review with its dependents
func (r *CascadeRepository) DeleteContent(targetType domain.TargetType, targetID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Comments on the item, replies included (replies share the
		// same target).
		var commentIDs []uint
		if err := tx.Model(&domain.Comment{}).
			Where("target_type = ? AND target_id = ?", targetType, targetID).
			Pluck("id", &commentIDs).Error; err != nil {
			return err
		}

		if len(commentIDs) > 0 {
			if err := tx.Where("target_type = ? AND target_id IN ?", domain.TargetComment, commentIDs).
				Delete(&domain.Like{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", commentIDs).
				Delete(&domain.Comment{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("target_type = ? AND target_id = ?", targetType, targetID).
			Delete(&domain.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("target_type = ? AND target_id = ?", targetType, targetID).
			Delete(&domain.ContentMention{}).Error; err != nil {
			return err
		}

		switch targetType {
		case domain.TargetPost:
			if err := tx.Where("post_id = ?", targetID).
				Delete(&domain.LinkPreview{}).Error; err != nil {
				return err
			}
			return tx.Delete(&domain.Post{}, targetID).Error
		case domain.TargetArticle:
			if err := tx.Where("article_id = ?", targetID).
				Delete(&domain.ArticleRevision{}).Error; err != nil {
				return err
			}
			if err := tx.Where("article_id = ?", targetID).
				Delete(&domain.ArticleGame{}).Error; err != nil {
				return err
			}
			return tx.Delete(&domain.Article{}, targetID).Error
		case domain.TargetReview:
			return tx.Delete(&domain.Review{}, targetID).Error
		}
		return nil
	})
}
