package repository

import (
	"errors"

	"github.com/thinkribbon/backend/internal/domain"
	"gorm.io/gorm"
)

// CommentRepository handles comment data operations
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a new comment
func (r *CommentRepository) Create(comment *domain.Comment) error {
	return r.db.Create(comment).Error
}

// FindByID returns a comment by id, nil when missing
func (r *CommentRepository) FindByID(id uint) (*domain.Comment, error) {
	var comment domain.Comment
	err := r.db.First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// ListByTarget returns all comments on a content item, oldest first.
// Replies are included; the service nests them one level deep.
func (r *CommentRepository) ListByTarget(targetType domain.TargetType, targetID uint) ([]domain.Comment, error) {
	var comments []domain.Comment
	err := r.db.Where("target_type = ? AND target_id = ?", targetType, targetID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// CountByTarget returns the number of comments on a content item,
// soft-deleted markers excluded
func (r *CommentRepository) CountByTarget(targetType domain.TargetType, targetID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Comment{}).
		Where("target_type = ? AND target_id = ? AND deleted = ?", targetType, targetID, false).
		Count(&count).Error
	return count, err
}

// CountByTargets returns comment counts for a batch of targets of one
// kind, keyed by target id
func (r *CommentRepository) CountByTargets(targetType domain.TargetType, targetIDs []uint) (map[uint]int64, error) {
	result := make(map[uint]int64, len(targetIDs))
	if len(targetIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		TargetID uint
		Count    int64
	}
	err := r.db.Model(&domain.Comment{}).
		Select("target_id, COUNT(*) as count").
		Where("target_type = ? AND target_id IN ? AND deleted = ?", targetType, targetIDs, false).
		Group("target_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.TargetID] = row.Count
	}
	return result, nil
}

// HasReplies reports whether any reply references the comment
func (r *CommentRepository) HasReplies(commentID uint) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Comment{}).
		Where("parent_id = ?", commentID).
		Count(&count).Error
	return count > 0, err
}

// Update persists comment changes
func (r *CommentRepository) Update(comment *domain.Comment) error {
	return r.db.Save(comment).Error
}

// SoftDelete marks a comment deleted, keeping the row for its replies
func (r *CommentRepository) SoftDelete(id uint) error {
	return r.db.Model(&domain.Comment{}).
		Where("id = ?", id).
		Update("deleted", true).Error
}

// HardDelete removes a comment row and its likes
func (r *CommentRepository) HardDelete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_type = ? AND target_id = ?", domain.TargetComment, id).
			Delete(&domain.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Comment{}, id).Error
	})
}
