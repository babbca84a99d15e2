package repository

import (
	"github.com/thinkribbon/backend/internal/domain"
	"gorm.io/gorm"
)

// LikeRepository handles like data operations
type LikeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Has reports whether the user already likes the target
func (r *LikeRepository) Has(userID uint, targetType domain.TargetType, targetID uint) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Like{}).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).
		Count(&count).Error
	return count > 0, err
}

// Add inserts a like row. The composite unique index rejects a
// concurrent duplicate.
func (r *LikeRepository) Add(userID uint, targetType domain.TargetType, targetID uint) error {
	return r.db.Create(&domain.Like{
		UserID:     userID,
		TargetType: targetType,
		TargetID:   targetID,
	}).Error
}

// Remove deletes the user's like on a target
func (r *LikeRepository) Remove(userID uint, targetType domain.TargetType, targetID uint) error {
	return r.db.Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).
		Delete(&domain.Like{}).Error
}

// CountByTarget returns the like count for a target
func (r *LikeRepository) CountByTarget(targetType domain.TargetType, targetID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Like{}).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Count(&count).Error
	return count, err
}

// CountByTargets returns like counts for a batch of targets of one
// kind, keyed by target id
func (r *LikeRepository) CountByTargets(targetType domain.TargetType, targetIDs []uint) (map[uint]int64, error) {
	result := make(map[uint]int64, len(targetIDs))
	if len(targetIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		TargetID uint
		Count    int64
	}
	err := r.db.Model(&domain.Like{}).
		Select("target_id, COUNT(*) as count").
		Where("target_type = ? AND target_id IN ?", targetType, targetIDs).
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

// LikedSet returns which of the given targets the user likes
func (r *LikeRepository) LikedSet(userID uint, targetType domain.TargetType, targetIDs []uint) (map[uint]bool, error) {
	result := make(map[uint]bool, len(targetIDs))
	if userID == 0 || len(targetIDs) == 0 {
		return result, nil
	}
	var ids []uint
	err := r.db.Model(&domain.Like{}).
		Where("user_id = ? AND target_type = ? AND target_id IN ?", userID, targetType, targetIDs).
		Pluck("target_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}
