package repository

import (
	"github.com/thinkribbon/backend/internal/domain"
	"gorm.io/gorm"
)

// FollowRepository handles the social graph edges
type FollowRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new FollowRepository
func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// Exists reports whether follower already follows followed
func (r *FollowRepository) Exists(followerID, followedID uint) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}

// Create inserts a follow edge
func (r *FollowRepository) Create(followerID, followedID uint) error {
	return r.db.Create(&domain.Follow{
		FollowerID: followerID,
		FollowedID: followedID,
	}).Error
}

// Delete removes a follow edge
func (r *FollowRepository) Delete(followerID, followedID uint) error {
	return r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&domain.Follow{}).Error
}

// Counts returns follower/following totals for a user
func (r *FollowRepository) Counts(userID uint) (*domain.FollowCounts, error) {
	var counts domain.FollowCounts
	if err := r.db.Model(&domain.Follow{}).
		Where("followed_id = ?", userID).
		Count(&counts.Followers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&domain.Follow{}).
		Where("follower_id = ?", userID).
		Count(&counts.Following).Error; err != nil {
		return nil, err
	}
	return &counts, nil
}

// FollowingIDs returns the ids of users the follower follows
func (r *FollowRepository) FollowingIDs(followerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&domain.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("followed_id", &ids).Error
	return ids, err
}
