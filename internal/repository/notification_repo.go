package repository

import (
	"time"

	"github.com/thinkribbon/backend/internal/domain"
	"gorm.io/gorm"
)

// NotificationRepository handles notification data operations
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create inserts a new notification
func (r *NotificationRepository) Create(notification *domain.Notification) error {
	return r.db.Create(notification).Error
}

// GetUnreadCount returns the number of unviewed notifications for a
// recipient
func (r *NotificationRepository) GetUnreadCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Notification{}).
		Where("user_id = ? AND viewed_at IS NULL", userID).
		Count(&count).Error
	return count, err
}

// GetList returns paginated notifications for a recipient, newest
// first
func (r *NotificationRepository) GetList(userID uint, offset, limit int) ([]domain.Notification, int64, error) {
	var notifications []domain.Notification
	var total int64

	if err := r.db.Model(&domain.Notification{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&notifications).Error; err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

// MarkAllViewed stamps viewed_at on the recipient's unviewed rows
func (r *NotificationRepository) MarkAllViewed(userID uint, now time.Time) error {
	return r.db.Model(&domain.Notification{}).
		Where("user_id = ? AND viewed_at IS NULL", userID).
		Update("viewed_at", now).Error
}

// DeleteExpired runs the daily expiry sweep: delete rows viewed more
// than 24h ago, or unviewed rows older than 30 days. Full scan by
// design; a scaling limit, not a correctness one.
func (r *NotificationRepository) DeleteExpired(now time.Time) (int64, error) {
	viewedCutoff := now.Add(-domain.NotificationViewedTTL)
	unviewedCutoff := now.Add(-domain.NotificationUnviewedTTL)

	result := r.db.
		Where("(viewed_at IS NOT NULL AND viewed_at < ?) OR (viewed_at IS NULL AND created_at < ?)",
			viewedCutoff, unviewedCutoff).
		Delete(&domain.Notification{})
	return result.RowsAffected, result.Error
}
