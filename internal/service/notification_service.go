package service

import (
	"time"

	"github.com/thinkribbon/backend/internal/domain"
	"github.com/thinkribbon/backend/pkg/logger"
)

// NotificationRepo is the persistence surface the notification service
// needs
type NotificationRepo interface {
	Create(notification *domain.Notification) error
	GetUnreadCount(userID uint) (int64, error)
	GetList(userID uint, offset, limit int) ([]domain.Notification, int64, error)
	MarkAllViewed(userID uint, now time.Time) error
	DeleteExpired(now time.Time) (int64, error)
}

// UserFinder resolves actor summaries for the notification list
type UserFinder interface {
	FindByIDs(ids []uint) (map[uint]domain.User, error)
}

// Notifier is the fan-out entry point used by the like, comment,
// mention and follow paths
type Notifier interface {
	Notify(recipientID, actorID uint, ntype string, targetType domain.TargetType, targetID uint) error
}

// NotificationService handles notification fan-out, listing and expiry
type NotificationService struct {
	repo  NotificationRepo
	users UserFinder
	now   func() time.Time
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(repo NotificationRepo, users UserFinder) *NotificationService {
	return &NotificationService{repo: repo, users: users, now: time.Now}
}

// Notify writes one notification row. No-op when the actor is the
// recipient, or when the recipient is unknown (target deleted in a
// race). No de-duplication: repeated like transitions each produce an
// independent row.
func (s *NotificationService) Notify(recipientID, actorID uint, ntype string, targetType domain.TargetType, targetID uint) error {
	if recipientID == 0 || recipientID == actorID {
		return nil
	}
	return s.repo.Create(&domain.Notification{
		UserID:     recipientID,
		ActorID:    actorID,
		Type:       ntype,
		TargetType: targetType,
		TargetID:   targetID,
	})
}

// GetUnreadCount returns the unread notification count for a user
func (s *NotificationService) GetUnreadCount(userID uint) (*domain.NotificationSummaryResponse, error) {
	count, err := s.repo.GetUnreadCount(userID)
	if err != nil {
		return nil, err
	}
	return &domain.NotificationSummaryResponse{TotalUnread: count}, nil
}

// GetList returns paginated notifications. Opening the list while
// unread rows exist stamps viewed_at on all of them, once.
func (s *NotificationService) GetList(userID uint, page, limit int) (*domain.NotificationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	unread, err := s.repo.GetUnreadCount(userID)
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * limit
	notifications, total, err := s.repo.GetList(userID, offset, limit)
	if err != nil {
		return nil, err
	}

	actorIDs := make([]uint, 0, len(notifications))
	for _, n := range notifications {
		actorIDs = append(actorIDs, n.ActorID)
	}
	actors, err := s.users.FindByIDs(actorIDs)
	if err != nil {
		return nil, err
	}

	items := make([]domain.NotificationItem, len(notifications))
	for i, n := range notifications {
		items[i] = domain.NotificationItem{
			ID:         n.ID,
			Actor:      actors[n.ActorID].ToSummary(),
			Type:       n.Type,
			TargetType: n.TargetType,
			TargetID:   n.TargetID,
			Viewed:     n.ViewedAt != nil,
			CreatedAt:  n.CreatedAt,
		}
	}

	if unread > 0 {
		if err := s.repo.MarkAllViewed(userID, s.now()); err != nil {
			return nil, err
		}
	}

	return &domain.NotificationListResponse{
		Items:       items,
		Total:       total,
		UnreadCount: unread,
		Page:        page,
		Limit:       limit,
	}, nil
}

// RunExpirySweep deletes notifications viewed more than 24h ago and
// unviewed notifications older than 30 days. Invoked by the daily
// scheduler.
func (s *NotificationService) RunExpirySweep() error {
	deleted, err := s.repo.DeleteExpired(s.now())
	if err != nil {
		return err
	}
	logger.Get().Info().
		Int64("deleted", deleted).
		Msg("notification expiry sweep completed")
	return nil
}
