package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/thinkribbon/backend/internal/domain"
)

func seedNotification(t *testing.T, repo *NotificationRepository, userID uint, createdAt time.Time, viewedAt *time.Time) uint {
	t.Helper()
	n := &domain.Notification{
		UserID:     userID,
		ActorID:    99,
		Type:       domain.NotifyLikePost,
		TargetType: domain.TargetPost,
		TargetID:   1,
	}
	if err := repo.Create(n); err != nil {
		t.Fatalf("Failed to seed notification: %v", err)
	}
	// set timestamps directly, Create stamps CreatedAt itself
	if err := repo.db.Model(&domain.Notification{}).Where("id = ?", n.ID).
		Updates(map[string]interface{}{"created_at": createdAt, "viewed_at": viewedAt}).Error; err != nil {
		t.Fatalf("Failed to backdate notification: %v", err)
	}
	return n.ID
}

func TestNotificationRepository_DeleteExpired_ViewedBoundary(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	viewed25hAgo := now.Add(-25 * time.Hour)
	viewed23hAgo := now.Add(-23 * time.Hour)
	created := now.Add(-48 * time.Hour)

	expired := seedNotification(t, repo, 1, created, &viewed25hAgo)
	kept := seedNotification(t, repo, 1, created, &viewed23hAgo)

	deleted, err := repo.DeleteExpired(now)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var remaining []domain.Notification
	assert.NoError(t, db.Find(&remaining).Error)
	assert.Len(t, remaining, 1)
	assert.Equal(t, kept, remaining[0].ID)
	assert.NotEqual(t, expired, remaining[0].ID)
}

func TestNotificationRepository_DeleteExpired_UnviewedBoundary(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	created31dAgo := now.Add(-31 * 24 * time.Hour)
	created29dAgo := now.Add(-29 * 24 * time.Hour)

	seedNotification(t, repo, 1, created31dAgo, nil)
	kept := seedNotification(t, repo, 1, created29dAgo, nil)

	deleted, err := repo.DeleteExpired(now)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var remaining []domain.Notification
	assert.NoError(t, db.Find(&remaining).Error)
	assert.Len(t, remaining, 1)
	assert.Equal(t, kept, remaining[0].ID)
}

func TestNotificationRepository_DeleteExpired_RecentViewedOutlivesOldUnviewed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// viewed an hour ago but created 40 days back: the viewed clock
	// governs once viewed_at is set
	viewedRecently := now.Add(-1 * time.Hour)
	kept := seedNotification(t, repo, 1, now.Add(-40*24*time.Hour), &viewedRecently)

	deleted, err := repo.DeleteExpired(now)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), deleted)

	var remaining []domain.Notification
	assert.NoError(t, db.Find(&remaining).Error)
	assert.Len(t, remaining, 1)
	assert.Equal(t, kept, remaining[0].ID)
}

func TestNotificationRepository_MarkAllViewed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	seedNotification(t, repo, 1, now.Add(-time.Hour), nil)
	seedNotification(t, repo, 1, now.Add(-2*time.Hour), nil)
	seedNotification(t, repo, 2, now.Add(-time.Hour), nil)

	count, err := repo.GetUnreadCount(1)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	assert.NoError(t, repo.MarkAllViewed(1, now))

	count, err = repo.GetUnreadCount(1)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// other users' rows stay untouched
	count, err = repo.GetUnreadCount(2)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestNotificationRepository_GetList_Paginates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		seedNotification(t, repo, 1, now.Add(-time.Duration(i)*time.Hour), nil)
	}

	items, total, err := repo.GetList(1, 0, 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, items, 3)

	items, _, err = repo.GetList(1, 3, 3)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
}
