package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
)

// --- Mock LikeRepo ---

type mockLikeRepo struct {
	mock.Mock
}

func (m *mockLikeRepo) Has(userID uint, targetType domain.TargetType, targetID uint) (bool, error) {
	args := m.Called(userID, targetType, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *mockLikeRepo) Add(userID uint, targetType domain.TargetType, targetID uint) error {
	return m.Called(userID, targetType, targetID).Error(0)
}

func (m *mockLikeRepo) Remove(userID uint, targetType domain.TargetType, targetID uint) error {
	return m.Called(userID, targetType, targetID).Error(0)
}

func (m *mockLikeRepo) CountByTarget(targetType domain.TargetType, targetID uint) (int64, error) {
	args := m.Called(targetType, targetID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock OwnerResolver ---

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) ResolveOwner(targetType domain.TargetType, targetID uint) (uint, error) {
	args := m.Called(targetType, targetID)
	return args.Get(0).(uint), args.Error(1)
}

// --- Mock Notifier ---

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(recipientID, actorID uint, ntype string, targetType domain.TargetType, targetID uint) error {
	return m.Called(recipientID, actorID, ntype, targetType, targetID).Error(0)
}

func TestLikeService_Toggle_AddNotifiesOwner(t *testing.T) {
	repo := new(mockLikeRepo)
	resolver := new(mockResolver)
	notifier := new(mockNotifier)
	svc := NewLikeService(repo, resolver, notifier)

	actor := &domain.User{ID: 1}
	repo.On("Has", uint(1), domain.TargetPost, uint(10)).Return(false, nil)
	repo.On("Add", uint(1), domain.TargetPost, uint(10)).Return(nil)
	resolver.On("ResolveOwner", domain.TargetPost, uint(10)).Return(uint(2), nil)
	notifier.On("Notify", uint(2), uint(1), domain.NotifyLikePost, domain.TargetPost, uint(10)).Return(nil)
	repo.On("CountByTarget", domain.TargetPost, uint(10)).Return(int64(1), nil)

	result, err := svc.Toggle(actor, domain.TargetPost, 10)

	assert.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, int64(1), result.LikeCount)
	notifier.AssertExpectations(t)
}

func TestLikeService_Toggle_RemoveSkipsNotification(t *testing.T) {
	repo := new(mockLikeRepo)
	resolver := new(mockResolver)
	notifier := new(mockNotifier)
	svc := NewLikeService(repo, resolver, notifier)

	actor := &domain.User{ID: 1}
	repo.On("Has", uint(1), domain.TargetPost, uint(10)).Return(true, nil)
	repo.On("Remove", uint(1), domain.TargetPost, uint(10)).Return(nil)
	repo.On("CountByTarget", domain.TargetPost, uint(10)).Return(int64(0), nil)

	result, err := svc.Toggle(actor, domain.TargetPost, 10)

	assert.NoError(t, err)
	assert.False(t, result.Liked)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	resolver.AssertNotCalled(t, "ResolveOwner", mock.Anything, mock.Anything)
}

func TestLikeService_Toggle_SelfLikeRecordedWithoutNotification(t *testing.T) {
	repo := new(mockLikeRepo)
	resolver := new(mockResolver)
	// liking own content: the Notify no-op path, so the underlying
	// repo must never see a Create
	notifRepo := new(mockNotificationRepo)
	svc := NewLikeService(repo, resolver, NewNotificationService(notifRepo, nil))

	actor := &domain.User{ID: 1}
	repo.On("Has", uint(1), domain.TargetReview, uint(7)).Return(false, nil)
	repo.On("Add", uint(1), domain.TargetReview, uint(7)).Return(nil)
	resolver.On("ResolveOwner", domain.TargetReview, uint(7)).Return(uint(1), nil)
	repo.On("CountByTarget", domain.TargetReview, uint(7)).Return(int64(1), nil)

	result, err := svc.Toggle(actor, domain.TargetReview, 7)

	assert.NoError(t, err)
	assert.True(t, result.Liked)
	notifRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLikeService_Toggle_MissingTargetStillLikes(t *testing.T) {
	repo := new(mockLikeRepo)
	resolver := new(mockResolver)
	notifRepo := new(mockNotificationRepo)
	svc := NewLikeService(repo, resolver, NewNotificationService(notifRepo, nil))

	actor := &domain.User{ID: 1}
	repo.On("Has", uint(1), domain.TargetPost, uint(99)).Return(false, nil)
	repo.On("Add", uint(1), domain.TargetPost, uint(99)).Return(nil)
	// target deleted in a race: resolver reports no owner
	resolver.On("ResolveOwner", domain.TargetPost, uint(99)).Return(uint(0), nil)
	repo.On("CountByTarget", domain.TargetPost, uint(99)).Return(int64(1), nil)

	result, err := svc.Toggle(actor, domain.TargetPost, 99)

	assert.NoError(t, err)
	assert.True(t, result.Liked)
	notifRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLikeService_Toggle_Validation(t *testing.T) {
	svc := NewLikeService(new(mockLikeRepo), new(mockResolver), new(mockNotifier))

	_, err := svc.Toggle(nil, domain.TargetPost, 1)
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = svc.Toggle(&domain.User{ID: 1}, "banner", 1)
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = svc.Toggle(&domain.User{ID: 1}, domain.TargetPost, 0)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
