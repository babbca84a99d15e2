package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
)

// --- Mock DraftRepo ---

type mockDraftRepo struct {
	mock.Mock
}

func (m *mockDraftRepo) CountByUserAndKind(userID uint, kind domain.DraftKind) (int64, error) {
	args := m.Called(userID, kind)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDraftRepo) Create(draft *domain.Draft) error {
	return m.Called(draft).Error(0)
}

func (m *mockDraftRepo) FindByID(id uint) (*domain.Draft, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Draft), args.Error(1)
}

func (m *mockDraftRepo) ListByUser(userID uint, kind domain.DraftKind) ([]domain.Draft, error) {
	args := m.Called(userID, kind)
	return args.Get(0).([]domain.Draft), args.Error(1)
}

func (m *mockDraftRepo) Update(draft *domain.Draft) error {
	return m.Called(draft).Error(0)
}

func (m *mockDraftRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func TestDraftService_Create_BelowCap(t *testing.T) {
	repo := new(mockDraftRepo)
	svc := NewDraftService(repo)

	repo.On("CountByUserAndKind", uint(1), domain.DraftArticle).Return(int64(9), nil)
	repo.On("Create", mock.Anything).Return(nil)

	draft, err := svc.Create(&domain.User{ID: 1}, &domain.SaveDraftRequest{Kind: domain.DraftArticle, Title: "WIP"})

	assert.NoError(t, err)
	assert.Equal(t, domain.DraftArticle, draft.Kind)
}

func TestDraftService_Create_RejectsAtCap(t *testing.T) {
	repo := new(mockDraftRepo)
	svc := NewDraftService(repo)

	repo.On("CountByUserAndKind", uint(1), domain.DraftReview).Return(int64(domain.MaxDraftsPerUser), nil)

	_, err := svc.Create(&domain.User{ID: 1}, &domain.SaveDraftRequest{Kind: domain.DraftReview})

	assert.ErrorIs(t, err, common.ErrDraftLimit)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestDraftService_Create_CapIsPerKind(t *testing.T) {
	repo := new(mockDraftRepo)
	svc := NewDraftService(repo)

	// full on reviews, room on articles
	repo.On("CountByUserAndKind", uint(1), domain.DraftArticle).Return(int64(0), nil)
	repo.On("Create", mock.Anything).Return(nil)

	_, err := svc.Create(&domain.User{ID: 1}, &domain.SaveDraftRequest{Kind: domain.DraftArticle})
	assert.NoError(t, err)
}

func TestDraftService_Create_RejectsUnknownKind(t *testing.T) {
	svc := NewDraftService(new(mockDraftRepo))

	_, err := svc.Create(&domain.User{ID: 1}, &domain.SaveDraftRequest{Kind: "poem"})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestDraftService_Update_OwnershipEnforced(t *testing.T) {
	repo := new(mockDraftRepo)
	svc := NewDraftService(repo)

	repo.On("FindByID", uint(4)).Return(&domain.Draft{ID: 4, UserID: 2}, nil)

	_, err := svc.Update(&domain.User{ID: 1}, 4, &domain.SaveDraftRequest{Title: "mine now"})
	assert.ErrorIs(t, err, common.ErrForbidden)
}
