package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
)

// --- Mock ReviewRepo ---

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) Create(review *domain.Review) error {
	args := m.Called(review)
	review.ID = 100
	return args.Error(0)
}

func (m *mockReviewRepo) FindByID(id uint) (*domain.Review, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *mockReviewRepo) FindByAuthorAndGame(authorID, gameID uint) (*domain.Review, error) {
	args := m.Called(authorID, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *mockReviewRepo) Update(review *domain.Review) error {
	return m.Called(review).Error(0)
}

func (m *mockReviewRepo) ListByGame(gameID uint, offset, limit int) ([]domain.Review, int64, error) {
	args := m.Called(gameID, offset, limit)
	return args.Get(0).([]domain.Review), args.Get(1).(int64), args.Error(2)
}

func (m *mockReviewRepo) AverageRating(gameID uint) (*float64, error) {
	args := m.Called(gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}

// --- Mock ContentCascader ---

type mockCascader struct {
	mock.Mock
}

func (m *mockCascader) DeleteContent(targetType domain.TargetType, targetID uint) error {
	return m.Called(targetType, targetID).Error(0)
}

func newReviewService(repo *mockReviewRepo, cascade *mockCascader) *ReviewService {
	mentions := NewMentionService(new(mockMentionRepo), new(mockNotifier))
	return NewReviewService(repo, cascade, mentions)
}

func TestReviewService_Create_RejectsSecondReviewForSameGame(t *testing.T) {
	repo := new(mockReviewRepo)
	svc := newReviewService(repo, new(mockCascader))

	existing := &domain.Review{ID: 5, AuthorID: 1, GameID: 3}
	repo.On("FindByAuthorAndGame", uint(1), uint(3)).Return(existing, nil)

	_, err := svc.Create(&domain.User{ID: 1}, &domain.CreateReviewRequest{GameID: 3, Rating: 4, Content: "again"})

	assert.ErrorIs(t, err, common.ErrDuplicateReview)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestReviewService_Create_RejectsOutOfRangeRating(t *testing.T) {
	svc := newReviewService(new(mockReviewRepo), new(mockCascader))

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(&domain.User{ID: 1}, &domain.CreateReviewRequest{GameID: 3, Rating: rating})
		assert.ErrorIs(t, err, common.ErrInvalidRating, "rating %d", rating)
	}
}

func TestReviewService_Create_Succeeds(t *testing.T) {
	repo := new(mockReviewRepo)
	mentionRepo := new(mockMentionRepo)
	svc := NewReviewService(repo, new(mockCascader), NewMentionService(mentionRepo, new(mockNotifier)))

	repo.On("FindByAuthorAndGame", uint(1), uint(3)).Return(nil, nil)
	repo.On("Create", mock.Anything).Return(nil)
	mentionRepo.On("ListByTarget", domain.TargetReview, uint(100)).Return([]domain.ContentMention{}, nil)
	mentionRepo.On("Replace", domain.TargetReview, uint(100), mock.Anything).Return(nil)

	review, err := svc.Create(&domain.User{ID: 1}, &domain.CreateReviewRequest{GameID: 3, Rating: 5, Content: "masterpiece"})

	assert.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	assert.True(t, review.Published)
}

func TestReviewService_Update_AllowsEditingOwnReview(t *testing.T) {
	repo := new(mockReviewRepo)
	mentionRepo := new(mockMentionRepo)
	svc := NewReviewService(repo, new(mockCascader), NewMentionService(mentionRepo, new(mockNotifier)))

	existing := &domain.Review{ID: 5, AuthorID: 1, GameID: 3, Rating: 3, Published: true}
	repo.On("FindByID", uint(5)).Return(existing, nil)
	repo.On("Update", mock.Anything).Return(nil)
	mentionRepo.On("ListByTarget", domain.TargetReview, uint(5)).Return([]domain.ContentMention{}, nil)
	mentionRepo.On("Replace", domain.TargetReview, uint(5), mock.Anything).Return(nil)

	review, err := svc.Update(&domain.User{ID: 1}, 5, &domain.UpdateReviewRequest{Rating: 5, Content: "grew on me"})

	assert.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
}

func TestReviewService_Delete_Cascades(t *testing.T) {
	repo := new(mockReviewRepo)
	cascade := new(mockCascader)
	svc := newReviewService(repo, cascade)

	repo.On("FindByID", uint(5)).Return(&domain.Review{ID: 5, AuthorID: 1}, nil)
	cascade.On("DeleteContent", domain.TargetReview, uint(5)).Return(nil)

	assert.NoError(t, svc.Delete(&domain.User{ID: 1}, 5))
	cascade.AssertExpectations(t)
}
