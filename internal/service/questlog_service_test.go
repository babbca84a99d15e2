package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
)

// --- Mock QuestLogRepo ---

type mockQuestLogRepo struct {
	mock.Mock
}

func (m *mockQuestLogRepo) Create(entry *domain.QuestLogEntry) error {
	args := m.Called(entry)
	entry.ID = 100
	return args.Error(0)
}

func (m *mockQuestLogRepo) FindByID(id uint) (*domain.QuestLogEntry, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuestLogEntry), args.Error(1)
}

func (m *mockQuestLogRepo) FindLatestByUserAndGame(userID, gameID uint) (*domain.QuestLogEntry, error) {
	args := m.Called(userID, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuestLogEntry), args.Error(1)
}

func (m *mockQuestLogRepo) ListByUser(userID uint, offset, limit int) ([]domain.QuestLogEntry, int64, error) {
	args := m.Called(userID, offset, limit)
	return args.Get(0).([]domain.QuestLogEntry), args.Get(1).(int64), args.Error(2)
}

func (m *mockQuestLogRepo) ListNowPlaying(userID uint) ([]domain.QuestLogEntry, error) {
	args := m.Called(userID)
	return args.Get(0).([]domain.QuestLogEntry), args.Error(1)
}

func (m *mockQuestLogRepo) Update(entry *domain.QuestLogEntry) error {
	return m.Called(entry).Error(0)
}

func (m *mockQuestLogRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

// --- Mock GameFinder ---

type mockGameFinder struct {
	mock.Mock
}

func (m *mockGameFinder) FindByID(id uint) (*domain.Game, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Game), args.Error(1)
}

func (m *mockGameFinder) FindByIDs(ids []uint) (map[uint]domain.Game, error) {
	args := m.Called(ids)
	return args.Get(0).(map[uint]domain.Game), args.Error(1)
}

// --- Mock SharePoster ---

type mockSharePoster struct {
	mock.Mock
}

func (m *mockSharePoster) Create(actor *domain.User, req *domain.CreatePostRequest) (*domain.Post, error) {
	args := m.Called(actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestQuestLogService_Create_StampsStartedAtWhenPlaying(t *testing.T) {
	repo := new(mockQuestLogRepo)
	games := new(mockGameFinder)
	svc := NewQuestLogService(repo, games, new(mockSharePoster))
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)

	games.On("FindByID", uint(3)).Return(&domain.Game{ID: 3, Name: "Celeste"}, nil)
	repo.On("Create", mock.Anything).Return(nil)

	entry, err := svc.Create(&domain.User{ID: 1}, &domain.CreateQuestLogRequest{GameID: 3, Status: domain.StatusPlaying})

	assert.NoError(t, err)
	assert.Equal(t, now, *entry.StartedAt)
}

func TestQuestLogService_Create_BacklogHasNoTimestamps(t *testing.T) {
	repo := new(mockQuestLogRepo)
	games := new(mockGameFinder)
	svc := NewQuestLogService(repo, games, new(mockSharePoster))

	games.On("FindByID", uint(3)).Return(&domain.Game{ID: 3}, nil)
	repo.On("Create", mock.Anything).Return(nil)

	entry, err := svc.Create(&domain.User{ID: 1}, &domain.CreateQuestLogRequest{GameID: 3, Status: domain.StatusBacklog})

	assert.NoError(t, err)
	assert.Nil(t, entry.StartedAt)
	assert.Nil(t, entry.CompletedAt)
}

func TestQuestLogService_ChangeStatus_BeatenWithShare(t *testing.T) {
	repo := new(mockQuestLogRepo)
	games := new(mockGameFinder)
	posts := new(mockSharePoster)
	svc := NewQuestLogService(repo, games, posts)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)

	entry := &domain.QuestLogEntry{ID: 7, UserID: 1, GameID: 3, Status: domain.StatusPlaying}
	rating := 5

	repo.On("FindByID", uint(7)).Return(entry, nil)
	repo.On("Update", mock.Anything).Return(nil)
	games.On("FindByID", uint(3)).Return(&domain.Game{ID: 3, Name: "Hades"}, nil)
	posts.On("Create", mock.Anything, mock.MatchedBy(func(req *domain.CreatePostRequest) bool {
		return req.Content == "Beat Hades and rated it 5/5."
	})).Return(&domain.Post{ID: 1}, nil)

	updated, err := svc.ChangeStatus(&domain.User{ID: 1}, 7, &domain.ChangeStatusRequest{
		Status: domain.StatusBeaten, Rating: &rating, ShareAsPost: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusBeaten, updated.Status)
	assert.Equal(t, now, *updated.CompletedAt)
	posts.AssertExpectations(t)
}

func TestQuestLogService_ChangeStatus_NoShareWithoutRating(t *testing.T) {
	repo := new(mockQuestLogRepo)
	posts := new(mockSharePoster)
	svc := NewQuestLogService(repo, new(mockGameFinder), posts)

	entry := &domain.QuestLogEntry{ID: 7, UserID: 1, GameID: 3, Status: domain.StatusPlaying}
	repo.On("FindByID", uint(7)).Return(entry, nil)
	repo.On("Update", mock.Anything).Return(nil)

	_, err := svc.ChangeStatus(&domain.User{ID: 1}, 7, &domain.ChangeStatusRequest{
		Status: domain.StatusDropped, ShareAsPost: true,
	})

	assert.NoError(t, err)
	posts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestQuestLogService_ChangeStatus_TerminalStatesStayEditable(t *testing.T) {
	repo := new(mockQuestLogRepo)
	svc := NewQuestLogService(repo, new(mockGameFinder), new(mockSharePoster))

	entry := &domain.QuestLogEntry{ID: 7, UserID: 1, GameID: 3, Status: domain.StatusBeaten}
	repo.On("FindByID", uint(7)).Return(entry, nil)
	repo.On("Update", mock.Anything).Return(nil)

	updated, err := svc.ChangeStatus(&domain.User{ID: 1}, 7, &domain.ChangeStatusRequest{Status: domain.StatusPlaying})

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusPlaying, updated.Status)
}

func TestQuestLogService_QuickRate_CreatesBacklogEntryWhenNone(t *testing.T) {
	repo := new(mockQuestLogRepo)
	games := new(mockGameFinder)
	svc := NewQuestLogService(repo, games, new(mockSharePoster))

	games.On("FindByID", uint(3)).Return(&domain.Game{ID: 3, Name: "Outer Wilds"}, nil)
	repo.On("FindLatestByUserAndGame", uint(1), uint(3)).Return(nil, nil)
	repo.On("Create", mock.MatchedBy(func(e *domain.QuestLogEntry) bool {
		return e.Status == domain.StatusBacklog && e.QuickRating != nil && *e.QuickRating == 4
	})).Return(nil)

	entry, err := svc.QuickRate(&domain.User{ID: 1}, &domain.QuickRateRequest{GameID: 3, Rating: 4})

	assert.NoError(t, err)
	assert.Equal(t, 4, *entry.QuickRating)
}

func TestQuestLogService_QuickRate_UpdatesLatestEntry(t *testing.T) {
	repo := new(mockQuestLogRepo)
	games := new(mockGameFinder)
	posts := new(mockSharePoster)
	svc := NewQuestLogService(repo, games, posts)

	existing := &domain.QuestLogEntry{ID: 7, UserID: 1, GameID: 3, Status: domain.StatusPlaying}
	games.On("FindByID", uint(3)).Return(&domain.Game{ID: 3, Name: "Outer Wilds"}, nil)
	repo.On("FindLatestByUserAndGame", uint(1), uint(3)).Return(existing, nil)
	repo.On("Update", mock.Anything).Return(nil)
	posts.On("Create", mock.Anything, mock.MatchedBy(func(req *domain.CreatePostRequest) bool {
		return req.Content == "Rated Outer Wilds 3/5."
	})).Return(&domain.Post{ID: 1}, nil)

	entry, err := svc.QuickRate(&domain.User{ID: 1}, &domain.QuickRateRequest{GameID: 3, Rating: 3, ShareAsPost: true})

	assert.NoError(t, err)
	assert.Equal(t, 3, *entry.QuickRating)
	repo.AssertNotCalled(t, "Create", mock.Anything)
	posts.AssertExpectations(t)
}

func TestQuestLogService_QuickRate_RejectsBadRating(t *testing.T) {
	svc := NewQuestLogService(new(mockQuestLogRepo), new(mockGameFinder), new(mockSharePoster))

	_, err := svc.QuickRate(&domain.User{ID: 1}, &domain.QuickRateRequest{GameID: 3, Rating: 0})
	assert.ErrorIs(t, err, common.ErrInvalidRating)

	_, err = svc.QuickRate(&domain.User{ID: 1}, &domain.QuickRateRequest{GameID: 3, Rating: 6})
	assert.ErrorIs(t, err, common.ErrInvalidRating)
}

func TestShareText(t *testing.T) {
	assert.Equal(t, "Beat Hades and rated it 5/5.", shareText("Hades", 5, domain.StatusBeaten))
	assert.Equal(t, "100% completed Hades and rated it 5/5.", shareText("Hades", 5, domain.StatusCompleted))
	assert.Equal(t, "Rated Hades 3/5.", shareText("Hades", 3, domain.StatusPlaying))
}
