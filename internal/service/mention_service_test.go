package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/thinkribbon/backend/internal/domain"
)

// --- Mock MentionRepo ---

type mockMentionRepo struct {
	mock.Mock
}

func (m *mockMentionRepo) ListByTarget(targetType domain.TargetType, targetID uint) ([]domain.ContentMention, error) {
	args := m.Called(targetType, targetID)
	return args.Get(0).([]domain.ContentMention), args.Error(1)
}

func (m *mockMentionRepo) Replace(targetType domain.TargetType, targetID uint, mentions []domain.Mention) error {
	return m.Called(targetType, targetID, mentions).Error(0)
}

func userMention(id uint) domain.Mention {
	return domain.Mention{Kind: domain.MentionUser, SubjectID: id, DisplayText: "@someone"}
}

func TestMentionService_Apply_PublishedNotifiesNewMentions(t *testing.T) {
	repo := new(mockMentionRepo)
	notifier := new(mockNotifier)
	svc := NewMentionService(repo, notifier)

	mentions := []domain.Mention{userMention(7), userMention(8)}
	repo.On("ListByTarget", domain.TargetPost, uint(1)).Return([]domain.ContentMention{}, nil)
	notifier.On("Notify", uint(7), uint(1), domain.NotifyMention, domain.TargetPost, uint(1)).Return(nil)
	notifier.On("Notify", uint(8), uint(1), domain.NotifyMention, domain.TargetPost, uint(1)).Return(nil)
	repo.On("Replace", domain.TargetPost, uint(1), mentions).Return(nil)

	err := svc.Apply(1, domain.TargetPost, 1, mentions, true)

	assert.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestMentionService_Apply_UnpublishedStoresWithoutNotifying(t *testing.T) {
	repo := new(mockMentionRepo)
	notifier := new(mockNotifier)
	svc := NewMentionService(repo, notifier)

	mentions := []domain.Mention{userMention(7)}
	repo.On("ListByTarget", domain.TargetArticle, uint(2)).Return([]domain.ContentMention{}, nil)
	repo.On("Replace", domain.TargetArticle, uint(2), mentions).Return(nil)

	err := svc.Apply(1, domain.TargetArticle, 2, mentions, false)

	assert.NoError(t, err)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertCalled(t, "Replace", domain.TargetArticle, uint(2), mentions)
}

func TestMentionService_Apply_OnlyNewMentionsNotify(t *testing.T) {
	repo := new(mockMentionRepo)
	notifier := new(mockNotifier)
	svc := NewMentionService(repo, notifier)

	// user 7 was stored by a previous save (published or not): only
	// user 8 is new in this save
	previous := []domain.ContentMention{{Kind: domain.MentionUser, SubjectID: 7}}
	mentions := []domain.Mention{userMention(7), userMention(8)}

	repo.On("ListByTarget", domain.TargetPost, uint(3)).Return(previous, nil)
	notifier.On("Notify", uint(8), uint(1), domain.NotifyMention, domain.TargetPost, uint(3)).Return(nil)
	repo.On("Replace", domain.TargetPost, uint(3), mentions).Return(nil)

	err := svc.Apply(1, domain.TargetPost, 3, mentions, true)

	assert.NoError(t, err)
	notifier.AssertNumberOfCalls(t, "Notify", 1)
}

func TestMentionService_Apply_GameMentionsNeverNotify(t *testing.T) {
	repo := new(mockMentionRepo)
	notifier := new(mockNotifier)
	svc := NewMentionService(repo, notifier)

	mentions := []domain.Mention{{Kind: domain.MentionGame, SubjectID: 42, Slug: "hollow-knight", DisplayText: "Hollow Knight"}}
	repo.On("ListByTarget", domain.TargetPost, uint(4)).Return([]domain.ContentMention{}, nil)
	repo.On("Replace", domain.TargetPost, uint(4), mentions).Return(nil)

	err := svc.Apply(1, domain.TargetPost, 4, mentions, true)

	assert.NoError(t, err)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMentionService_Apply_DuplicateMentionsNotifyOnce(t *testing.T) {
	repo := new(mockMentionRepo)
	notifier := new(mockNotifier)
	svc := NewMentionService(repo, notifier)

	mentions := []domain.Mention{userMention(7), userMention(7)}
	repo.On("ListByTarget", domain.TargetPost, uint(5)).Return([]domain.ContentMention{}, nil)
	notifier.On("Notify", uint(7), uint(1), domain.NotifyMention, domain.TargetPost, uint(5)).Return(nil)
	repo.On("Replace", domain.TargetPost, uint(5), mentions).Return(nil)

	err := svc.Apply(1, domain.TargetPost, 5, mentions, true)

	assert.NoError(t, err)
	notifier.AssertNumberOfCalls(t, "Notify", 1)
}
