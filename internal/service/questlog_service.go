package service

import (
	"fmt"
	"time"

	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
)

// QuestLogRepo is the persistence surface the quest-log service needs
type QuestLogRepo interface {
	Create(entry *domain.QuestLogEntry) error
	FindByID(id uint) (*domain.QuestLogEntry, error)
	FindLatestByUserAndGame(userID, gameID uint) (*domain.QuestLogEntry, error)
	ListByUser(userID uint, offset, limit int) ([]domain.QuestLogEntry, int64, error)
	ListNowPlaying(userID uint) ([]domain.QuestLogEntry, error)
	Update(entry *domain.QuestLogEntry) error
	Delete(id uint) error
}

// GameFinder resolves games for share-post text and entry views
type GameFinder interface {
	FindByID(id uint) (*domain.Game, error)
	FindByIDs(ids []uint) (map[uint]domain.Game, error)
}

// SharePoster publishes the templated share post produced by a status
// change or quick-rate
type SharePoster interface {
	Create(actor *domain.User, req *domain.CreatePostRequest) (*domain.Post, error)
}

// QuestLogService handles the diary-style playthrough tracker.
// Multiple entries per (user, game) are allowed; statuses move freely
// and terminal states stay editable.
type QuestLogService struct {
	repo  QuestLogRepo
	games GameFinder
	posts SharePoster
	now   func() time.Time
}

// NewQuestLogService creates a new QuestLogService
func NewQuestLogService(repo QuestLogRepo, games GameFinder, posts SharePoster) *QuestLogService {
	return &QuestLogService{repo: repo, games: games, posts: posts, now: time.Now}
}

// Create starts a new quest-log entry
func (s *QuestLogService) Create(actor *domain.User, req *domain.CreateQuestLogRequest) (*domain.QuestLogEntry, error) {
	if actor == nil {
		return nil, common.ErrUnauthorized
	}
	if !req.Status.ValidForQuestLog() {
		return nil, common.ErrInvalidInput
	}
	game, err := s.games.FindByID(req.GameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, common.ErrGameNotFound
	}

	entry := &domain.QuestLogEntry{
		UserID: actor.ID,
		GameID: req.GameID,
		Status: req.Status,
		Notes:  req.Notes,
	}
	if req.Status == domain.StatusPlaying {
		now := s.now()
		entry.StartedAt = &now
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ChangeStatus moves an entry to a new status and runs the optional
// side effects: a quick rating and a templated share post.
func (s *QuestLogService) ChangeStatus(actor *domain.User, entryID uint, req *domain.ChangeStatusRequest) (*domain.QuestLogEntry, error) {
	entry, err := s.repo.FindByID(entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, common.ErrEntryNotFound
	}
	if err := AssertOwnerOrAdmin(actor, entry.UserID); err != nil {
		return nil, err
	}
	if !req.Status.ValidForQuestLog() {
		return nil, common.ErrInvalidInput
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return nil, common.ErrInvalidRating
	}

	now := s.now()
	entry.Status = req.Status
	if req.Notes != "" {
		entry.Notes = req.Notes
	}
	if req.Rating != nil {
		entry.QuickRating = req.Rating
	}
	if req.Status == domain.StatusPlaying && entry.StartedAt == nil {
		entry.StartedAt = &now
	}
	if req.Status == domain.StatusBeaten || req.Status == domain.StatusCompleted {
		entry.CompletedAt = &now
	}
	if err := s.repo.Update(entry); err != nil {
		return nil, err
	}

	if req.ShareAsPost && req.Rating != nil {
		if err := s.publishShare(actor, entry.GameID, *req.Rating, req.Status); err != nil {
			return nil, err
		}
	}

	return entry, nil
}

// QuickRate sets a quick rating with or without an existing entry.
// Without one, a fresh backlog entry carries the rating. Independent
// of status.
func (s *QuestLogService) QuickRate(actor *domain.User, req *domain.QuickRateRequest) (*domain.QuestLogEntry, error) {
	if actor == nil {
		return nil, common.ErrUnauthorized
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, common.ErrInvalidRating
	}
	game, err := s.games.FindByID(req.GameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, common.ErrGameNotFound
	}

	entry, err := s.repo.FindLatestByUserAndGame(actor.ID, req.GameID)
	if err != nil {
		return nil, err
	}
	rating := req.Rating
	if entry == nil {
		entry = &domain.QuestLogEntry{
			UserID:      actor.ID,
			GameID:      req.GameID,
			Status:      domain.StatusBacklog,
			QuickRating: &rating,
		}
		if err := s.repo.Create(entry); err != nil {
			return nil, err
		}
	} else {
		entry.QuickRating = &rating
		if err := s.repo.Update(entry); err != nil {
			return nil, err
		}
	}

	if req.ShareAsPost {
		if err := s.publishShare(actor, req.GameID, rating, entry.Status); err != nil {
			return nil, err
		}
	}

	return entry, nil
}

// List returns the actor's quest log with games joined
func (s *QuestLogService) List(actor *domain.User, page, limit int) ([]domain.QuestLogEntryResponse, int64, error) {
	if actor == nil {
		return nil, 0, common.ErrUnauthorized
	}
	page, limit = normalizePage(page, limit)
	entries, total, err := s.repo.ListByUser(actor.ID, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}
	responses, err := s.buildResponses(entries)
	return responses, total, err
}

// NowPlaying returns the actor's entries in playing status
func (s *QuestLogService) NowPlaying(userID uint) ([]domain.QuestLogEntryResponse, error) {
	entries, err := s.repo.ListNowPlaying(userID)
	if err != nil {
		return nil, err
	}
	return s.buildResponses(entries)
}

// Delete removes an entry after the ownership check
func (s *QuestLogService) Delete(actor *domain.User, id uint) error {
	entry, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if entry == nil {
		return common.ErrEntryNotFound
	}
	if err := AssertOwnerOrAdmin(actor, entry.UserID); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *QuestLogService) buildResponses(entries []domain.QuestLogEntry) ([]domain.QuestLogEntryResponse, error) {
	gameIDs := make([]uint, 0, len(entries))
	for _, e := range entries {
		gameIDs = append(gameIDs, e.GameID)
	}
	games, err := s.games.FindByIDs(gameIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.QuestLogEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = domain.QuestLogEntryResponse{
			ID:          e.ID,
			Game:        games[e.GameID],
			Status:      e.Status,
			QuickRating: e.QuickRating,
			Notes:       e.Notes,
			StartedAt:   e.StartedAt,
			CompletedAt: e.CompletedAt,
			CreatedAt:   e.CreatedAt,
		}
	}
	return responses, nil
}

func (s *QuestLogService) publishShare(actor *domain.User, gameID uint, rating int, status domain.PlayStatus) error {
	game, err := s.games.FindByID(gameID)
	if err != nil || game == nil {
		return err
	}
	content := shareText(game.Name, rating, status)
	_, err = s.posts.Create(actor, &domain.CreatePostRequest{Content: content})
	return err
}

func shareText(gameName string, rating int, status domain.PlayStatus) string {
	switch status {
	case domain.StatusBeaten:
		return fmt.Sprintf("Beat %s and rated it %d/5.", gameName, rating)
	case domain.StatusCompleted:
		return fmt.Sprintf("100%% completed %s and rated it %d/5.", gameName, rating)
	default:
		return fmt.Sprintf("Rated %s %d/5.", gameName, rating)
	}
}
