package service

import (
	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
	"github.com/thinkribbon/backend/internal/repository"
)

// CollectionService handles the one-row-per-game ownership collection
type CollectionService struct {
	repo  *repository.CollectionRepository
	games GameFinder
}

// NewCollectionService creates a new CollectionService
func NewCollectionService(repo *repository.CollectionRepository, games GameFinder) *CollectionService {
	return &CollectionService{repo: repo, games: games}
}

// Upsert adds a game to the actor's collection or updates the existing
// entry; one row per (user, game)
func (s *CollectionService) Upsert(actor *domain.User, req *domain.UpsertCollectionRequest) (*domain.CollectionEntry, error) {
	if actor == nil {
		return nil, common.ErrUnauthorized
	}
	status := req.Status
	if status == "" {
		status = domain.StatusUnplayed
	}
	if !status.ValidForCollection() {
		return nil, common.ErrInvalidInput
	}
	game, err := s.games.FindByID(req.GameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, common.ErrGameNotFound
	}

	entry, err := s.repo.FindByUserAndGame(actor.ID, req.GameID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		entry = &domain.CollectionEntry{
			UserID: actor.ID,
			GameID: req.GameID,
		}
	}

	entry.Status = status
	entry.Format = req.Format
	entry.Platform = req.Platform
	entry.HoursPlayed = req.HoursPlayed
	entry.AcquiredAt = req.AcquiredAt
	entry.Notes = req.Notes

	if entry.ID == 0 {
		err = s.repo.Create(entry)
	} else {
		err = s.repo.Update(entry)
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns a user's collection with games joined
func (s *CollectionService) List(userID uint, page, limit int) ([]domain.CollectionEntryResponse, int64, error) {
	page, limit = normalizePage(page, limit)
	entries, total, err := s.repo.ListByUser(userID, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	gameIDs := make([]uint, 0, len(entries))
	for _, e := range entries {
		gameIDs = append(gameIDs, e.GameID)
	}
	games, err := s.games.FindByIDs(gameIDs)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]domain.CollectionEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = domain.CollectionEntryResponse{
			ID:          e.ID,
			Game:        games[e.GameID],
			Status:      e.Status,
			Format:      e.Format,
			Platform:    e.Platform,
			HoursPlayed: e.HoursPlayed,
			AcquiredAt:  e.AcquiredAt,
			Notes:       e.Notes,
		}
	}
	return responses, total, nil
}

// Remove deletes a collection entry after the ownership check
func (s *CollectionService) Remove(actor *domain.User, id uint) error {
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
