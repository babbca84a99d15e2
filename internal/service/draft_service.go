package service

import (
	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
)

// DraftRepo is the persistence surface the draft service needs
type DraftRepo interface {
	CountByUserAndKind(userID uint, kind domain.DraftKind) (int64, error)
	Create(draft *domain.Draft) error
	FindByID(id uint) (*domain.Draft, error)
	ListByUser(userID uint, kind domain.DraftKind) ([]domain.Draft, error)
	Update(draft *domain.Draft) error
	Delete(id uint) error
}

// DraftService handles article and review drafts. The per-kind cap is
// a hard rejection; nothing is evicted.
type DraftService struct {
	repo DraftRepo
}

// NewDraftService creates a new DraftService
func NewDraftService(repo DraftRepo) *DraftService {
	return &DraftService{repo: repo}
}

// Create writes a new draft unless the user already holds
// MaxDraftsPerUser drafts of that kind
func (s *DraftService) Create(actor *domain.User, req *domain.SaveDraftRequest) (*domain.Draft, error) {
	if actor == nil {
		return nil, common.ErrUnauthorized
	}
	if req.Kind != domain.DraftArticle && req.Kind != domain.DraftReview {
		return nil, common.ErrInvalidInput
	}

	count, err := s.repo.CountByUserAndKind(actor.ID, req.Kind)
	if err != nil {
		return nil, err
	}
	if count >= domain.MaxDraftsPerUser {
		return nil, common.ErrDraftLimit
	}

	draft := &domain.Draft{
		UserID:  actor.ID,
		Kind:    req.Kind,
		Title:   req.Title,
		Content: req.Content,
		GameID:  req.GameID,
		Rating:  req.Rating,
	}
	if err := s.repo.Create(draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Update overwrites a draft after the ownership check
func (s *DraftService) Update(actor *domain.User, id uint, req *domain.SaveDraftRequest) (*domain.Draft, error) {
	draft, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, common.ErrNotFound
	}
	if err := AssertOwnerOrAdmin(actor, draft.UserID); err != nil {
		return nil, err
	}

	draft.Title = req.Title
	draft.Content = req.Content
	draft.GameID = req.GameID
	draft.Rating = req.Rating
	if err := s.repo.Update(draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// List returns the actor's drafts of a kind
func (s *DraftService) List(actor *domain.User, kind domain.DraftKind) ([]domain.Draft, error) {
	if actor == nil {
		return nil, common.ErrUnauthorized
	}
	return s.repo.ListByUser(actor.ID, kind)
}

// Delete removes a draft after the ownership check
func (s *DraftService) Delete(actor *domain.User, id uint) error {
	draft, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if draft == nil {
		return common.ErrNotFound
	}
	if err := AssertOwnerOrAdmin(actor, draft.UserID); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
