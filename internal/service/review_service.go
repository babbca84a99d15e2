package service

import (
	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
)

// ReviewRepo is the persistence surface the review service needs
type ReviewRepo interface {
	Create(review *domain.Review) error
	FindByID(id uint) (*domain.Review, error)
	FindByAuthorAndGame(authorID, gameID uint) (*domain.Review, error)
	Update(review *domain.Review) error
	ListByGame(gameID uint, offset, limit int) ([]domain.Review, int64, error)
	AverageRating(gameID uint) (*float64, error)
}

// ContentCascader removes a content item with its dependents
type ContentCascader interface {
	DeleteContent(targetType domain.TargetType, targetID uint) error
}

// ReviewService handles star reviews. At most one review per
// (author, game); a second create is rejected, editing succeeds.
type ReviewService struct {
	repo     ReviewRepo
	cascade  ContentCascader
	mentions *MentionService
}

// NewReviewService creates a new ReviewService
func NewReviewService(repo ReviewRepo, cascade ContentCascader, mentions *MentionService) *ReviewService {
	return &ReviewService{repo: repo, cascade: cascade, mentions: mentions}
}

// Create writes a review after the uniqueness and rating checks
func (s *ReviewService) Create(actor *domain.User, req *domain.CreateReviewRequest) (*domain.Review, error) {
	if actor == nil {
		return nil, common.ErrUnauthorized
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, common.ErrInvalidRating
	}

	existing, err := s.repo.FindByAuthorAndGame(actor.ID, req.GameID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, common.ErrDuplicateReview
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	review := &domain.Review{
		AuthorID:  actor.ID,
		GameID:    req.GameID,
		Rating:    req.Rating,
		Title:     req.Title,
		Content:   req.Content,
		Published: published,
	}
	if err := s.repo.Create(review); err != nil {
		return nil, err
	}

	if err := s.mentions.Apply(actor.ID, domain.TargetReview, review.ID, req.Mentions, review.Published); err != nil {
		return nil, err
	}

	return review, nil
}

// Get returns a review by id
func (s *ReviewService) Get(id uint) (*domain.Review, error) {
	review, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, common.ErrReviewNotFound
	}
	return review, nil
}

// Update edits a review after the ownership and rating checks
func (s *ReviewService) Update(actor *domain.User, id uint, req *domain.UpdateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, common.ErrInvalidRating
	}

	review, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, common.ErrReviewNotFound
	}
	if err := AssertOwnerOrAdmin(actor, review.AuthorID); err != nil {
		return nil, err
	}

	review.Rating = req.Rating
	review.Title = req.Title
	review.Content = req.Content
	if req.Published != nil {
		review.Published = *req.Published
	}
	if err := s.repo.Update(review); err != nil {
		return nil, err
	}

	if err := s.mentions.Apply(review.AuthorID, domain.TargetReview, review.ID, req.Mentions, review.Published); err != nil {
		return nil, err
	}

	return review, nil
}

// Delete cascades the review and its engagement rows
func (s *ReviewService) Delete(actor *domain.User, id uint) error {
	review, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if review == nil {
		return common.ErrReviewNotFound
	}
	if err := AssertOwnerOrAdmin(actor, review.AuthorID); err != nil {
		return err
	}
	return s.cascade.DeleteContent(domain.TargetReview, id)
}

// ListByGame returns a game's published reviews
func (s *ReviewService) ListByGame(gameID uint, page, limit int) ([]domain.Review, int64, error) {
	page, limit = normalizePage(page, limit)
	return s.repo.ListByGame(gameID, (page-1)*limit, limit)
}

// AverageForGame returns the mean rating across a game's published
// reviews, nil when none exist
func (s *ReviewService) AverageForGame(gameID uint) (*float64, error) {
	return s.repo.AverageRating(gameID)
}
