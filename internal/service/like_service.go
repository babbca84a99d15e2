package service

import (
	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
)

// LikeRepo is the persistence surface the like service needs
type LikeRepo interface {
	Has(userID uint, targetType domain.TargetType, targetID uint) (bool, error)
	Add(userID uint, targetType domain.TargetType, targetID uint) error
	Remove(userID uint, targetType domain.TargetType, targetID uint) error
	CountByTarget(targetType domain.TargetType, targetID uint) (int64, error)
}

// LikeService handles the polymorphic like toggle
type LikeService struct {
	repo     LikeRepo
	resolver OwnerResolver
	notifier Notifier
}

// NewLikeService creates a new LikeService
func NewLikeService(repo LikeRepo, resolver OwnerResolver, notifier Notifier) *LikeService {
	return &LikeService{repo: repo, resolver: resolver, notifier: notifier}
}

// Toggle flips the actor's like on a target. Present means delete and
// return liked=false with no side effects; absent means insert, then
// notify the target's owner unless the owner is the actor or the
// target vanished in a race (the like still stands in that case).
func (s *LikeService) Toggle(actor *domain.User, targetType domain.TargetType, targetID uint) (*domain.ToggleLikeResponse, error) {
	if actor == nil {
		return nil, common.ErrUnauthorized
	}
	if !targetType.Valid() || targetID == 0 {
		return nil, common.ErrInvalidInput
	}

	has, err := s.repo.Has(actor.ID, targetType, targetID)
	if err != nil {
		return nil, err
	}

	if has {
		if err := s.repo.Remove(actor.ID, targetType, targetID); err != nil {
			return nil, err
		}
		return s.buildResponse(false, targetType, targetID)
	}

	if err := s.repo.Add(actor.ID, targetType, targetID); err != nil {
		return nil, err
	}

	ownerID, err := s.resolver.ResolveOwner(targetType, targetID)
	if err != nil {
		return nil, err
	}
	if err := s.notifier.Notify(ownerID, actor.ID, likeNotificationType(targetType), targetType, targetID); err != nil {
		return nil, err
	}

	return s.buildResponse(true, targetType, targetID)
}

func (s *LikeService) buildResponse(liked bool, targetType domain.TargetType, targetID uint) (*domain.ToggleLikeResponse, error) {
	count, err := s.repo.CountByTarget(targetType, targetID)
	if err != nil {
		return nil, err
	}
	return &domain.ToggleLikeResponse{Liked: liked, LikeCount: count}, nil
}

func likeNotificationType(targetType domain.TargetType) string {
	switch targetType {
	case domain.TargetPost:
		return domain.NotifyLikePost
	case domain.TargetArticle:
		return domain.NotifyLikeArticle
	case domain.TargetReview:
		return domain.NotifyLikeReview
	default:
		return domain.NotifyLikeComment
	}
}
