package service

import (
	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
	"github.com/thinkribbon/backend/internal/repository"
)

// FollowService handles the social graph
type FollowService struct {
	repo     *repository.FollowRepository
	users    *repository.UserRepository
	notifier Notifier
}

// NewFollowService creates a new FollowService
func NewFollowService(repo *repository.FollowRepository, users *repository.UserRepository, notifier Notifier) *FollowService {
	return &FollowService{repo: repo, users: users, notifier: notifier}
}

// Follow creates the edge and notifies the followed user
func (s *FollowService) Follow(actor *domain.User, followedID uint) error {
	if actor == nil {
		return common.ErrUnauthorized
	}
	if actor.ID == followedID {
		return common.ErrSelfFollow
	}

	followed, err := s.users.FindByID(followedID)
	if err != nil {
		return err
	}
	if followed == nil {
		return common.ErrUserNotFound
	}

	exists, err := s.repo.Exists(actor.ID, followedID)
	if err != nil {
		return err
	}
	if exists {
		return common.ErrAlreadyFollowed
	}

	if err := s.repo.Create(actor.ID, followedID); err != nil {
		return err
	}
	return s.notifier.Notify(followedID, actor.ID, domain.NotifyFollow, "", 0)
}

// Unfollow removes the edge; no notification on unfollow
func (s *FollowService) Unfollow(actor *domain.User, followedID uint) error {
	if actor == nil {
		return common.ErrUnauthorized
	}
	return s.repo.Delete(actor.ID, followedID)
}

// Counts returns follower/following totals for a profile
func (s *FollowService) Counts(userID uint) (*domain.FollowCounts, error) {
	return s.repo.Counts(userID)
}

// IsFollowing reports whether actor follows the user
func (s *FollowService) IsFollowing(actorID, userID uint) (bool, error) {
	if actorID == 0 {
		return false, nil
	}
	return s.repo.Exists(actorID, userID)
}
