package service

import (
	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
	"github.com/thinkribbon/backend/internal/repository"
)

// IdentityService bridges the external identity provider to local user
// rows. Every mutating operation re-resolves the asserted identity
// here instead of trusting anything cached upstream.
type IdentityService struct {
	users *repository.UserRepository
}

// NewIdentityService creates a new IdentityService
func NewIdentityService(users *repository.UserRepository) *IdentityService {
	return &IdentityService{users: users}
}

// Resolve maps an external subject id to the local user record
func (s *IdentityService) Resolve(clerkID string) (*domain.User, error) {
	if clerkID == "" {
		return nil, common.ErrUnauthorized
	}
	user, err := s.users.FindByClerkID(clerkID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrUserNotFound
	}
	return user, nil
}

// Sync upserts the shadow user row on sign-in
func (s *IdentityService) Sync(clerkID string, req *domain.SyncUserRequest) (*domain.User, error) {
	if clerkID == "" {
		return nil, common.ErrUnauthorized
	}
	user := &domain.User{
		ClerkID:     clerkID,
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		ImageURL:    req.ImageURL,
	}
	if err := s.users.Upsert(user); err != nil {
		return nil, err
	}
	// Re-read so callers see the persisted row, id included
	return s.Resolve(clerkID)
}

// GetProfile returns a public profile by username
func (s *IdentityService) GetProfile(username string) (*domain.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrUserNotFound
	}
	return user, nil
}
