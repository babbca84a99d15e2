package service

import (
	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
)

// AssertOwnerOrAdmin is the single authorization guard shared by every
// content-mutating operation: the actor must own the resource or be an
// admin.
func AssertOwnerOrAdmin(actor *domain.User, ownerID uint) error {
	if actor == nil {
		return common.ErrUnauthorized
	}
	if actor.ID == ownerID || actor.Admin {
		return nil
	}
	return common.ErrForbidden
}
