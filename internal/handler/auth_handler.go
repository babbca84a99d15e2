package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
	"github.com/thinkribbon/backend/internal/middleware"
	"github.com/thinkribbon/backend/internal/service"
)

type AuthHandler struct {
	identity *service.IdentityService
}

func NewAuthHandler(identity *service.IdentityService) *AuthHandler {
	return &AuthHandler{identity: identity}
}

// Sync handles POST /api/v1/auth/sync — upserts the shadow user on
// sign-in. Runs behind token verification only, since the row may not
// exist yet.
func (h *AuthHandler) Sync(c *gin.Context) {
	var req domain.SyncUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	user, err := h.identity.Sync(middleware.GetClerkID(c), &req)
	if err != nil {
		fail(c, err, "Failed to sync user")
		return
	}
	common.SuccessResponse(c, user, nil)
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	common.SuccessResponse(c, middleware.CurrentUser(c), nil)
}
