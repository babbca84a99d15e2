package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
	"github.com/thinkribbon/backend/internal/middleware"
	"github.com/thinkribbon/backend/internal/service"
)

type LikeHandler struct {
	likes *service.LikeService
}

func NewLikeHandler(likes *service.LikeService) *LikeHandler {
	return &LikeHandler{likes: likes}
}

// Toggle handles POST /api/v1/likes/toggle
func (h *LikeHandler) Toggle(c *gin.Context) {
	var req domain.ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	result, err := h.likes.Toggle(middleware.CurrentUser(c), req.TargetType, req.TargetID)
	if err != nil {
		fail(c, err, "Failed to toggle like")
		return
	}
	common.SuccessResponse(c, result, nil)
}
