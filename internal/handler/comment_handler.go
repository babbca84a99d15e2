package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
	"github.com/thinkribbon/backend/internal/middleware"
	"github.com/thinkribbon/backend/internal/service"
	"github.com/thinkribbon/backend/pkg/ginutil"
)

type CommentHandler struct {
	comments *service.CommentService
}

func NewCommentHandler(comments *service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// ListByTarget handles GET /api/v1/comments?target_type=post&target_id=1
func (h *CommentHandler) ListByTarget(c *gin.Context) {
	targetType := domain.TargetType(c.Query("target_type"))
	targetID := uint(ginutil.QueryInt(c, "target_id", 0))
	if !targetType.Commentable() || targetID == 0 {
		common.ErrorResponse(c, 400, "Invalid target", nil)
		return
	}

	items, err := h.comments.ListByTarget(middleware.CurrentUserID(c), targetType, targetID)
	if err != nil {
		fail(c, err, "Failed to fetch comments")
		return
	}
	common.SuccessResponse(c, items, nil)
}

// Create handles POST /api/v1/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req domain.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	comment, err := h.comments.Create(middleware.CurrentUser(c), &req)
	if err != nil {
		fail(c, err, "Failed to create comment")
		return
	}
	c.JSON(201, common.APIResponse{Data: comment})
}

// Update handles PATCH /api/v1/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid comment ID", err)
		return
	}

	var req domain.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	comment, err := h.comments.Update(middleware.CurrentUser(c), id, &req)
	if err != nil {
		fail(c, err, "Failed to update comment")
		return
	}
	common.SuccessResponse(c, comment, nil)
}

// Delete handles DELETE /api/v1/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid comment ID", err)
		return
	}

	if err := h.comments.Delete(middleware.CurrentUser(c), id); err != nil {
		fail(c, err, "Failed to delete comment")
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}
