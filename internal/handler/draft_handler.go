package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
	"github.com/thinkribbon/backend/internal/middleware"
	"github.com/thinkribbon/backend/internal/service"
	"github.com/thinkribbon/backend/pkg/ginutil"
)

type DraftHandler struct {
	drafts *service.DraftService
}

func NewDraftHandler(drafts *service.DraftService) *DraftHandler {
	return &DraftHandler{drafts: drafts}
}

// List handles GET /api/v1/drafts?kind=article
func (h *DraftHandler) List(c *gin.Context) {
	kind := domain.DraftKind(c.Query("kind"))
	items, err := h.drafts.List(middleware.CurrentUser(c), kind)
	if err != nil {
		fail(c, err, "Failed to fetch drafts")
		return
	}
	common.SuccessResponse(c, items, nil)
}

// Create handles POST /api/v1/drafts
func (h *DraftHandler) Create(c *gin.Context) {
	var req domain.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	draft, err := h.drafts.Create(middleware.CurrentUser(c), &req)
	if err != nil {
		fail(c, err, "Failed to save draft")
		return
	}
	c.JSON(201, common.APIResponse{Data: draft})
}

// Update handles PUT /api/v1/drafts/:id
func (h *DraftHandler) Update(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid draft ID", err)
		return
	}

	var req domain.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	draft, err := h.drafts.Update(middleware.CurrentUser(c), id, &req)
	if err != nil {
		fail(c, err, "Failed to save draft")
		return
	}
	common.SuccessResponse(c, draft, nil)
}

// Delete handles DELETE /api/v1/drafts/:id
func (h *DraftHandler) Delete(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid draft ID", err)
		return
	}

	if err := h.drafts.Delete(middleware.CurrentUser(c), id); err != nil {
		fail(c, err, "Failed to delete draft")
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}
