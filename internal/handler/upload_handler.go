package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
	"github.com/thinkribbon/backend/internal/middleware"
	"github.com/thinkribbon/backend/internal/service"
)

type UploadHandler struct {
	uploads *service.UploadService
}

func NewUploadHandler(uploads *service.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// Record handles POST /api/v1/uploads — called on upload completion so
// the orphan sweep can tell live files from abandoned ones
func (h *UploadHandler) Record(c *gin.Context) {
	var req domain.RecordUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	upload, err := h.uploads.Record(middleware.CurrentUser(c), &req)
	if err != nil {
		fail(c, err, "Failed to record upload")
		return
	}
	c.JSON(201, common.APIResponse{Data: upload})
}
