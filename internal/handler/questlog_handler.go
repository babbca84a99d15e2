package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
	"github.com/thinkribbon/backend/internal/middleware"
	"github.com/thinkribbon/backend/internal/service"
	"github.com/thinkribbon/backend/pkg/ginutil"
)

type QuestLogHandler struct {
	questlog *service.QuestLogService
	identity *service.IdentityService
}

func NewQuestLogHandler(questlog *service.QuestLogService, identity *service.IdentityService) *QuestLogHandler {
	return &QuestLogHandler{questlog: questlog, identity: identity}
}

// List handles GET /api/v1/quest-log
func (h *QuestLogHandler) List(c *gin.Context) {
	page := ginutil.QueryInt(c, "page", 1)
	limit := ginutil.QueryInt(c, "limit", 20)

	items, total, err := h.questlog.List(middleware.CurrentUser(c), page, limit)
	if err != nil {
		fail(c, err, "Failed to fetch quest log")
		return
	}
	common.SuccessResponse(c, items, &common.Meta{Page: page, Limit: limit, Total: total})
}

// NowPlaying handles GET /api/v1/users/:username/now-playing — the
// public slice of a user's quest log
func (h *QuestLogHandler) NowPlaying(c *gin.Context) {
	user, err := h.identity.GetProfile(c.Param("username"))
	if err != nil {
		fail(c, err, "Failed to fetch user")
		return
	}

	items, err := h.questlog.NowPlaying(user.ID)
	if err != nil {
		fail(c, err, "Failed to fetch now playing")
		return
	}
	common.SuccessResponse(c, items, nil)
}

// Create handles POST /api/v1/quest-log
func (h *QuestLogHandler) Create(c *gin.Context) {
	var req domain.CreateQuestLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	entry, err := h.questlog.Create(middleware.CurrentUser(c), &req)
	if err != nil {
		fail(c, err, "Failed to create quest log entry")
		return
	}
	c.JSON(201, common.APIResponse{Data: entry})
}

// ChangeStatus handles PATCH /api/v1/quest-log/:id/status
func (h *QuestLogHandler) ChangeStatus(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid entry ID", err)
		return
	}

	var req domain.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	entry, err := h.questlog.ChangeStatus(middleware.CurrentUser(c), id, &req)
	if err != nil {
		fail(c, err, "Failed to change status")
		return
	}
	common.SuccessResponse(c, entry, nil)
}

// QuickRate handles POST /api/v1/quest-log/quick-rate
func (h *QuestLogHandler) QuickRate(c *gin.Context) {
	var req domain.QuickRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	entry, err := h.questlog.QuickRate(middleware.CurrentUser(c), &req)
	if err != nil {
		fail(c, err, "Failed to quick-rate")
		return
	}
	common.SuccessResponse(c, entry, nil)
}

// Delete handles DELETE /api/v1/quest-log/:id
func (h *QuestLogHandler) Delete(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid entry ID", err)
		return
	}

	if err := h.questlog.Delete(middleware.CurrentUser(c), id); err != nil {
		fail(c, err, "Failed to delete quest log entry")
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}
