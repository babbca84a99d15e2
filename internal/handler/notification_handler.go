package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/middleware"
	"github.com/thinkribbon/backend/internal/service"
	"github.com/thinkribbon/backend/pkg/ginutil"
)

type NotificationHandler struct {
	notifications *service.NotificationService
}

func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List handles GET /api/v1/notifications — opening the list marks all
// unread rows viewed
func (h *NotificationHandler) List(c *gin.Context) {
	page := ginutil.QueryInt(c, "page", 1)
	limit := ginutil.QueryInt(c, "limit", 20)

	result, err := h.notifications.GetList(middleware.CurrentUserID(c), page, limit)
	if err != nil {
		fail(c, err, "Failed to fetch notifications")
		return
	}
	common.SuccessResponse(c, result, nil)
}

// UnreadCount handles GET /api/v1/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	result, err := h.notifications.GetUnreadCount(middleware.CurrentUserID(c))
	if err != nil {
		fail(c, err, "Failed to fetch unread count")
		return
	}
	common.SuccessResponse(c, result, nil)
}
