package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/service"
)

// CronHandler exposes the maintenance sweeps as HTTP endpoints guarded
// by the shared-secret middleware, so an external cron can trigger them
type CronHandler struct {
	notifications *service.NotificationService
	uploads       *service.UploadService
}

func NewCronHandler(notifications *service.NotificationService, uploads *service.UploadService) *CronHandler {
	return &CronHandler{notifications: notifications, uploads: uploads}
}

// SweepNotifications handles POST /api/v1/cron/notifications/sweep
func (h *CronHandler) SweepNotifications(c *gin.Context) {
	if err := h.notifications.RunExpirySweep(); err != nil {
		fail(c, err, "Notification sweep failed")
		return
	}
	common.SuccessResponse(c, gin.H{"ok": true}, nil)
}

// SweepUploads handles POST /api/v1/cron/uploads/sweep
func (h *CronHandler) SweepUploads(c *gin.Context) {
	deleted, err := h.uploads.SweepOrphans(c.Request.Context())
	if err != nil {
		fail(c, err, "Upload sweep failed")
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": deleted}, nil)
}
