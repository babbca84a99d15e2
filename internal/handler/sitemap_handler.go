package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/service"
)

type SitemapHandler struct {
	sitemap *service.SitemapService
}

func NewSitemapHandler(sitemap *service.SitemapService) *SitemapHandler {
	return &SitemapHandler{sitemap: sitemap}
}

// Get handles GET /sitemap.xml
func (h *SitemapHandler) Get(c *gin.Context) {
	body, err := h.sitemap.Render()
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to render sitemap", err)
		return
	}
	c.Data(200, "application/xml; charset=utf-8", body)
}
