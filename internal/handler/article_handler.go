package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
	"github.com/thinkribbon/backend/internal/middleware"
	"github.com/thinkribbon/backend/internal/service"
	"github.com/thinkribbon/backend/pkg/ginutil"
)

type ArticleHandler struct {
	articles *service.ArticleService
	feed     *service.FeedService
}

func NewArticleHandler(articles *service.ArticleService, feed *service.FeedService) *ArticleHandler {
	return &ArticleHandler{articles: articles, feed: feed}
}

// List handles GET /api/v1/articles
func (h *ArticleHandler) List(c *gin.Context) {
	page := ginutil.QueryInt(c, "page", 1)
	limit := ginutil.QueryInt(c, "limit", 20)

	articles, total, err := h.articles.ListPublished(page, limit)
	if err != nil {
		fail(c, err, "Failed to fetch articles")
		return
	}

	items, err := h.feed.BuildArticleResponses(articles, middleware.CurrentUserID(c), false)
	if err != nil {
		fail(c, err, "Failed to fetch articles")
		return
	}
	common.SuccessResponse(c, items, &common.Meta{Page: page, Limit: limit, Total: total})
}

// GetBySlug handles GET /api/v1/articles/:slug
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	article, err := h.articles.GetBySlug(c.Param("slug"))
	if err != nil {
		fail(c, err, "Failed to fetch article")
		return
	}

	items, err := h.feed.BuildArticleResponses([]domain.Article{*article}, middleware.CurrentUserID(c), true)
	if err != nil {
		fail(c, err, "Failed to fetch article")
		return
	}
	common.SuccessResponse(c, items[0], nil)
}

// Create handles POST /api/v1/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req domain.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	article, err := h.articles.Create(middleware.CurrentUser(c), &req)
	if err != nil {
		fail(c, err, "Failed to create article")
		return
	}
	h.feed.InvalidateFeed(c.Request.Context())
	c.JSON(201, common.APIResponse{Data: article})
}

// Update handles PATCH /api/v1/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid article ID", err)
		return
	}

	var req domain.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	article, err := h.articles.Update(middleware.CurrentUser(c), id, &req)
	if err != nil {
		fail(c, err, "Failed to update article")
		return
	}
	h.feed.InvalidateFeed(c.Request.Context())
	common.SuccessResponse(c, article, nil)
}

// ListRevisions handles GET /api/v1/articles/:id/revisions
func (h *ArticleHandler) ListRevisions(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid article ID", err)
		return
	}

	revisions, err := h.articles.ListRevisions(middleware.CurrentUser(c), id)
	if err != nil {
		fail(c, err, "Failed to fetch revisions")
		return
	}
	common.SuccessResponse(c, revisions, nil)
}

// Delete handles DELETE /api/v1/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid article ID", err)
		return
	}

	if err := h.articles.Delete(middleware.CurrentUser(c), id); err != nil {
		fail(c, err, "Failed to delete article")
		return
	}
	h.feed.InvalidateFeed(c.Request.Context())
	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}
