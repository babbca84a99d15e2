package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
	"github.com/thinkribbon/backend/internal/middleware"
	"github.com/thinkribbon/backend/internal/service"
	"github.com/thinkribbon/backend/pkg/ginutil"
)

type PostHandler struct {
	posts *service.PostService
	feed  *service.FeedService
}

func NewPostHandler(posts *service.PostService, feed *service.FeedService) *PostHandler {
	return &PostHandler{posts: posts, feed: feed}
}

// List handles GET /api/v1/posts — the published post feed
func (h *PostHandler) List(c *gin.Context) {
	page := ginutil.QueryInt(c, "page", 1)
	limit := ginutil.QueryInt(c, "limit", 20)

	items, total, err := h.feed.ListPosts(c.Request.Context(), middleware.CurrentUserID(c), page, limit)
	if err != nil {
		fail(c, err, "Failed to fetch posts")
		return
	}
	common.SuccessResponse(c, items, &common.Meta{Page: page, Limit: limit, Total: total})
}

// Get handles GET /api/v1/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid post ID", err)
		return
	}

	post, err := h.posts.Get(id)
	if err != nil {
		fail(c, err, "Failed to fetch post")
		return
	}

	items, err := h.feed.BuildPostResponses([]domain.Post{*post}, middleware.CurrentUserID(c))
	if err != nil {
		fail(c, err, "Failed to fetch post")
		return
	}
	common.SuccessResponse(c, items[0], nil)
}

// Create handles POST /api/v1/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req domain.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	post, err := h.posts.Create(middleware.CurrentUser(c), &req)
	if err != nil {
		fail(c, err, "Failed to create post")
		return
	}
	h.feed.InvalidateFeed(c.Request.Context())
	c.JSON(201, common.APIResponse{Data: post})
}

// Update handles PATCH /api/v1/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid post ID", err)
		return
	}

	var req domain.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	post, err := h.posts.Update(middleware.CurrentUser(c), id, &req)
	if err != nil {
		fail(c, err, "Failed to update post")
		return
	}
	h.feed.InvalidateFeed(c.Request.Context())
	common.SuccessResponse(c, post, nil)
}

// Delete handles DELETE /api/v1/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid post ID", err)
		return
	}

	if err := h.posts.Delete(middleware.CurrentUser(c), id); err != nil {
		fail(c, err, "Failed to delete post")
		return
	}
	h.feed.InvalidateFeed(c.Request.Context())
	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}
