package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
	"github.com/thinkribbon/backend/internal/middleware"
	"github.com/thinkribbon/backend/internal/service"
	"github.com/thinkribbon/backend/pkg/ginutil"
)

type ReviewHandler struct {
	reviews *service.ReviewService
	feed    *service.FeedService
}

func NewReviewHandler(reviews *service.ReviewService, feed *service.FeedService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, feed: feed}
}

// Get handles GET /api/v1/reviews/:id
func (h *ReviewHandler) Get(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid review ID", err)
		return
	}

	review, err := h.reviews.Get(id)
	if err != nil {
		fail(c, err, "Failed to fetch review")
		return
	}

	items, err := h.feed.BuildReviewResponses([]domain.Review{*review}, middleware.CurrentUserID(c))
	if err != nil {
		fail(c, err, "Failed to fetch review")
		return
	}
	common.SuccessResponse(c, items[0], nil)
}

// Create handles POST /api/v1/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var req domain.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	review, err := h.reviews.Create(middleware.CurrentUser(c), &req)
	if err != nil {
		fail(c, err, "Failed to create review")
		return
	}
	h.feed.InvalidateFeed(c.Request.Context())
	c.JSON(201, common.APIResponse{Data: review})
}

// Update handles PATCH /api/v1/reviews/:id
func (h *ReviewHandler) Update(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid review ID", err)
		return
	}

	var req domain.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	review, err := h.reviews.Update(middleware.CurrentUser(c), id, &req)
	if err != nil {
		fail(c, err, "Failed to update review")
		return
	}
	h.feed.InvalidateFeed(c.Request.Context())
	common.SuccessResponse(c, review, nil)
}

// Delete handles DELETE /api/v1/reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid review ID", err)
		return
	}

	if err := h.reviews.Delete(middleware.CurrentUser(c), id); err != nil {
		fail(c, err, "Failed to delete review")
		return
	}
	h.feed.InvalidateFeed(c.Request.Context())
	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}
