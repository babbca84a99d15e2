package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/middleware"
	"github.com/thinkribbon/backend/internal/service"
	"github.com/thinkribbon/backend/pkg/ginutil"
)

type UserHandler struct {
	identity *service.IdentityService
	follows  *service.FollowService
	posts    *service.PostService
	feed     *service.FeedService
}

func NewUserHandler(identity *service.IdentityService, follows *service.FollowService, posts *service.PostService, feed *service.FeedService) *UserHandler {
	return &UserHandler{identity: identity, follows: follows, posts: posts, feed: feed}
}

// GetProfile handles GET /api/v1/users/:username
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.identity.GetProfile(c.Param("username"))
	if err != nil {
		fail(c, err, "Failed to fetch user")
		return
	}

	counts, err := h.follows.Counts(user.ID)
	if err != nil {
		fail(c, err, "Failed to fetch follow counts")
		return
	}
	following, err := h.follows.IsFollowing(middleware.CurrentUserID(c), user.ID)
	if err != nil {
		fail(c, err, "Failed to fetch follow state")
		return
	}

	common.SuccessResponse(c, gin.H{
		"user":      user,
		"followers": counts.Followers,
		"following": counts.Following,
		"followed":  following,
	}, nil)
}

// ListPosts handles GET /api/v1/users/:username/posts — unpublished
// posts appear only for the author or an admin
func (h *UserHandler) ListPosts(c *gin.Context) {
	user, err := h.identity.GetProfile(c.Param("username"))
	if err != nil {
		fail(c, err, "Failed to fetch user")
		return
	}

	page := ginutil.QueryInt(c, "page", 1)
	limit := ginutil.QueryInt(c, "limit", 20)

	posts, total, err := h.posts.ListByAuthor(middleware.CurrentUser(c), user.ID, page, limit)
	if err != nil {
		fail(c, err, "Failed to fetch posts")
		return
	}

	items, err := h.feed.BuildPostResponses(posts, middleware.CurrentUserID(c))
	if err != nil {
		fail(c, err, "Failed to fetch posts")
		return
	}
	common.SuccessResponse(c, items, &common.Meta{Page: page, Limit: limit, Total: total})
}

// Follow handles POST /api/v1/users/:username/follow
func (h *UserHandler) Follow(c *gin.Context) {
	user, err := h.identity.GetProfile(c.Param("username"))
	if err != nil {
		fail(c, err, "Failed to fetch user")
		return
	}

	if err := h.follows.Follow(middleware.CurrentUser(c), user.ID); err != nil {
		fail(c, err, "Failed to follow")
		return
	}
	common.SuccessResponse(c, gin.H{"followed": true}, nil)
}

// Unfollow handles DELETE /api/v1/users/:username/follow
func (h *UserHandler) Unfollow(c *gin.Context) {
	user, err := h.identity.GetProfile(c.Param("username"))
	if err != nil {
		fail(c, err, "Failed to fetch user")
		return
	}

	if err := h.follows.Unfollow(middleware.CurrentUser(c), user.ID); err != nil {
		fail(c, err, "Failed to unfollow")
		return
	}
	common.SuccessResponse(c, gin.H{"followed": false}, nil)
}
