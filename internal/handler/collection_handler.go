package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
	"github.com/thinkribbon/backend/internal/middleware"
	"github.com/thinkribbon/backend/internal/service"
	"github.com/thinkribbon/backend/pkg/ginutil"
)

type CollectionHandler struct {
	collection *service.CollectionService
	identity   *service.IdentityService
}

func NewCollectionHandler(collection *service.CollectionService, identity *service.IdentityService) *CollectionHandler {
	return &CollectionHandler{collection: collection, identity: identity}
}

// List handles GET /api/v1/users/:username/collection
func (h *CollectionHandler) List(c *gin.Context) {
	user, err := h.identity.GetProfile(c.Param("username"))
	if err != nil {
		fail(c, err, "Failed to fetch user")
		return
	}

	page := ginutil.QueryInt(c, "page", 1)
	limit := ginutil.QueryInt(c, "limit", 20)

	items, total, err := h.collection.List(user.ID, page, limit)
	if err != nil {
		fail(c, err, "Failed to fetch collection")
		return
	}
	common.SuccessResponse(c, items, &common.Meta{Page: page, Limit: limit, Total: total})
}

// Upsert handles PUT /api/v1/collection
func (h *CollectionHandler) Upsert(c *gin.Context) {
	var req domain.UpsertCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	entry, err := h.collection.Upsert(middleware.CurrentUser(c), &req)
	if err != nil {
		fail(c, err, "Failed to update collection")
		return
	}
	common.SuccessResponse(c, entry, nil)
}

// Remove handles DELETE /api/v1/collection/:id
func (h *CollectionHandler) Remove(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid entry ID", err)
		return
	}

	if err := h.collection.Remove(middleware.CurrentUser(c), id); err != nil {
		fail(c, err, "Failed to remove collection entry")
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}
