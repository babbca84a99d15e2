package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/thinkribbon/backend/internal/common"
)

// statusFor maps service sentinel errors to HTTP statuses
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrExpiredToken):
		return 401
	case errors.Is(err, common.ErrForbidden):
		return 403
	case errors.Is(err, common.ErrNotFound),
		errors.Is(err, common.ErrUserNotFound),
		errors.Is(err, common.ErrPostNotFound),
		errors.Is(err, common.ErrArticleNotFound),
		errors.Is(err, common.ErrReviewNotFound),
		errors.Is(err, common.ErrCommentNotFound),
		errors.Is(err, common.ErrGameNotFound),
		errors.Is(err, common.ErrEntryNotFound):
		return 404
	case errors.Is(err, common.ErrDuplicateReview),
		errors.Is(err, common.ErrAlreadyFollowed),
		errors.Is(err, common.ErrDraftLimit):
		return 409
	case errors.Is(err, common.ErrInvalidInput),
		errors.Is(err, common.ErrInvalidRating),
		errors.Is(err, common.ErrSelfFollow):
		return 400
	default:
		return 500
	}
}

// fail writes the mapped error response for a service error
func fail(c *gin.Context, err error, message string) {
	status := statusFor(err)
	if status == 500 {
		common.ErrorResponse(c, status, message, err)
		return
	}
	common.ErrorResponse(c, status, err.Error(), nil)
}
