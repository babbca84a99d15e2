package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
	ErrUserNotFound = errors.New("user not found")

	// Content errors
	ErrPostNotFound    = errors.New("post not found")
	ErrArticleNotFound = errors.New("article not found")
	ErrReviewNotFound  = errors.New("review not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrGameNotFound    = errors.New("game not found")
	ErrEntryNotFound   = errors.New("entry not found")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrDuplicateReview = errors.New("a review for this game already exists")
	ErrDraftLimit      = errors.New("draft limit reached")
	ErrAlreadyFollowed = errors.New("already following this user")
	ErrSelfFollow      = errors.New("cannot follow yourself")
)
