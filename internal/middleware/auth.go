package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
	"github.com/thinkribbon/backend/internal/service"
	"github.com/thinkribbon/backend/pkg/authtoken"
)

const (
	ctxKeyUser    = "current_user"
	ctxKeyClerkID = "clerk_id"
)

// Auth verifies the bearer token and resolves the shadow user. Requests
// without a valid token or without a synced user row are rejected.
func Auth(verifier *authtoken.Verifier, identity *service.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := verifyBearer(c, verifier)
		if !ok {
			c.Abort()
			return
		}

		user, err := identity.Resolve(claims.Subject)
		if err != nil {
			if errors.Is(err, common.ErrUserNotFound) {
				common.ErrorResponse(c, 401, "Account not synced", nil)
			} else {
				common.ErrorResponse(c, 500, "Failed to resolve user", err)
			}
			c.Abort()
			return
		}

		c.Set(ctxKeyClerkID, claims.Subject)
		c.Set(ctxKeyUser, user)
		c.Next()
	}
}

// OptionalAuth resolves the user when a valid token is present and
// continues anonymously otherwise
func OptionalAuth(verifier *authtoken.Verifier, identity *service.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}
		claims, err := verifier.Verify(parts[1])
		if err != nil {
			c.Next()
			return
		}

		user, err := identity.Resolve(claims.Subject)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ctxKeyClerkID, claims.Subject)
		c.Set(ctxKeyUser, user)
		c.Next()
	}
}

// SyncAuth verifies the token without requiring an existing user row.
// Only the sign-in sync endpoint uses it.
func SyncAuth(verifier *authtoken.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := verifyBearer(c, verifier)
		if !ok {
			c.Abort()
			return
		}
		c.Set(ctxKeyClerkID, claims.Subject)
		c.Next()
	}
}

func verifyBearer(c *gin.Context, verifier *authtoken.Verifier) (*authtoken.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		common.ErrorResponse(c, 401, "Missing authorization header", nil)
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		common.ErrorResponse(c, 401, "Invalid authorization header format", nil)
		return nil, false
	}

	claims, err := verifier.Verify(parts[1])
	if err != nil {
		if errors.Is(err, authtoken.ErrExpiredToken) {
			common.ErrorResponse(c, 401, "Token expired", err)
		} else {
			common.ErrorResponse(c, 401, "Invalid token", err)
		}
		return nil, false
	}
	return claims, true
}

// CurrentUser returns the resolved user, nil for anonymous requests
func CurrentUser(c *gin.Context) *domain.User {
	v, exists := c.Get(ctxKeyUser)
	if !exists {
		return nil
	}
	if user, ok := v.(*domain.User); ok {
		return user
	}
	return nil
}

// CurrentUserID returns the resolved user's id, 0 for anonymous
func CurrentUserID(c *gin.Context) uint {
	if user := CurrentUser(c); user != nil {
		return user.ID
	}
	return 0
}

// GetClerkID returns the verified external identity id
func GetClerkID(c *gin.Context) string {
	v, exists := c.Get(ctxKeyClerkID)
	if !exists {
		return ""
	}
	if id, ok := v.(string); ok {
		return id
	}
	return ""
}
