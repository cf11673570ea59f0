package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrIdentityMismatch is returned when a request names a user other than the token's
var ErrIdentityMismatch = errors.New("user_id does not match the authenticated user")

// Context keys set by BearerAuth
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
)

// BearerAuth rejects requests without a valid "Authorization: Bearer <token>" header
// and stores the token's user id and username in the gin context.
func BearerAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, "Not authenticated")
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "Rejected bearer token",
				"error", err.Error(),
				"request_id", c.GetString("request_id"),
			)
			if errors.Is(err, ErrTokenExpired) {
				abortUnauthorized(c, "Token has expired")
				return
			}
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Subject)

		c.Next()
	}
}

// CurrentUserID returns the authenticated user id, if any
func CurrentUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}

// ActingUserID returns the user a request acts for. An authenticated caller always
// acts as themselves and may only repeat their own id in claimed; without a token
// claimed is taken as is and may be nil.
func ActingUserID(c *gin.Context, claimed *int64) (*int64, error) {
	id, ok := CurrentUserID(c)
	if !ok {
		return claimed, nil
	}
	if claimed != nil && *claimed != id {
		return nil, ErrIdentityMismatch
	}
	return &id, nil
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func abortUnauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Detail: detail})
}
