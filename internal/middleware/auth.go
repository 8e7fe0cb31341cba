package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/devconnect/backend/internal/service"
)

// TokenHeader is the request header the client presents its token in.
const TokenHeader = "x-auth-token"

// ContextUserID is the gin context key the guard stores the caller under.
const ContextUserID = "user_id"

// TokenVerifier verifies a signed token and returns the bound account id.
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// Auth is the request guard for private endpoints: it extracts the token
// from the header, verifies it, and attaches the account id to the
// context. Public endpoints never pass through it.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no token, authorization denied"})
			return
		}

		userID, err := verifier.Verify(token)
		if err != nil {
			msg := "token is not valid"
			if errors.Is(err, service.ErrTokenExpired) {
				msg = "token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID pulls the authenticated account id set by Auth.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
