package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devconnect/backend/internal/middleware"
	"github.com/devconnect/backend/internal/service"
)

// AuthHandler serves registration, login, and the authenticated account
// read. Account deletion lives on the profile routes to match the client.
type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/users.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationFailed("invalid request body"))
		return
	}
	if msgs := req.validate(); len(msgs) > 0 {
		c.JSON(http.StatusBadRequest, validationFailed(msgs...))
		return
	}

	token, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// Login handles POST /api/auth.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationFailed("invalid request body"))
		return
	}
	if msgs := req.validate(); len(msgs) > 0 {
		c.JSON(http.StatusBadRequest, validationFailed(msgs...))
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// Me handles GET /api/auth: the caller's account, sans password hash.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no token, authorization denied"})
		return
	}

	user, err := h.auth.Load(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
