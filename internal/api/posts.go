package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devconnect/backend/internal/middleware"
	"github.com/devconnect/backend/internal/service"
)

// PostHandler serves posts and their like and comment lists. Everything
// here is private.
type PostHandler struct {
	posts *service.PostService
}

func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// Create handles POST /api/posts.
func (h *PostHandler) Create(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationFailed("invalid request body"))
		return
	}
	if msgs := req.validate(); len(msgs) > 0 {
		c.JSON(http.StatusBadRequest, validationFailed(msgs...))
		return
	}

	post, err := h.posts.Create(c.Request.Context(), userID, req.Text)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// List handles GET /api/posts, most recent first.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Get handles GET /api/posts/:id.
func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.posts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "post not found"})
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /api/posts/:id; author only.
func (h *PostHandler) Delete(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	if err := h.posts.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "post not found"})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "post removed"})
}

// Like handles PUT /api/posts/like/:id.
func (h *PostHandler) Like(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	likes, err := h.posts.Like(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "post not found"})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, likes)
}

// Unlike handles PUT /api/posts/unlike/:id.
func (h *PostHandler) Unlike(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	likes, err := h.posts.Unlike(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "post not found"})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, likes)
}

// AddComment handles POST /api/posts/comment/:id.
func (h *PostHandler) AddComment(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationFailed("invalid request body"))
		return
	}
	if msgs := req.validate(); len(msgs) > 0 {
		c.JSON(http.StatusBadRequest, validationFailed(msgs...))
		return
	}

	comments, err := h.posts.AddComment(c.Request.Context(), userID, c.Param("id"), req.Text)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "post not found"})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// DeleteComment handles DELETE /api/posts/comment/:id/:comment_id;
// comment author only.
func (h *PostHandler) DeleteComment(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	comments, err := h.posts.DeleteComment(c.Request.Context(), userID, c.Param("id"), c.Param("comment_id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "comment does not exist"})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}
