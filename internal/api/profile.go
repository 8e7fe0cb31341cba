package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/devconnect/backend/internal/middleware"
	"github.com/devconnect/backend/internal/models"
	"github.com/devconnect/backend/internal/service"
)

// ProfileHandler serves the profile document, its experience and
// education lists, the avatar upload, and the GitHub repo passthrough.
type ProfileHandler struct {
	profiles *service.ProfileService
	auth     *service.AuthService
	github   *service.GithubService
	images   *service.ImageService
}

func NewProfileHandler(profiles *service.ProfileService, auth *service.AuthService, github *service.GithubService, images *service.ImageService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, auth: auth, github: github, images: images}
}

// Me handles GET /api/profile/me.
func (h *ProfileHandler) Me(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	profile, err := h.profiles.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "there is no profile for this user"})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Upsert handles POST /api/profile: create on first submission, merge
// present fields thereafter.
func (h *ProfileHandler) Upsert(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationFailed("invalid request body"))
		return
	}

	_, err := h.profiles.Get(c.Request.Context(), userID)
	isCreate := errors.Is(err, service.ErrNotFound)
	if err != nil && !isCreate {
		writeError(c, err)
		return
	}

	if msgs := req.validate(isCreate); len(msgs) > 0 {
		c.JSON(http.StatusBadRequest, validationFailed(msgs...))
		return
	}

	profile, err := h.profiles.Upsert(c.Request.Context(), userID, service.ProfileInput{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Status:         req.Status,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Skills:         req.Skills,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// List handles GET /api/profile (public).
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profiles.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// GetByUser handles GET /api/profile/user/:id (public).
func (h *ProfileHandler) GetByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "profile not found"})
		return
	}

	profile, err := h.profiles.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "profile not found"})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Delete handles DELETE /api/profile: removes the profile, the account,
// and everything the account owns.
func (h *ProfileHandler) Delete(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	if err := h.auth.Delete(c.Request.Context(), userID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "user deleted"})
}

// AddExperience handles PUT /api/profile/experience.
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationFailed("invalid request body"))
		return
	}
	if msgs := req.validate(); len(msgs) > 0 {
		c.JSON(http.StatusBadRequest, validationFailed(msgs...))
		return
	}

	profile, err := h.profiles.AddExperience(c.Request.Context(), userID, models.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        *req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// RemoveExperience handles DELETE /api/profile/experience/:id.
func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "experience not found"})
		return
	}

	profile, err := h.profiles.RemoveExperience(c.Request.Context(), userID, entryID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "experience not found"})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// AddEducation handles PUT /api/profile/education.
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationFailed("invalid request body"))
		return
	}
	if msgs := req.validate(); len(msgs) > 0 {
		c.JSON(http.StatusBadRequest, validationFailed(msgs...))
		return
	}

	profile, err := h.profiles.AddEducation(c.Request.Context(), userID, models.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         *req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// RemoveEducation handles DELETE /api/profile/education/:id.
func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "education not found"})
		return
	}

	profile, err := h.profiles.RemoveEducation(c.Request.Context(), userID, entryID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "education not found"})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Github handles GET /api/profile/github/:username (public).
func (h *ProfileHandler) Github(c *gin.Context) {
	repos, err := h.github.Repos(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "No Github profile found"})
			return
		}
		writeError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", repos)
}

// UploadAvatar handles PUT /api/profile/avatar (multipart field "image").
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	if !h.images.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "avatar upload is not configured"})
		return
	}

	userID, _ := middleware.UserID(c)

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, validationFailed("image file is required"))
		return
	}
	defer file.Close()

	url, err := h.images.UploadAvatar(c.Request.Context(), userID, header.Header.Get("Content-Type"), file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profiles.SetAvatarURL(c.Request.Context(), userID, url)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "there is no profile for this user"})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
