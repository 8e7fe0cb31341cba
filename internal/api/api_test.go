package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/devconnect/backend/config"
	"github.com/devconnect/backend/internal/api"
	"github.com/devconnect/backend/internal/middleware"
	"github.com/devconnect/backend/internal/router"
	"github.com/devconnect/backend/internal/service"
	"github.com/devconnect/backend/internal/testhelpers"
)

// setupAPITest wires the full route table over an in-memory database,
// with Redis-backed features disabled.
func setupAPITest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	tokens := service.NewTokenService("test-secret", time.Hour)
	authSvc := service.NewAuthService(db, tokens)
	profileSvc := service.NewProfileService(db)
	postSvc := service.NewPostService(db)
	githubSvc := service.NewGithubService(&config.Config{}, nil)
	imageSvc := service.NewImageService(nil)
	limiter := middleware.NewRateLimiter(nil, router.DefaultRateLimit)

	engine := router.Setup(
		api.NewAuthHandler(authSvc),
		api.NewProfileHandler(profileSvc, authSvc, githubSvc, imageSvc),
		api.NewPostHandler(postSvc),
		tokens,
		limiter,
	)
	return engine, db
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, engine *gin.Engine, name, email string) string {
	t.Helper()
	w := doJSON(t, engine, http.MethodPost, "/api/users", "",
		`{"name":"`+name+`","email":"`+email+`","password":"password123"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func uuidString() string { return uuid.NewString() }
