package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devconnect/backend/internal/api"
	"github.com/devconnect/backend/internal/middleware"
)

// Setup builds the route table. Public reads skip the auth guard
// entirely; everything else runs through it.
func Setup(
	authHandler *api.AuthHandler,
	profileHandler *api.ProfileHandler,
	postHandler *api.PostHandler,
	verifier middleware.TokenVerifier,
	limiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS())

	guard := middleware.Auth(verifier)
	throttle := limiter.Middleware()

	// Registration and login carry the brute-force limiter.
	router.POST("/api/users", throttle, authHandler.Register)
	router.POST("/api/auth", throttle, authHandler.Login)
	router.GET("/api/auth", guard, authHandler.Me)

	profile := router.Group("/api/profile")
	{
		profile.GET("", profileHandler.List)
		profile.GET("/user/:id", profileHandler.GetByUser)
		profile.GET("/github/:username", profileHandler.Github)

		profile.GET("/me", guard, profileHandler.Me)
		profile.POST("", guard, profileHandler.Upsert)
		profile.DELETE("", guard, profileHandler.Delete)
		profile.PUT("/experience", guard, profileHandler.AddExperience)
		profile.DELETE("/experience/:id", guard, profileHandler.RemoveExperience)
		profile.PUT("/education", guard, profileHandler.AddEducation)
		profile.DELETE("/education/:id", guard, profileHandler.RemoveEducation)
		profile.PUT("/avatar", guard, profileHandler.UploadAvatar)
	}

	posts := router.Group("/api/posts")
	posts.Use(guard)
	{
		posts.POST("", postHandler.Create)
		posts.GET("", postHandler.List)
		posts.GET("/:id", postHandler.Get)
		posts.DELETE("/:id", postHandler.Delete)
		posts.PUT("/like/:id", postHandler.Like)
		posts.PUT("/unlike/:id", postHandler.Unlike)
		posts.POST("/comment/:id", postHandler.AddComment)
		posts.DELETE("/comment/:id/:comment_id", postHandler.DeleteComment)
	}

	return router
}

// DefaultRateLimit is the fixed-window limit applied to register/login.
var DefaultRateLimit = middleware.RateLimitConfig{
	Window:    time.Minute,
	Limit:     10,
	KeyPrefix: "ratelimit:auth",
}
