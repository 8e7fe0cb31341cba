package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devconnect/backend/config"
	"github.com/devconnect/backend/internal/api"
	"github.com/devconnect/backend/internal/database"
	"github.com/devconnect/backend/internal/middleware"
	"github.com/devconnect/backend/internal/router"
	"github.com/devconnect/backend/internal/server"
	"github.com/devconnect/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	if redisClient == nil {
		log.Println("Redis not configured; caching and rate limiting disabled")
	}

	s3cfg, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize S3: %v", err)
	}
	if s3cfg == nil {
		log.Println("S3 not configured; avatar upload disabled")
	}

	tokens := service.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	authSvc := service.NewAuthService(db, tokens)
	profileSvc := service.NewProfileService(db)
	postSvc := service.NewPostService(db)
	githubSvc := service.NewGithubService(cfg, redisClient)
	imageSvc := service.NewImageService(s3cfg)

	limiter := middleware.NewRateLimiter(redisClient, router.DefaultRateLimit)

	engine := router.Setup(
		api.NewAuthHandler(authSvc),
		api.NewProfileHandler(profileSvc, authSvc, githubSvc, imageSvc),
		api.NewPostHandler(postSvc),
		tokens,
		limiter,
	)

	srv := server.New(engine, net.JoinHostPort(cfg.ServerHost, cfg.ServerPort))

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s:%s", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
