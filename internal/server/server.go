// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"chirp/internal/cache"
	"chirp/internal/config"
	"chirp/internal/database"
	"chirp/internal/middleware"
	"chirp/internal/models"
	"chirp/internal/repository"
	"chirp/internal/service"
	"chirp/internal/token"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config          *config.Config
	db              *gorm.DB
	redis           *redis.Client
	app             *fiber.App
	promMiddleware  *fiberprometheus.FiberPrometheus
	tokens          *token.Service
	userRepo        repository.UserRepository
	tweetRepo       repository.TweetRepository
	replyRepo       repository.ReplyRepository
	favoriteRepo    repository.FavoriteRepository
	followRepo      repository.FollowRepository
	userService     *service.UserService
	tweetService    *service.TweetService
	replyService    *service.ReplyService
	favoriteService *service.FavoriteService
	followService   *service.FollowService
}

// NewServer creates a server instance, establishing the database and
// Redis connections itself.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized
// dependencies. Tests use this with sqlite and miniredis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	userRepo := repository.NewUserRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	replyRepo := repository.NewReplyRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	followRepo := repository.NewFollowRepository(db)

	s := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("chirp-api"),
		tokens:         token.NewService(cfg.JWTSecret, token.DefaultTTL),
		userRepo:       userRepo,
		tweetRepo:      tweetRepo,
		replyRepo:      replyRepo,
		favoriteRepo:   favoriteRepo,
		followRepo:     followRepo,
	}
	s.userService = service.NewUserService(userRepo)
	s.tweetService = service.NewTweetService(tweetRepo)
	s.replyService = service.NewReplyService(replyRepo)
	s.favoriteService = service.NewFavoriteService(favoriteRepo, tweetRepo)
	s.followService = service.NewFollowService(followRepo, userRepo)

	return s, nil
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID
	app.Use(middleware.ContextMiddleware())

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS must run before middlewares that can short-circuit (e.g.
	// limiter) so browser clients still receive CORS headers on error
	// responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	authed := middleware.AuthRequired(s.tokens)
	optional := middleware.OptionalAuth(s.tokens)

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Credential routes
	app.Post("/sign-up", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "signup"), s.SignUp)
	app.Post("/sign-in", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "signin"), s.SignIn)
	app.Post("/sign-out", s.SignOut)

	// Own-profile routes
	me := app.Group("/me", authed)
	me.Get("/", s.Me)
	me.Get("/tweets", s.MyTweets)
	me.Get("/replies", s.MyReplies)
	me.Get("/tweets-and-replies", s.MyTweetsAndReplies)
	me.Get("/favorites", s.MyFavorites)
	me.Get("/followers", s.MyFollowers)
	me.Get("/following", s.MyFollowing)
	me.Put("/change-username", s.ChangeUserName)
	me.Put("/change-password", s.ChangePassword)
	me.Put("/change-bio", s.ChangeBio)

	// User routes. Specific /:userId/:resource routes come before the
	// generic /:userId route.
	users := app.Group("/users")
	users.Get("/:userId/tweets", authed, s.UserTweets)
	users.Get("/:userId/replies", authed, s.UserReplies)
	users.Get("/:userId/favorites", authed, s.UserFavorites)
	users.Get("/:userId/followers", optional, s.UserFollowers)
	users.Get("/:userId/following", optional, s.UserFollowing)
	users.Post("/:userId/follow", authed, s.FollowUser)
	users.Delete("/:userId/follow", authed, s.UnfollowUser)
	users.Get("/:userId", optional, s.UserProfile)

	// Tweet routes
	tweets := app.Group("/tweets", authed)
	tweets.Get("/", s.Feed)
	tweets.Post("/", s.CreateTweet)
	tweets.Post("/:tweetId/favorites", s.FavoriteTweet)
	tweets.Delete("/:tweetId/favorites", s.UnfavoriteTweet)
	tweets.Delete("/:tweetId", s.DeleteTweet)

	// Reply routes
	app.Post("/replies", authed, s.CreateReply)

	// JSON fallback for unknown routes
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Page not found",
		})
	})
}

// LivenessCheck handles liveness probe requests.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if err := database.Ping(ctx, s.db); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// The app runs uncached without Redis; readiness reports it
		// but does not fail on it.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start builds the Fiber app and begins serving.
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Chirp API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
