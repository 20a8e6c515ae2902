package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lakhoreJanvi/feedback-system/internal/auth"
	"github.com/lakhoreJanvi/feedback-system/internal/config"
	"github.com/lakhoreJanvi/feedback-system/internal/database"
	"github.com/lakhoreJanvi/feedback-system/internal/handler"
	"github.com/lakhoreJanvi/feedback-system/internal/middleware"
	"github.com/lakhoreJanvi/feedback-system/internal/repository"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Initialize JWT service
	jwtService := auth.NewJWTService(cfg)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	authRepo := repository.NewAuthRepository(db)
	if err := authRepo.CleanupExpiredTokens(); err != nil {
		log.Printf("Failed to clean up expired refresh tokens: %v", err)
	}
	feedbackRepo := repository.NewFeedbackRepository(db)
	requestRepo := repository.NewRequestRepository(db)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userRepo, authRepo, jwtService)
	userHandler := handler.NewUserHandler(userRepo)
	feedbackHandler := handler.NewFeedbackHandler(feedbackRepo, userRepo)
	requestHandler := handler.NewRequestHandler(requestRepo, userRepo)

	// Initialize auth middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"error": fiber.Map{
					"code":    "INTERNAL_ERROR",
					"message": err.Error(),
				},
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORS.Origins, ","),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
	}))

	// API v1 routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes
	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/refresh", authHandler.Refresh)
	authRoutes.Post("/logout", authMiddleware.Required(), authHandler.Logout)
	authRoutes.Post("/logout-all", authMiddleware.Required(), authHandler.LogoutAll)

	// Profile
	api.Get("/me", authMiddleware.Required(), authHandler.Me)

	// Directory routes
	userRoutes := api.Group("/users", authMiddleware.Required())
	userRoutes.Get("/team", userHandler.ListTeam)
	userRoutes.Get("/employees", userHandler.ListEmployees)
	userRoutes.Get("/managers", userHandler.ListManagers)

	// Feedback routes
	feedbackRoutes := api.Group("/feedback", authMiddleware.Required())
	feedbackRoutes.Post("/", feedbackHandler.Create)
	feedbackRoutes.Get("/given", feedbackHandler.ListGiven)
	feedbackRoutes.Get("/received", feedbackHandler.ListReceived)
	feedbackRoutes.Get("/team", feedbackHandler.ListTeam)
	feedbackRoutes.Put("/:id", feedbackHandler.Update)
	feedbackRoutes.Post("/:id/acknowledge", feedbackHandler.Acknowledge)
	feedbackRoutes.Post("/:id/comments", feedbackHandler.Comment)

	// Feedback request routes
	requestRoutes := api.Group("/feedback-requests", authMiddleware.Required())
	requestRoutes.Post("/", requestHandler.Create)
	requestRoutes.Get("/", requestHandler.List)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
