package main

import (
	"github.com/gin-gonic/gin"
	"github.com/taskify-app/taskify-api/internal/auth"
	"github.com/taskify-app/taskify-api/internal/config"
	"github.com/taskify-app/taskify-api/internal/database"
	"github.com/taskify-app/taskify-api/internal/handlers"
	"github.com/taskify-app/taskify-api/internal/logger"
	"github.com/taskify-app/taskify-api/internal/middleware"
	"github.com/taskify-app/taskify-api/internal/repository"
	"github.com/taskify-app/taskify-api/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(0).Fatal("failed to load config", "error", err)
	}

	log := logger.New(cfg.LogLevel)

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatal("failed to run migrations", "error", err)
	}

	db := database.GetDB()

	if cfg.SeedDemoData {
		if err := database.Seed(db); err != nil {
			log.Fatal("failed to seed demo data", "error", err)
		}
	}

	tokens := auth.NewTokenManager(cfg.JWT)

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	authService := services.NewAuthService(userRepo, tokens, log)
	taskService := services.NewTaskService(taskRepo)

	authHandler := handlers.NewAuthHandler(authService, log)
	taskHandler := handlers.NewTaskHandler(taskService, log)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.Recovery(log))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Taskify API is running",
		})
	})

	// Auth routes (public)
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/validate", authHandler.Validate)
	}

	// Task routes (protected)
	tasks := r.Group("/tasks")
	tasks.Use(middleware.RequireAuth(tokens))
	{
		tasks.POST("", taskHandler.Create)
		tasks.GET("", taskHandler.List)
		tasks.GET("/filter", taskHandler.Filter)
		tasks.GET("/:id", taskHandler.Get)
		tasks.PUT("/:id", taskHandler.Update)
		tasks.DELETE("/:id", taskHandler.Delete)
	}

	log.Info("server starting", "port", cfg.HTTPPort)
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal("failed to start server", "error", err)
	}
}
