package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kevaluacion/project-management-api/internal/config"
	"github.com/kevaluacion/project-management-api/internal/database"
	"github.com/kevaluacion/project-management-api/internal/handlers"
	"github.com/kevaluacion/project-management-api/internal/middleware"
	"github.com/kevaluacion/project-management-api/internal/repository"
	"github.com/kevaluacion/project-management-api/internal/services"
	"github.com/kevaluacion/project-management-api/internal/utils"
	"github.com/kevaluacion/project-management-api/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)
	utils.SetJWTSecret(cfg.JWT.Secret)

	// Connect to database and run migrations
	if err := database.Connect(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Services
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo, cfg.JWT.TTL)
	projectService := services.NewProjectService(projectRepo, userRepo)
	taskService := services.NewTaskService(taskRepo, userRepo, projectRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)

	r := gin.New()
	r.Use(logger.GinLogger())
	r.Use(logger.GinRecovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORS.AllowOrigins) == 1 && cfg.CORS.AllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// The access gate attaches an identity when a valid bearer token is
	// present; anonymous requests proceed and are rejected per-operation.
	r.Use(middleware.Authenticate())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	users := r.Group("/users")
	{
		users.GET("", userHandler.ListAll)
		users.POST("", userHandler.Create)
		users.GET("/:id", userHandler.GetByID)
	}

	projects := r.Group("/projects")
	{
		projects.POST("", middleware.RequireAuth(), projectHandler.Create)
		projects.GET("", middleware.RequireAuth(), projectHandler.ListOwned)
		projects.PUT("/:id", projectHandler.Update)
		projects.DELETE("/:id", projectHandler.Delete)
	}

	tasks := r.Group("/tasks")
	{
		tasks.POST("", middleware.RequireAuth(), taskHandler.Create)
		tasks.GET("", middleware.RequireAuth(), taskHandler.ListForUser)
		tasks.GET("/project/:projectId", taskHandler.ListForProject)
		tasks.PUT("/:id", taskHandler.Update)
		tasks.DELETE("/:id", taskHandler.Delete)
	}

	logger.Infof("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
