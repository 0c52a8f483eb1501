package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kevaluacion/project-management-api/internal/middleware"
	"github.com/kevaluacion/project-management-api/internal/models"
	"github.com/kevaluacion/project-management-api/internal/repository"
	"github.com/kevaluacion/project-management-api/internal/services"
	"github.com/kevaluacion/project-management-api/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.SetJWTSecret("test-secret-key-for-testing")
}

// setupRouter wires the full HTTP surface against an in-memory database,
// mirroring the wiring in cmd/server.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Project{}, &models.Task{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo, time.Hour)
	projectService := services.NewProjectService(projectRepo, userRepo)
	taskService := services.NewTaskService(taskRepo, userRepo, projectRepo)

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService)
	projectHandler := NewProjectHandler(projectService)
	taskHandler := NewTaskHandler(taskService)

	r := gin.New()
	r.Use(middleware.Authenticate())

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

	return r
}

// performJSON issues a request with an optional JSON body and bearer token.
func performJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// registerAndLogin creates a user through the API and returns a session token.
func registerAndLogin(t *testing.T, r *gin.Engine, username, email string) string {
	t.Helper()

	w := performJSON(t, r, http.MethodPost, "/users", "", gin.H{
		"username": username,
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = performJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	decodeJSON(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// createProject creates a project through the API and returns its id.
func createProject(t *testing.T, r *gin.Engine, token, name string) uint64 {
	t.Helper()

	w := performJSON(t, r, http.MethodPost, "/projects", token, gin.H{
		"name":        name,
		"description": "created in test",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID uint64 `json:"id"`
	}
	decodeJSON(t, w, &resp)
	return resp.ID
}
