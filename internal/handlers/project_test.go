package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevaluacion/project-management-api/internal/dto"
	apierrors "github.com/kevaluacion/project-management-api/internal/errors"
	"github.com/kevaluacion/project-management-api/internal/models"
)

func TestProjectHandler_Create(t *testing.T) {
	r := setupRouter(t)
	token := registerAndLogin(t, r, "alice", "alice@example.com")

	w := performJSON(t, r, http.MethodPost, "/projects", token, gin.H{
		"name":        "Website Redesign",
		"description": "Refresh the landing pages",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp dto.ProjectResponse
	decodeJSON(t, w, &resp)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Website Redesign", resp.Name)
	assert.Equal(t, models.StatusActive, resp.Status)
	assert.Equal(t, "alice", resp.OwnerUsername)
}

func TestProjectHandler_Create_RequiresAuth(t *testing.T) {
	r := setupRouter(t)

	w := performJSON(t, r, http.MethodPost, "/projects", "", gin.H{
		"name": "Website Redesign",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var body apierrors.ErrorResponse
	decodeJSON(t, w, &body)
	assert.Equal(t, http.StatusUnauthorized, body.Status)
	assert.Equal(t, "Unauthorized", body.Error)
}

func TestProjectHandler_Create_InvalidBody(t *testing.T) {
	r := setupRouter(t)
	token := registerAndLogin(t, r, "alice", "alice@example.com")

	// Name shorter than the 3-character minimum.
	w := performJSON(t, r, http.MethodPost, "/projects", token, gin.H{
		"name": "ab",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectHandler_ListOwned(t *testing.T) {
	r := setupRouter(t)
	aliceToken := registerAndLogin(t, r, "alice", "alice@example.com")
	bobToken := registerAndLogin(t, r, "bob", "bob@example.com")

	createProject(t, r, aliceToken, "Alice One")
	createProject(t, r, bobToken, "Bob One")
	createProject(t, r, aliceToken, "Alice Two")

	w := performJSON(t, r, http.MethodGet, "/projects", aliceToken, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []dto.ProjectResponse
	decodeJSON(t, w, &resp)
	require.Len(t, resp, 2)
	assert.Equal(t, "Alice One", resp[0].Name)
	assert.Equal(t, "Alice Two", resp[1].Name)
	assert.Less(t, resp[0].ID, resp[1].ID)
}

func TestProjectHandler_ListOwned_EmptyIsArray(t *testing.T) {
	r := setupRouter(t)
	token := registerAndLogin(t, r, "alice", "alice@example.com")

	w := performJSON(t, r, http.MethodGet, "/projects", token, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestProjectHandler_Update(t *testing.T) {
	r := setupRouter(t)
	token := registerAndLogin(t, r, "alice", "alice@example.com")
	id := createProject(t, r, token, "Old Name")

	w := performJSON(t, r, http.MethodPut, fmt.Sprintf("/projects/%d", id), token, gin.H{
		"name":        "New Name",
		"description": "rewritten",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.ProjectResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, "New Name", resp.Name)
	assert.Equal(t, "rewritten", resp.Description)
	assert.Equal(t, models.StatusActive, resp.Status)
}

func TestProjectHandler_Update_NotFound(t *testing.T) {
	r := setupRouter(t)
	token := registerAndLogin(t, r, "alice", "alice@example.com")

	w := performJSON(t, r, http.MethodPut, "/projects/42", token, gin.H{
		"name": "New Name",
	})

	require.Equal(t, http.StatusNotFound, w.Code)
	var body apierrors.ErrorResponse
	decodeJSON(t, w, &body)
	assert.Equal(t, "Project not found, ID: 42", body.Message)
}

func TestProjectHandler_Delete_CascadesToTasks(t *testing.T) {
	r := setupRouter(t)
	token := registerAndLogin(t, r, "alice", "alice@example.com")
	id := createProject(t, r, token, "Doomed Project")

	w := performJSON(t, r, http.MethodPost, "/tasks", token, gin.H{
		"title":      "Doomed Task",
		"project_id": id,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = performJSON(t, r, http.MethodDelete, fmt.Sprintf("/projects/%d", id), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	// The project disappears from the owner's active listing.
	w = performJSON(t, r, http.MethodGet, "/projects", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	// Its tasks disappear from the project's active listing.
	w = performJSON(t, r, http.MethodGet, fmt.Sprintf("/tasks/project/%d", id), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestProjectHandler_Delete_NotFound(t *testing.T) {
	r := setupRouter(t)
	token := registerAndLogin(t, r, "alice", "alice@example.com")

	w := performJSON(t, r, http.MethodDelete, "/projects/42", token, nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	var body apierrors.ErrorResponse
	decodeJSON(t, w, &body)
	assert.Equal(t, "Project not found, ID: 42", body.Message)
}
