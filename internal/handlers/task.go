package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kevaluacion/project-management-api/internal/dto"
	apierrors "github.com/kevaluacion/project-management-api/internal/errors"
	"github.com/kevaluacion/project-management-api/internal/middleware"
	"github.com/kevaluacion/project-management-api/internal/services"
)

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// Create persists a new task under an existing project.
func (h *TaskHandler) Create(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Create(services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		State:       req.State,
		DueDate:     dateValue(req.DueDate),
		AssignedTo:  req.AssignedTo,
		ProjectID:   req.ProjectID,
	}, identity)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskResponse(*task))
}

// ListForUser returns the authenticated user's ACTIVE tasks, optionally
// bounded by dateFrom/dateTo query params (inclusive, format 2006-01-02).
func (h *TaskHandler) ListForUser(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	dateFrom, err := parseDateParam(c.Query("dateFrom"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid dateFrom, expected "+dto.DateLayout)
		return
	}
	dateTo, err := parseDateParam(c.Query("dateTo"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid dateTo, expected "+dto.DateLayout)
		return
	}

	tasks, err := h.taskService.ListForUser(identity, dateFrom, dateTo)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponses(tasks))
}

// ListForProject returns the ACTIVE tasks under a project.
func (h *TaskHandler) ListForProject(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("projectId"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid project ID")
		return
	}

	tasks, err := h.taskService.ListForProject(projectID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponses(tasks))
}

// Update applies a partial update to a task.
func (h *TaskHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	var req dto.TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	identity, _ := middleware.GetIdentity(c)
	task, err := h.taskService.Update(id, services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		State:       req.State,
		DueDate:     dateValue(req.DueDate),
		AssignedTo:  req.AssignedTo,
		ProjectID:   req.ProjectID,
	}, identity.Email)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(*task))
}

// Delete soft-deletes a task.
func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	identity, _ := middleware.GetIdentity(c)
	if err := h.taskService.SoftDelete(id, identity.Email); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func dateValue(d *dto.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
