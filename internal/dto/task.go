package dto

import (
	"time"

	"github.com/kevaluacion/project-management-api/internal/models"
)

// TaskRequest is the payload for creating a task.
type TaskRequest struct {
	Title       string           `json:"title" binding:"required,min=3,max=100"`
	Description string           `json:"description" binding:"max=255"`
	State       models.TaskState `json:"state"`
	DueDate     *Date            `json:"due_date"`
	AssignedTo  string           `json:"assigned_to"`
	ProjectID   uint64           `json:"project_id" binding:"required"`
}

// TaskUpdateRequest is the partial-update payload: a nil field leaves the
// existing value unchanged, a set field fully replaces it.
type TaskUpdateRequest struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	State       *models.TaskState `json:"state"`
	DueDate     *Date             `json:"due_date"`
	AssignedTo  *string           `json:"assigned_to"`
	ProjectID   *uint64           `json:"project_id"`
}

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID          uint64           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      models.Status    `json:"status"`
	State       models.TaskState `json:"state"`
	DueDate     *Date            `json:"due_date"`
	CreatedAt   time.Time        `json:"created_at"`
	AssignedTo  string           `json:"assigned_to"`
	ProjectID   uint64           `json:"project_id"`
}

// ToTaskResponse converts a Task model to TaskResponse. The assignee
// relation must be preloaded for the username to be populated.
func ToTaskResponse(task models.Task) TaskResponse {
	response := TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		State:       task.State,
		CreatedAt:   task.CreatedAt,
		AssignedTo:  task.AssignedTo.Username,
		ProjectID:   task.ProjectID,
	}
	if task.DueDate != nil {
		due := NewDate(*task.DueDate)
		response.DueDate = &due
	}
	return response
}

// ToTaskResponses converts a slice of tasks, preserving order.
func ToTaskResponses(tasks []models.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = ToTaskResponse(task)
	}
	return responses
}
