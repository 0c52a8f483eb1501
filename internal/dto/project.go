package dto

import (
	"time"

	"github.com/kevaluacion/project-management-api/internal/models"
)

// ProjectRequest is the payload for creating or updating a project.
type ProjectRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=100"`
	Description string `json:"description" binding:"max=255"`
}

// ProjectResponse represents a project in API responses.
type ProjectResponse struct {
	ID            uint64        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Status        models.Status `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	OwnerUsername string        `json:"owner_username"`
}

// ToProjectResponse converts a Project model to ProjectResponse. The owner
// relation must be preloaded for the username to be populated.
func ToProjectResponse(project models.Project) ProjectResponse {
	return ProjectResponse{
		ID:            project.ID,
		Name:          project.Name,
		Description:   project.Description,
		Status:        project.Status,
		CreatedAt:     project.CreatedAt,
		OwnerUsername: project.Owner.Username,
	}
}

// ToProjectResponses converts a slice of projects, preserving order.
func ToProjectResponses(projects []models.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = ToProjectResponse(project)
	}
	return responses
}
