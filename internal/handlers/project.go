package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kevaluacion/project-management-api/internal/dto"
	apierrors "github.com/kevaluacion/project-management-api/internal/errors"
	"github.com/kevaluacion/project-management-api/internal/middleware"
	"github.com/kevaluacion/project-management-api/internal/services"
)

// ProjectHandler coordinates project HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// Create persists a new project owned by the authenticated user.
func (h *ProjectHandler) Create(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.Create(services.ProjectInput{
		Name:        req.Name,
		Description: req.Description,
	}, identity)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectResponse(*project))
}

// ListOwned returns the authenticated user's ACTIVE projects.
func (h *ProjectHandler) ListOwned(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	projects, err := h.projectService.ListOwnedBy(identity)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponses(projects))
}

// Update overwrites the name and description of a project.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid project ID")
		return
	}

	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	identity, _ := middleware.GetIdentity(c)
	project, err := h.projectService.Update(id, services.ProjectInput{
		Name:        req.Name,
		Description: req.Description,
	}, identity.Email)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(*project))
}

// Delete soft-deletes a project, cascading to its ACTIVE tasks.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid project ID")
		return
	}

	identity, _ := middleware.GetIdentity(c)
	if err := h.projectService.SoftDelete(id, identity.Email); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
