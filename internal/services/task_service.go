package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apierrors "github.com/kevaluacion/project-management-api/internal/errors"
	"github.com/kevaluacion/project-management-api/internal/middleware"
	"github.com/kevaluacion/project-management-api/internal/models"
	"github.com/kevaluacion/project-management-api/internal/repository"
	"github.com/kevaluacion/project-management-api/pkg/logger"
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo    repository.TaskRepository
	userRepo    repository.UserRepository
	projectRepo repository.ProjectRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository, projectRepo repository.ProjectRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, userRepo: userRepo, projectRepo: projectRepo}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Description string
	State       models.TaskState
	DueDate     *time.Time
	AssignedTo  string
	ProjectID   uint64
}

// UpdateTaskInput represents a partial update: nil fields leave the
// existing value unchanged, set fields fully replace it.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	State       *models.TaskState
	DueDate     *time.Time
	AssignedTo  *string
	ProjectID   *uint64
}

// Create persists a new ACTIVE task under an existing project. When the
// assignee username does not resolve, the task falls back to the requester;
// an unresolvable project id is a hard failure.
func (s *TaskService) Create(input CreateTaskInput, identity middleware.Identity) (*models.Task, error) {
	requester, err := s.userRepo.FindByEmail(identity.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFoundf("User not found, Email: %s", identity.Email)
		}
		return nil, apierrors.Unexpectedf("failed to find user: %v", err)
	}

	state := input.State
	if state == "" {
		state = models.TaskStatePendiente
	}
	if !state.Valid() {
		return nil, apierrors.Validationf("Invalid task state: %s", state)
	}

	if input.DueDate != nil && beforeToday(*input.DueDate) {
		return nil, apierrors.Validationf("Due date must be today or in the future")
	}

	assignee := requester
	if input.AssignedTo != "" {
		if found, err := s.userRepo.FindByUsername(input.AssignedTo); err == nil {
			assignee = found
		}
	}

	project, err := s.projectRepo.FindByID(input.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFoundf("Project not found, ID: %d", input.ProjectID)
		}
		return nil, apierrors.Unexpectedf("failed to find project: %v", err)
	}

	task := &models.Task{
		Title:        input.Title,
		Description:  input.Description,
		Status:       models.StatusActive,
		State:        state,
		DueDate:      input.DueDate,
		AssignedToID: assignee.ID,
		ProjectID:    project.ID,
		AuditInfo: models.AuditInfo{
			CreatedBy: identity.Email,
		},
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, apierrors.Unexpectedf("failed to create task: %v", err)
	}

	task.AssignedTo = *assignee
	task.Project = *project
	logger.Info().Uint64("task_id", task.ID).Uint64("project_id", project.ID).Msg("task created")
	return task, nil
}

// ListForUser returns ACTIVE tasks assigned to the authenticated user,
// optionally bounded to dueDate in [dateFrom, dateTo]. Either bound may be
// absent independently; results are ordered by ascending id.
func (s *TaskService) ListForUser(identity middleware.Identity, dateFrom, dateTo *time.Time) ([]models.Task, error) {
	filter := repository.TaskFilter{
		AssigneeEmail: &identity.Email,
		DueDateFrom:   dateFrom,
		DueDateTo:     dateTo,
	}

	tasks, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, apierrors.Unexpectedf("failed to list tasks: %v", err)
	}
	return tasks, nil
}

// ListForProject returns ACTIVE tasks under a project, ordered by ascending id.
func (s *TaskService) ListForProject(projectID uint64) ([]models.Task, error) {
	filter := repository.TaskFilter{ProjectID: &projectID}

	tasks, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, apierrors.Unexpectedf("failed to list tasks: %v", err)
	}
	return tasks, nil
}

// Update applies a partial update. Assignee resolution falls back to the
// existing assignee when the given username doesn't resolve; a given
// project id that doesn't resolve is a hard failure.
func (s *TaskService) Update(id uint64, input UpdateTaskInput, updatedBy string) (*models.Task, error) {
	existing, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFoundf("Task doesn't exist, ID: %d", id)
		}
		return nil, apierrors.Unexpectedf("failed to find task: %v", err)
	}

	if input.Title != nil {
		existing.Title = *input.Title
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.State != nil {
		if !input.State.Valid() {
			return nil, apierrors.Validationf("Invalid task state: %s", *input.State)
		}
		existing.State = *input.State
	}
	if input.DueDate != nil {
		existing.DueDate = input.DueDate
	}
	if input.AssignedTo != nil {
		if found, err := s.userRepo.FindByUsername(*input.AssignedTo); err == nil {
			existing.AssignedToID = found.ID
			existing.AssignedTo = *found
		}
	}
	if input.ProjectID != nil {
		project, err := s.projectRepo.FindByID(*input.ProjectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierrors.NotFoundf("Project not found, ID: %d", *input.ProjectID)
			}
			return nil, apierrors.Unexpectedf("failed to find project: %v", err)
		}
		existing.ProjectID = project.ID
		existing.Project = *project
	}

	existing.UpdatedBy = updatedBy

	if err := s.taskRepo.Update(existing); err != nil {
		return nil, apierrors.Unexpectedf("failed to update task: %v", err)
	}
	return existing, nil
}

// SoftDelete flips the task to INACTIVE. Tasks have no children, so there
// is no cascade.
func (s *TaskService) SoftDelete(id uint64, updatedBy string) error {
	if _, err := s.taskRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierrors.NotFoundf("Task doesn't exist, ID: %d", id)
		}
		return apierrors.Unexpectedf("failed to find task: %v", err)
	}

	if err := s.taskRepo.SoftDelete(id, updatedBy); err != nil {
		return apierrors.Unexpectedf("failed to delete task: %v", err)
	}

	logger.Info().Uint64("task_id", id).Msg("task soft-deleted")
	return nil
}

// beforeToday reports whether t falls strictly before the current day.
func beforeToday(t time.Time) bool {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, t.Location())
	return t.Before(today)
}
