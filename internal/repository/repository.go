package repository

import (
	"time"

	"github.com/kevaluacion/project-management-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// ListAll returns every user ordered by ascending id
	ListAll() ([]models.User, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID regardless of status
	FindByID(id uint64) (*models.Project, error)

	// ListActiveByOwner returns the owner's ACTIVE projects ordered by ascending id
	ListActiveByOwner(ownerID uint64) ([]models.Project, error)

	// Update persists changes to a project
	Update(project *models.Project) error

	// SoftDeleteWithTasks flips the project to INACTIVE and cascades the
	// flip to every currently-ACTIVE task of the project, atomically.
	SoftDeleteWithTasks(id uint64, updatedBy string) error
}

// TaskFilter holds filtering options for listing tasks. Nil bounds impose
// no restriction on that side; both bounds are inclusive.
type TaskFilter struct {
	AssigneeEmail *string
	ProjectID     *uint64
	DueDateFrom   *time.Time
	DueDateTo     *time.Time
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID regardless of status
	FindByID(id uint64) (*models.Task, error)

	// List returns ACTIVE tasks matching the filter ordered by ascending id
	List(filter TaskFilter) ([]models.Task, error)

	// Update persists changes to a task
	Update(task *models.Task) error

	// SoftDelete flips a task to INACTIVE
	SoftDelete(id uint64, updatedBy string) error
}
