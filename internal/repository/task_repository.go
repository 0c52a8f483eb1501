package repository

import (
	"github.com/kevaluacion/project-management-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Omit(clause.Associations).Create(task).Error
}

// FindByID finds a task by ID regardless of status
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.Preload("AssignedTo").Preload("Project").First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns ACTIVE tasks matching the filter ordered by ascending id.
// Date bounds are inclusive and independently optional.
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, error) {
	var tasks []models.Task

	query := r.db.Model(&models.Task{}).Where("tasks.status = ?", models.StatusActive)

	if filter.AssigneeEmail != nil {
		query = query.
			Joins("JOIN users ON users.id = tasks.assigned_to_id").
			Where("users.email = ?", *filter.AssigneeEmail)
	}
	if filter.ProjectID != nil {
		query = query.Where("tasks.project_id = ?", *filter.ProjectID)
	}
	if filter.DueDateFrom != nil {
		query = query.Where("tasks.due_date >= ?", *filter.DueDateFrom)
	}
	if filter.DueDateTo != nil {
		query = query.Where("tasks.due_date <= ?", *filter.DueDateTo)
	}

	err := query.
		Preload("AssignedTo").
		Order("tasks.id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update persists changes to a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Omit(clause.Associations).Save(task).Error
}

// SoftDelete flips a task to INACTIVE. Tasks have no children, so there is
// no cascade.
func (r *GormTaskRepository) SoftDelete(id uint64, updatedBy string) error {
	return r.db.Model(&models.Task{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     models.StatusInactive,
			"updated_by": updatedBy,
		}).Error
}
