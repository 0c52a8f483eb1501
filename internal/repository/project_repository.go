package repository

import (
	"github.com/kevaluacion/project-management-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Omit(clause.Associations).Create(project).Error
}

// FindByID finds a project by ID regardless of status
func (r *GormProjectRepository) FindByID(id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.Preload("Owner").First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListActiveByOwner returns the owner's ACTIVE projects ordered by ascending id
func (r *GormProjectRepository) ListActiveByOwner(ownerID uint64) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Preload("Owner").
		Where("owner_id = ? AND status = ?", ownerID, models.StatusActive).
		Order("id ASC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Update persists changes to a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Omit(clause.Associations).Save(project).Error
}

// SoftDeleteWithTasks flips the project and its ACTIVE tasks to INACTIVE
// inside a single transaction. Concurrent readers either see the whole
// cascade or none of it.
func (r *GormProjectRepository) SoftDeleteWithTasks(id uint64, updatedBy string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Project{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":     models.StatusInactive,
				"updated_by": updatedBy,
			}).Error
		if err != nil {
			return err
		}

		return tx.Model(&models.Task{}).
			Where("project_id = ? AND status = ?", id, models.StatusActive).
			Updates(map[string]interface{}{
				"status":     models.StatusInactive,
				"updated_by": updatedBy,
			}).Error
	})
}
