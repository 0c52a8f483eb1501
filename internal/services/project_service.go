package services

import (
	"errors"

	"gorm.io/gorm"

	apierrors "github.com/kevaluacion/project-management-api/internal/errors"
	"github.com/kevaluacion/project-management-api/internal/middleware"
	"github.com/kevaluacion/project-management-api/internal/models"
	"github.com/kevaluacion/project-management-api/internal/repository"
	"github.com/kevaluacion/project-management-api/pkg/logger"
)

// ProjectService handles project business logic. Every mutation is a
// status flip or field overwrite; rows are never physically removed.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo, userRepo: userRepo}
}

// ProjectInput carries the mutable project fields.
type ProjectInput struct {
	Name        string
	Description string
}

// Create persists a new ACTIVE project owned by the authenticated user.
// The owner is fixed here and never changes afterwards.
func (s *ProjectService) Create(input ProjectInput, identity middleware.Identity) (*models.Project, error) {
	owner, err := s.resolveUser(identity)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		Name:        input.Name,
		Description: input.Description,
		Status:      models.StatusActive,
		OwnerID:     owner.ID,
		AuditInfo: models.AuditInfo{
			CreatedBy: identity.Email,
		},
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, apierrors.Unexpectedf("failed to create project: %v", err)
	}

	project.Owner = *owner
	logger.Info().Uint64("project_id", project.ID).Str("owner", owner.Username).Msg("project created")
	return project, nil
}

// ListOwnedBy returns the ACTIVE projects owned by the authenticated user,
// ordered by ascending id. Absence of matches yields an empty slice.
func (s *ProjectService) ListOwnedBy(identity middleware.Identity) ([]models.Project, error) {
	owner, err := s.resolveUser(identity)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.ListActiveByOwner(owner.ID)
	if err != nil {
		return nil, apierrors.Unexpectedf("failed to list projects: %v", err)
	}
	return projects, nil
}

// Update overwrites only the name and description of an existing project.
// Status, owner and creation time are left untouched.
func (s *ProjectService) Update(id uint64, input ProjectInput, updatedBy string) (*models.Project, error) {
	existing, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFoundf("Project not found, ID: %d", id)
		}
		return nil, apierrors.Unexpectedf("failed to find project: %v", err)
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.UpdatedBy = updatedBy

	if err := s.projectRepo.Update(existing); err != nil {
		return nil, apierrors.Unexpectedf("failed to update project: %v", err)
	}
	return existing, nil
}

// SoftDelete flips the project to INACTIVE and cascades the flip to all of
// its currently-ACTIVE tasks in one atomic transaction.
func (s *ProjectService) SoftDelete(id uint64, updatedBy string) error {
	if _, err := s.projectRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierrors.NotFoundf("Project not found, ID: %d", id)
		}
		return apierrors.Unexpectedf("failed to find project: %v", err)
	}

	if err := s.projectRepo.SoftDeleteWithTasks(id, updatedBy); err != nil {
		return apierrors.Unexpectedf("failed to delete project: %v", err)
	}

	logger.Info().Uint64("project_id", id).Msg("project soft-deleted")
	return nil
}

func (s *ProjectService) resolveUser(identity middleware.Identity) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(identity.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFoundf("User not found, Email: %s", identity.Email)
		}
		return nil, apierrors.Unexpectedf("failed to find user: %v", err)
	}
	return user, nil
}
