package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apierrors "github.com/kevaluacion/project-management-api/internal/errors"
	"github.com/kevaluacion/project-management-api/internal/models"
	"github.com/kevaluacion/project-management-api/internal/repository"
	"github.com/kevaluacion/project-management-api/internal/utils"
	"github.com/kevaluacion/project-management-api/pkg/logger"
)

const (
	MinPasswordLength = 6
	MaxUsernameLength = 50
)

// UserService handles registration and user lookups.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     models.Role
}

// Register validates the input, hashes the password and stores the user.
// The raw password never leaves this function.
func (s *UserService) Register(input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	if username == "" {
		return nil, apierrors.Validationf("Username must not be blank")
	}
	if len(username) > MaxUsernameLength {
		return nil, apierrors.Validationf("Username must be at most %d characters long", MaxUsernameLength)
	}
	if email == "" {
		return nil, apierrors.Validationf("Email must not be blank")
	}
	if len(input.Password) < MinPasswordLength {
		return nil, apierrors.Validationf("Password must be at least %d characters long", MinPasswordLength)
	}

	role := input.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleAdmin && role != models.RoleUser {
		return nil, apierrors.Validationf("Role must be one of ADMIN, USER")
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, apierrors.Validationf("Email already registered: %s", email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierrors.Unexpectedf("failed to check email: %v", err)
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, apierrors.Unexpectedf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hash,
		Role:     role,
		AuditInfo: models.AuditInfo{
			CreatedBy: email,
		},
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, apierrors.Unexpectedf("failed to create user: %v", err)
	}

	logger.Info().Str("email", user.Email).Msg("user registered")
	return user, nil
}

// ListAll returns every user ordered by ascending id.
func (s *UserService) ListAll() ([]models.User, error) {
	users, err := s.userRepo.ListAll()
	if err != nil {
		return nil, apierrors.Unexpectedf("failed to list users: %v", err)
	}
	return users, nil
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFoundf("User not found, ID: %d", id)
		}
		return nil, apierrors.Unexpectedf("failed to find user: %v", err)
	}
	return user, nil
}
