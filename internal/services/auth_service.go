package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apierrors "github.com/kevaluacion/project-management-api/internal/errors"
	"github.com/kevaluacion/project-management-api/internal/models"
	"github.com/kevaluacion/project-management-api/internal/repository"
	"github.com/kevaluacion/project-management-api/internal/utils"
	"github.com/kevaluacion/project-management-api/pkg/logger"
)

// AuthService verifies credentials and issues session tokens.
type AuthService struct {
	userRepo repository.UserRepository
	tokenTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{userRepo: userRepo, tokenTTL: tokenTTL}
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns a signed, time-limited token
// embedding the user's email and role.
func (s *AuthService) Login(input LoginInput) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apierrors.NotFoundf("User not found, Email: %s", input.Email)
		}
		return "", nil, apierrors.Unexpectedf("failed to find user: %v", err)
	}

	if !utils.CheckPassword(input.Password, user.Password) {
		logger.Warn().Str("email", input.Email).Msg("login failed")
		return "", nil, apierrors.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.Email, string(user.Role), s.tokenTTL)
	if err != nil {
		return "", nil, apierrors.Unexpectedf("failed to sign token: %v", err)
	}

	return token, user, nil
}
