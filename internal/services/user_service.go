package services

import (
	"context"

	"inventory/internal/models"
	"inventory/internal/repositories"
	"inventory/internal/validation"
)

// UserService handles user management (registration and login live on
// AuthService).
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// GetAllUsers retrieves all users, sanitized.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

// GetUserByID retrieves a single sanitized user by ID.
func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateUser validates the partial payload and merges it into an existing
// user. Password, githubId, and roles cannot be changed through this path.
func (s *UserService) UpdateUser(ctx context.Context, id string, payload map[string]any) (*models.User, error) {
	if fieldErrs := validation.ValidateUserUpdate(payload); len(fieldErrs) > 0 {
		return nil, &models.ValidationError{Fields: fieldErrs}
	}
	return s.repo.Update(ctx, id, payload)
}

// DeleteUser deletes a user by ID.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
