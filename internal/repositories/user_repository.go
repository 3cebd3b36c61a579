package repositories

import (
	"context"

	"inventory/internal/models"
)

// UserRepository defines the interface for user data access.
//
// Every read except FindByEmail returns sanitized users (no password hash).
// FindByEmail keeps the hash so the login flow can verify credentials.
type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByGithubID(ctx context.Context, githubID string) (*models.User, error)

	// Create inserts a new user. Server-assigned fields and any raw password
	// are stripped from the payload; passwordHash, when non-empty, is stored
	// as the credential. Fails with models.ErrDuplicateEmail when the email
	// is taken.
	Create(ctx context.Context, payload map[string]any, passwordHash string) (*models.User, error)

	// Update merges the payload into the stored document. Immutable and
	// sensitive fields (password, githubId, roles) are stripped. An email
	// change re-checks uniqueness, excluding the record itself.
	Update(ctx context.Context, id string, payload map[string]any) (*models.User, error)

	Delete(ctx context.Context, id string) error

	// FindOrCreateFromProfile resolves an OAuth login: refresh the existing
	// account matching the profile's provider ID, or synthesize a new
	// password-less account from the profile.
	FindOrCreateFromProfile(ctx context.Context, profile *models.OAuthProfile) (*models.User, error)
}
