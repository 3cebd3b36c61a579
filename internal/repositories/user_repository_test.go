package repositories_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"inventory/internal/models"
	"inventory/internal/repositories"
)

func userPayload(email string) map[string]any {
	return map[string]any{
		"name":  "Alice",
		"email": email,
	}
}

func TestUserRepository_CreateDefaultsAndSanitizes(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	ctx := context.Background()

	user, err := repo.Create(ctx, userPayload("alice@example.com"), "bcrypt-hash")
	assert.NoError(t, err)
	assert.False(t, user.ID.IsZero())
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, models.Roles{models.RoleUser}, user.Roles)
	assert.NotEmpty(t, user.CreatedAt)
	assert.Empty(t, user.Password)
}

func TestUserRepository_PasswordNeverSerialized(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	ctx := context.Background()

	user, err := repo.Create(ctx, userPayload("alice@example.com"), "bcrypt-hash")
	assert.NoError(t, err)

	raw, err := json.Marshal(user)
	assert.NoError(t, err)

	var asMap map[string]any
	assert.NoError(t, json.Unmarshal(raw, &asMap))
	assert.NotContains(t, asMap, "password")
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, userPayload("alice@example.com"), "hash")
	assert.NoError(t, err)

	_, err = repo.Create(ctx, userPayload("alice@example.com"), "hash")
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)

	// Emails are folded to lowercase, so case variants collide too.
	_, err = repo.Create(ctx, userPayload("ALICE@Example.COM"), "hash")
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)
}

func TestUserRepository_FindByEmailKeepsHash(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, userPayload("alice@example.com"), "bcrypt-hash"); err != nil {
		t.Fatalf("create: %v", err)
	}

	user, err := repo.FindByEmail(ctx, "Alice@Example.com")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "bcrypt-hash", user.Password)

	missing, err := repo.FindByEmail(ctx, "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_UpdateStripsProtectedFields(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, userPayload("alice@example.com"), "bcrypt-hash")
	assert.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID.Hex(), map[string]any{
		"name":     "Alice Cooper",
		"password": "sneaky-new-password",
		"roles":    []any{"admin"},
		"githubId": "999",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Alice Cooper", updated.Name)
	assert.Equal(t, models.Roles{models.RoleUser}, updated.Roles)
	assert.Empty(t, updated.GithubID)
	assert.NotEmpty(t, updated.UpdatedAt)

	// The stored hash is untouched by the rejected password field.
	withHash, err := repo.FindByEmail(ctx, "alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "bcrypt-hash", withHash.Password)
}

func TestUserRepository_UpdateEmailCollision(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	ctx := context.Background()

	alice, err := repo.Create(ctx, userPayload("alice@example.com"), "hash")
	assert.NoError(t, err)
	_, err = repo.Create(ctx, map[string]any{"name": "Bob", "email": "bob@example.com"}, "hash")
	assert.NoError(t, err)

	_, err = repo.Update(ctx, alice.ID.Hex(), map[string]any{"email": "bob@example.com"})
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)

	// Re-submitting your own email is not a collision.
	_, err = repo.Update(ctx, alice.ID.Hex(), map[string]any{"email": "alice@example.com"})
	assert.NoError(t, err)
}

func TestUserRepository_Delete(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, userPayload("alice@example.com"), "hash")
	assert.NoError(t, err)

	assert.NoError(t, repo.Delete(ctx, created.ID.Hex()))

	err = repo.Delete(ctx, created.ID.Hex())
	var notFound *models.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestUserRepository_FindOrCreateFromProfile(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	ctx := context.Background()

	profile := &models.OAuthProfile{
		ProviderID:  "42",
		Username:    "octocat",
		DisplayName: "The Octocat",
		Emails:      []string{"octocat@example.com"},
		AvatarURL:   "https://example.com/octocat.png",
	}

	created, err := repo.FindOrCreateFromProfile(ctx, profile)
	assert.NoError(t, err)
	assert.Equal(t, "42", created.GithubID)
	assert.Equal(t, "The Octocat", created.Name)
	assert.Equal(t, "octocat@example.com", created.Email)
	assert.Equal(t, models.Roles{models.RoleUser}, created.Roles)
	assert.Empty(t, created.Password)

	// A second login resolves to the same account and refreshes the profile.
	profile.DisplayName = "Octocat Prime"
	again, err := repo.FindOrCreateFromProfile(ctx, profile)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, "Octocat Prime", again.Name)
	assert.NotEmpty(t, again.UpdatedAt)

	users, err := repo.FindAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepository_FindOrCreateFromProfile_NoEmail(t *testing.T) {
	repo := repositories.NewMockUserRepository()

	created, err := repo.FindOrCreateFromProfile(context.Background(), &models.OAuthProfile{
		ProviderID: "7",
		Username:   "ghost",
	})
	assert.NoError(t, err)
	assert.Equal(t, "ghost@github.com", created.Email)
	assert.Equal(t, "ghost", created.Name)
}

func TestUserRepository_FindOrCreateFromProfile_EmailCollision(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, userPayload("octocat@example.com"), "hash")
	assert.NoError(t, err)

	_, err = repo.FindOrCreateFromProfile(ctx, &models.OAuthProfile{
		ProviderID: "42",
		Username:   "octocat",
		Emails:     []string{"octocat@example.com"},
	})
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)
}

func TestUserRepository_FindByGithubID(t *testing.T) {
	repo := repositories.NewMockUserRepository()
	ctx := context.Background()

	_, err := repo.FindOrCreateFromProfile(ctx, &models.OAuthProfile{
		ProviderID: "42",
		Username:   "octocat",
	})
	assert.NoError(t, err)

	user, err := repo.FindByGithubID(ctx, "42")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "42", user.GithubID)

	missing, err := repo.FindByGithubID(ctx, "0")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
