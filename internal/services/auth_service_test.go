package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"inventory/internal/models"
	"inventory/internal/repositories"
	"inventory/internal/services"
)

const testSecret = "test-secret"

func newAuthService() (*services.AuthService, *repositories.MockUserRepository) {
	repo := repositories.NewMockUserRepository()
	return services.NewAuthService(repo, testSecret, nil), repo
}

func registrationPayload() map[string]any {
	return map[string]any{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "super-secret-password",
	}
}

func TestAuthService_Register(t *testing.T) {
	service, _ := newAuthService()

	user, token, err := service.Register(context.Background(), registrationPayload())
	assert.NoError(t, err)
	assert.False(t, user.ID.IsZero())
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Empty(t, user.Password)
	assert.NotEmpty(t, token)

	claims := service.VerifyToken(token)
	assert.NotNil(t, claims)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, []string{"user"}, claims.Roles)
}

func TestAuthService_Register_InvalidPayload(t *testing.T) {
	service, _ := newAuthService()

	_, _, err := service.Register(context.Background(), map[string]any{
		"name":  "Alice",
		"email": "alice@example.com",
	})

	var validationErr *models.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	service, _ := newAuthService()
	ctx := context.Background()

	_, _, err := service.Register(ctx, registrationPayload())
	assert.NoError(t, err)

	_, _, err = service.Register(ctx, registrationPayload())
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)
}

func TestAuthService_Login(t *testing.T) {
	service, _ := newAuthService()
	ctx := context.Background()

	registered, _, err := service.Register(ctx, registrationPayload())
	assert.NoError(t, err)

	user, token, err := service.Login(ctx, "alice@example.com", "super-secret-password")
	assert.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Empty(t, user.Password)
	assert.NotEmpty(t, token)
}

func TestAuthService_Login_Failures(t *testing.T) {
	service, repo := newAuthService()
	ctx := context.Background()

	_, _, err := service.Register(ctx, registrationPayload())
	assert.NoError(t, err)

	// OAuth accounts have no stored hash and cannot log in with a password.
	_, err = repo.FindOrCreateFromProfile(ctx, &models.OAuthProfile{
		ProviderID: "42",
		Username:   "octocat",
		Emails:     []string{"octocat@example.com"},
	})
	assert.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@example.com", "super-secret-password"},
		{"wrong password", "alice@example.com", "wrong-password"},
		{"password-less oauth account", "octocat@example.com", "anything"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := service.Login(ctx, tt.email, tt.password)
			assert.ErrorIs(t, err, models.ErrInvalidCredentials)
		})
	}
}

func TestAuthService_PasswordHashing(t *testing.T) {
	service, _ := newAuthService()

	digest, err := service.HashPassword("super-secret-password")
	assert.NoError(t, err)
	assert.NotEqual(t, "super-secret-password", digest)
	assert.True(t, service.VerifyPassword("super-secret-password", digest))
	assert.False(t, service.VerifyPassword("wrong-password", digest))
}

func TestAuthService_VerifyToken_FailsClosed(t *testing.T) {
	service, _ := newAuthService()
	ctx := context.Background()

	_, token, err := service.Register(ctx, registrationPayload())
	assert.NoError(t, err)

	assert.Nil(t, service.VerifyToken(""))
	assert.Nil(t, service.VerifyToken("not.a.token"))
	assert.Nil(t, service.VerifyToken(token+"tampered"))

	// A token signed with a different secret is rejected.
	other := services.NewAuthService(repositories.NewMockUserRepository(), "other-secret", nil)
	assert.Nil(t, other.VerifyToken(token))
}

func TestAuthService_VerifyToken_Expired(t *testing.T) {
	service, _ := newAuthService()

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, services.TokenClaims{
		UserID: "507f1f77bcf86cd799439011",
		Email:  "alice@example.com",
		Roles:  []string{"user"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte(testSecret))
	assert.NoError(t, err)

	assert.Nil(t, service.VerifyToken(signed))
}

func TestAuthService_Authenticate(t *testing.T) {
	service, repo := newAuthService()
	ctx := context.Background()

	registered, token, err := service.Register(ctx, registrationPayload())
	assert.NoError(t, err)

	user := service.Authenticate(ctx, token)
	assert.NotNil(t, user)
	assert.Equal(t, registered.ID, user.ID)

	assert.Nil(t, service.Authenticate(ctx, ""))
	assert.Nil(t, service.Authenticate(ctx, "garbage"))

	// A valid token for a deleted account resolves to anonymous.
	assert.NoError(t, repo.Delete(ctx, registered.ID.Hex()))
	assert.Nil(t, service.Authenticate(ctx, token))
}

func TestAuthService_LoginWithProfile(t *testing.T) {
	service, _ := newAuthService()
	ctx := context.Background()

	profile := &models.OAuthProfile{
		ProviderID:  "42",
		Username:    "octocat",
		DisplayName: "The Octocat",
		Emails:      []string{"octocat@example.com"},
	}

	user, token, err := service.LoginWithProfile(ctx, profile)
	assert.NoError(t, err)
	assert.Equal(t, "42", user.GithubID)
	assert.NotEmpty(t, token)

	again, _, err := service.LoginWithProfile(ctx, profile)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}
