package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"inventory/internal/models"
	"inventory/internal/repositories"
	"inventory/internal/validation"
	"inventory/pkg/rabbitmq"
)

// AuthService handles business logic for authentication and authorization:
// password hashing and verification, token issuance and verification, and
// the registration, login, and OAuth flows.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
	mq         *rabbitmq.Client
}

// TokenClaims is the payload encoded into every issued token.
type TokenClaims struct {
	UserID string   `json:"id"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, mq *rabbitmq.Client) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
		mq:         mq,
	}
}

// HashPassword hashes a plaintext password with bcrypt.
func (s *AuthService) HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plaintext matches the stored digest.
func (s *AuthService) VerifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// Register validates the payload, hashes the password, persists the user,
// and issues a token for the new account.
func (s *AuthService) Register(ctx context.Context, payload map[string]any) (*models.User, string, error) {
	if fieldErrs := validation.ValidateUser(payload); len(fieldErrs) > 0 {
		return nil, "", &models.ValidationError{Fields: fieldErrs}
	}

	var passwordHash string
	if plaintext, ok := payload["password"].(string); ok && plaintext != "" {
		hashed, err := s.HashPassword(plaintext)
		if err != nil {
			return nil, "", err
		}
		passwordHash = hashed
	}

	user, err := s.userRepo.Create(ctx, payload, passwordHash)
	if err != nil {
		return nil, "", err
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, "", err
	}

	if s.mq != nil {
		if err := s.mq.PublishEvent("user.registered", "user", user); err != nil {
			log.Printf("Failed to publish user.registered event: %v", err)
		}
	}
	return user, token, nil
}

// Login verifies the credentials for the given email and, on success,
// returns the sanitized user and a fresh token. Every failure mode (unknown
// email, password-less OAuth account, wrong password) yields
// models.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil || user.Password == "" {
		return nil, "", models.ErrInvalidCredentials
	}
	if !s.VerifyPassword(password, user.Password) {
		return nil, "", models.ErrInvalidCredentials
	}

	user.Sanitize()
	token, err := s.IssueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// LoginWithProfile resolves an OAuth profile to an account (creating one on
// first login) and issues a token.
func (s *AuthService) LoginWithProfile(ctx context.Context, profile *models.OAuthProfile) (*models.User, string, error) {
	user, err := s.userRepo.FindOrCreateFromProfile(ctx, profile)
	if err != nil {
		return nil, "", err
	}
	token, err := s.IssueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// IssueToken signs a token encoding the user's id, email, and roles.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Roles:  user.Roles.Strings(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDurat)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a token, returning its claims. It fails
// closed: any malformed, expired, or badly signed token yields nil.
func (s *AuthService) VerifyToken(tokenString string) *TokenClaims {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}
	claims, ok := token.Claims.(*TokenClaims)
	if !ok {
		return nil
	}
	return claims
}

// Authenticate resolves a token to its user. Any failure at any step (empty
// token, invalid token, user no longer exists) yields a nil identity, never
// an error, so optional-auth callers proceed as anonymous.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) *models.User {
	if tokenString == "" {
		return nil
	}
	claims := s.VerifyToken(tokenString)
	if claims == nil {
		return nil
	}
	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil || user == nil {
		return nil
	}
	return user
}
