package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"inventory/internal/middleware"
	"inventory/internal/models"
	"inventory/internal/services"
	"inventory/pkg/github"
)

const (
	tokenCookie = "token"
	stateCookie = "oauth_state"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	oauth       *github.Client // nil when GitHub login is not configured
	frontendURL string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, oauth *github.Client, frontendURL string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		oauth:       oauth,
		frontendURL: frontendURL,
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	auth := router.Group("/auth")
	auth.Post("/register", h.HandleRegister)
	auth.Post("/login", h.HandleLogin)
	auth.Post("/logout", h.HandleLogout)
	auth.Get("/me", h.HandleGetCurrentUser)
	auth.Get("/github", h.HandleGithubLogin)
	auth.Get("/github/callback", h.HandleGithubCallback)
	auth.Get("/github/failure", h.HandleGithubFailure)
}

func (h *AuthHandler) setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     tokenCookie,
		Value:    token,
		HTTPOnly: true,
		Expires:  time.Now().Add(24 * time.Hour),
	})
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, token, err := h.authService.Register(c.UserContext(), payload)
	if err != nil {
		return handleError(c, err)
	}

	h.setTokenCookie(c, token)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user,
		"token":   token,
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin handles user login and issues a token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return badRequest(c, "Email and password are required")
	}

	user, token, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return handleError(c, err)
	}

	h.setTokenCookie(c, token)
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

// HandleLogout clears the token cookie. Token invalidation is client-side
// only; there is no server-side revocation list.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     tokenCookie,
		Value:    "",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})
	return c.JSON(fiber.Map{"message": "Logout successful"})
}

// HandleGetCurrentUser returns the authenticated caller's identity.
func (h *AuthHandler) HandleGetCurrentUser(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}
	return c.JSON(fiber.Map{"user": user})
}

// HandleGithubLogin redirects the caller to GitHub's authorization page.
func (h *AuthHandler) HandleGithubLogin(c *fiber.Ctx) error {
	if h.oauth == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "GitHub login is not configured",
		})
	}

	state := uuid.New().String()
	c.Cookie(&fiber.Cookie{
		Name:     stateCookie,
		Value:    state,
		HTTPOnly: true,
		Expires:  time.Now().Add(10 * time.Minute),
	})
	return c.Redirect(h.oauth.AuthCodeURL(state), fiber.StatusTemporaryRedirect)
}

// HandleGithubCallback exchanges the callback code for a profile and logs
// the user in, creating the account on first login.
func (h *AuthHandler) HandleGithubCallback(c *fiber.Ctx) error {
	if h.oauth == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "GitHub login is not configured",
		})
	}

	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" || state != c.Cookies(stateCookie) {
		return c.Redirect("/api/auth/github/failure")
	}

	ghProfile, err := h.oauth.FetchProfile(c.UserContext(), code)
	if err != nil {
		return c.Redirect("/api/auth/github/failure")
	}

	profile := &models.OAuthProfile{
		ProviderID:  ghProfile.ProviderID(),
		Username:    ghProfile.Login,
		DisplayName: ghProfile.Name,
		AvatarURL:   ghProfile.AvatarURL,
	}
	if ghProfile.Email != "" {
		profile.Emails = []string{ghProfile.Email}
	}

	user, token, err := h.authService.LoginWithProfile(c.UserContext(), profile)
	if err != nil {
		return handleError(c, err)
	}

	h.setTokenCookie(c, token)
	if h.frontendURL != "" {
		return c.Redirect(h.frontendURL + "/login/success?token=" + token)
	}
	return c.JSON(fiber.Map{
		"message": "GitHub authentication successful",
		"user":    user,
		"token":   token,
	})
}

// HandleGithubFailure reports a failed OAuth handshake.
func (h *AuthHandler) HandleGithubFailure(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "GitHub authentication failed"})
}
