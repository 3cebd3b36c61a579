package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"inventory/internal/models"
	"inventory/internal/services"
)

const currentUserKey = "currentUser"

// TokenFromRequest extracts the caller's token: the Authorization Bearer
// header first, then the token cookie. First match wins.
func TokenFromRequest(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Cookies("token")
}

// Authenticate resolves the caller's identity and stores it in the request
// locals. It never rejects the request: on any failure the caller proceeds
// as anonymous, so public and optional-auth routes keep working.
func Authenticate(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if user := authService.Authenticate(c.UserContext(), TokenFromRequest(c)); user != nil {
			c.Locals(currentUserKey, user)
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user for this request, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}

// RequireAuth rejects anonymous callers with 401.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}
		return c.Next()
	}
}

// RequireRole rejects callers whose role set has no intersection with the
// allowed roles. Anonymous callers get 401; authenticated callers without a
// matching role get 403.
func RequireRole(allowed ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}
		if !user.Roles.Intersects(allowed...) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Permission denied",
			})
		}
		return c.Next()
	}
}
