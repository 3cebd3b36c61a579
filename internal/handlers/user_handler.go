package handlers

import (
	"github.com/gofiber/fiber/v2"

	"inventory/internal/middleware"
	"inventory/internal/models"
	"inventory/internal/services"
)

// UserHandler handles HTTP requests for user management. All routes require
// authentication; listing and deleting are admin-only, while a user may read
// and update their own record.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers the user management routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	users := router.Group("/users", middleware.RequireAuth())
	users.Get("/", middleware.RequireRole(models.RoleAdmin), h.HandleGetAllUsers)
	users.Get("/:id", h.HandleGetUserByID)
	users.Put("/:id", h.HandleUpdateUser)
	users.Delete("/:id", middleware.RequireRole(models.RoleAdmin), h.HandleDeleteUser)
}

// selfOrAdmin reports whether the caller may act on the given user id.
func selfOrAdmin(c *fiber.Ctx, id string) bool {
	user := middleware.CurrentUser(c)
	if user == nil {
		return false
	}
	return user.ID.Hex() == id || user.Roles.Intersects(models.RoleAdmin)
}

// HandleGetAllUsers returns all users, sanitized.
func (h *UserHandler) HandleGetAllUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAllUsers(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(users)
}

// HandleGetUserByID returns one user.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if !selfOrAdmin(c, id) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Permission denied"})
	}
	user, err := h.userService.GetUserByID(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}
	return c.JSON(user)
}

// HandleUpdateUser updates a user's own mutable fields.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if !selfOrAdmin(c, id) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Permission denied"})
	}
	payload, err := parseBody(c)
	if err != nil {
		return badRequest(c, "Invalid request body")
	}
	user, err := h.userService.UpdateUser(c.UserContext(), id, payload)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(user)
}

// HandleDeleteUser deletes a user.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	if err := h.userService.DeleteUser(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
