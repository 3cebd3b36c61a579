package handlers

import (
	"github.com/gofiber/fiber/v2"

	"inventory/internal/services"
)

// SupplierHandler handles HTTP requests for suppliers.
type SupplierHandler struct {
	supplierService *services.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(supplierService *services.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// RegisterRoutes registers the supplier routes with the Fiber app.
func (h *SupplierHandler) RegisterRoutes(router fiber.Router) {
	suppliers := router.Group("/suppliers")
	suppliers.Get("/", h.HandleGetAllSuppliers)
	suppliers.Get("/:id", h.HandleGetSupplierByID)
	suppliers.Post("/", h.HandleCreateSupplier)
	suppliers.Put("/:id", h.HandleUpdateSupplier)
	suppliers.Delete("/:id", h.HandleDeleteSupplier)
}

// HandleGetAllSuppliers returns all suppliers.
func (h *SupplierHandler) HandleGetAllSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.supplierService.GetAllSuppliers(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(suppliers)
}

// HandleGetSupplierByID returns one supplier.
func (h *SupplierHandler) HandleGetSupplierByID(c *fiber.Ctx) error {
	supplier, err := h.supplierService.GetSupplierByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if supplier == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "supplier not found"})
	}
	return c.JSON(supplier)
}

// HandleCreateSupplier validates and creates a supplier.
func (h *SupplierHandler) HandleCreateSupplier(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return badRequest(c, "Invalid request body")
	}
	supplier, err := h.supplierService.CreateSupplier(c.UserContext(), payload)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

// HandleUpdateSupplier validates and updates a supplier.
func (h *SupplierHandler) HandleUpdateSupplier(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return badRequest(c, "Invalid request body")
	}
	supplier, err := h.supplierService.UpdateSupplier(c.UserContext(), c.Params("id"), payload)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(supplier)
}

// HandleDeleteSupplier deletes a supplier.
func (h *SupplierHandler) HandleDeleteSupplier(c *fiber.Ctx) error {
	if err := h.supplierService.DeleteSupplier(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Supplier deleted successfully"})
}
