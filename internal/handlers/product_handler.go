package handlers

import (
	"github.com/gofiber/fiber/v2"

	"inventory/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	productService *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// RegisterRoutes registers the product routes with the Fiber app.
// The supplier route is registered before /:id so it matches first.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Get("/", h.HandleGetAllProducts)
	products.Get("/supplier/:supplierId", h.HandleGetProductsBySupplier)
	products.Get("/:id", h.HandleGetProductByID)
	products.Post("/", h.HandleCreateProduct)
	products.Put("/:id", h.HandleUpdateProduct)
	products.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetAllProducts returns all products.
func (h *ProductHandler) HandleGetAllProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetAllProducts(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(products)
}

// HandleGetProductByID returns one product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.productService.GetProductByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(product)
}

// HandleGetProductsBySupplier returns all products for one supplier.
func (h *ProductHandler) HandleGetProductsBySupplier(c *fiber.Ctx) error {
	products, err := h.productService.GetProductsBySupplier(c.UserContext(), c.Params("supplierId"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(products)
}

// HandleCreateProduct validates and creates a product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return badRequest(c, "Invalid request body")
	}
	product, err := h.productService.CreateProduct(c.UserContext(), payload)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct validates and updates a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return badRequest(c, "Invalid request body")
	}
	product, err := h.productService.UpdateProduct(c.UserContext(), c.Params("id"), payload)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.productService.DeleteProduct(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
