package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"inventory/internal/models"
)

// handleError maps the error taxonomy to HTTP responses in one place.
// Anything outside the taxonomy is logged with full detail and surfaced as
// an opaque 500; internal detail never reaches a response body.
func handleError(c *fiber.Ctx, err error) error {
	var validationErr *models.ValidationError
	var invalidIDErr *models.InvalidIDError
	var notFoundErr *models.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationErr.Fields,
		})
	case errors.As(err, &invalidIDErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": invalidIDErr.Error(),
		})
	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": notFoundErr.Error(),
		})
	case errors.Is(err, models.ErrDuplicateEmail):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, models.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	log.Printf("Error handling %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}

// parseBody decodes a JSON body into a raw payload map.
func parseBody(c *fiber.Ctx) (map[string]any, error) {
	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
