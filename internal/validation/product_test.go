package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inventory/internal/models"
	"inventory/internal/validation"
)

func fieldErrors(errs []models.FieldError) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field] = e.Message
	}
	return out
}

func validProductPayload() map[string]any {
	return map[string]any{
		"name":        "Laptop",
		"description": "High performance laptop with a large screen",
		"price":       1299.99,
		"stock":       10,
		"category":    "electronics",
		"isAvailable": true,
	}
}

func TestValidateProduct_Valid(t *testing.T) {
	assert.Empty(t, validation.ValidateProduct(validProductPayload()))
}

func TestValidateProduct_ValidWithOptionals(t *testing.T) {
	payload := validProductPayload()
	payload["discountPercentage"] = 12.5
	payload["tags"] = []any{"portable", "work"}
	payload["weight"] = 1.8
	payload["dimensions"] = map[string]any{
		"height": 1.5, "width": 35.0, "depth": 24.0, "unit": "cm",
	}
	payload["supplierId"] = "507f1f77bcf86cd799439011"
	payload["imageUrl"] = "https://example.com/laptop.png"

	assert.Empty(t, validation.ValidateProduct(payload))
}

func TestValidateProduct_MissingRequiredFields(t *testing.T) {
	errs := fieldErrors(validation.ValidateProduct(map[string]any{}))

	for _, field := range []string{"name", "description", "price", "stock", "category", "isAvailable"} {
		assert.Contains(t, errs, field)
		assert.Equal(t, field+" is required", errs[field])
	}
}

func TestValidateProduct_ZeroAndFalseArePresent(t *testing.T) {
	payload := validProductPayload()
	payload["price"] = 0
	payload["stock"] = 0
	payload["isAvailable"] = false

	assert.Empty(t, validation.ValidateProduct(payload))
}

func TestValidateProduct_FieldRules(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any
	}{
		{"short name", "name", "x"},
		{"short description", "description", "too short"},
		{"negative price", "price", -1.0},
		{"non-numeric price", "price", "free"},
		{"negative discount", "discountPercentage", -5.0},
		{"fractional stock", "stock", 3.5},
		{"negative stock", "stock", -1},
		{"non-string category", "category", 7},
		{"non-array tags", "tags", "portable"},
		{"non-object dimensions", "dimensions", "big"},
		{"non-numeric weight", "weight", "heavy"},
		{"malformed supplier id", "supplierId", "not-a-hex-id"},
		{"non-boolean isAvailable", "isAvailable", "yes"},
		{"malformed image url", "imageUrl", "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validProductPayload()
			payload[tt.field] = tt.value
			errs := fieldErrors(validation.ValidateProduct(payload))
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestValidateProduct_NestedDimensions(t *testing.T) {
	payload := validProductPayload()
	payload["dimensions"] = map[string]any{
		"height": "tall",
		"width":  12.0,
		"unit":   7,
	}

	errs := fieldErrors(validation.ValidateProduct(payload))
	assert.Contains(t, errs, "dimensions.height")
	assert.Contains(t, errs, "dimensions.unit")
	assert.NotContains(t, errs, "dimensions.width")
	assert.NotContains(t, errs, "dimensions.depth")
}
