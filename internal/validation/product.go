package validation

import "inventory/internal/models"

var productRules = []Rule{
	{Field: "name", Required: true, Check: StringMinLen(2), Message: "name must be a string with at least 2 characters"},
	{Field: "description", Required: true, Check: StringMinLen(10), Message: "description must be a string with at least 10 characters"},
	{Field: "price", Required: true, Check: NonNegativeNumber, Message: "price must be a non-negative number"},
	{Field: "discountPercentage", Check: NonNegativeNumber, Message: "discountPercentage must be a non-negative number"},
	{Field: "stock", Required: true, Check: NonNegativeInt, Message: "stock must be a non-negative integer"},
	{Field: "category", Required: true, Check: IsString, Message: "category must be a string"},
	{Field: "tags", Check: IsArray, Message: "tags must be an array"},
	{Field: "dimensions", Check: IsObject, Message: "dimensions must be an object"},
	{Field: "dimensions.height", Check: IsNumber, Message: "dimensions.height must be a number"},
	{Field: "dimensions.width", Check: IsNumber, Message: "dimensions.width must be a number"},
	{Field: "dimensions.depth", Check: IsNumber, Message: "dimensions.depth must be a number"},
	{Field: "dimensions.unit", Check: IsString, Message: "dimensions.unit must be a string"},
	{Field: "weight", Check: IsNumber, Message: "weight must be a number"},
	{Field: "supplierId", Check: IsObjectIDHex, Message: "invalid supplier ID format"},
	{Field: "isAvailable", Required: true, Check: IsBool, Message: "isAvailable must be a boolean"},
	{Field: "imageUrl", Check: IsURL, Message: "imageUrl must be a valid URL"},
}

// ValidateProduct checks a raw product payload against the product rule set.
func ValidateProduct(payload map[string]any) []models.FieldError {
	return Apply(productRules, payload)
}
