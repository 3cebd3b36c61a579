package validation

import "inventory/internal/models"

var supplierRules = []Rule{
	{Field: "name", Required: true, Check: StringMinLen(2), Message: "name must be a string with at least 2 characters"},
	{Field: "contactName", Required: true, Check: IsString, Message: "contactName must be a string"},
	{Field: "email", Required: true, Check: IsEmail, Message: "email must be a valid email address"},
	{Field: "phone", Required: true, Check: IsString, Message: "phone must be a string"},
	{Field: "address", Required: true, Check: IsObject, Message: "address must be an object"},
	{Field: "address.street", Required: true, Check: IsString, Message: "address.street must be a string"},
	{Field: "address.city", Required: true, Check: IsString, Message: "address.city must be a string"},
	{Field: "address.state", Required: true, Check: IsString, Message: "address.state must be a string"},
	{Field: "address.zipCode", Required: true, Check: IsString, Message: "address.zipCode must be a string"},
	{Field: "country", Required: true, Check: IsString, Message: "country must be a string"},
	{Field: "supplierType", Required: true, Check: OneOf(models.SupplierTypes...), Message: "supplierType must be one of: manufacturer, wholesaler, distributor, retailer"},
	{Field: "paymentTerms", Required: true, Check: IsString, Message: "paymentTerms must be a string"},
	{Field: "isActive", Required: true, Check: IsBool, Message: "isActive must be a boolean"},
}

// ValidateSupplier checks a raw supplier payload against the supplier rule set.
func ValidateSupplier(payload map[string]any) []models.FieldError {
	return Apply(supplierRules, payload)
}
