package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inventory/internal/validation"
)

func validSupplierPayload() map[string]any {
	return map[string]any{
		"name":        "TechSupplies Inc.",
		"contactName": "John Smith",
		"email":       "john.smith@techsupplies.com",
		"phone":       "555-123-4567",
		"address": map[string]any{
			"street":  "123 Tech Blvd",
			"city":    "San Francisco",
			"state":   "CA",
			"zipCode": "94107",
		},
		"country":      "USA",
		"supplierType": "manufacturer",
		"paymentTerms": "Net 30",
		"isActive":     true,
	}
}

func TestValidateSupplier_Valid(t *testing.T) {
	assert.Empty(t, validation.ValidateSupplier(validSupplierPayload()))
}

func TestValidateSupplier_MissingRequiredFields(t *testing.T) {
	errs := fieldErrors(validation.ValidateSupplier(map[string]any{}))

	for _, field := range []string{
		"name", "contactName", "email", "phone", "address",
		"country", "supplierType", "paymentTerms", "isActive",
	} {
		assert.Contains(t, errs, field)
	}
	// A missing address yields one error, not one per nested field.
	assert.NotContains(t, errs, "address.street")
	assert.NotContains(t, errs, "address.zipCode")
}

func TestValidateSupplier_MissingAddressField(t *testing.T) {
	payload := validSupplierPayload()
	address := payload["address"].(map[string]any)
	delete(address, "zipCode")

	errs := fieldErrors(validation.ValidateSupplier(payload))
	assert.Contains(t, errs, "address.zipCode")
	assert.Equal(t, "address.zipCode is required", errs["address.zipCode"])
	assert.NotContains(t, errs, "address.street")
}

func TestValidateSupplier_FieldRules(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any
	}{
		{"short name", "name", "x"},
		{"malformed email", "email", "not-an-email"},
		{"unknown supplier type", "supplierType", "importer"},
		{"non-boolean isActive", "isActive", "true"},
		{"non-object address", "address", "somewhere"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validSupplierPayload()
			payload[tt.field] = tt.value
			errs := fieldErrors(validation.ValidateSupplier(payload))
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestValidateSupplier_FalseIsPresent(t *testing.T) {
	payload := validSupplierPayload()
	payload["isActive"] = false
	assert.Empty(t, validation.ValidateSupplier(payload))
}

func TestValidateSupplier_EverySupplierTypeAccepted(t *testing.T) {
	for _, supplierType := range []string{"manufacturer", "wholesaler", "distributor", "retailer"} {
		payload := validSupplierPayload()
		payload["supplierType"] = supplierType
		assert.Empty(t, validation.ValidateSupplier(payload), supplierType)
	}
}
