package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Supplier types accepted by the API.
const (
	SupplierTypeManufacturer = "manufacturer"
	SupplierTypeWholesaler   = "wholesaler"
	SupplierTypeDistributor  = "distributor"
	SupplierTypeRetailer     = "retailer"
)

// SupplierTypes lists every valid supplierType value.
var SupplierTypes = []string{
	SupplierTypeManufacturer,
	SupplierTypeWholesaler,
	SupplierTypeDistributor,
	SupplierTypeRetailer,
}

// Address is a supplier's postal address. All fields are required; the
// structure is replaced wholesale on update.
type Address struct {
	Street  string `json:"street" bson:"street"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	ZipCode string `json:"zipCode" bson:"zipCode"`
}

// Supplier represents a supplier document.
type Supplier struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	ContactName  string             `json:"contactName" bson:"contactName"`
	Email        string             `json:"email" bson:"email"`
	Phone        string             `json:"phone" bson:"phone"`
	Address      Address            `json:"address" bson:"address"`
	Country      string             `json:"country" bson:"country"`
	SupplierType string             `json:"supplierType" bson:"supplierType"`
	PaymentTerms string             `json:"paymentTerms" bson:"paymentTerms"`
	IsActive     bool               `json:"isActive" bson:"isActive"`
	CreatedAt    string             `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt    string             `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
