package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Dimensions describes the physical size of a product. Every field is
// optional; the structure is replaced wholesale on update, never deep-merged.
type Dimensions struct {
	Height *float64 `json:"height,omitempty" bson:"height,omitempty"`
	Width  *float64 `json:"width,omitempty" bson:"width,omitempty"`
	Depth  *float64 `json:"depth,omitempty" bson:"depth,omitempty"`
	Unit   string   `json:"unit,omitempty" bson:"unit,omitempty"`
}

// Product represents an inventory product document.
// CreatedAt/UpdatedAt are server-assigned ISO-8601 strings; CreatedAt is set
// exactly once at insert and UpdatedAt only on updates.
type Product struct {
	ID                 primitive.ObjectID  `json:"_id,omitempty" bson:"_id,omitempty"`
	Name               string              `json:"name" bson:"name"`
	Description        string              `json:"description" bson:"description"`
	Price              float64             `json:"price" bson:"price"`
	DiscountPercentage *float64            `json:"discountPercentage,omitempty" bson:"discountPercentage,omitempty"`
	Stock              int                 `json:"stock" bson:"stock"`
	Category           string              `json:"category" bson:"category"`
	Tags               []string            `json:"tags,omitempty" bson:"tags,omitempty"`
	Dimensions         *Dimensions         `json:"dimensions,omitempty" bson:"dimensions,omitempty"`
	Weight             *float64            `json:"weight,omitempty" bson:"weight,omitempty"`
	SupplierID         *primitive.ObjectID `json:"supplierId,omitempty" bson:"supplierId,omitempty"`
	IsAvailable        bool                `json:"isAvailable" bson:"isAvailable"`
	ImageURL           string              `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	CreatedAt          string              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt          string              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
