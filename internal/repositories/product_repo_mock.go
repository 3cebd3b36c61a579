package repositories

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"inventory/internal/models"
	"inventory/internal/validation"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// It mirrors the Mongo implementation's document semantics (strip, stamp,
// coerce, field-level merge) so handler and service tests exercise the same
// behavior without a running store.
type MockProductRepository struct {
	mu   sync.RWMutex
	docs map[primitive.ObjectID]bson.M
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{docs: make(map[primitive.ObjectID]bson.M)}
}

// FindAll returns all products.
func (r *MockProductRepository) FindAll(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, 0, len(r.docs))
	for _, doc := range r.docs {
		var p models.Product
		if err := decodeInto(doc, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// FindByID returns the product with the given id, or nil.
func (r *MockProductRepository) FindByID(_ context.Context, id string) (*models.Product, error) {
	if !validation.IsValidID(id) {
		return nil, &models.InvalidIDError{Entity: "product"}
	}
	oid, _ := validation.ToObjectID(id)

	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[oid]
	if !ok {
		return nil, nil
	}
	var p models.Product
	if err := decodeInto(doc, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// FindBySupplier returns all products referencing the given supplier.
func (r *MockProductRepository) FindBySupplier(_ context.Context, supplierID string) ([]models.Product, error) {
	if !validation.IsValidID(supplierID) {
		return nil, &models.InvalidIDError{Entity: "supplier"}
	}
	oid, _ := validation.ToObjectID(supplierID)

	r.mu.RLock()
	defer r.mu.RUnlock()

	products := []models.Product{}
	for _, doc := range r.docs {
		if doc["supplierId"] != oid {
			continue
		}
		var p models.Product
		if err := decodeInto(doc, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(_ context.Context, payload map[string]any) (*models.Product, error) {
	doc := cleanPayload(payload)
	doc["createdAt"] = nowISO()
	coerceObjectIDField(doc, "supplierId")
	doc["_id"] = primitive.NewObjectID()

	r.mu.Lock()
	r.docs[doc["_id"].(primitive.ObjectID)] = doc
	r.mu.Unlock()

	var p models.Product
	if err := decodeInto(doc, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update merges the payload into the stored document.
func (r *MockProductRepository) Update(_ context.Context, id string, payload map[string]any) (*models.Product, error) {
	if !validation.IsValidID(id) {
		return nil, &models.InvalidIDError{Entity: "product"}
	}
	oid, _ := validation.ToObjectID(id)

	doc := cleanPayload(payload)
	doc["updatedAt"] = nowISO()
	coerceObjectIDField(doc, "supplierId")

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.docs[oid]
	if !ok {
		return nil, &models.NotFoundError{Entity: "product"}
	}
	merged := bson.M{}
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range doc {
		merged[k] = v
	}
	r.docs[oid] = merged

	var p models.Product
	if err := decodeInto(merged, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(_ context.Context, id string) error {
	if !validation.IsValidID(id) {
		return &models.InvalidIDError{Entity: "product"}
	}
	oid, _ := validation.ToObjectID(id)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[oid]; !ok {
		return &models.NotFoundError{Entity: "product"}
	}
	delete(r.docs, oid)
	return nil
}
