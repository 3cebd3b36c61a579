package repositories

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"inventory/internal/models"
	"inventory/internal/validation"
)

// MockSupplierRepository is an in-memory implementation of SupplierRepository.
type MockSupplierRepository struct {
	mu   sync.RWMutex
	docs map[primitive.ObjectID]bson.M
}

// NewMockSupplierRepository creates a new instance of MockSupplierRepository.
func NewMockSupplierRepository() *MockSupplierRepository {
	return &MockSupplierRepository{docs: make(map[primitive.ObjectID]bson.M)}
}

// FindAll returns all suppliers.
func (r *MockSupplierRepository) FindAll(_ context.Context) ([]models.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	suppliers := make([]models.Supplier, 0, len(r.docs))
	for _, doc := range r.docs {
		var s models.Supplier
		if err := decodeInto(doc, &s); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, nil
}

// FindByID returns the supplier with the given id, or nil.
func (r *MockSupplierRepository) FindByID(_ context.Context, id string) (*models.Supplier, error) {
	if !validation.IsValidID(id) {
		return nil, &models.InvalidIDError{Entity: "supplier"}
	}
	oid, _ := validation.ToObjectID(id)

	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[oid]
	if !ok {
		return nil, nil
	}
	var s models.Supplier
	if err := decodeInto(doc, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create adds a new supplier.
func (r *MockSupplierRepository) Create(_ context.Context, payload map[string]any) (*models.Supplier, error) {
	doc := cleanPayload(payload)
	doc["createdAt"] = nowISO()
	doc["_id"] = primitive.NewObjectID()

	r.mu.Lock()
	r.docs[doc["_id"].(primitive.ObjectID)] = doc
	r.mu.Unlock()

	var s models.Supplier
	if err := decodeInto(doc, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Update merges the payload into the stored document.
func (r *MockSupplierRepository) Update(_ context.Context, id string, payload map[string]any) (*models.Supplier, error) {
	if !validation.IsValidID(id) {
		return nil, &models.InvalidIDError{Entity: "supplier"}
	}
	oid, _ := validation.ToObjectID(id)

	doc := cleanPayload(payload)
	doc["updatedAt"] = nowISO()

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.docs[oid]
	if !ok {
		return nil, &models.NotFoundError{Entity: "supplier"}
	}
	merged := bson.M{}
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range doc {
		merged[k] = v
	}
	r.docs[oid] = merged

	var s models.Supplier
	if err := decodeInto(merged, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes a supplier by its ID.
func (r *MockSupplierRepository) Delete(_ context.Context, id string) error {
	if !validation.IsValidID(id) {
		return &models.InvalidIDError{Entity: "supplier"}
	}
	oid, _ := validation.ToObjectID(id)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[oid]; !ok {
		return &models.NotFoundError{Entity: "supplier"}
	}
	delete(r.docs, oid)
	return nil
}
