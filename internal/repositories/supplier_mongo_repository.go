package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"inventory/internal/models"
	"inventory/internal/validation"
)

// MongoSupplierRepository implements SupplierRepository against the
// suppliers collection.
type MongoSupplierRepository struct {
	collection *mongo.Collection
}

// NewMongoSupplierRepository creates a supplier repository bound to db.
func NewMongoSupplierRepository(db *mongo.Database) *MongoSupplierRepository {
	return &MongoSupplierRepository{collection: db.Collection("suppliers")}
}

// FindAll returns all suppliers.
func (r *MongoSupplierRepository) FindAll(ctx context.Context) ([]models.Supplier, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("finding suppliers: %w", err)
	}
	suppliers := []models.Supplier{}
	if err := cursor.All(ctx, &suppliers); err != nil {
		return nil, fmt.Errorf("decoding suppliers: %w", err)
	}
	return suppliers, nil
}

// FindByID returns the supplier with the given id, or nil when none matches.
func (r *MongoSupplierRepository) FindByID(ctx context.Context, id string) (*models.Supplier, error) {
	if !validation.IsValidID(id) {
		return nil, &models.InvalidIDError{Entity: "supplier"}
	}
	oid, _ := validation.ToObjectID(id)

	var supplier models.Supplier
	err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&supplier)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding supplier: %w", err)
	}
	return &supplier, nil
}

// Create inserts a new supplier and returns the persisted document.
func (r *MongoSupplierRepository) Create(ctx context.Context, payload map[string]any) (*models.Supplier, error) {
	doc := cleanPayload(payload)
	doc["createdAt"] = nowISO()

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("inserting supplier: %w", err)
	}
	doc["_id"] = result.InsertedID

	var supplier models.Supplier
	if err := decodeInto(doc, &supplier); err != nil {
		return nil, fmt.Errorf("decoding created supplier: %w", err)
	}
	return &supplier, nil
}

// Update merges the payload into the stored document and returns the
// refreshed supplier.
func (r *MongoSupplierRepository) Update(ctx context.Context, id string, payload map[string]any) (*models.Supplier, error) {
	if !validation.IsValidID(id) {
		return nil, &models.InvalidIDError{Entity: "supplier"}
	}
	oid, _ := validation.ToObjectID(id)

	doc := cleanPayload(payload)
	doc["updatedAt"] = nowISO()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": doc})
	if err != nil {
		return nil, fmt.Errorf("updating supplier: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, &models.NotFoundError{Entity: "supplier"}
	}

	return r.FindByID(ctx, id)
}

// Delete removes the supplier with the given id.
func (r *MongoSupplierRepository) Delete(ctx context.Context, id string) error {
	if !validation.IsValidID(id) {
		return &models.InvalidIDError{Entity: "supplier"}
	}
	oid, _ := validation.ToObjectID(id)

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("deleting supplier: %w", err)
	}
	if result.DeletedCount == 0 {
		return &models.NotFoundError{Entity: "supplier"}
	}
	return nil
}
