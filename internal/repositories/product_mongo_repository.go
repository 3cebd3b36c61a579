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

// MongoProductRepository implements ProductRepository against the products
// collection.
type MongoProductRepository struct {
	collection *mongo.Collection
}

// NewMongoProductRepository creates a product repository bound to db.
func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{collection: db.Collection("products")}
}

// FindAll returns all products.
func (r *MongoProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("finding products: %w", err)
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}
	return products, nil
}

// FindByID returns the product with the given id, or nil when none matches.
func (r *MongoProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	if !validation.IsValidID(id) {
		return nil, &models.InvalidIDError{Entity: "product"}
	}
	oid, _ := validation.ToObjectID(id)

	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding product: %w", err)
	}
	return &product, nil
}

// FindBySupplier returns all products referencing the given supplier.
func (r *MongoProductRepository) FindBySupplier(ctx context.Context, supplierID string) ([]models.Product, error) {
	if !validation.IsValidID(supplierID) {
		return nil, &models.InvalidIDError{Entity: "supplier"}
	}
	oid, _ := validation.ToObjectID(supplierID)

	cursor, err := r.collection.Find(ctx, bson.M{"supplierId": oid})
	if err != nil {
		return nil, fmt.Errorf("finding products by supplier: %w", err)
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}
	return products, nil
}

// Create inserts a new product and returns the persisted document.
func (r *MongoProductRepository) Create(ctx context.Context, payload map[string]any) (*models.Product, error) {
	doc := cleanPayload(payload)
	doc["createdAt"] = nowISO()
	coerceObjectIDField(doc, "supplierId")

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("inserting product: %w", err)
	}
	doc["_id"] = result.InsertedID

	var product models.Product
	if err := decodeInto(doc, &product); err != nil {
		return nil, fmt.Errorf("decoding created product: %w", err)
	}
	return &product, nil
}

// Update merges the payload into the stored document field by field and
// returns the refreshed product.
func (r *MongoProductRepository) Update(ctx context.Context, id string, payload map[string]any) (*models.Product, error) {
	if !validation.IsValidID(id) {
		return nil, &models.InvalidIDError{Entity: "product"}
	}
	oid, _ := validation.ToObjectID(id)

	doc := cleanPayload(payload)
	doc["updatedAt"] = nowISO()
	coerceObjectIDField(doc, "supplierId")

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": doc})
	if err != nil {
		return nil, fmt.Errorf("updating product: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, &models.NotFoundError{Entity: "product"}
	}

	return r.FindByID(ctx, id)
}

// Delete removes the product with the given id.
func (r *MongoProductRepository) Delete(ctx context.Context, id string) error {
	if !validation.IsValidID(id) {
		return &models.InvalidIDError{Entity: "product"}
	}
	oid, _ := validation.ToObjectID(id)

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	if result.DeletedCount == 0 {
		return &models.NotFoundError{Entity: "product"}
	}
	return nil
}
