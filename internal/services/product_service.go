package services

import (
	"context"
	"log"

	"inventory/internal/models"
	"inventory/internal/repositories"
	"inventory/internal/validation"
	"inventory/pkg/rabbitmq"
)

// ProductService handles business logic related to products: payload
// validation ahead of any store access, repository calls, and lifecycle
// event publishing.
type ProductService struct {
	repo repositories.ProductRepository
	mq   *rabbitmq.Client // nil disables event publishing
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, mq *rabbitmq.Client) *ProductService {
	return &ProductService{repo: repo, mq: mq}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.FindAll(ctx)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// GetProductsBySupplier retrieves all products referencing a supplier.
func (s *ProductService) GetProductsBySupplier(ctx context.Context, supplierID string) ([]models.Product, error) {
	return s.repo.FindBySupplier(ctx, supplierID)
}

// CreateProduct validates the payload and persists a new product.
func (s *ProductService) CreateProduct(ctx context.Context, payload map[string]any) (*models.Product, error) {
	if fieldErrs := validation.ValidateProduct(payload); len(fieldErrs) > 0 {
		return nil, &models.ValidationError{Fields: fieldErrs}
	}
	product, err := s.repo.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.publish("product.created", product)
	return product, nil
}

// UpdateProduct validates the payload and merges it into an existing product.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, payload map[string]any) (*models.Product, error) {
	if fieldErrs := validation.ValidateProduct(payload); len(fieldErrs) > 0 {
		return nil, &models.ValidationError{Fields: fieldErrs}
	}
	product, err := s.repo.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	s.publish("product.updated", product)
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish("product.deleted", map[string]string{"_id": id})
	return nil
}

// publish sends a lifecycle event. Publishing is best-effort: a broker
// failure is logged, never surfaced to the caller.
func (s *ProductService) publish(eventType string, data any) {
	if s.mq == nil {
		return
	}
	if err := s.mq.PublishEvent(eventType, "product", data); err != nil {
		log.Printf("Failed to publish %s event: %v", eventType, err)
	}
}
