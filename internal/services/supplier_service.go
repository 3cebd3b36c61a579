package services

import (
	"context"
	"log"

	"inventory/internal/models"
	"inventory/internal/repositories"
	"inventory/internal/validation"
	"inventory/pkg/rabbitmq"
)

// SupplierService handles business logic related to suppliers.
type SupplierService struct {
	repo repositories.SupplierRepository
	mq   *rabbitmq.Client // nil disables event publishing
}

// NewSupplierService creates a new SupplierService.
func NewSupplierService(repo repositories.SupplierRepository, mq *rabbitmq.Client) *SupplierService {
	return &SupplierService{repo: repo, mq: mq}
}

// GetAllSuppliers retrieves all suppliers.
func (s *SupplierService) GetAllSuppliers(ctx context.Context) ([]models.Supplier, error) {
	return s.repo.FindAll(ctx)
}

// GetSupplierByID retrieves a single supplier by its ID.
func (s *SupplierService) GetSupplierByID(ctx context.Context, id string) (*models.Supplier, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateSupplier validates the payload and persists a new supplier.
func (s *SupplierService) CreateSupplier(ctx context.Context, payload map[string]any) (*models.Supplier, error) {
	if fieldErrs := validation.ValidateSupplier(payload); len(fieldErrs) > 0 {
		return nil, &models.ValidationError{Fields: fieldErrs}
	}
	supplier, err := s.repo.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.publish("supplier.created", supplier)
	return supplier, nil
}

// UpdateSupplier validates the payload and merges it into an existing supplier.
func (s *SupplierService) UpdateSupplier(ctx context.Context, id string, payload map[string]any) (*models.Supplier, error) {
	if fieldErrs := validation.ValidateSupplier(payload); len(fieldErrs) > 0 {
		return nil, &models.ValidationError{Fields: fieldErrs}
	}
	supplier, err := s.repo.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	s.publish("supplier.updated", supplier)
	return supplier, nil
}

// DeleteSupplier deletes a supplier by its ID.
func (s *SupplierService) DeleteSupplier(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish("supplier.deleted", map[string]string{"_id": id})
	return nil
}

func (s *SupplierService) publish(eventType string, data any) {
	if s.mq == nil {
		return
	}
	if err := s.mq.PublishEvent(eventType, "supplier", data); err != nil {
		log.Printf("Failed to publish %s event: %v", eventType, err)
	}
}
