package repositories

import (
	"context"

	"inventory/internal/models"
)

// SupplierRepository defines the interface for supplier data access.
type SupplierRepository interface {
	FindAll(ctx context.Context) ([]models.Supplier, error)
	FindByID(ctx context.Context, id string) (*models.Supplier, error)
	Create(ctx context.Context, payload map[string]any) (*models.Supplier, error)
	Update(ctx context.Context, id string, payload map[string]any) (*models.Supplier, error)
	Delete(ctx context.Context, id string) error
}
