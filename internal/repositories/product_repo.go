package repositories

import (
	"context"

	"inventory/internal/models"
)

// ProductRepository defines the interface for product data access.
//
// Create and Update take raw payloads so that partial updates can
// distinguish absent fields from zero values; both strip server-assigned
// fields and stamp timestamps before persisting. Every method taking an
// identifier validates it before touching the store and fails with
// *models.InvalidIDError otherwise.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindBySupplier(ctx context.Context, supplierID string) ([]models.Product, error)
	Create(ctx context.Context, payload map[string]any) (*models.Product, error)
	Update(ctx context.Context, id string, payload map[string]any) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}
