package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"inventory/internal/models"
	"inventory/internal/services"
)

// productRepoMock records repository calls so tests can assert the service's
// validate-before-store behavior.
type productRepoMock struct {
	mock.Mock
}

func (m *productRepoMock) FindAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *productRepoMock) FindByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *productRepoMock) FindBySupplier(ctx context.Context, supplierID string) ([]models.Product, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *productRepoMock) Create(ctx context.Context, payload map[string]any) (*models.Product, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *productRepoMock) Update(ctx context.Context, id string, payload map[string]any) (*models.Product, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *productRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validProductPayload() map[string]any {
	return map[string]any{
		"name":        "Laptop",
		"description": "High performance laptop with a large screen",
		"price":       1299.99,
		"stock":       10,
		"category":    "electronics",
		"isAvailable": true,
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	repo := new(productRepoMock)
	service := services.NewProductService(repo, nil)

	payload := validProductPayload()
	want := &models.Product{Name: "Laptop"}
	repo.On("Create", mock.Anything, payload).Return(want, nil)

	got, err := service.CreateProduct(context.Background(), payload)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
	repo.AssertExpectations(t)
}

func TestProductService_CreateProduct_InvalidPayload(t *testing.T) {
	repo := new(productRepoMock)
	service := services.NewProductService(repo, nil)

	_, err := service.CreateProduct(context.Background(), map[string]any{"name": "Laptop"})

	var validationErr *models.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.NotEmpty(t, validationErr.Fields)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct_InvalidPayload(t *testing.T) {
	repo := new(productRepoMock)
	service := services.NewProductService(repo, nil)

	payload := validProductPayload()
	payload["price"] = "free"

	_, err := service.UpdateProduct(context.Background(), "507f1f77bcf86cd799439011", payload)

	var validationErr *models.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct(t *testing.T) {
	repo := new(productRepoMock)
	service := services.NewProductService(repo, nil)

	payload := validProductPayload()
	want := &models.Product{Name: "Laptop", Price: 999.99}
	repo.On("Update", mock.Anything, "507f1f77bcf86cd799439011", payload).Return(want, nil)

	got, err := service.UpdateProduct(context.Background(), "507f1f77bcf86cd799439011", payload)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
	repo.AssertExpectations(t)
}

func TestProductService_DeleteProduct_PropagatesError(t *testing.T) {
	repo := new(productRepoMock)
	service := services.NewProductService(repo, nil)

	repo.On("Delete", mock.Anything, "507f1f77bcf86cd799439011").
		Return(&models.NotFoundError{Entity: "product"})

	err := service.DeleteProduct(context.Background(), "507f1f77bcf86cd799439011")

	var notFound *models.NotFoundError
	assert.True(t, errors.As(err, &notFound))
	repo.AssertExpectations(t)
}

func TestProductService_GetProductsBySupplier(t *testing.T) {
	repo := new(productRepoMock)
	service := services.NewProductService(repo, nil)

	want := []models.Product{{Name: "Laptop"}}
	repo.On("FindBySupplier", mock.Anything, "507f1f77bcf86cd799439011").Return(want, nil)

	got, err := service.GetProductsBySupplier(context.Background(), "507f1f77bcf86cd799439011")
	assert.NoError(t, err)
	assert.Equal(t, want, got)
	repo.AssertExpectations(t)
}
