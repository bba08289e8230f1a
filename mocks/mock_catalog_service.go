package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cmcreport/internal/domain"
)

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListGuides(ctx context.Context) map[string]string {
	args := m.Called(ctx)
	return args.Get(0).(map[string]string)
}

func (m *MockCatalogService) GetGuide(ctx context.Context, name string) string {
	args := m.Called(ctx, name)
	return args.String(0)
}

func (m *MockCatalogService) SaveGuide(ctx context.Context, name, content, updatedBy string) (*domain.Guide, error) {
	args := m.Called(ctx, name, content, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guide), args.Error(1)
}

func (m *MockCatalogService) ListCategories(ctx context.Context, activeOnly bool) []domain.Category {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]domain.Category)
}

func (m *MockCatalogService) GetCategory(ctx context.Context, key string) (*domain.Category, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCatalogService) SaveCategory(ctx context.Context, c domain.Category, updatedBy string) (*domain.Category, error) {
	args := m.Called(ctx, c, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCatalogService) DeleteCategory(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) ListFormulas(ctx context.Context, activeOnly bool) []domain.Formula {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]domain.Formula)
}

func (m *MockCatalogService) SaveFormula(ctx context.Context, f domain.Formula, updatedBy string) (*domain.Formula, error) {
	args := m.Called(ctx, f, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Formula), args.Error(1)
}

func (m *MockCatalogService) DeleteFormula(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
