package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cmcreport/internal/domain"
	"cmcreport/internal/port"
)

// MockDocumentStore is a mock implementation of port.DocumentStore.
type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) List(ctx context.Context, collection, orderBy string) ([]domain.StoredDocument, error) {
	args := m.Called(ctx, collection, orderBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StoredDocument), args.Error(1)
}

func (m *MockDocumentStore) Get(ctx context.Context, collection, id string) (*domain.StoredDocument, error) {
	args := m.Called(ctx, collection, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoredDocument), args.Error(1)
}

func (m *MockDocumentStore) Save(ctx context.Context, collection, id string, fields map[string]any, opts port.SaveOptions) error {
	args := m.Called(ctx, collection, id, fields, opts)
	return args.Error(0)
}

func (m *MockDocumentStore) Delete(ctx context.Context, collection, id string) error {
	args := m.Called(ctx, collection, id)
	return args.Error(0)
}

func (m *MockDocumentStore) Subscribe(ctx context.Context, collection string, onChange port.ChangeFunc) (func(), error) {
	args := m.Called(ctx, collection, onChange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(func()), args.Error(1)
}
