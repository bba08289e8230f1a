package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"cmcreport/internal/domain"
	"cmcreport/internal/service"
)

// MockDraftService is a mock implementation of service.DraftService.
type MockDraftService struct {
	mock.Mock
}

func (m *MockDraftService) Create(ctx context.Context, input service.CreateDraftInput) (*domain.Draft, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Draft), args.Error(1)
}

func (m *MockDraftService) Get(ctx context.Context, id uuid.UUID) (*domain.Draft, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Draft), args.Error(1)
}

func (m *MockDraftService) AddSlot(ctx context.Context, id uuid.UUID, title string) (*domain.EvidenceSlot, error) {
	args := m.Called(ctx, id, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EvidenceSlot), args.Error(1)
}

func (m *MockDraftService) UpdateSlot(ctx context.Context, id uuid.UUID, slotID string, input service.UpdateSlotInput) (*domain.EvidenceSlot, error) {
	args := m.Called(ctx, id, slotID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EvidenceSlot), args.Error(1)
}

func (m *MockDraftService) AttachFile(ctx context.Context, id uuid.UUID, slotID string, input service.AttachFileInput) (*domain.EvidenceSlot, error) {
	args := m.Called(ctx, id, slotID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EvidenceSlot), args.Error(1)
}

func (m *MockDraftService) DeleteSlot(ctx context.Context, id uuid.UUID, slotID string) (*domain.Draft, error) {
	args := m.Called(ctx, id, slotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Draft), args.Error(1)
}

func (m *MockDraftService) Generate(ctx context.Context, id uuid.UUID, meta domain.ReportMetadata) (*domain.GeneratedReport, error) {
	args := m.Called(ctx, id, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneratedReport), args.Error(1)
}
