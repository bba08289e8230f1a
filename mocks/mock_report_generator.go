package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cmcreport/internal/domain"
	"cmcreport/internal/port"
)

// MockReportGenerator is a mock implementation of port.ReportGenerator.
type MockReportGenerator struct {
	mock.Mock
}

func (m *MockReportGenerator) Generate(ctx context.Context, slots []domain.EvidenceSlot, meta domain.ReportMetadata, onProgress port.ProgressFunc) (*domain.GeneratedReport, error) {
	args := m.Called(ctx, slots, meta, onProgress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneratedReport), args.Error(1)
}

func (m *MockReportGenerator) GenerateWithState(ctx context.Context, slots []domain.EvidenceSlot, meta domain.ReportMetadata, onProgress port.ProgressFunc, onState port.StateFunc) (*domain.GeneratedReport, error) {
	args := m.Called(ctx, slots, meta, onProgress, onState)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneratedReport), args.Error(1)
}
