package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"cmcreport/internal/domain"
	"cmcreport/internal/service"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Generate(ctx context.Context, input service.GenerateReportInput) (*domain.GeneratedReport, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneratedReport), args.Error(1)
}

func (m *MockReportService) Submit(ctx context.Context, input service.GenerateReportInput) (*domain.ReportJob, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportJob), args.Error(1)
}

func (m *MockReportService) Job(ctx context.Context, id uuid.UUID) (*domain.ReportJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportJob), args.Error(1)
}

func (m *MockReportService) Download(ctx context.Context, id uuid.UUID) (*domain.GeneratedReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneratedReport), args.Error(1)
}

func (m *MockReportService) ClaimQueued(ctx context.Context, limit int) ([]uuid.UUID, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockReportService) RunJob(ctx context.Context, id uuid.UUID) {
	m.Called(ctx, id)
}

func (m *MockReportService) PruneFinished(before time.Time) int {
	args := m.Called(before)
	return args.Int(0)
}
