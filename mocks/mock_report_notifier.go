package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cmcreport/internal/domain"
)

// MockReportNotifier is a mock implementation of port.ReportNotifier.
type MockReportNotifier struct {
	mock.Mock
}

func (m *MockReportNotifier) NotifyReportReady(ctx context.Context, report *domain.GeneratedReport, meta domain.ReportMetadata) error {
	args := m.Called(ctx, report, meta)
	return args.Error(0)
}
