package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockReportSaver is a mock implementation of port.ReportSaver.
type MockReportSaver struct {
	mock.Mock
}

func (m *MockReportSaver) Save(ctx context.Context, data []byte, filename string) (string, error) {
	args := m.Called(ctx, data, filename)
	return args.String(0), args.Error(1)
}
