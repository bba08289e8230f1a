package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cmcreport/internal/domain"
)

// MockImageNormalizer is a mock implementation of port.ImageNormalizer.
type MockImageNormalizer struct {
	mock.Mock
}

func (m *MockImageNormalizer) Normalize(ctx context.Context, data []byte, rotation int, orientation domain.Orientation, target domain.TargetDimensions) (*domain.ProcessedImage, error) {
	args := m.Called(ctx, data, rotation, orientation, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProcessedImage), args.Error(1)
}
