package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cmcreport/internal/domain"
	"cmcreport/internal/service"
)

// MockImageService is a mock implementation of service.ImageService.
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Process(ctx context.Context, input service.ProcessImageInput) (*domain.ProcessedImage, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProcessedImage), args.Error(1)
}
