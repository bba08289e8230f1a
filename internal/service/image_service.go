package service

import (
	"context"
	"log"

	"cmcreport/internal/domain"
	"cmcreport/internal/port"
)

// TargetResolver maps a slot layout to the box its image is rendered into.
type TargetResolver interface {
	Target(o domain.Orientation, size domain.SizeClass) domain.TargetDimensions
}

// ProcessImageInput is the DTO for a single image preview.
type ProcessImageInput struct {
	Name        string
	Data        []byte
	Rotation    int
	Orientation domain.Orientation
	Size        domain.SizeClass
}

// ImageService runs the normalizer on one image with report layout settings.
type ImageService interface {
	Process(ctx context.Context, input ProcessImageInput) (*domain.ProcessedImage, error)
}

type imageService struct {
	normalizer port.ImageNormalizer
	targets    TargetResolver
	maxBytes   int64
}

// NewImageService creates a new ImageService implementation.
func NewImageService(normalizer port.ImageNormalizer, targets TargetResolver, maxBytes int64) ImageService {
	return &imageService{normalizer: normalizer, targets: targets, maxBytes: maxBytes}
}

func (s *imageService) Process(ctx context.Context, input ProcessImageInput) (*domain.ProcessedImage, error) {
	file, err := NewEvidenceFile(input.Name, input.Data, s.maxBytes)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateRotation(input.Rotation); err != nil {
		return nil, err
	}
	o := domain.ParseOrientation(string(input.Orientation))
	size := domain.ParseSizeClass(string(input.Size))

	img, err := s.normalizer.Normalize(ctx, file.Data, input.Rotation, o, s.targets.Target(o, size))
	if err != nil {
		log.Printf("imageService.Process: %s: %v", file.Name, err)
		return nil, err
	}
	return img, nil
}
