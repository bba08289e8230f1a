package port

import (
	"context"

	"cmcreport/internal/domain"
)

// ImageNormalizer turns one uploaded evidence image into a document-ready image.
type ImageNormalizer interface {
	Normalize(ctx context.Context, data []byte, rotation int, orientation domain.Orientation, target domain.TargetDimensions) (*domain.ProcessedImage, error)
}
