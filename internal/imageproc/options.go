package imageproc

// Default normalizer options.
const (
	DefaultMaxDimension = 4096
	DefaultQualityStep  = 0.85
	DefaultMaxAttempts  = 5
	DefaultMinQuality   = 0.4
)

// Options controls the quality and size policy of the normalizer.
type Options struct {
	// AllowUpscale lets the render size grow past the source resolution when
	// RenderScale or MinWidth/MinHeight ask for it.
	AllowUpscale bool
	// MaxDimension caps the longest side of any re-encoded image.
	MaxDimension int
	// Lossless re-encodes as PNG instead of JPEG.
	Lossless bool
	// MaxBytes bounds the encoded output. Zero disables the budget.
	MaxBytes int
	// QualityStep multiplies the JPEG quality on each retry over MaxBytes.
	QualityStep float64
	MaxAttempts int
	MinQuality  float64
}

// withDefaults fills zero values.
func (o Options) withDefaults() Options {
	if o.MaxDimension <= 0 {
		o.MaxDimension = DefaultMaxDimension
	}
	if o.QualityStep <= 0 || o.QualityStep >= 1 {
		o.QualityStep = DefaultQualityStep
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.MinQuality <= 0 || o.MinQuality > 1 {
		o.MinQuality = DefaultMinQuality
	}
	if o.MaxBytes < 0 {
		o.MaxBytes = 0
	}
	return o
}
