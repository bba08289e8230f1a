package domain

import "strings"

// Orientation selects the base aspect-ratio box and the table group of a slot.
type Orientation string

const (
	OrientationHorizontal Orientation = "horizontal"
	OrientationVertical   Orientation = "vertical"
)

// ParseOrientation maps free text to an Orientation. Anything that is not
// "vertical" is treated as horizontal.
func ParseOrientation(s string) Orientation {
	if strings.EqualFold(strings.TrimSpace(s), string(OrientationVertical)) {
		return OrientationVertical
	}
	return OrientationHorizontal
}

// Orientations lists orientations in report layout order.
var Orientations = []Orientation{OrientationHorizontal, OrientationVertical}

// SizeClass is a named preset for the centimeter box of an image.
type SizeClass string

const (
	SizeNormal  SizeClass = "normal"
	SizeMediana SizeClass = "mediana"
	SizeGrande  SizeClass = "grande"
)

// SizeClasses lists size classes in report layout order.
var SizeClasses = []SizeClass{SizeNormal, SizeMediana, SizeGrande}

// ParseSizeClass maps free text to a SizeClass, falling back to normal.
func ParseSizeClass(s string) SizeClass {
	switch SizeClass(strings.ToLower(strings.TrimSpace(s))) {
	case SizeMediana:
		return SizeMediana
	case SizeGrande:
		return SizeGrande
	default:
		return SizeNormal
	}
}

// ReportState is the lifecycle of a single report generation.
type ReportState string

const (
	ReportStateIdle       ReportState = "idle"
	ReportStateValidating ReportState = "validating"
	ReportStateProcessing ReportState = "processing"
	ReportStateAssembling ReportState = "assembling"
	ReportStateDone       ReportState = "done"
	ReportStateFailed     ReportState = "failed"
)

// Terminal reports whether no further transitions can happen.
func (s ReportState) Terminal() bool {
	return s == ReportStateDone || s == ReportStateFailed
}

// Image MIME types accepted for evidence uploads.
const (
	MimeJPEG = "image/jpeg"
	MimePNG  = "image/png"
	MimeGIF  = "image/gif"
	MimeWebP = "image/webp"
	MimeBMP  = "image/bmp"
	MimeTIFF = "image/tiff"

	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// AllowedImageTypes maps accepted evidence MIME types to a file extension.
var AllowedImageTypes = map[string]string{
	MimeJPEG: "jpg",
	MimePNG:  "png",
	MimeGIF:  "gif",
	MimeWebP: "webp",
	MimeBMP:  "bmp",
	MimeTIFF: "tiff",
}

// Document store collection names.
const (
	CollectionGuides     = "guias"
	CollectionCategories = "categories"
	CollectionFormulas   = "formulas"
)
