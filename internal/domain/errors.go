package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrForbidden           = errors.New("forbidden")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("file upload to storage failed")
	ErrInvalidRequest      = errors.New("invalid request")

	// Report pipeline errors.
	ErrInput       = errors.New("missing or unreadable image")
	ErrNoEvidence  = errors.New("report requires at least one image")
	ErrEncode      = errors.New("image encoding failed")
	ErrInvalidSlot = errors.New("invalid evidence slot")

	// Document store errors.
	ErrPersistence      = errors.New("document store operation failed")
	ErrIndexUnavailable = errors.New("ordered query is not supported by the store index")

	ErrDraftNotFound = errors.New("draft not found")
	ErrSlotNotFound  = errors.New("evidence slot not found")
	ErrJobNotFound   = errors.New("report job not found")
	ErrJobNotReady   = errors.New("report job has not finished")
)
