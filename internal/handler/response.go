package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cmcreport/internal/domain"
	"cmcreport/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondAccepted sends a 202 success response.
func RespondAccepted(c *gin.Context, data interface{}) {
	c.JSON(http.StatusAccepted, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNoEvidence):
		return http.StatusBadRequest, "NO_EVIDENCE", "upload at least one image"
	case errors.Is(err, domain.ErrInput):
		return http.StatusUnprocessableEntity, "INVALID_IMAGE", "one or more images could not be read"
	case errors.Is(err, domain.ErrEncode):
		return http.StatusInternalServerError, "REPORT_FAILED", "error generating report"
	case errors.Is(err, domain.ErrPersistence), errors.Is(err, domain.ErrIndexUnavailable):
		return http.StatusServiceUnavailable, "PERSISTENCE_ERROR", "storage is temporarily unavailable"
	case errors.Is(err, domain.ErrInvalidSlot):
		return http.StatusBadRequest, "INVALID_SLOT", "invalid evidence slot; rotation must be a multiple of 90"
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, "INVALID_REQUEST", "invalid request"
	case errors.Is(err, domain.ErrDraftNotFound):
		return http.StatusNotFound, "DRAFT_NOT_FOUND", "draft not found"
	case errors.Is(err, domain.ErrSlotNotFound):
		return http.StatusNotFound, "SLOT_NOT_FOUND", "evidence slot not found"
	case errors.Is(err, domain.ErrJobNotFound):
		return http.StatusNotFound, "JOB_NOT_FOUND", "report job not found"
	case errors.Is(err, domain.ErrJobNotReady):
		return http.StatusConflict, "JOB_NOT_READY", "report job has not finished"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: jpg, png, gif, webp, bmp, tiff"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "file upload to storage failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		log.Printf("[%s] %s %s: %v", middleware.GetRequestID(c), c.Request.Method, c.Request.URL.Path, err)
	}
	RespondError(c, status, code, msg)
}
