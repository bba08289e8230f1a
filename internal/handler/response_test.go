package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"cmcreport/internal/domain"
	"cmcreport/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNoEvidence, http.StatusBadRequest, "NO_EVIDENCE"},
		{fmt.Errorf("slot %q: %w", "a", domain.ErrInput), http.StatusUnprocessableEntity, "INVALID_IMAGE"},
		{fmt.Errorf("docx: %w", domain.ErrEncode), http.StatusInternalServerError, "REPORT_FAILED"},
		{fmt.Errorf("%w: timeout", domain.ErrPersistence), http.StatusServiceUnavailable, "PERSISTENCE_ERROR"},
		{domain.ErrIndexUnavailable, http.StatusServiceUnavailable, "PERSISTENCE_ERROR"},
		{domain.ErrInvalidSlot, http.StatusBadRequest, "INVALID_SLOT"},
		{domain.ErrDraftNotFound, http.StatusNotFound, "DRAFT_NOT_FOUND"},
		{domain.ErrSlotNotFound, http.StatusNotFound, "SLOT_NOT_FOUND"},
		{domain.ErrJobNotFound, http.StatusNotFound, "JOB_NOT_FOUND"},
		{domain.ErrJobNotReady, http.StatusConflict, "JOB_NOT_READY"},
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrUnsupportedFileType, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE"},
		{domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			status, code, _ := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestMapDomainError_NoEvidenceMessage(t *testing.T) {
	_, _, msg := handler.MapDomainError(domain.ErrNoEvidence)
	assert.Equal(t, "upload at least one image", msg)

	_, _, msg = handler.MapDomainError(domain.ErrEncode)
	assert.Equal(t, "error generating report", msg)
}
