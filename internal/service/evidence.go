package service

import (
	"bytes"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"cmcreport/internal/domain"
)

var (
	tiffLittleEndian = []byte("II*\x00")
	tiffBigEndian    = []byte("MM\x00*")
)

// DetectImageType sniffs the MIME type of an evidence upload and reports
// whether it is an accepted image format.
func DetectImageType(data []byte) (string, bool) {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	detected := http.DetectContentType(head)
	if detected == "application/octet-stream" &&
		(bytes.HasPrefix(head, tiffLittleEndian) || bytes.HasPrefix(head, tiffBigEndian)) {
		detected = domain.MimeTIFF
	}
	_, ok := domain.AllowedImageTypes[detected]
	return detected, ok
}

// NewEvidenceFile validates an upload and wraps it as an evidence file.
// maxBytes <= 0 disables the size check.
func NewEvidenceFile(name string, data []byte, maxBytes int64) (*domain.EvidenceFile, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %q is empty", domain.ErrInput, name)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}
	contentType, ok := DetectImageType(data)
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == string(filepath.Separator) {
		name = "evidencia." + domain.AllowedImageTypes[contentType]
	}
	return &domain.EvidenceFile{
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}
