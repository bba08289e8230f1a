// Package storage adapts object storage to the report saving contract.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"
	"time"

	"cmcreport/internal/domain"
	"cmcreport/internal/port"
)

type reportSaver struct {
	objects       port.ObjectStorage
	bucket        string
	prefix        string
	presignExpiry time.Duration
}

// NewReportSaver creates a ReportSaver that uploads reports to bucket under
// prefix and returns a presigned download URL.
func NewReportSaver(objects port.ObjectStorage, bucket, prefix string, presignExpiry time.Duration) port.ReportSaver {
	return &reportSaver{objects: objects, bucket: bucket, prefix: prefix, presignExpiry: presignExpiry}
}

// Key returns the object key a report filename is stored under.
func Key(prefix, filename string) string {
	return path.Join(prefix, filename)
}

func (s *reportSaver) Save(ctx context.Context, data []byte, filename string) (string, error) {
	key := Key(s.prefix, filename)
	out, err := s.objects.Upload(ctx, port.UploadInput{
		Bucket:      s.bucket,
		Key:         key,
		Body:        bytes.NewReader(data),
		ContentType: domain.MimeDocx,
		Size:        int64(len(data)),
		Filename:    filename,
	})
	if err != nil {
		return "", fmt.Errorf("reportSaver.Save: %w", err)
	}

	url, err := s.objects.GetPresignedURL(ctx, s.bucket, key, s.presignExpiry)
	if err != nil {
		log.Printf("reportSaver.Save: presign failed for %s, using upload location: %v", key, err)
		return out.Location, nil
	}
	return url, nil
}
