package port

import (
	"context"

	"cmcreport/internal/domain"
)

// ProgressFunc is called once per processed image with the running count.
type ProgressFunc func(done, total int)

// StateFunc observes report generation state transitions.
type StateFunc func(state domain.ReportState)

// ReportGenerator builds a .docx evidence report from slots.
type ReportGenerator interface {
	Generate(ctx context.Context, slots []domain.EvidenceSlot, meta domain.ReportMetadata, onProgress ProgressFunc) (*domain.GeneratedReport, error)
	GenerateWithState(ctx context.Context, slots []domain.EvidenceSlot, meta domain.ReportMetadata, onProgress ProgressFunc, onState StateFunc) (*domain.GeneratedReport, error)
}

// ReportSaver persists a generated report and returns where it can be fetched.
type ReportSaver interface {
	Save(ctx context.Context, data []byte, filename string) (string, error)
}

// ReportNotifier tells the operations mailbox that a report is ready.
type ReportNotifier interface {
	NotifyReportReady(ctx context.Context, report *domain.GeneratedReport, meta domain.ReportMetadata) error
}
