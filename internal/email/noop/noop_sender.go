package noop

import (
	"context"
	"log"

	"cmcreport/internal/domain"
	"cmcreport/internal/port"
)

type noopNotifier struct{}

// NewNoopNotifier creates a ReportNotifier that only logs ready reports.
func NewNoopNotifier() port.ReportNotifier {
	return &noopNotifier{}
}

func (n *noopNotifier) NotifyReportReady(_ context.Context, report *domain.GeneratedReport, meta domain.ReportMetadata) error {
	log.Printf("[NOOP EMAIL] Report ready for %q (%s): %s (%d images) %s",
		meta.IncidentName, meta.TicketID, report.Filename, report.ImageCount, report.Location)
	return nil
}
