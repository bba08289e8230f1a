package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"cmcreport/internal/domain"
	"cmcreport/internal/port"
)

// GenerateReportInput is the DTO for report generation requests.
type GenerateReportInput struct {
	Slots    []domain.EvidenceSlot
	Metadata domain.ReportMetadata
}

// ReportService generates evidence reports synchronously or as queued jobs.
type ReportService interface {
	Generate(ctx context.Context, input GenerateReportInput) (*domain.GeneratedReport, error)
	Submit(ctx context.Context, input GenerateReportInput) (*domain.ReportJob, error)
	Job(ctx context.Context, id uuid.UUID) (*domain.ReportJob, error)
	Download(ctx context.Context, id uuid.UUID) (*domain.GeneratedReport, error)
	ClaimQueued(ctx context.Context, limit int) ([]uuid.UUID, error)
	RunJob(ctx context.Context, id uuid.UUID)
	PruneFinished(before time.Time) int
}

type reportJob struct {
	job    domain.ReportJob
	input  GenerateReportInput
	report *domain.GeneratedReport
}

type reportService struct {
	generator port.ReportGenerator
	saver     port.ReportSaver
	notifier  port.ReportNotifier
	now       func() time.Time

	mu      sync.Mutex
	jobs    map[uuid.UUID]*reportJob
	pending []uuid.UUID
}

// NewReportService creates a new ReportService. saver and notifier may be nil.
func NewReportService(generator port.ReportGenerator, saver port.ReportSaver, notifier port.ReportNotifier) ReportService {
	return &reportService{
		generator: generator,
		saver:     saver,
		notifier:  notifier,
		now:       time.Now,
		jobs:      make(map[uuid.UUID]*reportJob),
	}
}

func (s *reportService) Generate(ctx context.Context, input GenerateReportInput) (*domain.GeneratedReport, error) {
	log.Printf("reportService.Generate: %d slots for %q", len(input.Slots), input.Metadata.IncidentName)

	report, err := s.generator.Generate(ctx, input.Slots, input.Metadata, nil)
	if err != nil {
		log.Printf("reportService.Generate: generation failed: %v", err)
		return nil, err
	}
	s.deliver(ctx, report, input.Metadata)
	return report, nil
}

// deliver saves and announces a finished report. Both steps are best effort:
// the caller already holds the bytes.
func (s *reportService) deliver(ctx context.Context, report *domain.GeneratedReport, meta domain.ReportMetadata) {
	if s.saver != nil {
		location, err := s.saver.Save(ctx, report.Bytes, report.Filename)
		if err != nil {
			log.Printf("reportService.deliver: saving %s failed: %v", report.Filename, err)
		} else {
			report.Location = location
		}
	}
	if s.notifier != nil {
		if err := s.notifier.NotifyReportReady(ctx, report, meta); err != nil {
			log.Printf("reportService.deliver: notifying %s failed: %v", report.Filename, err)
		}
	}
}

func (s *reportService) Submit(_ context.Context, input GenerateReportInput) (*domain.ReportJob, error) {
	total := 0
	for i := range input.Slots {
		if input.Slots[i].HasFile() {
			total++
		}
	}
	if total == 0 {
		return nil, domain.ErrNoEvidence
	}

	j := &reportJob{
		job: domain.ReportJob{
			ID:        uuid.New(),
			State:     domain.ReportStateIdle,
			Total:     total,
			CreatedAt: s.now().UTC(),
		},
		input: input,
	}

	s.mu.Lock()
	s.jobs[j.job.ID] = j
	s.pending = append(s.pending, j.job.ID)
	s.mu.Unlock()

	log.Printf("reportService.Submit: queued job %s (%d images)", j.job.ID, total)
	out := j.job
	return &out, nil
}

func (s *reportService) Job(_ context.Context, id uuid.UUID) (*domain.ReportJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	out := j.job
	return &out, nil
}

func (s *reportService) Download(_ context.Context, id uuid.UUID) (*domain.GeneratedReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	if j.job.State != domain.ReportStateDone || j.report == nil {
		return nil, domain.ErrJobNotReady
	}
	out := *j.report
	return &out, nil
}

// ClaimQueued removes up to limit jobs from the pending queue, oldest first.
func (s *reportService) ClaimQueued(ctx context.Context, limit int) ([]uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	n := min(limit, len(s.pending))
	if n <= 0 {
		return nil, nil
	}
	claimed := make([]uuid.UUID, n)
	copy(claimed, s.pending[:n])
	s.pending = s.pending[n:]
	return claimed, nil
}

// RunJob generates the report of a claimed job and records the outcome on
// the job. Errors are kept on the job, never returned.
func (s *reportService) RunJob(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	j, ok := s.jobs[id]
	if !ok {
		s.mu.Unlock()
		log.Printf("reportService.RunJob: job %s vanished before running", id)
		return
	}
	input := j.input
	s.mu.Unlock()

	onProgress := func(done, total int) {
		s.update(id, func(job *domain.ReportJob) {
			job.Done = done
			job.Total = total
		})
	}
	// Terminal states are recorded below together with the report, once
	// delivery has finished, so a done job is always downloadable.
	onState := func(state domain.ReportState) {
		if state.Terminal() {
			return
		}
		s.update(id, func(job *domain.ReportJob) { job.State = state })
	}

	report, err := s.generator.GenerateWithState(ctx, input.Slots, input.Metadata, onProgress, onState)
	finished := s.now().UTC()
	if err != nil {
		log.Printf("reportService.RunJob: job %s failed: %v", id, err)
		s.update(id, func(job *domain.ReportJob) {
			job.State = domain.ReportStateFailed
			job.Error = JobErrorMessage(err)
			job.FinishedAt = &finished
		})
		return
	}

	s.deliver(ctx, report, input.Metadata)

	s.mu.Lock()
	if j, ok := s.jobs[id]; ok {
		j.report = report
		j.input = GenerateReportInput{}
		j.job.State = domain.ReportStateDone
		j.job.Filename = report.Filename
		j.job.Location = report.Location
		j.job.FinishedAt = &finished
	}
	s.mu.Unlock()
	log.Printf("reportService.RunJob: job %s done: %s", id, report.Filename)
}

func (s *reportService) update(id uuid.UUID, fn func(job *domain.ReportJob)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if j, ok := s.jobs[id]; ok {
		fn(&j.job)
	}
}

// PruneFinished forgets terminal jobs that finished before the cutoff and
// returns how many were removed.
func (s *reportService) PruneFinished(before time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, j := range s.jobs {
		if j.job.State.Terminal() && j.job.FinishedAt != nil && j.job.FinishedAt.Before(before) {
			delete(s.jobs, id)
			n++
		}
	}
	return n
}

// JobErrorMessage turns a generation error into a message safe to show to
// clients.
func JobErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoEvidence):
		return "upload at least one image"
	case errors.Is(err, domain.ErrInput):
		return "one or more images could not be read"
	case errors.Is(err, context.DeadlineExceeded):
		return "report generation timed out"
	case errors.Is(err, context.Canceled):
		return "report generation was cancelled"
	default:
		return "error generating report"
	}
}
