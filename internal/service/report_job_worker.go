package service

import (
	"context"
	"log"
	"sync"
	"time"
)

// ReportJobConfig holds settings for the report job worker.
type ReportJobConfig struct {
	PollInterval time.Duration
	Concurrency  int
	JobTimeout   time.Duration
	Retention    time.Duration
}

func (c ReportJobConfig) withDefaults() ReportJobConfig {
	if c.PollInterval <= 0 {
		c.PollInterval = 500 * time.Millisecond
	}
	if c.Concurrency < 1 {
		c.Concurrency = 1
	}
	if c.JobTimeout <= 0 {
		c.JobTimeout = 5 * time.Minute
	}
	if c.Retention <= 0 {
		c.Retention = time.Hour
	}
	return c
}

// ReportJobWorker polls for submitted report jobs and runs them with bounded
// concurrency.
type ReportJobWorker struct {
	reports ReportService
	cfg     ReportJobConfig
	now     func() time.Time
	wg      sync.WaitGroup
}

// NewReportJobWorker creates a new ReportJobWorker.
func NewReportJobWorker(reports ReportService, cfg ReportJobConfig) *ReportJobWorker {
	return &ReportJobWorker{
		reports: reports,
		cfg:     cfg.withDefaults(),
		now:     time.Now,
	}
}

// Start runs the polling loop until ctx is canceled. It blocks until all
// in-flight jobs have finished.
func (w *ReportJobWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	sem := make(chan struct{}, w.cfg.Concurrency)

	log.Printf("reportJobWorker: started (poll=%s, concurrency=%d, timeout=%s)",
		w.cfg.PollInterval, w.cfg.Concurrency, w.cfg.JobTimeout)

	for {
		select {
		case <-ctx.Done():
			log.Printf("reportJobWorker: shutting down, waiting for in-flight jobs...")
			w.wg.Wait()
			log.Printf("reportJobWorker: shutdown complete")
			return
		case <-ticker.C:
			if n := w.reports.PruneFinished(w.now().Add(-w.cfg.Retention)); n > 0 {
				log.Printf("reportJobWorker: pruned %d finished jobs", n)
			}

			available := w.cfg.Concurrency - len(sem)
			if available <= 0 {
				continue
			}

			ids, err := w.reports.ClaimQueued(ctx, available)
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				log.Printf("reportJobWorker: ClaimQueued error: %v", err)
				continue
			}

			for _, id := range ids {
				sem <- struct{}{}
				w.wg.Add(1)
				go func() {
					defer w.wg.Done()
					defer func() { <-sem }()

					// In-flight jobs finish even during shutdown.
					jobCtx, cancel := context.WithTimeout(context.Background(), w.cfg.JobTimeout)
					defer cancel()

					log.Printf("reportJobWorker: dispatching job %s", id)
					w.reports.RunJob(jobCtx, id)
				}()
			}
		}
	}
}
