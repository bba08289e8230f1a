package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "cmcreport/docs"
	"cmcreport/internal/catalog"
	"cmcreport/internal/config"
	"cmcreport/internal/email/noop"
	sesemail "cmcreport/internal/email/ses"
	"cmcreport/internal/handler"
	"cmcreport/internal/imageproc"
	"cmcreport/internal/port"
	"cmcreport/internal/report"
	"cmcreport/internal/router"
	"cmcreport/internal/service"
	"cmcreport/internal/storage"
	diskstorage "cmcreport/internal/storage/local"
	s3storage "cmcreport/internal/storage/s3"
	"cmcreport/internal/store"
)

// @title CMC Evidence Report API
// @version 1.0
// @description Builds .docx evidence reports from incident screenshots.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey AdminKey
// @in header
// @name X-Admin-Key
// @description Shared admin key; X-Admin-User names the editor
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize document store
	docs, db, err := store.Open(cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	cat := catalog.NewStore(docs)
	if err := cat.Start(ctx); err != nil {
		log.Printf("catalog not fully loaded, serving defaults: %v", err)
	}
	defer cat.Close()

	// Initialize storage
	objects, err := openObjectStorage(ctx, cfg)
	if err != nil {
		return err
	}
	saver := storage.NewReportSaver(objects, cfg.S3.Bucket, cfg.Storage.ReportsPrefix, cfg.S3.PresignExpiry)

	notifier, err := openNotifier(cfg)
	if err != nil {
		return err
	}

	// Initialize report pipeline
	normalizer := imageproc.NewNormalizer(imageproc.Options{
		AllowUpscale: cfg.Image.AllowUpscale,
		MaxDimension: cfg.Image.MaxDimension,
		Lossless:     cfg.Image.Lossless,
		MaxBytes:     cfg.Image.MaxBytes,
		QualityStep:  cfg.Image.QualityStep,
		MaxAttempts:  cfg.Image.MaxAttempts,
		MinQuality:   cfg.Image.MinQuality,
	})
	generator := report.NewGenerator(normalizer, report.Config{
		Columns:     cfg.Report.Columns,
		Concurrency: cfg.Report.Concurrency,
		MarginTwips: cfg.Report.MarginTwips,
		CellScale:   cfg.Report.CellScale,
		RenderScale: cfg.Report.RenderScale,
		MinWidth:    cfg.Report.MinWidth,
		MinHeight:   cfg.Report.MinHeight,
		Quality:     cfg.Report.Quality,
		Title:       cfg.Report.Title,
		Creator:     cfg.Report.Creator,
	})

	// Initialize services
	maxFileBytes := cfg.Storage.MaxFileSizeMB << 20
	reportSvc := service.NewReportService(generator, saver, notifier)
	draftSvc := service.NewDraftService(docs, objects, cat, reportSvc, cfg.S3.Bucket, maxFileBytes)
	imageSvc := service.NewImageService(normalizer, generator, maxFileBytes)
	catalogSvc := service.NewCatalogService(cat)

	worker := service.NewReportJobWorker(reportSvc, service.ReportJobConfig{
		PollInterval: time.Duration(cfg.Queue.PollIntervalMillis) * time.Millisecond,
		Concurrency:  cfg.Queue.Concurrency,
		JobTimeout:   time.Duration(cfg.Queue.JobTimeoutSecs) * time.Second,
		Retention:    time.Duration(cfg.Queue.RetentionMins) * time.Minute,
	})
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		worker.Start(ctx)
	}()

	// Initialize handlers
	var pinger handler.Pinger
	if db != nil {
		pinger = db
	}
	r := router.Setup(router.Handlers{
		Report:  handler.NewReportHandler(reportSvc, cfg.Server.MaxUploadBytes, maxFileBytes),
		Draft:   handler.NewDraftHandler(draftSvc, maxFileBytes),
		Image:   handler.NewImageHandler(imageSvc, maxFileBytes),
		Catalog: handler.NewCatalogHandler(catalogSvc),
		Health:  handler.NewHealthHandler(pinger, cat),
	}, router.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AdminKeyHash:   cfg.Admin.KeyHash,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s (store=%s, storage=%s, email=%s)",
			cfg.Server.Port, cfg.Store.Backend, cfg.Storage.Backend, cfg.Email.Provider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	stop()
	<-workerDone
	return nil
}

func openObjectStorage(ctx context.Context, cfg *config.Config) (port.ObjectStorage, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendS3:
		objects, err := s3storage.NewS3Client(ctx, &cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 client: %w", err)
		}
		return objects, nil
	default:
		objects, err := diskstorage.NewDiskStorage(cfg.Storage.LocalDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize disk storage: %w", err)
		}
		return objects, nil
	}
}

func openNotifier(cfg *config.Config) (port.ReportNotifier, error) {
	if cfg.Email.Provider != "ses" {
		return noop.NewNoopNotifier(), nil
	}
	notifier, err := sesemail.NewSESNotifier(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.OpsAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SES notifier: %w", err)
	}
	return notifier, nil
}
