package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	"cmcreport/internal/config"
	"cmcreport/internal/port"
	"cmcreport/internal/store/local"
	"cmcreport/internal/store/postgres"
)

// Open returns the configured document store. The *sqlx.DB is non-nil only
// for the postgres backend and must be closed by the caller.
func Open(cfg *config.Config) (port.DocumentStore, *sqlx.DB, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		db, err := postgres.NewDB(&cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return postgres.NewDocumentStore(db), db, nil
	default:
		if dir := filepath.Dir(cfg.Store.LocalPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("failed to create %s: %w", dir, err)
			}
		}
		docs, err := local.NewDocumentStore(cfg.Store.LocalPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open local document store: %w", err)
		}
		return docs, nil, nil
	}
}
