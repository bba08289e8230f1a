// Command seedcatalog imports incident guides and categories from an Excel
// workbook into the configured document store.
// Usage: go run ./cmd/seedcatalog [catalog.xlsx]
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/xuri/excelize/v2"

	"cmcreport/internal/catalog"
	"cmcreport/internal/config"
	"cmcreport/internal/store"
)

const defaultWorkbook = "db/seeds/catalog.xlsx"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	xlsxPath := defaultWorkbook
	if len(os.Args) > 1 {
		xlsxPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	docs, db, err := store.Open(cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	res, err := catalog.ImportWorkbook(context.Background(), f, catalog.NewStore(docs), "seedcatalog")
	if err != nil {
		return fmt.Errorf("import %s: %w", xlsxPath, err)
	}

	log.Printf("Imported %d guides and %d categories from %s (%d rows skipped, store=%s)",
		res.Guides, res.Categories, xlsxPath, res.Skipped, cfg.Store.Backend)
	return nil
}
