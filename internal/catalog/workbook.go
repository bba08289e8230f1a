package catalog

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"cmcreport/internal/domain"
)

// Sheet names read by ImportWorkbook.
const (
	SheetGuides     = "Guias"
	SheetCategories = "Categorias"
)

// ImportResult counts what ImportWorkbook stored.
type ImportResult struct {
	Guides     int
	Categories int
	Skipped    int
}

// ImportWorkbook loads guides and categories from an .xlsx workbook.
//
// Guias: A=incident name, B=guide text. Categorias: A=name, B=group,
// C=order, D=evidence items (one per line or ";"-separated), E=warning,
// F=active ("no"/"false"/"0" disables). Row 1 of each sheet is a header.
// Categories are keyed by slug so re-imports update in place. A missing
// sheet is skipped.
func ImportWorkbook(ctx context.Context, f *excelize.File, s *Store, updatedBy string) (ImportResult, error) {
	var res ImportResult

	if rows, ok, err := sheetRows(f, SheetGuides); err != nil {
		return res, err
	} else if ok {
		for i, row := range rows {
			if i == 0 {
				continue
			}
			name, content := cell(row, 0), cell(row, 1)
			if name == "" || content == "" {
				res.Skipped++
				continue
			}
			if _, err := s.SaveGuide(ctx, name, content, updatedBy); err != nil {
				return res, fmt.Errorf("guide %q (row %d): %w", name, i+1, err)
			}
			res.Guides++
		}
	}

	if rows, ok, err := sheetRows(f, SheetCategories); err != nil {
		return res, err
	} else if ok {
		for i, row := range rows {
			if i == 0 {
				continue
			}
			c, ok := categoryFromRow(row)
			if !ok {
				res.Skipped++
				continue
			}
			if _, err := s.SaveCategory(ctx, c, updatedBy); err != nil {
				return res, fmt.Errorf("category %q (row %d): %w", c.Name, i+1, err)
			}
			res.Categories++
		}
	}

	log.Printf("catalog.ImportWorkbook: %d guides, %d categories, %d rows skipped",
		res.Guides, res.Categories, res.Skipped)
	return res, nil
}

func sheetRows(f *excelize.File, sheet string) ([][]string, bool, error) {
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, false, nil
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, false, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}
	return rows, true, nil
}

func categoryFromRow(row []string) (domain.Category, bool) {
	name := cell(row, 0)
	if name == "" {
		return domain.Category{}, false
	}
	order, _ := strconv.Atoi(cell(row, 2))
	slug := GuideSlug(name)
	return domain.Category{
		ID:       slug,
		Name:     name,
		Slug:     slug,
		Group:    cell(row, 1),
		IsActive: parseActive(cell(row, 5)),
		Order:    order,
		Items:    splitItems(cell(row, 3)),
		Warning:  cell(row, 4),
	}, true
}

func splitItems(raw string) []string {
	items := []string{}
	for _, part := range strings.FieldsFunc(raw, func(r rune) bool { return r == '\n' || r == ';' }) {
		if p := strings.TrimSpace(part); p != "" {
			items = append(items, p)
		}
	}
	return items
}

func parseActive(raw string) bool {
	switch strings.ToLower(raw) {
	case "no", "false", "0", "inactivo":
		return false
	default:
		return true
	}
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
