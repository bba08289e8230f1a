package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cmcreport/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row. It mirrors the Categorias sheet
// read by catalog.ImportWorkbook so an export can be edited and re-imported.
var columns = []string{
	"Nombre",
	"Grupo",
	"Orden",
	"Evidencias",
	"Advertencia",
	"Activo",
}

// Writer wraps csv.Writer for exporting incident categories as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteCategories converts categories to CSV rows and writes them.
func (w *Writer) WriteCategories(cats []domain.Category) error {
	for i := range cats {
		if err := w.csv.Write(categoryToRow(&cats[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// categoryToRow joins evidence items with newlines, one per line in the cell.
func categoryToRow(c *domain.Category) []string {
	return []string{
		c.Name,
		c.Group,
		strconv.Itoa(c.Order),
		strings.Join(c.Items, "\n"),
		c.Warning,
		formatBool(c.IsActive),
	}
}

func formatBool(v bool) string {
	if v {
		return "si"
	}
	return "no"
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_name}_{YYYY-MM-DD}.csv
func BuildFilename(name string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", SanitizeFilename(name), now.Format("2006-01-02"))
}
