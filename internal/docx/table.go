package docx

import (
	"fmt"

	ooxml "github.com/fumiama/go-docx"
)

// Border is a single-line cell border. Size is in eighths of a point.
type Border struct {
	Size  int
	Color string
}

// ThinBorder is the light grey border used around image cells.
var ThinBorder = Border{Size: 4, Color: "E0E0E0"}

// Cell is one table cell. A nil Border draws no border at all.
type Cell struct {
	Paragraphs []*Paragraph
	Border     *Border
}

// Table is a fixed-grid table. Grid holds the column widths in twips; every
// row must have exactly len(Grid) cells.
type Table struct {
	Grid  []int
	Rows  [][]Cell
	Align Alignment
}

// Width is the sum of the grid columns.
func (t *Table) Width() int {
	w := 0
	for _, c := range t.Grid {
		w += c
	}
	return w
}

func (t *Table) validate(usable int) error {
	if w := t.Width(); w > usable {
		return fmt.Errorf("%w: %d > %d twips", ErrTableOverflow, w, usable)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Grid) {
			return fmt.Errorf("%w: row %d has %d cells, grid has %d", ErrRaggedTable, i, len(row), len(t.Grid))
		}
	}
	return nil
}

func (t *Table) render(f *ooxml.Docx) error {
	cols := make([]int64, len(t.Grid))
	for i, w := range t.Grid {
		cols[i] = int64(w)
	}
	tbl := f.AddTableTwips(make([]int64, len(t.Rows)), cols, int64(t.Width()), nil)
	tbl.TableProperties.Width.Type = "dxa"
	// Borders are drawn per cell; padding cells have none.
	tbl.TableProperties.TableBorders = nil
	if t.Align != "" {
		tbl.Justification(string(t.Align))
	}

	for r, row := range t.Rows {
		for c, cell := range row {
			if err := cell.fill(tbl.TableRows[r].TableCells[c]); err != nil {
				return fmt.Errorf("row %d cell %d: %w", r, c, err)
			}
		}
	}
	return nil
}

func (c Cell) fill(tc *ooxml.WTableCell) error {
	tc.TableCellProperties.TableBorders = c.Border.edges()
	tc.TableCellProperties.VAlign = &ooxml.WVerticalAlignment{Val: "center"}
	if len(c.Paragraphs) == 0 {
		// A cell must end with a paragraph.
		tc.AddParagraph()
	}
	for _, p := range c.Paragraphs {
		if err := p.fill(tc.AddParagraph()); err != nil {
			return err
		}
	}
	return nil
}

func (b *Border) edges() *ooxml.WTableBorders {
	edge := func() *ooxml.WTableBorder {
		if b == nil {
			return &ooxml.WTableBorder{Val: "nil"}
		}
		return &ooxml.WTableBorder{Val: "single", Size: b.Size, Color: b.Color}
	}
	return &ooxml.WTableBorders{Top: edge(), Left: edge(), Bottom: edge(), Right: edge()}
}
