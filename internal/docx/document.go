// Package docx builds WordprocessingML (.docx) packages on top of
// github.com/fumiama/go-docx: paragraphs of text runs, inline images and
// fixed-grid tables on a single A4 section.
package docx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	ooxml "github.com/fumiama/go-docx"
	"github.com/fumiama/imgsz"
)

var (
	ErrTableOverflow    = errors.New("table is wider than the usable page width")
	ErrRaggedTable      = errors.New("table row does not match the grid")
	ErrUnsupportedImage = errors.New("image type cannot be embedded")
)

// A4 portrait in twips.
const (
	A4WidthTwips  = 11906
	A4HeightTwips = 16838

	headerFooterTwips = 708
)

// PageSetup is the page size and margins in twips.
type PageSetup struct {
	WidthTwips   int
	HeightTwips  int
	MarginTop    int
	MarginRight  int
	MarginBottom int
	MarginLeft   int
}

// A4 returns an A4 portrait page with the same margin on every side.
func A4(margin int) PageSetup {
	return PageSetup{
		WidthTwips:   A4WidthTwips,
		HeightTwips:  A4HeightTwips,
		MarginTop:    margin,
		MarginRight:  margin,
		MarginBottom: margin,
		MarginLeft:   margin,
	}
}

// UsableWidth is the page width minus left and right margins.
func (p PageSetup) UsableWidth() int {
	return p.WidthTwips - p.MarginLeft - p.MarginRight
}

func (p PageSetup) sectPr() *ooxml.SectPr {
	return &ooxml.SectPr{
		PgSz: &ooxml.PgSz{W: p.WidthTwips, H: p.HeightTwips},
		PgMar: &ooxml.PgMar{
			Top:    p.MarginTop,
			Left:   p.MarginLeft,
			Bottom: p.MarginBottom,
			Right:  p.MarginRight,
			Header: headerFooterTwips,
			Footer: headerFooterTwips,
		},
	}
}

// Properties are written to docProps/core.xml.
type Properties struct {
	Title   string
	Creator string
	Created time.Time
}

type block interface {
	render(f *ooxml.Docx) error
}

// Document collects blocks and renders them into a go-docx file on write.
// It is not safe for concurrent use.
type Document struct {
	Page  PageSetup
	Props Properties

	body   []block
	images int
}

// New creates an empty document.
func New(page PageSetup, props Properties) *Document {
	if props.Created.IsZero() {
		props.Created = time.Now().UTC()
	}
	return &Document{Page: page, Props: props}
}

// AddParagraph appends a paragraph to the body.
func (d *Document) AddParagraph(p *Paragraph) {
	d.body = append(d.body, p)
}

// AddTable appends a table after checking it is rectangular and fits inside
// the page margins.
func (d *Document) AddTable(t *Table) error {
	if err := t.validate(d.Page.UsableWidth()); err != nil {
		return err
	}
	d.body = append(d.body, t)
	return nil
}

// AddImage checks that data is an embeddable image of the declared type and
// returns an inline drawing sized widthPx x heightPx that can be placed in a
// paragraph.
func (d *Document) AddImage(data []byte, mimeType string, widthPx, heightPx int) (*Image, error) {
	want, ok := imageFormats[mimeType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, mimeType)
	}
	sz, format, err := imgsz.DecodeSize(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedImage, mimeType, err)
	}
	if format != want {
		return nil, fmt.Errorf("%w: declared %s, found %s", ErrUnsupportedImage, mimeType, format)
	}
	if sz.Width == 0 || sz.Height == 0 {
		return nil, fmt.Errorf("%w: empty %s image", ErrUnsupportedImage, format)
	}
	d.images++
	return &Image{
		WidthPx:  max(widthPx, 1),
		HeightPx: max(heightPx, 1),
		data:     data,
	}, nil
}

// ImageCount returns the number of images added to the document.
func (d *Document) ImageCount() int { return d.images }

// WriteTo renders the body and writes the zipped package.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	f, err := d.build()
	if err != nil {
		return 0, err
	}
	cw := &countingWriter{w: w}
	if _, err := f.WriteTo(cw); err != nil {
		return cw.n, fmt.Errorf("writing package: %w", err)
	}
	return cw.n, nil
}

// Bytes returns the zipped package.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *Document) build() (*ooxml.Docx, error) {
	tmpl, err := newTemplate(d.Props)
	if err != nil {
		return nil, err
	}
	f := ooxml.New().UseTemplate(templateName, ooxml.DefaultTemplateFilesList, tmpl)
	for i, b := range d.body {
		if err := b.render(f); err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
	}
	// Word expects a paragraph between a trailing table and the section.
	if len(d.body) == 0 {
		f.AddParagraph()
	} else if _, ok := d.body[len(d.body)-1].(*Table); ok {
		f.AddParagraph()
	}
	f.Document.Body.Items = append(f.Document.Body.Items, d.Page.sectPr())
	return f, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
