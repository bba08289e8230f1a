// Package report assembles evidence slots into a .docx report: one table per
// orientation and size class, images normalized with bounded concurrency.
package report

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"cmcreport/internal/dimension"
	"cmcreport/internal/docx"
	"cmcreport/internal/domain"
	"cmcreport/internal/port"
)

// Defaults for Config.
const (
	DefaultColumns      = 3
	DefaultConcurrency  = 3
	DefaultRenderScale  = 4
	DefaultTitle        = "REPORTE CMC HD"
	DefaultCreator      = "cmcreport"
	DefaultCaptionSize  = 18
	titleSize           = 28
	caseSize            = 24
	ticketSize          = 22
	captionSpacingAfter = 40
	imageSpacingAfter   = 80
)

// Config is the layout and quality policy of a Generator.
type Config struct {
	Columns     int
	Concurrency int
	MarginTwips int
	CellScale   float64
	RenderScale float64
	MinWidth    int
	MinHeight   int
	Quality     float64
	Title       string
	Creator     string
}

func (c Config) withDefaults() Config {
	if c.Columns < 1 {
		c.Columns = DefaultColumns
	}
	if c.Concurrency < 1 {
		c.Concurrency = DefaultConcurrency
	}
	if c.MarginTwips <= 0 {
		c.MarginTwips = dimension.DefaultMarginTwips
	}
	if c.CellScale <= 0 {
		c.CellScale = 1
	}
	if c.RenderScale < 1 {
		c.RenderScale = DefaultRenderScale
	}
	if c.Quality <= 0 || c.Quality > 1 {
		c.Quality = domain.DefaultQuality
	}
	if strings.TrimSpace(c.Title) == "" {
		c.Title = DefaultTitle
	}
	if c.Creator == "" {
		c.Creator = DefaultCreator
	}
	return c
}

// Generator implements port.ReportGenerator.
type Generator struct {
	normalizer port.ImageNormalizer
	cfg        Config
	now        func() time.Time
}

// NewGenerator creates a report generator.
func NewGenerator(normalizer port.ImageNormalizer, cfg Config) *Generator {
	return &Generator{normalizer: normalizer, cfg: cfg.withDefaults(), now: time.Now}
}

// Generate builds the report. onProgress may be nil.
func (g *Generator) Generate(ctx context.Context, slots []domain.EvidenceSlot, meta domain.ReportMetadata, onProgress port.ProgressFunc) (*domain.GeneratedReport, error) {
	return g.GenerateWithState(ctx, slots, meta, onProgress, nil)
}

// GenerateWithState builds the report and reports every state transition to
// onState. Any failure aborts the whole report; no partial document is
// returned.
func (g *Generator) GenerateWithState(ctx context.Context, slots []domain.EvidenceSlot, meta domain.ReportMetadata, onProgress port.ProgressFunc, onState port.StateFunc) (*domain.GeneratedReport, error) {
	setState := func(s domain.ReportState) {
		if onState != nil {
			onState(s)
		}
	}
	fail := func(err error) (*domain.GeneratedReport, error) {
		setState(domain.ReportStateFailed)
		return nil, err
	}

	setState(domain.ReportStateValidating)
	valid := withFiles(slots)
	if len(valid) == 0 {
		return fail(domain.ErrNoEvidence)
	}

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = g.cfg.Title
	}
	incident := strings.TrimSpace(meta.IncidentName)

	setState(domain.ReportStateProcessing)
	groups := Partition(valid)
	prog := newProgress(len(valid), onProgress)
	processed := make([][]*domain.ProcessedImage, len(groups))
	for i, grp := range groups {
		imgs, err := g.processGroup(ctx, grp, prog)
		if err != nil {
			log.Printf("report.Generate: processing %s/%s group failed: %v", grp.Orientation, grp.Size, err)
			return fail(err)
		}
		processed[i] = imgs
	}

	setState(domain.ReportStateAssembling)
	doc := docx.New(docx.A4(g.cfg.MarginTwips), docx.Properties{Title: title, Creator: g.cfg.Creator, Created: g.now().UTC()})
	g.writeHeader(doc, title, incident, ticketFor(meta, valid))
	for i, grp := range groups {
		if err := g.writeGroup(doc, grp, processed[i]); err != nil {
			log.Printf("report.Generate: laying out %s/%s group failed: %v", grp.Orientation, grp.Size, err)
			return fail(err)
		}
	}

	data, err := doc.Bytes()
	if err != nil {
		return fail(fmt.Errorf("%w: serializing document: %v", domain.ErrEncode, err))
	}

	setState(domain.ReportStateDone)
	return &domain.GeneratedReport{
		Bytes:       data,
		Filename:    BuildFilename(title, incident, g.now()),
		ContentType: domain.MimeDocx,
		ImageCount:  len(valid),
	}, nil
}

// Target returns the display box a slot with the given orientation and size
// class is rendered into.
func (g *Generator) Target(o domain.Orientation, size domain.SizeClass) domain.TargetDimensions {
	return g.targetFor(Group{Orientation: o, Size: size})
}

// targetFor returns the display box for a group: the size-class box capped
// at the cell geometry without changing its aspect ratio.
func (g *Generator) targetFor(grp Group) domain.TargetDimensions {
	cell := dimension.CellTargetDimensions(g.cfg.Columns, grp.Orientation, g.cfg.MarginTwips, g.cfg.MarginTwips, g.cfg.CellScale)
	box := dimension.BoxFor(grp.Size, grp.Orientation, 1)

	w, h := box.WidthPx, box.HeightPx
	if w > cell.WidthPx {
		h = max(1, h*cell.WidthPx/w)
		w = cell.WidthPx
	}
	if h > cell.HeightPx {
		w = max(1, w*cell.HeightPx/h)
		h = cell.HeightPx
	}
	return domain.TargetDimensions{
		DisplayWidth:  w,
		DisplayHeight: h,
		RenderScale:   g.cfg.RenderScale,
		MinWidth:      g.cfg.MinWidth,
		MinHeight:     g.cfg.MinHeight,
		Quality:       g.cfg.Quality,
	}
}

// processGroup normalizes every slot of a group with at most
// cfg.Concurrency calls in flight. Results keep the slot order.
func (g *Generator) processGroup(ctx context.Context, grp Group, prog *progress) ([]*domain.ProcessedImage, error) {
	target := g.targetFor(grp)
	out := make([]*domain.ProcessedImage, len(grp.Slots))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Concurrency)
	for i := range grp.Slots {
		slot := grp.Slots[i]
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			img, err := g.normalizer.Normalize(egCtx, slot.File.Data, slot.Rotation, grp.Orientation, target)
			if err != nil {
				return fmt.Errorf("slot %q: %w", captionFor(slot), err)
			}
			out[i] = img
			prog.inc()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Generator) writeHeader(doc *docx.Document, title, incident, ticket string) {
	p := docx.Text(title, true, titleSize, docx.AlignCenter)
	p.SpacingAfter = 80
	doc.AddParagraph(p)

	if incident == "" {
		return
	}
	p = docx.Text("CASO: "+incident, true, caseSize, docx.AlignLeft)
	p.SpacingAfter = 60
	doc.AddParagraph(p)

	if ticket != "" {
		p = docx.Text("TICKET: "+ticket, false, ticketSize, docx.AlignLeft)
		p.SpacingAfter = 120
		doc.AddParagraph(p)
	}
}

// writeGroup lays images into rows of cfg.Columns cells. A short last row is
// padded with borderless empty cells.
func (g *Generator) writeGroup(doc *docx.Document, grp Group, imgs []*domain.ProcessedImage) error {
	cols := g.cfg.Columns
	table := &docx.Table{
		Grid:  dimension.CellWidthsTwips(cols, g.cfg.MarginTwips, g.cfg.MarginTwips),
		Align: docx.AlignCenter,
	}

	var row []docx.Cell
	for i, slot := range grp.Slots {
		img := imgs[i]
		embedded, err := doc.AddImage(img.Buffer, img.MimeType, img.DisplayWidth, img.DisplayHeight)
		if err != nil {
			return fmt.Errorf("%w: slot %q: %v", domain.ErrEncode, captionFor(slot), err)
		}
		caption := docx.Text(captionFor(slot), true, DefaultCaptionSize, docx.AlignCenter)
		caption.SpacingAfter = captionSpacingAfter
		picture := docx.ImageParagraph(embedded, docx.AlignCenter)
		picture.SpacingAfter = imageSpacingAfter

		row = append(row, docx.Cell{
			Paragraphs: []*docx.Paragraph{caption, picture},
			Border:     &docx.ThinBorder,
		})
		if len(row) == cols {
			table.Rows = append(table.Rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		for len(row) < cols {
			row = append(row, docx.Cell{})
		}
		table.Rows = append(table.Rows, row)
	}

	if err := doc.AddTable(table); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrEncode, err)
	}
	spacer := &docx.Paragraph{SpacingAfter: imageSpacingAfter}
	doc.AddParagraph(spacer)
	return nil
}

func withFiles(slots []domain.EvidenceSlot) []domain.EvidenceSlot {
	var out []domain.EvidenceSlot
	for i := range slots {
		if slots[i].HasFile() {
			out = append(out, slots[i])
		}
	}
	return out
}

func captionFor(s domain.EvidenceSlot) string {
	if t := strings.TrimSpace(s.Title); t != "" {
		return t
	}
	return domain.DefaultSlotTitle
}

var ticketPattern = regexp.MustCompile(`#\d+`)

var digitsOnly = regexp.MustCompile(`^\d+$`)

// ticketFor prefers the explicit ticket, otherwise the first #<digits> found
// in a slot title and then its file name, slot by slot.
func ticketFor(meta domain.ReportMetadata, slots []domain.EvidenceSlot) string {
	if t := strings.TrimSpace(meta.TicketID); t != "" {
		if digitsOnly.MatchString(t) {
			return "#" + t
		}
		return t
	}
	return ExtractTicket(slots)
}

// ExtractTicket returns the first #<digits> match across slot titles and file
// names, or "".
func ExtractTicket(slots []domain.EvidenceSlot) string {
	for i := range slots {
		if m := ticketPattern.FindString(slots[i].Title); m != "" {
			return m
		}
		if f := slots[i].File; f != nil {
			if m := ticketPattern.FindString(f.Name); m != "" {
				return m
			}
		}
	}
	return ""
}

// progress counts completed images and serializes callbacks.
type progress struct {
	mu    sync.Mutex
	done  int
	total int
	fn    port.ProgressFunc
}

func newProgress(total int, fn port.ProgressFunc) *progress {
	return &progress{total: total, fn: fn}
}

func (p *progress) inc() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	if p.fn != nil {
		p.fn(p.done, p.total)
	}
}
