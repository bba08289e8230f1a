package docx

import (
	"encoding/xml"
	"fmt"
	"strconv"

	ooxml "github.com/fumiama/go-docx"

	"cmcreport/internal/dimension"
)

// Alignment is a paragraph justification value.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// DefaultFont is used by runs without an explicit font.
const DefaultFont = "Calibri"

// Run is a span of text sharing one format. Size is in half-points.
type Run struct {
	Text string
	Bold bool
	Size int
	Font string
}

// Image is an inline drawing created by Document.AddImage.
type Image struct {
	WidthPx  int
	HeightPx int

	data []byte
}

// Paragraph holds runs and an optional inline image placed after them.
type Paragraph struct {
	Align        Alignment
	SpacingAfter int // twips, zero leaves the style default
	Runs         []Run
	Image        *Image
}

// Text returns a paragraph with a single run.
func Text(text string, bold bool, size int, align Alignment) *Paragraph {
	return &Paragraph{
		Align: align,
		Runs:  []Run{{Text: text, Bold: bold, Size: size}},
	}
}

// ImageParagraph returns a paragraph holding only img.
func ImageParagraph(img *Image, align Alignment) *Paragraph {
	return &Paragraph{Align: align, Image: img}
}

// spacedProperties is a w:pPr with w:spacing/@w:after, which go-docx's
// ParagraphProperties cannot express. It must be the paragraph's first child.
type spacedProperties struct {
	XMLName xml.Name `xml:"w:pPr"`
	Spacing struct {
		After int `xml:"w:after,attr"`
	} `xml:"w:spacing"`
	Justification *ooxml.Justification
}

func (p *Paragraph) render(f *ooxml.Docx) error {
	return p.fill(f.AddParagraph())
}

func (p *Paragraph) fill(para *ooxml.Paragraph) error {
	switch {
	case p.SpacingAfter > 0:
		props := &spacedProperties{}
		props.Spacing.After = p.SpacingAfter
		if p.Align != "" {
			props.Justification = &ooxml.Justification{Val: string(p.Align)}
		}
		para.Children = append(para.Children, props)
	case p.Align != "":
		para.Justification(string(p.Align))
	}

	for _, r := range p.Runs {
		r.fill(para.AddText(r.Text))
	}
	if p.Image == nil {
		return nil
	}
	run, err := para.AddInlineDrawing(p.Image.data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	for _, c := range run.Children {
		if d, ok := c.(*ooxml.Drawing); ok && d.Inline != nil {
			d.Inline.Size(dimension.PixelsToEMU(p.Image.WidthPx), dimension.PixelsToEMU(p.Image.HeightPx))
		}
	}
	return nil
}

func (r Run) fill(run *ooxml.Run) {
	font := r.Font
	if font == "" {
		font = DefaultFont
	}
	run.Font(font, font, font, "")
	if r.Bold {
		run.Bold()
	}
	if r.Size > 0 {
		run.Size(strconv.Itoa(r.Size)).SizeCs(strconv.Itoa(r.Size))
	}
	for _, c := range run.Children {
		if t, ok := c.(*ooxml.Text); ok {
			t.XMLSpace = "preserve"
		}
	}
}
