package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readParts(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	parts := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		parts[f.Name] = string(b)
	}
	return parts
}

func wellFormed(t *testing.T, s string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(s))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		require.NoError(t, err)
	}
}

func jpegImage(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)), nil))
	return buf.Bytes()
}

func pngImage(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestDocument_EmptyPackage(t *testing.T) {
	d := New(A4(720), Properties{Title: "Reporte <CMC>", Creator: "cmc", Created: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)})

	data, err := d.Bytes()
	require.NoError(t, err)

	parts := readParts(t, data)
	for _, name := range []string{
		"[Content_Types].xml", "_rels/.rels", "docProps/core.xml",
		"word/document.xml", "word/styles.xml", "word/_rels/document.xml.rels",
	} {
		require.Contains(t, parts, name)
		wellFormed(t, parts[name])
	}
	doc := parts["word/document.xml"]
	assert.Contains(t, doc, `w:top="720" w:left="720" w:bottom="720" w:right="720"`)
	assert.Contains(t, doc, `<w:pgSz w:w="11906" w:h="16838">`)
	assert.Contains(t, doc, `<w:p></w:p><w:sectPr>`)
	assert.Contains(t, parts["docProps/core.xml"], "2024-01-02T03:04:05Z")
	assert.Contains(t, parts["docProps/core.xml"], "<dc:title>Reporte &lt;CMC&gt;</dc:title>")
	assert.Contains(t, parts["word/styles.xml"], `w:val="es-MX"`)
}

func TestDocument_ParagraphEscapesText(t *testing.T) {
	d := New(A4(720), Properties{})
	d.AddParagraph(Text(`CASO: <Viaje> & "extra"`, true, 24, AlignLeft))

	data, err := d.Bytes()
	require.NoError(t, err)
	doc := readParts(t, data)["word/document.xml"]

	wellFormed(t, doc)
	assert.Contains(t, doc, "CASO: &lt;Viaje&gt; &amp;")
	assert.Contains(t, doc, `<w:b></w:b>`)
	assert.Contains(t, doc, `<w:sz w:val="24"></w:sz>`)
	assert.Contains(t, doc, `<w:jc w:val="left"></w:jc>`)
	assert.Contains(t, doc, `w:ascii="Calibri"`)
	assert.Contains(t, doc, `xml:space="preserve"`)
}

func TestDocument_SpacingAfter(t *testing.T) {
	d := New(A4(720), Properties{})
	p := Text("REPORTE", true, 28, AlignCenter)
	p.SpacingAfter = 80
	d.AddParagraph(p)
	d.AddParagraph(&Paragraph{SpacingAfter: 200})

	data, err := d.Bytes()
	require.NoError(t, err)
	doc := readParts(t, data)["word/document.xml"]

	wellFormed(t, doc)
	assert.Contains(t, doc, `<w:p><w:pPr><w:spacing w:after="80"></w:spacing><w:jc w:val="center"></w:jc></w:pPr><w:r>`)
	assert.Contains(t, doc, `<w:p><w:pPr><w:spacing w:after="200"></w:spacing></w:pPr></w:p>`)
}

func TestDocument_ImagesAndTable(t *testing.T) {
	d := New(A4(720), Properties{})
	img, err := d.AddImage(jpegImage(t, 40, 20), "image/jpeg", 200, 100)
	require.NoError(t, err)
	pic, err := d.AddImage(pngImage(t, 5, 5), "image/png", 50, 50)
	require.NoError(t, err)

	grid := []int{3489, 3489, 3488}
	err = d.AddTable(&Table{
		Grid:  grid,
		Align: AlignCenter,
		Rows: [][]Cell{{
			{Paragraphs: []*Paragraph{Text("A", true, 18, AlignCenter), ImageParagraph(img, AlignCenter)}, Border: &ThinBorder},
			{Paragraphs: []*Paragraph{ImageParagraph(pic, AlignCenter)}, Border: &ThinBorder},
			{},
		}},
	})
	require.NoError(t, err)

	data, err := d.Bytes()
	require.NoError(t, err)
	parts := readParts(t, data)
	doc := parts["word/document.xml"]
	wellFormed(t, doc)

	assert.Equal(t, 2, d.ImageCount())
	assert.Contains(t, parts, "word/media/image1.jpeg")
	assert.Contains(t, parts, "word/media/image2.png")
	assert.Contains(t, parts["[Content_Types].xml"], `Extension="jpeg"`)
	assert.Contains(t, parts["[Content_Types].xml"], `Extension="png"`)
	assert.Contains(t, parts["word/_rels/document.xml.rels"], `Target="media/image1.jpeg"`)

	// Extents follow the requested display size, not the pixel size.
	assert.Contains(t, doc, `<wp:extent cx="1905000" cy="952500"></wp:extent>`)
	assert.Contains(t, doc, `<wp:extent cx="476250" cy="476250"></wp:extent>`)
	assert.Contains(t, doc, `<w:tblW w:w="10466" w:type="dxa"></w:tblW>`)
	assert.Contains(t, doc, `<w:gridCol w:w="3488"></w:gridCol>`)
	assert.Contains(t, doc, `w:val="single" w:sz="4" w:color="E0E0E0"`)
	assert.Equal(t, 1, strings.Count(doc, `<w:top w:val="nil"></w:top>`))
	assert.NotContains(t, doc, "<w:tblBorders>")
	// Trailing table is followed by an empty paragraph.
	assert.Contains(t, doc, `</w:tbl><w:p></w:p><w:sectPr>`)
}

func TestDocument_TableOverflow(t *testing.T) {
	d := New(A4(720), Properties{})
	err := d.AddTable(&Table{Grid: []int{5000, 5467}, Rows: [][]Cell{{{}, {}}}})
	assert.ErrorIs(t, err, ErrTableOverflow)
}

func TestDocument_RaggedTable(t *testing.T) {
	d := New(A4(720), Properties{})
	err := d.AddTable(&Table{Grid: []int{3000, 3000}, Rows: [][]Cell{{{}}}})
	assert.ErrorIs(t, err, ErrRaggedTable)
}

func TestDocument_UnsupportedImage(t *testing.T) {
	d := New(A4(720), Properties{})

	_, err := d.AddImage(pngImage(t, 2, 2), "image/webp", 10, 10)
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = d.AddImage([]byte("not an image"), "image/jpeg", 10, 10)
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = d.AddImage(pngImage(t, 2, 2), "image/jpeg", 10, 10)
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	assert.Equal(t, 0, d.ImageCount())
}

func TestPageSetup_UsableWidth(t *testing.T) {
	assert.Equal(t, 10466, A4(720).UsableWidth())
}
