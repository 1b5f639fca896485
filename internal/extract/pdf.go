package extract

import (
	"bytes"
	"context"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// pdfExtractor extracts per-page text, a best-effort table inventory,
// embedded image references, and document info via pdfcpu.
type pdfExtractor struct{}

func (e *pdfExtractor) Extract(_ context.Context, path string) (*ExtractedContent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, extractionErr("PDF", path, "open", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	pdfCtx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, extractionErr("PDF", path, "pdfcpu read", err)
	}

	content := newContent()
	var fullText strings.Builder

	for pageNr := 1; pageNr <= pdfCtx.PageCount; pageNr++ {
		pageText := pdfPageText(pdfCtx, pageNr)

		content.Segments = append(content.Segments, Segment{
			Index:     pageNr,
			Text:      pageText,
			CharCount: charCount(pageText),
		})
		fullText.WriteString(pageText)
		fullText.WriteString("\n")

		content.Tables = append(content.Tables, detectAlignedTables(pageText)...)
		content.Images = append(content.Images, pdfPageImages(pdfCtx, pageNr)...)
	}

	content.FullText = strings.TrimSpace(fullText.String())
	content.Metadata = pdfMetadata(pdfCtx)
	content.finishQuality()
	return content, nil
}

// pdfPageText extracts text from one page's content stream. Errors are
// treated as an empty page; a single unreadable page does not fail the
// whole document.
func pdfPageText(pdfCtx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(pdfCtx, pageNr)
	if err != nil || r == nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return decodeContentStream(data)
}

// pdfPageImages inventories image XObjects on a page with dimensions
// when the stream dict carries them.
func pdfPageImages(pdfCtx *model.Context, pageNr int) []Image {
	var images []Image
	for _, objNr := range pdfcpu.ImageObjNrs(pdfCtx, pageNr) {
		img := Image{LocationIndex: pageNr}
		if entry, found := pdfCtx.Table[objNr]; found && entry != nil {
			if sd, ok := entry.Object.(types.StreamDict); ok {
				if w := sd.IntEntry("Width"); w != nil {
					img.Width = *w
				}
				if h := sd.IntEntry("Height"); h != nil {
					img.Height = *h
				}
			}
		}
		images = append(images, img)
	}
	return images
}

// pdfMetadata pulls the document info dictionary (best effort).
func pdfMetadata(pdfCtx *model.Context) DocumentMetadata {
	md := DocumentMetadata{PageCount: pdfCtx.PageCount}
	if pdfCtx.Info == nil {
		return md
	}
	d, err := pdfCtx.DereferenceDict(*pdfCtx.Info)
	if err != nil || d == nil {
		return md
	}
	md.Title = infoString(pdfCtx, d, "Title")
	md.Author = infoString(pdfCtx, d, "Author")
	md.Subject = infoString(pdfCtx, d, "Subject")
	md.Creator = infoString(pdfCtx, d, "Creator")
	md.Producer = infoString(pdfCtx, d, "Producer")
	md.CreatedAt = infoString(pdfCtx, d, "CreationDate")
	md.ModifiedAt = infoString(pdfCtx, d, "ModDate")
	return md
}

func infoString(pdfCtx *model.Context, d types.Dict, key string) string {
	obj, found := d.Find(key)
	if !found {
		return ""
	}
	s, err := pdfCtx.DereferenceStringOrHexLiteral(obj, model.V10, nil)
	if err != nil {
		return ""
	}
	return s
}

// pdfLiteralRe matches PDF string literals in parentheses: (text here)
var pdfLiteralRe = regexp.MustCompile(`\(([^)]*)\)`)

// decodeContentStream parses content stream text operators (Tj, TJ, ',
// Td/TD, T*). Line structure is preserved so downstream table detection
// can see row boundaries.
func decodeContentStream(data []byte) string {
	var sb strings.Builder

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			for _, m := range pdfLiteralRe.FindAllSubmatch(line, -1) {
				sb.WriteString(decodePDFLiteral(m[1]))
			}
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			for _, m := range pdfLiteralRe.FindAllSubmatch(line, -1) {
				sb.WriteByte('\n')
				sb.WriteString(decodePDFLiteral(m[1]))
			}
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")):
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
		case bytes.Equal(line, []byte("T*")):
			sb.WriteByte('\n')
		}
	}

	return normalizePDFText(sb.String())
}

// decodePDFLiteral handles basic PDF escape sequences, including octal.
func decodePDFLiteral(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			if raw[i] >= '0' && raw[i] <= '7' {
				val := int(raw[i] - '0')
				for j := 0; j < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; j++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(raw[i])
			}
		}
	}
	return sb.String()
}

// normalizePDFText collapses runs of blanks but keeps newlines, and
// drops non-printable runes.
func normalizePDFText(text string) string {
	var sb strings.Builder
	prevBlank := false
	for _, r := range text {
		switch {
		case r == '\n':
			sb.WriteByte('\n')
			prevBlank = false
		case unicode.IsSpace(r):
			if !prevBlank && sb.Len() > 0 {
				sb.WriteByte(' ')
				prevBlank = true
			}
		case unicode.IsPrint(r):
			sb.WriteRune(r)
			prevBlank = false
		}
	}
	return strings.TrimSpace(sb.String())
}

// colSplitRe splits a line into candidate table cells on tabs or runs of
// two and more spaces.
var colSplitRe = regexp.MustCompile(`\t|\s{2,}`)

// detectAlignedTables is a best-effort scan for tabular regions: three
// or more consecutive lines that split into the same number (>=2) of
// whitespace-aligned cells count as one table. pdfcpu exposes no table
// model, so this mirrors the column-alignment idea from geometric table
// detectors.
func detectAlignedTables(pageText string) []Table {
	var tables []Table
	var run [][]string

	flush := func() {
		if len(run) >= 3 {
			preview := run
			if len(preview) > 3 {
				preview = preview[:3]
			}
			tables = append(tables, Table{
				RowCount:    len(run),
				ColumnCount: len(run[0]),
				Preview:     append([][]string{}, preview...),
			})
		}
		run = nil
	}

	for _, line := range strings.Split(pageText, "\n") {
		cells := colSplitRe.Split(strings.TrimSpace(line), -1)
		if len(cells) >= 2 && (len(run) == 0 || len(cells) == len(run[0])) {
			run = append(run, cells)
			continue
		}
		flush()
	}
	flush()
	return tables
}
