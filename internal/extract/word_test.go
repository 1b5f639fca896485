package extract

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// buildArchive writes a zip with the given parts and returns its path.
func buildArchive(t *testing.T, name string, parts map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for partName, body := range parts {
		w, err := zw.Create(partName)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

const wordDocumentXML = `<?xml version="1.0"?>` +
	`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
	`<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>Executive Summary</w:t></w:r></w:p>` +
	`<w:p><w:r><w:t>Revenue grew to $2,000,000 this year.</w:t></w:r></w:p>` +
	`<w:tbl>` +
	`<w:tr><w:tc><w:p><w:r><w:t>Metric</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>Value</w:t></w:r></w:p></w:tc></w:tr>` +
	`<w:tr><w:tc><w:p><w:r><w:t>ARR</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>2.0M</w:t></w:r></w:p></w:tc></w:tr>` +
	`</w:tbl>` +
	`</w:body></w:document>`

const wordCoreXML = `<?xml version="1.0"?>` +
	`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" ` +
	`xmlns:dc="http://purl.org/dc/elements/1.1/">` +
	`<dc:title>Q3 Update</dc:title><dc:creator>Jane Doe</dc:creator>` +
	`</cp:coreProperties>`

func TestWordExtract(t *testing.T) {
	path := buildArchive(t, "update.docx", map[string]string{
		"word/document.xml": wordDocumentXML,
		"docProps/core.xml": wordCoreXML,
	})

	e := &wordExtractor{}
	content, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if len(content.Segments) != 2 {
		t.Fatalf("got %d segments, want 2 (table paragraphs are not segments)", len(content.Segments))
	}
	if content.Segments[0].Name != "Heading1" {
		t.Errorf("first segment style = %q, want Heading1", content.Segments[0].Name)
	}
	if content.Segments[1].Name != "Normal" {
		t.Errorf("unstyled paragraph style = %q, want Normal", content.Segments[1].Name)
	}
	if !strings.Contains(content.FullText, "Revenue grew to $2,000,000") {
		t.Errorf("full text missing paragraph body: %q", content.FullText)
	}

	if len(content.Tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(content.Tables))
	}
	tbl := content.Tables[0]
	if tbl.RowCount != 2 || tbl.ColumnCount != 2 {
		t.Errorf("table %dx%d, want 2x2", tbl.RowCount, tbl.ColumnCount)
	}
	if tbl.Preview[1][0] != "ARR" {
		t.Errorf("table preview cell = %q, want ARR", tbl.Preview[1][0])
	}

	if content.Metadata.Author != "Jane Doe" {
		t.Errorf("author = %q, want Jane Doe", content.Metadata.Author)
	}
	if content.Metadata.Title != "Q3 Update" {
		t.Errorf("title = %q, want Q3 Update", content.Metadata.Title)
	}
	if content.Metadata.ParagraphCount != 2 || content.Metadata.TableCount != 1 {
		t.Errorf("counts = %d paragraphs / %d tables, want 2/1",
			content.Metadata.ParagraphCount, content.Metadata.TableCount)
	}
}

func TestWordExtractMissingDocumentPart(t *testing.T) {
	path := buildArchive(t, "empty.docx", map[string]string{
		"docProps/core.xml": wordCoreXML,
	})

	e := &wordExtractor{}
	if _, err := e.Extract(context.Background(), path); err == nil {
		t.Fatal("expected error when word/document.xml is absent")
	}
}
