package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestExtractMissingFile(t *testing.T) {
	c := NewCoordinator(Config{}, nil)
	_, err := c.Extract(context.Background(), filepath.Join(t.TempDir(), "nope.pdf"), "application/pdf")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var ee *ExtractionError
	if !errors.As(err, &ee) {
		t.Fatalf("expected *ExtractionError, got %T", err)
	}
}

func TestExtractUnsupportedMIME(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewCoordinator(Config{}, nil)
	_, err := c.Extract(context.Background(), path, "text/plain")
	if err == nil {
		t.Fatal("expected error for unsupported MIME type")
	}
	var ee *ExtractionError
	if !errors.As(err, &ee) {
		t.Fatalf("expected *ExtractionError, got %T", err)
	}
}

func TestExtractFileTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.pdf")
	if err := os.WriteFile(path, make([]byte, 128), 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewCoordinator(Config{MaxFileSize: 16}, nil)
	_, err := c.Extract(context.Background(), path, "application/pdf")
	if err == nil {
		t.Fatal("expected error for oversized file")
	}
}

func TestExtractCorruptFileNoPartialContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	if err := os.WriteFile(path, []byte("not a zip archive"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewCoordinator(Config{}, nil)
	content, err := c.Extract(context.Background(), path,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err == nil {
		t.Fatal("expected error for corrupt workbook")
	}
	if content != nil {
		t.Errorf("expected nil content on failure, got %+v", content)
	}
}
