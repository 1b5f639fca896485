package extract

import (
	"context"
	"strings"
	"testing"
)

const slideXMLHeader = `<?xml version="1.0"?>` +
	`<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" ` +
	`xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
	`xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart">`

func TestSlidesExtract(t *testing.T) {
	slide1 := slideXMLHeader +
		`<p:cSld><p:spTree>` +
		`<p:sp><p:txBody><a:p><a:r><a:t>The Problem</a:t></a:r></a:p>` +
		`<a:p><a:r><a:t>Diligence is slow and manual.</a:t></a:r></a:p></p:txBody></p:sp>` +
		`<p:pic/>` +
		`</p:spTree></p:cSld></p:sld>`
	slide2 := slideXMLHeader +
		`<p:cSld><p:spTree>` +
		`<p:sp><p:txBody><a:p><a:r><a:t>Traction</a:t></a:r></a:p></p:txBody></p:sp>` +
		`<p:graphicFrame><c:chart/></p:graphicFrame>` +
		`</p:spTree></p:cSld></p:sld>`
	presentation := `<?xml version="1.0"?>` +
		`<p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">` +
		`<p:sldSz cx="12192000" cy="6858000"/></p:presentation>`

	path := buildArchive(t, "deck.pptx", map[string]string{
		"ppt/slides/slide1.xml": slide1,
		"ppt/slides/slide2.xml": slide2,
		"ppt/presentation.xml":  presentation,
	})

	e := &slidesExtractor{}
	content, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if len(content.Segments) != 2 {
		t.Fatalf("got %d segments, want one per slide", len(content.Segments))
	}
	if content.Segments[0].Index != 1 || content.Segments[1].Index != 2 {
		t.Error("segments should carry slide numbers in deck order")
	}
	if !strings.Contains(content.Segments[0].Text, "Diligence is slow") {
		t.Errorf("slide 1 text = %q", content.Segments[0].Text)
	}

	if content.Segments[0].ImageCount != 1 || content.Segments[1].ImageCount != 0 {
		t.Errorf("image counts = %d/%d, want 1/0",
			content.Segments[0].ImageCount, content.Segments[1].ImageCount)
	}
	if content.Segments[1].ChartCount != 1 {
		t.Errorf("slide 2 chart count = %d, want 1", content.Segments[1].ChartCount)
	}
	if len(content.Images) != 1 || content.Images[0].LocationIndex != 1 {
		t.Errorf("images = %+v, want one on slide 1", content.Images)
	}
	if content.Quality.ChartsFound != 1 {
		t.Errorf("charts found = %d, want 1", content.Quality.ChartsFound)
	}

	if content.Metadata.SlideCount != 2 {
		t.Errorf("slide count = %d, want 2", content.Metadata.SlideCount)
	}
	if content.Metadata.SlideWidth != 12192000 || content.Metadata.SlideHeight != 6858000 {
		t.Errorf("slide size = %dx%d, want 12192000x6858000",
			content.Metadata.SlideWidth, content.Metadata.SlideHeight)
	}
}

func TestSlidesExtractNoSlides(t *testing.T) {
	path := buildArchive(t, "hollow.pptx", map[string]string{
		"ppt/presentation.xml": `<p:presentation xmlns:p="x"/>`,
	})

	e := &slidesExtractor{}
	if _, err := e.Extract(context.Background(), path); err == nil {
		t.Fatal("expected error for a deck with no slide parts")
	}
}
