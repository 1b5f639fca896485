package extract

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// slidesExtractor parses .pptx archives: per-slide text across all
// text-bearing shapes, image and chart counts per slide, and deck-level
// metadata. Legacy .ppt uploads are routed here by the coordinator.
type slidesExtractor struct{}

func (e *slidesExtractor) Extract(_ context.Context, path string) (*ExtractedContent, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, extractionErr("SLIDES", path, "open zip", err)
	}
	defer r.Close()

	slides := map[string]*zip.File{}
	var presentation *zip.File
	for _, f := range r.File {
		if strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml") {
			slides[f.Name] = f
		}
		if f.Name == "ppt/presentation.xml" {
			presentation = f
		}
	}
	if len(slides) == 0 {
		return nil, extractionErr("SLIDES", path, "no slides found in archive", nil)
	}

	content := newContent()
	var fullText strings.Builder

	// slide parts are numbered slide1.xml..slideN.xml; iterate in deck order
	for slideNr := 1; ; slideNr++ {
		f, ok := slides[fmt.Sprintf("ppt/slides/slide%d.xml", slideNr)]
		if !ok {
			break
		}
		text, imageCount, chartCount, err := parseSlide(f)
		if err != nil {
			return nil, extractionErr("SLIDES", path, "parse "+f.Name, err)
		}

		content.Segments = append(content.Segments, Segment{
			Index:      slideNr,
			Text:       strings.TrimSpace(text),
			CharCount:  charCount(text),
			ImageCount: imageCount,
			ChartCount: chartCount,
		})
		for i := 0; i < imageCount; i++ {
			content.Images = append(content.Images, Image{LocationIndex: slideNr})
		}
		content.Quality.ChartsFound += chartCount
		fullText.WriteString(text)
	}

	content.FullText = strings.TrimSpace(fullText.String())
	content.Metadata.SlideCount = len(content.Segments)
	if presentation != nil {
		parseSlideSize(presentation, &content.Metadata)
	}
	charts := content.Quality.ChartsFound
	content.finishQuality()
	content.Quality.ChartsFound = charts
	return content, nil
}

// parseSlide walks one slide part, concatenating every a:t text run and
// counting pictures and chart graphic frames.
func parseSlide(f *zip.File) (string, int, int, error) {
	rc, err := f.Open()
	if err != nil {
		return "", 0, 0, err
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var text strings.Builder
	var inTextRun bool
	images := 0
	charts := 0

	for {
		tok, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", 0, 0, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inTextRun = true
			case "pic":
				images++
			case "chart":
				charts++
			}
		case xml.CharData:
			if inTextRun {
				text.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inTextRun = false
			case "p":
				text.WriteString("\n")
			}
		}
	}

	return text.String(), images, charts, nil
}

// parseSlideSize reads the deck's slide dimensions (EMU) from
// presentation.xml.
func parseSlideSize(f *zip.File, md *DocumentMetadata) {
	rc, err := f.Open()
	if err != nil {
		return
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	for {
		tok, err := decoder.Token()
		if err != nil {
			return
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == "sldSz" {
			for _, attr := range se.Attr {
				v, convErr := strconv.Atoi(attr.Value)
				if convErr != nil {
					continue
				}
				switch attr.Name.Local {
				case "cx":
					md.SlideWidth = v
				case "cy":
					md.SlideHeight = v
				}
			}
			return
		}
	}
}
