package extract

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"io"
	"strings"
)

// wordExtractor parses .docx archives: paragraph-by-paragraph text with
// style names, full table grids, and core document properties.
type wordExtractor struct{}

func (e *wordExtractor) Extract(_ context.Context, path string) (*ExtractedContent, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, extractionErr("WORD", path, "open zip", err)
	}
	defer r.Close()

	var docFile, propsFile *zip.File
	for _, f := range r.File {
		switch f.Name {
		case "word/document.xml":
			docFile = f
		case "docProps/core.xml":
			propsFile = f
		}
	}
	if docFile == nil {
		return nil, extractionErr("WORD", path, "word/document.xml not found in archive", nil)
	}

	content := newContent()
	if err := parseWordDocument(docFile, content); err != nil {
		return nil, extractionErr("WORD", path, "parse document.xml", err)
	}
	if propsFile != nil {
		parseCoreProperties(propsFile, &content.Metadata)
	}
	content.Metadata.ParagraphCount = len(content.Segments)
	content.Metadata.TableCount = len(content.Tables)
	content.finishQuality()
	return content, nil
}

func parseWordDocument(docFile *zip.File, content *ExtractedContent) error {
	rc, err := docFile.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var fullText strings.Builder
	var paraText strings.Builder
	var paraStyle string
	var inParagraph bool

	// table state; paragraphs inside table cells accumulate into the
	// current cell instead of the segment list
	var inTable bool
	var tableRows [][]string
	var currentRow []string
	var cellText strings.Builder
	var inCell bool

	paraIndex := 0

	for {
		tok, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				inTable = true
				tableRows = nil
			case "tr":
				if inTable {
					currentRow = nil
				}
			case "tc":
				if inTable {
					inCell = true
					cellText.Reset()
				}
			case "p":
				if !inTable {
					inParagraph = true
					paraText.Reset()
					paraStyle = ""
				}
			case "pStyle":
				if inParagraph {
					for _, attr := range t.Attr {
						if attr.Name.Local == "val" {
							paraStyle = attr.Value
						}
					}
				}
			}

		case xml.CharData:
			switch {
			case inCell:
				cellText.Write(t)
			case inParagraph:
				paraText.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "tc":
				if inTable {
					currentRow = append(currentRow, strings.TrimSpace(cellText.String()))
					inCell = false
				}
			case "tr":
				if inTable && len(currentRow) > 0 {
					tableRows = append(tableRows, currentRow)
				}
			case "tbl":
				if inTable && len(tableRows) > 0 {
					preview := tableRows
					if len(preview) > 3 {
						preview = preview[:3]
					}
					content.Tables = append(content.Tables, Table{
						RowCount:    len(tableRows),
						ColumnCount: len(tableRows[0]),
						Preview:     append([][]string{}, preview...),
					})
				}
				inTable = false
			case "p":
				if inParagraph {
					inParagraph = false
					text := strings.TrimSpace(paraText.String())
					if text == "" {
						continue
					}
					paraIndex++
					style := paraStyle
					if style == "" {
						style = "Normal"
					}
					content.Segments = append(content.Segments, Segment{
						Index:     paraIndex,
						Name:      style,
						Text:      text,
						CharCount: charCount(text),
					})
					fullText.WriteString(text)
					fullText.WriteString("\n")
				}
			}
		}
	}

	content.FullText = strings.TrimSpace(fullText.String())
	return nil
}

// coreProps mirrors the Dublin Core subset in docProps/core.xml.
type coreProps struct {
	Title    string `xml:"title"`
	Subject  string `xml:"subject"`
	Creator  string `xml:"creator"`
	Created  string `xml:"created"`
	Modified string `xml:"modified"`
}

func parseCoreProperties(propsFile *zip.File, md *DocumentMetadata) {
	rc, err := propsFile.Open()
	if err != nil {
		return
	}
	defer rc.Close()

	var props coreProps
	if err := xml.NewDecoder(rc).Decode(&props); err != nil {
		return
	}
	md.Title = props.Title
	md.Subject = props.Subject
	md.Author = props.Creator
	md.CreatedAt = props.Created
	md.ModifiedAt = props.Modified
}
