package extract

import "fmt"

// ExtractionError is the single error type the extraction stage surfaces.
// It wraps the root cause (missing file, unregistered MIME type, parser
// failure) with the format and path it happened on.
type ExtractionError struct {
	Format string // format tag, or "" when dispatch itself failed
	Path   string
	Msg    string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed (%s, %s): %s: %v", e.Format, e.Path, e.Msg, e.Err)
	}
	return fmt.Sprintf("extraction failed (%s, %s): %s", e.Format, e.Path, e.Msg)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func extractionErr(format, path, msg string, err error) *ExtractionError {
	return &ExtractionError{Format: format, Path: path, Msg: msg, Err: err}
}
