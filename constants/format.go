package constants

// DocumentFormat is the canonical format tag for a registered document.
type DocumentFormat string

// Stable values (store these exact strings in DB).
const (
	PDF         DocumentFormat = "PDF"
	WORD        DocumentFormat = "WORD"
	SPREADSHEET DocumentFormat = "SPREADSHEET"
	SLIDES      DocumentFormat = "SLIDES"
)

// DocumentFormats holds the allowed values for the format field on documents.
var DocumentFormats = []string{string(PDF), string(WORD), string(SPREADSHEET), string(SLIDES)}

// mimeToFormat maps declared MIME types to a format tag. Legacy Office
// types route to the same extractor as their OOXML counterpart.
var mimeToFormat = map[string]DocumentFormat{
	"application/pdf": PDF,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   WORD,
	"application/msword": WORD,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         SPREADSHEET,
	"application/vnd.ms-excel": SPREADSHEET,
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": SLIDES,
	"application/vnd.ms-powerpoint": SLIDES,
}

// MapMIMEToFormat returns the format for a declared MIME type, or "" when
// no extractor is registered for it.
func MapMIMEToFormat(mimeType string) DocumentFormat {
	return mimeToFormat[mimeType]
}

// extToMIME maps file extensions (without dot, lowercase) to the MIME type
// the batch ingester declares for them.
var extToMIME = map[string]string{
	"pdf":  "application/pdf",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"doc":  "application/msword",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"xls":  "application/vnd.ms-excel",
	"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"ppt":  "application/vnd.ms-powerpoint",
}

// MapExtToMIME returns the declared MIME type for a file extension, or ""
// when the extension is not supported.
func MapExtToMIME(ext string) string {
	return extToMIME[NormalizeExt(ext)]
}
