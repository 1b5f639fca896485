package constants

import "strings"

// ProcessingStatus is the canonical status for rows in documents.
type ProcessingStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending    ProcessingStatus = "PENDING"    // registered, not yet picked up
	StatusProcessing ProcessingStatus = "PROCESSING" // pipeline in flight
	StatusCompleted  ProcessingStatus = "COMPLETED"  // terminal success
	StatusFailed     ProcessingStatus = "FAILED"     // terminal failure
)

// ProcessingStatuses holds the allowed values for the processing_status field.
var ProcessingStatuses = []string{
	string(StatusPending),
	string(StatusProcessing),
	string(StatusCompleted),
	string(StatusFailed),
}

// IsValidStatus reports whether s is one of the stable status values.
func IsValidStatus(s string) bool {
	for _, v := range ProcessingStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status is a terminal pipeline state.
func (s ProcessingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
