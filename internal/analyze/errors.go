package analyze

import "fmt"

// AnalysisError wraps an unexpected failure inside the miner. Empty or
// garbage input is not an error; the miner degrades to the canonical
// empty result instead.
type AnalysisError struct {
	Stage string
	Msg   string
	Err   error
}

func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("analysis %s: %s: %v", e.Stage, e.Msg, e.Err)
	}
	return fmt.Sprintf("analysis %s: %s", e.Stage, e.Msg)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}
