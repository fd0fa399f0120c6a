package analysis

import "fmt"

// InsufficientDataError reports a series shorter than the analysis requires.
type InsufficientDataError struct {
	Required int
	Actual   int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: need %d points, have %d", e.Required, e.Actual)
}

// MalformedSeriesError reports a structurally invalid series.
type MalformedSeriesError struct {
	Index  int
	Reason string
}

func (e *MalformedSeriesError) Error() string {
	return fmt.Sprintf("malformed series at index %d: %s", e.Index, e.Reason)
}
