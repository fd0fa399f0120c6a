package analysis

import (
	"math"

	"StageSentinel/internal/model"
)

// ValidateSeries checks that a series is long enough and structurally sound
// before any analysis proceeds. It has no side effects.
func ValidateSeries(series model.PriceSeries, minLen int) error {
	if len(series) < minLen {
		return &InsufficientDataError{Required: minLen, Actual: len(series)}
	}
	for i, p := range series {
		if !isFinite(p.Open) || !isFinite(p.High) || !isFinite(p.Low) || !isFinite(p.Close) {
			return &MalformedSeriesError{Index: i, Reason: "non-finite OHLC value"}
		}
		if p.Volume < 0 {
			return &MalformedSeriesError{Index: i, Reason: "negative volume"}
		}
		if i > 0 && !series[i-1].Time.Before(p.Time) {
			return &MalformedSeriesError{Index: i, Reason: "timestamps not strictly increasing"}
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
