package analysis

import (
	"errors"
	"math"
	"testing"
	"time"

	"StageSentinel/internal/model"
)

func TestValidateSeries(t *testing.T) {
	valid := linearSeries(10, 100, 1)
	if err := ValidateSeries(valid, 10); err != nil {
		t.Fatalf("valid series: unexpected error: %v", err)
	}

	tests := []struct {
		name       string
		mutate     func(model.PriceSeries)
		wantIndex  int
		wantReason string
	}{
		{
			name:       "nan close",
			mutate:     func(s model.PriceSeries) { s[3].Close = math.NaN() },
			wantIndex:  3,
			wantReason: "non-finite OHLC value",
		},
		{
			name:       "infinite high",
			mutate:     func(s model.PriceSeries) { s[5].High = math.Inf(1) },
			wantIndex:  5,
			wantReason: "non-finite OHLC value",
		},
		{
			name:       "negative volume",
			mutate:     func(s model.PriceSeries) { s[7].Volume = -1 },
			wantIndex:  7,
			wantReason: "negative volume",
		},
		{
			name:       "duplicate timestamp",
			mutate:     func(s model.PriceSeries) { s[4].Time = s[3].Time },
			wantIndex:  4,
			wantReason: "timestamps not strictly increasing",
		},
		{
			name:       "backwards timestamp",
			mutate:     func(s model.PriceSeries) { s[6].Time = s[5].Time.Add(-time.Hour) },
			wantIndex:  6,
			wantReason: "timestamps not strictly increasing",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			series := linearSeries(10, 100, 1)
			tc.mutate(series)

			err := ValidateSeries(series, 10)
			var malformed *MalformedSeriesError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedSeriesError, got %v", err)
			}
			if malformed.Index != tc.wantIndex {
				t.Errorf("expected index %d, got %d", tc.wantIndex, malformed.Index)
			}
			if malformed.Reason != tc.wantReason {
				t.Errorf("expected reason %q, got %q", tc.wantReason, malformed.Reason)
			}
		})
	}
}

func TestValidateSeries_TooShort(t *testing.T) {
	err := ValidateSeries(linearSeries(5, 100, 1), 10)
	var insufficient *InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientDataError, got %v", err)
	}
	if insufficient.Required != 10 || insufficient.Actual != 5 {
		t.Errorf("expected required=10 actual=5, got %+v", insufficient)
	}
}
