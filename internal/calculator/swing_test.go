package calculator

import (
	"testing"
	"time"

	"StageSentinel/internal/model"
)

// swingSeries builds one 20-bar sub-window per (high, low) pair, with the
// extreme low early in the window and the extreme high late so candidates
// come out alternating low-high.
func swingSeries(pairs [][2]float64) model.PriceSeries {
	const subWindow = 20
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	series := make(model.PriceSeries, 0, len(pairs)*subWindow)
	for _, pair := range pairs {
		h, l := pair[0], pair[1]
		for i := 0; i < subWindow; i++ {
			p := model.PricePoint{
				Time:   base.AddDate(0, 0, len(series)),
				Open:   (h + l) / 2,
				High:   h - 3,
				Low:    l + 3,
				Close:  (h + l) / 2,
				Volume: 1000,
			}
			if i == 4 {
				p.Low = l
			}
			if i == 10 {
				p.High = h
			}
			series = append(series, p)
		}
	}
	return series
}

func TestExtractSwings(t *testing.T) {
	pairs := [][2]float64{{100, 90}, {110, 100}, {120, 110}, {130, 120}, {140, 130}, {150, 140}}
	swings := ExtractSwings(swingSeries(pairs), 120, 20)

	if len(swings) != 12 {
		t.Fatalf("expected 12 swing points, got %d", len(swings))
	}
	for i, p := range swings {
		wantKind := model.SwingLow
		if i%2 == 1 {
			wantKind = model.SwingHigh
		}
		if p.Kind != wantKind {
			t.Errorf("point %d: expected %s, got %s", i, wantKind, p.Kind)
		}
	}
	if swings[0].Value != 90 || swings[1].Value != 100 {
		t.Errorf("first sub-window: expected low 90 / high 100, got %v / %v", swings[0].Value, swings[1].Value)
	}
	if last := swings[len(swings)-1]; last.Value != 150 {
		t.Errorf("last swing high: expected 150, got %v", last.Value)
	}
	if !HigherHighsHigherLows(swings) {
		t.Error("expected rising swing structure to pass")
	}
}

func TestExtractSwings_PerturbationBreaksStructure(t *testing.T) {
	pairs := [][2]float64{{100, 90}, {110, 100}, {120, 110}, {118, 108}, {140, 130}, {150, 140}}
	swings := ExtractSwings(swingSeries(pairs), 120, 20)
	if HigherHighsHigherLows(swings) {
		t.Error("expected a lower high to break the structure")
	}
}

func TestExtractSwings_Degenerate(t *testing.T) {
	series := swingSeries([][2]float64{{100, 90}})
	if got := ExtractSwings(series, 120, 200); got != nil {
		t.Errorf("sub-window larger than window: expected nil, got %v", got)
	}
	if got := ExtractSwings(nil, 120, 20); got != nil {
		t.Errorf("empty series: expected nil, got %v", got)
	}
	// Window larger than the series shrinks to fit.
	if got := ExtractSwings(series, 400, 20); len(got) != 2 {
		t.Errorf("oversized window: expected 2 points, got %d", len(got))
	}
}

func TestAlternateMergesSameKind(t *testing.T) {
	points := model.SwingStructure{
		{Kind: model.SwingHigh, Index: 5, Value: 100},
		{Kind: model.SwingLow, Index: 12, Value: 90},
		{Kind: model.SwingLow, Index: 24, Value: 85},
		{Kind: model.SwingHigh, Index: 30, Value: 110},
	}
	merged := alternate(points)
	if len(merged) != 3 {
		t.Fatalf("expected 3 points after merge, got %d", len(merged))
	}
	if merged[1].Kind != model.SwingLow || merged[1].Value != 85 {
		t.Errorf("expected merged low to keep the lower value 85, got %+v", merged[1])
	}
}

func TestHigherHighsHigherLows_Inconclusive(t *testing.T) {
	single := model.SwingStructure{
		{Kind: model.SwingLow, Index: 0, Value: 90},
		{Kind: model.SwingHigh, Index: 10, Value: 100},
	}
	if HigherHighsHigherLows(single) {
		t.Error("one high and one low should be inconclusive")
	}
	if HigherHighsHigherLows(nil) {
		t.Error("empty structure should be inconclusive")
	}
}
