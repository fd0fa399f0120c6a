package calculator

import "StageSentinel/internal/model"

// ExtractSwings partitions the trailing window of the series into fixed-size
// sub-windows and extracts each sub-window's highest high and lowest low as
// candidate swing points, ordered by bar index. Consecutive candidates of the
// same kind are merged keeping the more extreme one, so the returned
// structure alternates between highs and lows.
func ExtractSwings(series model.PriceSeries, window, subWindow int) model.SwingStructure {
	n := len(series)
	if window <= 0 || subWindow <= 0 || subWindow > window {
		return nil
	}
	if window > n {
		window = n
	}
	numSub := window / subWindow
	if numSub == 0 {
		return nil
	}
	// Align complete sub-windows so the last one ends at the latest bar.
	begin := n - numSub*subWindow

	var candidates model.SwingStructure
	for k := 0; k < numSub; k++ {
		lo := begin + k*subWindow
		hi := lo + subWindow
		high := model.SwingPoint{Kind: model.SwingHigh, Index: lo, Value: series[lo].High}
		low := model.SwingPoint{Kind: model.SwingLow, Index: lo, Value: series[lo].Low}
		for i := lo + 1; i < hi; i++ {
			if series[i].High > high.Value {
				high.Index, high.Value = i, series[i].High
			}
			if series[i].Low < low.Value {
				low.Index, low.Value = i, series[i].Low
			}
		}
		if low.Index <= high.Index {
			candidates = append(candidates, low, high)
		} else {
			candidates = append(candidates, high, low)
		}
	}
	return alternate(candidates)
}

// alternate collapses consecutive same-kind points, keeping the higher high
// or the lower low, so the structure's alternation invariant holds.
func alternate(points model.SwingStructure) model.SwingStructure {
	if len(points) == 0 {
		return nil
	}
	merged := model.SwingStructure{points[0]}
	for _, p := range points[1:] {
		last := &merged[len(merged)-1]
		if p.Kind != last.Kind {
			merged = append(merged, p)
			continue
		}
		if p.Kind == model.SwingHigh && p.Value > last.Value {
			*last = p
		}
		if p.Kind == model.SwingLow && p.Value < last.Value {
			*last = p
		}
	}
	return merged
}

// HigherHighsHigherLows reports whether the structure shows a strict uptrend:
// every swing high above the previous swing high and every swing low above
// the previous swing low. Fewer than two highs or two lows is inconclusive
// and reported as a failure.
func HigherHighsHigherLows(structure model.SwingStructure) bool {
	var highs, lows []float64
	for _, p := range structure {
		switch p.Kind {
		case model.SwingHigh:
			highs = append(highs, p.Value)
		case model.SwingLow:
			lows = append(lows, p.Value)
		}
	}
	if len(highs) < 2 || len(lows) < 2 {
		return false
	}
	return strictlyIncreasing(highs) && strictlyIncreasing(lows)
}

func strictlyIncreasing(values []float64) bool {
	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			return false
		}
	}
	return true
}
