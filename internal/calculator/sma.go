package calculator

import (
	"errors"

	"StageSentinel/internal/model"
)

// PrefixSums returns cumulative sums with a leading zero, so the sum of
// values[i:j] is sums[j]-sums[i]. It keeps every rolling-window average O(1)
// after a single pass.
func PrefixSums(values []float64) []float64 {
	sums := make([]float64, len(values)+1)
	for i, v := range values {
		sums[i+1] = sums[i] + v
	}
	return sums
}

// CalculateSMA computes the simple moving average of the given values over
// the trailing period.
func CalculateSMA(values []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(values) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period), nil
}

// CalculateSMASet computes, for every requested window, the trailing simple
// moving average of the closes, the same average ending lag periods earlier,
// and the trend direction derived from their difference against epsilon.
// A window needing more points than available is marked Sufficient=false
// instead of failing the whole set.
func CalculateSMASet(closes []float64, windows []int, lag int, epsilon float64) model.MovingAverageSet {
	sums := PrefixSums(closes)
	n := len(closes)
	set := make(model.MovingAverageSet, len(windows))
	for _, w := range windows {
		ma := model.MovingAverage{Window: w}
		if w > 0 && lag >= 0 && n >= w+lag {
			ma.Value = (sums[n] - sums[n-w]) / float64(w)
			ma.Prior = (sums[n-lag] - sums[n-lag-w]) / float64(w)
			ma.Sufficient = true
			switch diff := ma.Value - ma.Prior; {
			case diff > epsilon:
				ma.Trend = model.TrendUp
			case diff < -epsilon:
				ma.Trend = model.TrendDown
			default:
				ma.Trend = model.TrendFlat
			}
		}
		set[w] = ma
	}
	return set
}
