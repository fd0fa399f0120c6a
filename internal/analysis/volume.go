package analysis

import (
	"StageSentinel/internal/calculator"
	"StageSentinel/internal/model"
)

const (
	accumulationThreshold = 0.15
	distributionThreshold = -0.15

	// Kaufman adaptive MA parameters for trend confirmation.
	kamaEfficiencyPeriod = 10
	kamaFastPeriod       = 2
	kamaSlowPeriod       = 30
)

// ScoreAccumulation scores volume behavior over the trailing volume window
// for signs of institutional accumulation or distribution. Up-days on
// outsized volume add their full volume ratio; down-days on unusually light
// volume add a half-weight pullback bonus. A period whose volume baseline is
// zero is skipped, never surfaced as an error.
func ScoreAccumulation(series model.PriceSeries, opts Options) (*model.AccumulationResult, error) {
	opts = opts.normalized()
	required := opts.VolumeWindow + opts.VolumeBaselineWindow
	if err := ValidateSeries(series, required); err != nil {
		return nil, err
	}

	closes := series.Closes()
	volumeSums := calculator.PrefixSums(series.Volumes())
	n := len(series)
	start := n - opts.VolumeWindow

	sum := 0.0
	for i := start; i < n; i++ {
		// Baseline excludes the current period to avoid self-reference.
		baseline := (volumeSums[i] - volumeSums[i-opts.VolumeBaselineWindow]) / float64(opts.VolumeBaselineWindow)
		if baseline == 0 {
			continue
		}
		ratio := float64(series[i].Volume) / baseline
		switch diff := closes[i] - closes[i-1]; {
		case diff > 0 && ratio > opts.UpVolumeThreshold:
			sum += ratio
		case diff < 0 && ratio < opts.PullbackVolumeThreshold:
			sum += 0.5 * (1 - ratio) // pullback on light volume reads bullish
		}
	}

	score := clamp(sum/float64(opts.VolumeWindow), -1, 1)
	classification := model.Neutral
	switch {
	case score > accumulationThreshold:
		classification = model.Accumulation
	case score < distributionThreshold:
		classification = model.Distribution
	}

	return &model.AccumulationResult{
		SentimentScore:   score,
		Classification:   classification,
		ConfirmedByTrend: trendConfirms(closes[start:], score, opts.TrendLag),
	}, nil
}

// trendConfirms reports whether the adaptive moving average's direction over
// the scored window agrees in sign with the sentiment score. Advisory
// metadata, not a gate.
func trendConfirms(closes []float64, score float64, lag int) bool {
	kama, err := calculator.CalculateKAMA(closes, kamaEfficiencyPeriod, kamaFastPeriod, kamaSlowPeriod)
	if err != nil {
		return false
	}
	if lag >= len(kama) {
		lag = len(kama) - 1
	}
	direction := kama[len(kama)-1] - kama[len(kama)-1-lag]
	return (direction >= 0 && score >= 0) || (direction <= 0 && score <= 0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
