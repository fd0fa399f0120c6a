package calculator

import (
	"errors"
	"math"
)

// CalculateKAMA computes Kaufman's adaptive moving average over the closes.
// The smoothing factor is scaled by the efficiency ratio, so the average
// follows closely in clean trends and flattens out in choppy stretches.
// Requires at least erPeriod+1 closes. The first erPeriod entries of the
// result are the raw closes (warmup).
func CalculateKAMA(closes []float64, erPeriod, fastPeriod, slowPeriod int) ([]float64, error) {
	if erPeriod <= 0 || fastPeriod <= 0 || slowPeriod <= 0 {
		return nil, errors.New("periods must be positive")
	}
	if len(closes) < erPeriod+1 {
		return nil, errors.New("not enough data for KAMA calculation")
	}

	fastSC := 2.0 / float64(fastPeriod+1)
	slowSC := 2.0 / float64(slowPeriod+1)

	kama := make([]float64, len(closes))
	copy(kama[:erPeriod], closes[:erPeriod])

	for i := erPeriod; i < len(closes); i++ {
		change := math.Abs(closes[i] - closes[i-erPeriod])
		volatility := 0.0
		for j := i - erPeriod + 1; j <= i; j++ {
			volatility += math.Abs(closes[j] - closes[j-1])
		}
		er := 0.0
		if volatility > 0 {
			er = change / volatility
		}
		sc := er*(fastSC-slowSC) + slowSC
		sc *= sc
		kama[i] = kama[i-1] + sc*(closes[i]-kama[i-1])
	}
	return kama, nil
}
