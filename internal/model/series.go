package model

import "time"

// PricePoint represents a single OHLCV bar.
type PricePoint struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// PriceSeries is an ordered bar sequence with strictly increasing timestamps.
// It is owned by the caller; the analysis core never mutates it.
type PriceSeries []PricePoint

// Closes returns the close prices in series order.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, p := range s {
		closes[i] = p.Close
	}
	return closes
}

// Volumes returns the traded volumes in series order as floats, ready for
// rolling-average math.
func (s PriceSeries) Volumes() []float64 {
	volumes := make([]float64, len(s))
	for i, p := range s {
		volumes[i] = float64(p.Volume)
	}
	return volumes
}

// LatestClose returns the close of the most recent bar, or 0 for an empty series.
func (s PriceSeries) LatestClose() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Close
}
