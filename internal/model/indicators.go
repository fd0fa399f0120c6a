package model

// Trend is the direction of a moving average over the configured lag.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// MovingAverage holds one window's simple moving average state.
type MovingAverage struct {
	Window     int     `json:"window"`
	Value      float64 `json:"value"`
	Prior      float64 `json:"prior"` // value TrendLag periods earlier
	Trend      Trend   `json:"trend"`
	Sufficient bool    `json:"sufficient"`
}

// MovingAverageSet maps window length to its computed moving average.
// Derived per request, never persisted.
type MovingAverageSet map[int]MovingAverage

// SwingKind tags a swing point as a local high or a local low.
type SwingKind string

const (
	SwingHigh SwingKind = "high"
	SwingLow  SwingKind = "low"
)

// SwingPoint is a local extreme extracted from a sub-window.
type SwingPoint struct {
	Kind  SwingKind `json:"kind"`
	Index int       `json:"index"`
	Value float64   `json:"value"`
}

// SwingStructure is an ordered sequence of swing points. Highs and lows
// alternate.
type SwingStructure []SwingPoint
