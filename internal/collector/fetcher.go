package collector

import "StageSentinel/internal/model"

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchDailyBars(symbol string, days int) (model.PriceSeries, error)
	FetchWeeklyBars(symbol string, weeks int) (model.PriceSeries, error)
	FetchCurrentPrice(symbol string) (float64, error)
	Name() string
}
