package collector

import (
	"context"
	"fmt"
	"log"
	"time"

	"StageSentinel/internal/cache"
	"StageSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price      float64
	DailyData  model.PriceSeries
	WeeklyData model.PriceSeries
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, days int) (model.PriceSeries, error) {
	if m.DailyData != nil {
		return m.DailyData, nil
	}
	return generateMockBars(m.Price, days), nil
}

func (m *MockFetcher) FetchWeeklyBars(_ string, weeks int) (model.PriceSeries, error) {
	if m.WeeklyData != nil {
		return m.WeeklyData, nil
	}
	return generateMockBars(m.Price, weeks), nil
}

func (m *MockFetcher) FetchCurrentPrice(_ string) (float64, error) {
	return m.Price, nil
}

func generateMockBars(basePrice float64, count int) model.PriceSeries {
	bars := make(model.PriceSeries, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.PricePoint{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector fetches a ticker's history through the series cache and hands
// the analysis core a ready-to-use series.
type Collector struct {
	Fetcher Fetcher
	Cache   cache.Cache
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, c cache.Cache) *Collector {
	return &Collector{Fetcher: fetcher, Cache: c}
}

// DailySeries returns the trailing daily bars for a symbol, consulting the
// cache before the provider.
func (c *Collector) DailySeries(ctx context.Context, symbol string, days int) (model.PriceSeries, error) {
	return c.series(ctx, symbol, "1d", days, func() (model.PriceSeries, error) {
		return c.Fetcher.FetchDailyBars(symbol, days)
	})
}

// WeeklySeries returns the trailing weekly bars for a symbol, consulting the
// cache before the provider.
func (c *Collector) WeeklySeries(ctx context.Context, symbol string, weeks int) (model.PriceSeries, error) {
	return c.series(ctx, symbol, "1wk", weeks, func() (model.PriceSeries, error) {
		return c.Fetcher.FetchWeeklyBars(symbol, weeks)
	})
}

// Invalidate drops a symbol's cached daily series, forcing a refetch.
func (c *Collector) Invalidate(ctx context.Context, symbol string, days int) error {
	return c.Cache.Invalidate(ctx, cache.Key(symbol, "1d", days))
}

func (c *Collector) series(ctx context.Context, symbol, interval string, span int, fetch func() (model.PriceSeries, error)) (model.PriceSeries, error) {
	key := cache.Key(symbol, interval, span)
	if cached, err := c.Cache.Get(ctx, key); err != nil {
		log.Printf("[WARN] cache get %s: %v", key, err)
	} else if cached != nil {
		return cached, nil
	}

	series, err := fetch()
	if err != nil {
		return nil, fmt.Errorf("fetch %s bars for %s: %w", interval, symbol, err)
	}
	if err := c.Cache.Put(ctx, key, series); err != nil {
		log.Printf("[WARN] cache put %s: %v", key, err)
	}
	return series, nil
}

// aggregateDailyToWeekly rolls daily bars into ISO-week bars.
func aggregateDailyToWeekly(daily model.PriceSeries) model.PriceSeries {
	if len(daily) == 0 {
		return nil
	}
	var weekly model.PriceSeries
	var cur model.PricePoint
	curYear, curWeek := -1, -1

	flush := func() {
		if curYear >= 0 {
			weekly = append(weekly, cur)
		}
	}
	for _, b := range daily {
		y, w := b.Time.ISOWeek()
		if y != curYear || w != curWeek {
			flush()
			curYear, curWeek = y, w
			cur = b
			continue
		}
		if b.High > cur.High {
			cur.High = b.High
		}
		if b.Low < cur.Low {
			cur.Low = b.Low
		}
		cur.Close = b.Close
		cur.Volume += b.Volume
	}
	flush()
	return weekly
}
