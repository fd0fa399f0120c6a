package collector

import (
	"context"
	"testing"
	"time"

	"StageSentinel/internal/cache"
	"StageSentinel/internal/model"
)

func dailyBars(n int, start time.Time) model.PriceSeries {
	bars := make(model.PriceSeries, n)
	for i := range bars {
		c := 100 + float64(i)
		bars[i] = model.PricePoint{
			Time:   start.AddDate(0, 0, i),
			Open:   c - 1,
			High:   c + 2,
			Low:    c - 2,
			Close:  c,
			Volume: 1000,
		}
	}
	return bars
}

func TestCollectorCachesDailySeries(t *testing.T) {
	// Monday so the bars stay inside predictable ISO weeks.
	start := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	fetcher := &MockFetcher{DailyData: dailyBars(5, start)}
	col := NewCollector(fetcher, cache.NewMemoryCache(time.Minute))
	ctx := context.Background()

	first, err := col.DailySeries(ctx, "AAPL", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 5 {
		t.Fatalf("expected 5 bars, got %d", len(first))
	}

	// A second call must be served from the cache, not the provider.
	fetcher.DailyData = dailyBars(1, start)
	second, err := col.DailySeries(ctx, "AAPL", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second) != 5 {
		t.Errorf("expected cached 5 bars, got %d", len(second))
	}

	if err := col.Invalidate(ctx, "AAPL", 5); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	third, err := col.DailySeries(ctx, "AAPL", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(third) != 1 {
		t.Errorf("expected refetch after invalidate, got %d bars", len(third))
	}
}

func TestAggregateDailyToWeekly(t *testing.T) {
	// Two full business weeks starting Monday 2024-01-08.
	start := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	var daily model.PriceSeries
	day := start
	for len(daily) < 10 {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			i := len(daily)
			daily = append(daily, model.PricePoint{
				Time:   day,
				Open:   100 + float64(i),
				High:   110 + float64(i),
				Low:    90 + float64(i),
				Close:  105 + float64(i),
				Volume: 1000,
			})
		}
		day = day.AddDate(0, 0, 1)
	}

	weekly := aggregateDailyToWeekly(daily)
	if len(weekly) != 2 {
		t.Fatalf("expected 2 weekly bars, got %d", len(weekly))
	}

	first := weekly[0]
	if first.Open != 100 {
		t.Errorf("first week open: expected 100, got %v", first.Open)
	}
	if first.Close != 109 { // Friday close of the first week
		t.Errorf("first week close: expected 109, got %v", first.Close)
	}
	if first.High != 114 || first.Low != 90 {
		t.Errorf("first week range: expected high 114 low 90, got %v / %v", first.High, first.Low)
	}
	if first.Volume != 5000 {
		t.Errorf("first week volume: expected 5000, got %d", first.Volume)
	}
	if !first.Time.Equal(start) {
		t.Errorf("first week timestamp: expected %v, got %v", start, first.Time)
	}

	if second := weekly[1]; second.Open != 105 || second.Close != 114 {
		t.Errorf("second week: expected open 105 close 114, got %v / %v", second.Open, second.Close)
	}

	if got := aggregateDailyToWeekly(nil); got != nil {
		t.Errorf("empty input: expected nil, got %v", got)
	}
}
