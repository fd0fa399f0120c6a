package screener

import (
	"context"
	"testing"
	"time"

	"StageSentinel/internal/collector"
	"StageSentinel/internal/model"
)

func weeklyBars(volumes []int64) model.PriceSeries {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make(model.PriceSeries, len(volumes))
	for i, v := range volumes {
		bars[i] = model.PricePoint{
			Time:   start.AddDate(0, 0, 7*i),
			Open:   100,
			High:   105,
			Low:    95,
			Close:  102,
			Volume: v,
		}
	}
	return bars
}

func TestHighVolumeTickers(t *testing.T) {
	tests := []struct {
		name    string
		volumes []int64
		want    int
	}{
		{"volume spike", append(flatVolumes(19, 1000), 5000), 1},
		{"ordinary volume", flatVolumes(20, 1000), 0},
		{"too little history", flatVolumes(5, 1000), 0},
		{"zero baseline", flatVolumes(20, 0), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreener(&collector.MockFetcher{WeeklyData: weeklyBars(tc.volumes)}, 1.5)
			s.Throttle = time.Millisecond

			matches, err := s.HighVolumeTickers(context.Background(), []string{"TEST"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(matches) != tc.want {
				t.Errorf("expected %d matches, got %v", tc.want, matches)
			}
		})
	}
}

func TestHighVolumeTickers_ContextCancel(t *testing.T) {
	s := NewScreener(&collector.MockFetcher{WeeklyData: weeklyBars(flatVolumes(20, 1000))}, 1.5)
	s.Throttle = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The first ticker runs without throttling; the cancelled context stops
	// the scan before the second.
	matches, err := s.HighVolumeTickers(ctx, []string{"A", "B"})
	if err == nil {
		t.Fatal("expected context error")
	}
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %v", matches)
	}
}

func flatVolumes(n int, v int64) []int64 {
	volumes := make([]int64, n)
	for i := range volumes {
		volumes[i] = v
	}
	return volumes
}
