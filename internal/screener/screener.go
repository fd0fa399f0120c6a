package screener

import (
	"context"
	"log"
	"time"

	"StageSentinel/internal/calculator"
	"StageSentinel/internal/collector"
)

// Screener scans a ticker universe for unusual weekly volume, flagging
// tickers whose latest week traded well above their rolling baseline.
type Screener struct {
	Fetcher         collector.Fetcher
	MinVolumeFactor float64
	BaselineWeeks   int
	Throttle        time.Duration // pause between provider calls
}

// NewScreener creates a screener with the standard 10-week baseline.
func NewScreener(fetcher collector.Fetcher, minVolumeFactor float64) *Screener {
	return &Screener{
		Fetcher:         fetcher,
		MinVolumeFactor: minVolumeFactor,
		BaselineWeeks:   10,
		Throttle:        2 * time.Second,
	}
}

// HighVolumeTickers returns the subset of the universe whose latest weekly
// volume exceeds MinVolumeFactor times the baseline average. Per-ticker
// fetch failures are logged and skipped; only ctx cancellation aborts the scan.
func (s *Screener) HighVolumeTickers(ctx context.Context, universe []string) ([]string, error) {
	var matches []string
	for i, ticker := range universe {
		if i > 0 {
			select {
			case <-ctx.Done():
				return matches, ctx.Err()
			case <-time.After(s.Throttle):
			}
		}

		bars, err := s.Fetcher.FetchWeeklyBars(ticker, s.BaselineWeeks*2)
		if err != nil {
			log.Printf("[WARN] screener fetch %s: %v", ticker, err)
			continue
		}
		if len(bars) < s.BaselineWeeks {
			continue
		}

		baseline, err := calculator.CalculateSMA(bars.Volumes(), s.BaselineWeeks)
		if err != nil || baseline == 0 {
			continue
		}
		latest := float64(bars[len(bars)-1].Volume)
		if latest > baseline*s.MinVolumeFactor {
			matches = append(matches, ticker)
		}
	}
	return matches, nil
}
