package collector

import (
	"fmt"
	"sort"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"

	"StageSentinel/internal/model"
)

// YahooFetcher implements Fetcher on top of the Yahoo Finance chart and
// quote APIs.
type YahooFetcher struct {
	SymbolMap map[string]string // maps internal symbol to Yahoo ticker
}

// NewYahooFetcher creates a new Yahoo Finance fetcher.
func NewYahooFetcher() *YahooFetcher {
	return &YahooFetcher{
		SymbolMap: map[string]string{
			"SPX500": "^GSPC",
			"SPX":    "^GSPC",
			"SP500":  "^GSPC",
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) yahooSymbol(symbol string) string {
	if mapped, ok := f.SymbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

func (f *YahooFetcher) FetchDailyBars(symbol string, days int) (model.PriceSeries, error) {
	// Request extra calendar days to cover weekends and market holidays.
	start := time.Now().AddDate(0, 0, -(days*7/5 + 14))
	bars, err := f.fetchChart(symbol, start)
	if err != nil {
		return nil, err
	}
	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}

func (f *YahooFetcher) FetchWeeklyBars(symbol string, weeks int) (model.PriceSeries, error) {
	start := time.Now().AddDate(0, 0, -(weeks*7 + 28))
	bars, err := f.fetchChart(symbol, start)
	if err != nil {
		return nil, err
	}
	weekly := aggregateDailyToWeekly(bars)
	if len(weekly) > weeks {
		weekly = weekly[len(weekly)-weeks:]
	}
	return weekly, nil
}

func (f *YahooFetcher) FetchCurrentPrice(symbol string) (float64, error) {
	q, err := quote.Get(f.yahooSymbol(symbol))
	if err != nil {
		return 0, fmt.Errorf("yahoo quote %s: %w", symbol, err)
	}
	if q == nil {
		return 0, fmt.Errorf("yahoo quote %s: no data returned", symbol)
	}
	return q.RegularMarketPrice, nil
}

func (f *YahooFetcher) fetchChart(symbol string, start time.Time) (model.PriceSeries, error) {
	end := time.Now()
	params := &chart.Params{
		Symbol:   f.yahooSymbol(symbol),
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}

	iter := chart.Get(params)
	var bars model.PriceSeries
	for iter.Next() {
		b := iter.Bar()
		p := model.PricePoint{
			Time:   time.Unix(int64(b.Timestamp), 0),
			Open:   b.Open.InexactFloat64(),
			High:   b.High.InexactFloat64(),
			Low:    b.Low.InexactFloat64(),
			Close:  b.Close.InexactFloat64(),
			Volume: int64(b.Volume),
		}
		if p.Open == 0 && p.High == 0 && p.Low == 0 && p.Close == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, p)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("yahoo chart %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("yahoo chart %s: no data returned", symbol)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}
