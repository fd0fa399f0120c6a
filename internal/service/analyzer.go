package service

import (
	"context"
	"log"
	"time"

	"StageSentinel/internal/analysis"
	"StageSentinel/internal/collector"
	"StageSentinel/internal/model"
	"StageSentinel/internal/recorder"
)

// StageReport is the envelope returned for a stage analysis request.
type StageReport struct {
	Ticker      string              `json:"ticker"`
	Close       float64             `json:"close"`
	Verdict     *model.StageVerdict `json:"verdict"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// AccumulationReport is the envelope returned for a volume analysis request.
type AccumulationReport struct {
	Ticker      string                    `json:"ticker"`
	Result      *model.AccumulationResult `json:"result"`
	GeneratedAt time.Time                 `json:"generated_at"`
}

// Analyzer ties the fetch collaborator to the classification core and
// records every outcome. It holds no per-request state; concurrent calls
// are safe.
type Analyzer struct {
	Collector   *collector.Collector
	Recorder    recorder.Recorder
	Options     analysis.Options
	HistoryDays int
}

// NewAnalyzer creates an Analyzer with default analysis options.
func NewAnalyzer(col *collector.Collector, rec recorder.Recorder, historyDays int) *Analyzer {
	return &Analyzer{
		Collector:   col,
		Recorder:    rec,
		Options:     analysis.DefaultOptions(),
		HistoryDays: historyDays,
	}
}

// AnalyzeStage fetches the ticker's daily history and classifies its trend stage.
func (a *Analyzer) AnalyzeStage(ctx context.Context, ticker string) (*StageReport, error) {
	series, err := a.Collector.DailySeries(ctx, ticker, a.HistoryDays)
	if err != nil {
		return nil, err
	}
	verdict, err := analysis.ClassifyStage(series, a.Options)
	if err != nil {
		return nil, err
	}

	report := &StageReport{
		Ticker:      ticker,
		Close:       series.LatestClose(),
		Verdict:     verdict,
		GeneratedAt: time.Now(),
	}
	if err := a.Recorder.RecordStage(&recorder.StageSnapshot{
		Ticker:  ticker,
		Close:   report.Close,
		Verdict: verdict,
	}); err != nil {
		log.Printf("[WARN] record stage snapshot for %s: %v", ticker, err)
	}
	return report, nil
}

// AnalyzeVolume fetches the ticker's daily history and scores volume behavior.
func (a *Analyzer) AnalyzeVolume(ctx context.Context, ticker string) (*AccumulationReport, error) {
	series, err := a.Collector.DailySeries(ctx, ticker, a.HistoryDays)
	if err != nil {
		return nil, err
	}
	result, err := analysis.ScoreAccumulation(series, a.Options)
	if err != nil {
		return nil, err
	}

	report := &AccumulationReport{
		Ticker:      ticker,
		Result:      result,
		GeneratedAt: time.Now(),
	}
	if err := a.Recorder.RecordAccumulation(&recorder.AccumulationSnapshot{
		Ticker: ticker,
		Result: result,
	}); err != nil {
		log.Printf("[WARN] record accumulation snapshot for %s: %v", ticker, err)
	}
	return report, nil
}
