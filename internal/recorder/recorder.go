package recorder

import "StageSentinel/internal/model"

// StageSnapshot holds one stage-classification outcome for a ticker.
type StageSnapshot struct {
	Ticker  string
	Close   float64
	Verdict *model.StageVerdict
}

// AccumulationSnapshot holds one volume-accumulation outcome for a ticker.
type AccumulationSnapshot struct {
	Ticker string
	Result *model.AccumulationResult
}

// ScreenEvent records one high-volume screener run.
type ScreenEvent struct {
	Universe int
	Matches  []string
}

// Recorder persists analysis history.
type Recorder interface {
	RecordStage(snap *StageSnapshot) error
	RecordAccumulation(snap *AccumulationSnapshot) error
	RecordScreen(evt *ScreenEvent) error
	Close() error
}
