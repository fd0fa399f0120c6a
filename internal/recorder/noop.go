package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordStage(_ *StageSnapshot) error               { return nil }
func (n *NoopRecorder) RecordAccumulation(_ *AccumulationSnapshot) error { return nil }
func (n *NoopRecorder) RecordScreen(_ *ScreenEvent) error                { return nil }
func (n *NoopRecorder) Close() error                                     { return nil }
