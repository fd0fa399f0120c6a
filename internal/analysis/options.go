package analysis

// Options configures the two analysis entry points. Zero-valued fields are
// replaced with defaults; the zero Options value is fully usable.
type Options struct {
	MAWindows               []int
	TrendLag                int
	TrendEpsilon            float64
	SwingWindow             int
	SwingSubWindow          int
	VolumeWindow            int
	VolumeBaselineWindow    int
	UpVolumeThreshold       float64
	PullbackVolumeThreshold float64

	// Optional external signals feeding the bonus criteria. Nil means the
	// signal was not supplied by the caller.
	FundamentalGrowth *bool
	RelativeStrength  *float64
}

// DefaultOptions returns the standard configuration.
func DefaultOptions() Options {
	return Options{
		MAWindows:               []int{10, 20, 50, 100, 150, 200},
		TrendLag:                5,
		TrendEpsilon:            0,
		SwingWindow:             120,
		SwingSubWindow:          20,
		VolumeWindow:            60,
		VolumeBaselineWindow:    20,
		UpVolumeThreshold:       1.5,
		PullbackVolumeThreshold: 0.75,
	}
}

// normalized fills zero-valued fields with defaults.
func (o Options) normalized() Options {
	def := DefaultOptions()
	if len(o.MAWindows) == 0 {
		o.MAWindows = def.MAWindows
	}
	if o.TrendLag <= 0 {
		o.TrendLag = def.TrendLag
	}
	if o.SwingWindow <= 0 {
		o.SwingWindow = def.SwingWindow
	}
	if o.SwingSubWindow <= 0 {
		o.SwingSubWindow = def.SwingSubWindow
	}
	if o.VolumeWindow <= 0 {
		o.VolumeWindow = def.VolumeWindow
	}
	if o.VolumeBaselineWindow <= 0 {
		o.VolumeBaselineWindow = def.VolumeBaselineWindow
	}
	if o.UpVolumeThreshold <= 0 {
		o.UpVolumeThreshold = def.UpVolumeThreshold
	}
	if o.PullbackVolumeThreshold <= 0 {
		o.PullbackVolumeThreshold = def.PullbackVolumeThreshold
	}
	return o
}

// maxWindow returns the largest configured moving-average window, which
// drives the minimum series length for stage classification.
func (o Options) maxWindow() int {
	max := 0
	for _, w := range o.MAWindows {
		if w > max {
			max = w
		}
	}
	return max
}
