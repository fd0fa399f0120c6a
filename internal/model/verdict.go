package model

// Criterion identifies a single stage-classification criterion.
type Criterion string

const (
	// Core criteria; all four must hold for a Stage 2 verdict.
	CriterionMAOrder    Criterion = "ma_ordering"
	CriterionMATrend    Criterion = "ma_trending_up"
	CriterionPriceAbove Criterion = "price_above_ma"
	CriterionSwings     Criterion = "higher_highs_lows"

	// Bonus criteria; additive only, never gate the verdict.
	CriterionFundamentals Criterion = "fundamental_growth"
	CriterionRelStrength  Criterion = "relative_strength"
)

// StageVerdict is the immutable outcome of a stage classification.
type StageVerdict struct {
	Passed         bool        `json:"passed"`
	CoreScore      int         `json:"core_score"`
	BonusScore     int         `json:"bonus_score"`
	FailedCriteria []Criterion `json:"failed_criteria,omitempty"`
}

// Classification labels the volume scorer outcome.
type Classification string

const (
	Accumulation Classification = "accumulation"
	Distribution Classification = "distribution"
	Neutral      Classification = "neutral"
)

// AccumulationResult is the immutable outcome of a volume accumulation score.
type AccumulationResult struct {
	SentimentScore   float64        `json:"sentiment_score"` // clamped to [-1, 1]
	Classification   Classification `json:"classification"`
	ConfirmedByTrend bool           `json:"confirmed_by_trend"`
}
