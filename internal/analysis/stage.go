package analysis

import (
	"math"

	"StageSentinel/internal/calculator"
	"StageSentinel/internal/model"
)

// relativeStrengthFloor is the percentile a ticker must reach for the
// relative-strength bonus.
const relativeStrengthFloor = 70.0

// orderingChain is the strict descending-window chain tested by the ordering
// criterion. MA150 backs the price-position criterion only.
var orderingChain = [5]int{10, 20, 50, 100, 200}

// ClassifyStage evaluates the Stage 2 trend rule set for the given series.
// The verdict passes only when all four core criteria hold; bonus criteria
// add to BonusScore without gating the verdict. An insufficient
// moving-average window fails the criteria that need it rather than erroring,
// so the classifier never passes silently on missing data.
func ClassifyStage(series model.PriceSeries, opts Options) (*model.StageVerdict, error) {
	opts = opts.normalized()
	if err := ValidateSeries(series, opts.maxWindow()); err != nil {
		return nil, err
	}

	closes := series.Closes()
	mas := calculator.CalculateSMASet(closes, opts.MAWindows, opts.TrendLag, opts.TrendEpsilon)
	swings := calculator.ExtractSwings(series, opts.SwingWindow, opts.SwingSubWindow)

	verdict := &model.StageVerdict{}
	check := func(c model.Criterion, ok bool) {
		if ok {
			verdict.CoreScore++
		} else {
			verdict.FailedCriteria = append(verdict.FailedCriteria, c)
		}
	}
	check(model.CriterionMAOrder, maOrdered(mas))
	check(model.CriterionMATrend, masTrendingUp(mas, opts.MAWindows))
	check(model.CriterionPriceAbove, priceAboveMA(mas, series.LatestClose()))
	check(model.CriterionSwings, calculator.HigherHighsHigherLows(swings))
	verdict.Passed = len(verdict.FailedCriteria) == 0

	if opts.FundamentalGrowth != nil && *opts.FundamentalGrowth {
		verdict.BonusScore++
	}
	if opts.RelativeStrength != nil && *opts.RelativeStrength >= relativeStrengthFloor {
		verdict.BonusScore++
	}
	return verdict, nil
}

// maOrdered checks MA10 > MA20 > MA50 > MA100 > MA200. Any missing or
// insufficient window in the chain fails the criterion.
func maOrdered(mas model.MovingAverageSet) bool {
	prev := math.Inf(1)
	for _, w := range orderingChain {
		ma, ok := mas[w]
		if !ok || !ma.Sufficient {
			return false
		}
		if ma.Value >= prev {
			return false
		}
		prev = ma.Value
	}
	return true
}

// masTrendingUp requires every configured window to be sufficient and
// trending up.
func masTrendingUp(mas model.MovingAverageSet, windows []int) bool {
	for _, w := range windows {
		ma, ok := mas[w]
		if !ok || !ma.Sufficient || ma.Trend != model.TrendUp {
			return false
		}
	}
	return true
}

// priceAboveMA checks latest close > MA50 or > MA150. An insufficient window
// cannot satisfy its half of the disjunction.
func priceAboveMA(mas model.MovingAverageSet, latestClose float64) bool {
	above := func(w int) bool {
		ma, ok := mas[w]
		return ok && ma.Sufficient && latestClose > ma.Value
	}
	return above(50) || above(150)
}
