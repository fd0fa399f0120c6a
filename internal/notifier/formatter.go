package notifier

import (
	"fmt"
	"strings"

	"StageSentinel/internal/model"
	"StageSentinel/internal/service"
)

var criterionLabels = map[model.Criterion]string{
	model.CriterionMAOrder:    "MA ordering 10>20>50>100>200",
	model.CriterionMATrend:    "All MAs trending up",
	model.CriterionPriceAbove: "Price above MA50/MA150",
	model.CriterionSwings:     "Higher highs & higher lows",
}

// FormatStageReport formats a stage verdict into a Telegram message.
func FormatStageReport(report *service.StageReport) string {
	var b strings.Builder

	v := report.Verdict
	status := "❌ Not Stage 2"
	if v.Passed {
		status = "✅ Stage 2" + strings.Repeat("+", v.BonusScore)
	}
	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s\n", report.Ticker, report.GeneratedAt.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Close: %.2f\n", report.Close))
	b.WriteString(fmt.Sprintf("Verdict: %s (core %d/4, bonus %d)\n", status, v.CoreScore, v.BonusScore))

	if len(v.FailedCriteria) > 0 {
		b.WriteString("Failed criteria:\n")
		for _, c := range v.FailedCriteria {
			label := criterionLabels[c]
			if label == "" {
				label = string(c)
			}
			b.WriteString(fmt.Sprintf("  • %s\n", label))
		}
	}
	return b.String()
}

// FormatAccumulationReport formats a volume score into a Telegram message.
func FormatAccumulationReport(report *service.AccumulationReport) string {
	var b strings.Builder

	r := report.Result
	icon := "➖"
	switch r.Classification {
	case model.Accumulation:
		icon = "📈"
	case model.Distribution:
		icon = "📉"
	}
	b.WriteString(fmt.Sprintf("%s <b>%s</b> volume: %s\n", icon, report.Ticker, r.Classification))
	b.WriteString(fmt.Sprintf("Sentiment score: %+.2f\n", r.SentimentScore))
	if r.ConfirmedByTrend {
		b.WriteString("Confirmed by adaptive trend\n")
	} else {
		b.WriteString("Not confirmed by adaptive trend\n")
	}
	return b.String()
}

// FormatScreenReport formats a high-volume screen result.
func FormatScreenReport(universe int, matches []string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔍 <b>High-volume screen</b> (%d tickers scanned)\n", universe))
	if len(matches) == 0 {
		b.WriteString("No unusual volume found.\n")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("%d matches:\n", len(matches)))
	for _, t := range matches {
		b.WriteString(fmt.Sprintf("  • %s\n", t))
	}
	return b.String()
}
