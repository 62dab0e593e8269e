package app

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"seqhypo/domain/hypothesis"
	"seqhypo/domain/verdict"
)

// Summarize aggregates outcomes into verdict counts and descriptive
// statistics over the cases whose hypothesis was defined.
func Summarize(outcomes []hypothesis.CaseOutcome) hypothesis.BatterySummary {
	summary := hypothesis.BatterySummary{Total: len(outcomes)}

	var ks, predicted, actual []float64
	for _, o := range outcomes {
		if o.Error != "" || o.Report == nil {
			summary.Failed++
			continue
		}
		switch o.Report.Verdict.Status {
		case verdict.StatusMatch:
			summary.Matched++
		case verdict.StatusMismatch:
			summary.Mismatched++
		case verdict.StatusInconclusive:
			summary.Inconclusive++
		case verdict.StatusUndefined:
			summary.Undefined++
			continue
		}
		ks = append(ks, float64(*o.Report.K))
		predicted = append(predicted, float64(*o.Report.Predicted))
		actual = append(actual, float64(o.Report.Actual))
	}

	if conclusive := summary.Matched + summary.Mismatched; conclusive > 0 {
		summary.MatchRate = float64(summary.Matched) / float64(conclusive)
	}
	if len(ks) == 0 {
		return summary
	}

	// Errors from the stats package only signal empty input, excluded above.
	summary.MeanK, _ = stats.Mean(ks)
	summary.MedianK, _ = stats.Median(ks)
	summary.MeanActual, _ = stats.Mean(actual)
	summary.MaxActual, _ = stats.Max(actual)

	if len(ks) > 1 {
		if r := stat.Correlation(predicted, actual, nil); !math.IsNaN(r) {
			summary.Correlation = &r
		}
	}
	return summary
}
