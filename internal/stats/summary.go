// Package stats summarizes run histories and writes per-run artifacts:
// JSON/CSV exports and PNG plots of the length history and the best route.
package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// HistorySummary condenses a run's length history into the figures shown by
// the CLI and stored next to run exports.
type HistorySummary struct {
	Epochs            int     `json:"epochs"`
	InitialLength     float64 `json:"initial_length"`
	FinalLength       float64 `json:"final_length"`
	MeanLength        float64 `json:"mean_length"`
	StdDevLength      float64 `json:"std_dev_length"`
	ImprovementPct    float64 `json:"improvement_pct"`
	MutationsPerEpoch float64 `json:"mutations_per_epoch"`
}

// SummarizeHistory computes summary figures for a length history (one entry
// per epoch plus the initial entry).
func SummarizeHistory(history []float64, totalMutations int) (HistorySummary, error) {
	if len(history) == 0 {
		return HistorySummary{}, fmt.Errorf("length history is empty")
	}

	initial := history[0]
	final := history[len(history)-1]
	epochs := len(history) - 1

	summary := HistorySummary{
		Epochs:        epochs,
		InitialLength: initial,
		FinalLength:   final,
		MeanLength:    stat.Mean(history, nil),
	}
	if len(history) > 1 {
		summary.StdDevLength = stat.StdDev(history, nil)
	}
	if initial > 0 {
		summary.ImprovementPct = (initial - final) / initial * 100
	}
	if epochs > 0 {
		summary.MutationsPerEpoch = float64(totalMutations) / float64(epochs)
	}
	return summary, nil
}
