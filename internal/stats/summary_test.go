package stats

import (
	"math"
	"testing"
)

func TestSummarizeHistory(t *testing.T) {
	history := []float64{10, 8, 6, 5}
	summary, err := SummarizeHistory(history, 9)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}

	if summary.Epochs != 3 {
		t.Fatalf("expected 3 epochs, got %d", summary.Epochs)
	}
	if summary.InitialLength != 10 || summary.FinalLength != 5 {
		t.Fatalf("unexpected bounds: %+v", summary)
	}
	if math.Abs(summary.MeanLength-7.25) > 1e-12 {
		t.Fatalf("unexpected mean: %v", summary.MeanLength)
	}
	if math.Abs(summary.ImprovementPct-50) > 1e-12 {
		t.Fatalf("unexpected improvement: %v", summary.ImprovementPct)
	}
	if summary.MutationsPerEpoch != 3 {
		t.Fatalf("unexpected mutations per epoch: %v", summary.MutationsPerEpoch)
	}
	if summary.StdDevLength <= 0 {
		t.Fatalf("expected positive std dev, got %v", summary.StdDevLength)
	}
}

func TestSummarizeHistorySingleEntry(t *testing.T) {
	summary, err := SummarizeHistory([]float64{4.2}, 0)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.Epochs != 0 {
		t.Fatalf("expected 0 epochs, got %d", summary.Epochs)
	}
	if summary.InitialLength != 4.2 || summary.FinalLength != 4.2 {
		t.Fatalf("unexpected bounds: %+v", summary)
	}
	if summary.MutationsPerEpoch != 0 || summary.StdDevLength != 0 {
		t.Fatalf("expected zero rates for a single entry: %+v", summary)
	}
}

func TestSummarizeHistoryEmpty(t *testing.T) {
	if _, err := SummarizeHistory(nil, 0); err == nil {
		t.Fatal("expected error for empty history")
	}
}
