package storage

import (
	"context"

	"planetes/internal/model"
)

// Store persists finished run records and their length histories. Live
// population state is never stored; only the extracted results of a run
// survive it.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, record model.RunRecord) error
	GetRun(ctx context.Context, id string) (model.RunRecord, bool, error)
	// ListRuns returns records newest-first.
	ListRuns(ctx context.Context) ([]model.RunRecord, error)
	SaveLengthHistory(ctx context.Context, runID string, history []float64) error
	GetLengthHistory(ctx context.Context, runID string) ([]float64, bool, error)
	// Reset removes every stored record.
	Reset(ctx context.Context) error
}

// DefaultStoreKind is the backend used when the caller does not choose one.
func DefaultStoreKind() string {
	return "memory"
}

// CloseIfSupported closes stores that hold external resources.
func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
