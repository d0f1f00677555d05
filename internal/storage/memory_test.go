package storage

import (
	"context"
	"testing"

	"planetes/internal/model"
)

func testRecord(id, createdAt string) model.RunRecord {
	return Stamp(model.RunRecord{
		ID:           id,
		CreatedAtUTC: createdAt,
		Seed:         42,
		Cities:       []model.Location{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}},
		Params: model.AlgorithmParams{
			PopulationSize: 20,
			TournamentSize: 3,
			MutationRate:   0.1,
			NOffsprings:    30,
			NEpochs:        200,
			CrossoverAlpha: 0.5,
		},
		BestRoute:      []int{0, 1, 2, 3},
		BestLength:     4,
		InitialLength:  4.83,
		ImprovementPct: 17.2,
	})
}

func TestMemoryStoreRunRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	input := testRecord("run-1", "2026-08-30T10:00:00Z")
	if err := store.SaveRun(ctx, input); err != nil {
		t.Fatalf("save run: %v", err)
	}

	output, ok, err := store.GetRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if !ok {
		t.Fatal("expected persisted run")
	}
	if output.BestLength != input.BestLength || len(output.BestRoute) != 4 {
		t.Fatalf("unexpected record: %+v", output)
	}

	_, ok, err = store.GetRun(ctx, "missing")
	if err != nil {
		t.Fatalf("get missing run: %v", err)
	}
	if ok {
		t.Fatal("expected miss for unknown run")
	}
}

func TestMemoryStoreListRunsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	for _, record := range []model.RunRecord{
		testRecord("run-a", "2026-08-28T10:00:00Z"),
		testRecord("run-b", "2026-08-30T10:00:00Z"),
		testRecord("run-c", "2026-08-29T10:00:00Z"),
	} {
		if err := store.SaveRun(ctx, record); err != nil {
			t.Fatalf("save run %s: %v", record.ID, err)
		}
	}

	records, err := store.ListRuns(ctx)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(records))
	}
	want := []string{"run-b", "run-c", "run-a"}
	for i, id := range want {
		if records[i].ID != id {
			t.Fatalf("unexpected order at %d: got %s want %s", i, records[i].ID, id)
		}
	}
}

func TestMemoryStoreLengthHistoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	input := []float64{5.1, 4.8, 4.0}
	if err := store.SaveLengthHistory(ctx, "run-1", input); err != nil {
		t.Fatalf("save history: %v", err)
	}

	// The store must hold its own copy.
	input[0] = 99

	output, ok, err := store.GetLengthHistory(ctx, "run-1")
	if err != nil {
		t.Fatalf("get history: %v", err)
	}
	if !ok {
		t.Fatal("expected persisted history")
	}
	if output[0] != 5.1 || len(output) != 3 {
		t.Fatalf("unexpected history: %+v", output)
	}
}

func TestMemoryStoreReset(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	if err := store.SaveRun(ctx, testRecord("run-1", "2026-08-30T10:00:00Z")); err != nil {
		t.Fatalf("save run: %v", err)
	}
	if err := store.SaveLengthHistory(ctx, "run-1", []float64{1, 2}); err != nil {
		t.Fatalf("save history: %v", err)
	}

	if err := store.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	records, err := store.ListRuns(ctx)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty store after reset, got %d runs", len(records))
	}
	if _, ok, _ := store.GetLengthHistory(ctx, "run-1"); ok {
		t.Fatal("expected history cleared after reset")
	}
}
