// Package planetes is the public entry point: a Client that runs the TSP
// evolutionary optimizer, persists finished runs, and exports artifacts.
package planetes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"planetes/internal/model"
	"planetes/internal/stats"
	"planetes/internal/storage"
	"planetes/internal/tsp"
)

const (
	defaultDBPath     = "planetes.db"
	defaultResultsDir = "results"

	defaultPopulationSize = 100
	defaultTournamentSize = 5
	defaultNOffsprings    = 30
	defaultCrossoverAlpha = 0.5
)

type Options struct {
	StoreKind  string
	DBPath     string
	ResultsDir string
}

type Client struct {
	store      storage.Store
	resultsDir string
}

// RunRequest describes one optimization run. Zero-valued sizing fields fall
// back to defaults; MutationRate and NEpochs are taken as given since zero
// is meaningful for both.
type RunRequest struct {
	RunID          string
	Cities         []model.Location
	CityNames      []string
	PopulationSize int
	TournamentSize int
	MutationRate   float64
	NOffsprings    int
	NEpochs        int
	CrossoverAlpha float64
	Seed           int64
	Verbose        bool
	LogWriter      io.Writer
}

type RunSummary struct {
	RunID  string
	Result model.RunResult
}

type ExportRequest struct {
	RunID  string
	Latest bool
	OutDir string
	Plots  bool
}

type ExportSummary struct {
	RunID     string
	Directory string
}

type HistoryRequest struct {
	RunID  string
	Latest bool
}

func New(opts Options) (*Client, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = storage.DefaultStoreKind()
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	resultsDir := opts.ResultsDir
	if resultsDir == "" {
		resultsDir = defaultResultsDir
	}

	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}

	return &Client{store: store, resultsDir: resultsDir}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

func (c *Client) Init(ctx context.Context) error {
	return c.store.Init(ctx)
}

// Reset clears every stored run.
func (c *Client) Reset(ctx context.Context) error {
	return c.store.Reset(ctx)
}

// Run executes one optimization run and persists its record and length
// history under a run ID (generated when the request leaves it empty).
func (c *Client) Run(ctx context.Context, req RunRequest) (RunSummary, error) {
	if req.PopulationSize <= 0 {
		req.PopulationSize = defaultPopulationSize
	}
	if req.TournamentSize <= 0 {
		req.TournamentSize = defaultTournamentSize
	}
	if req.NOffsprings <= 0 {
		req.NOffsprings = defaultNOffsprings
	}
	if req.CrossoverAlpha == 0 {
		req.CrossoverAlpha = defaultCrossoverAlpha
	}

	runID := req.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	params := model.AlgorithmParams{
		PopulationSize: req.PopulationSize,
		TournamentSize: req.TournamentSize,
		MutationRate:   req.MutationRate,
		NOffsprings:    req.NOffsprings,
		NEpochs:        req.NEpochs,
		CrossoverAlpha: req.CrossoverAlpha,
	}

	result, err := tsp.Run(ctx, tsp.RunConfig{
		Locations: req.Cities,
		Names:     req.CityNames,
		Params:    params,
		Seed:      req.Seed,
		Verbose:   req.Verbose,
		LogWriter: req.LogWriter,
	})
	if err != nil {
		return RunSummary{}, err
	}

	record := storage.Stamp(model.RunRecord{
		ID:              runID,
		CreatedAtUTC:    time.Now().UTC().Format(time.RFC3339),
		Seed:            req.Seed,
		Cities:          req.Cities,
		CityNames:       req.CityNames,
		Params:          params,
		BestRoute:       result.BestRoute,
		BestLength:      result.BestLength,
		InitialLength:   result.InitialLength,
		ImprovementPct:  result.ImprovementPct,
		TotalMutations:  result.TotalMutations,
		Improvements:    result.Improvements,
		LastImprovement: result.LastImprovement,
	})
	if err := c.store.SaveRun(ctx, record); err != nil {
		return RunSummary{}, fmt.Errorf("save run %s: %w", runID, err)
	}
	if err := c.store.SaveLengthHistory(ctx, runID, result.LengthHistory); err != nil {
		return RunSummary{}, fmt.Errorf("save length history %s: %w", runID, err)
	}

	return RunSummary{RunID: runID, Result: result}, nil
}

// Runs lists stored run records newest-first.
func (c *Client) Runs(ctx context.Context) ([]model.RunRecord, error) {
	return c.store.ListRuns(ctx)
}

// History returns the stored length history for a run, or the latest run.
func (c *Client) History(ctx context.Context, req HistoryRequest) (string, []float64, error) {
	runID, err := c.resolveRunID(ctx, req.RunID, req.Latest)
	if err != nil {
		return "", nil, err
	}
	history, ok, err := c.store.GetLengthHistory(ctx, runID)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, fmt.Errorf("no length history for run %s", runID)
	}
	return runID, history, nil
}

// Export writes the artifact directory for a run (JSON, CSV, and optionally
// PNG plots) and returns its location.
func (c *Client) Export(ctx context.Context, req ExportRequest) (ExportSummary, error) {
	runID, err := c.resolveRunID(ctx, req.RunID, req.Latest)
	if err != nil {
		return ExportSummary{}, err
	}

	record, ok, err := c.store.GetRun(ctx, runID)
	if err != nil {
		return ExportSummary{}, err
	}
	if !ok {
		return ExportSummary{}, fmt.Errorf("run %s not found", runID)
	}
	history, ok, err := c.store.GetLengthHistory(ctx, runID)
	if err != nil {
		return ExportSummary{}, err
	}
	if !ok {
		return ExportSummary{}, fmt.Errorf("no length history for run %s", runID)
	}

	outDir := req.OutDir
	if outDir == "" {
		outDir = c.resultsDir
	}
	runDir, err := stats.WriteRunArtifacts(outDir, stats.RunArtifacts{
		Record:  record,
		History: history,
		Plots:   req.Plots,
	})
	if err != nil {
		return ExportSummary{}, err
	}
	return ExportSummary{RunID: runID, Directory: runDir}, nil
}

func (c *Client) resolveRunID(ctx context.Context, runID string, latest bool) (string, error) {
	if runID != "" && latest {
		return "", errors.New("specify either a run id or latest, not both")
	}
	if runID != "" {
		return runID, nil
	}
	if !latest {
		return "", errors.New("a run id or latest is required")
	}

	records, err := c.store.ListRuns(ctx)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", errors.New("no stored runs")
	}
	return records[0].ID, nil
}
