package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"planetes/internal/stats"
	"planetes/internal/storage"
	papi "planetes/pkg/planetes"
)

const defaultConfigPath = "planetes.json"

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "init":
		return runInit(ctx, args[1:])
	case "reset":
		return runReset(ctx, args[1:])
	case "run":
		return runRun(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "history":
		return runHistory(ctx, args[1:])
	case "export":
		return runExport(ctx, args[1:])
	case "config":
		return runConfig(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func storeFlags(fs *flag.FlagSet) (storeKind, dbPath *string) {
	storeKind = fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath = fs.String("db-path", "planetes.db", "sqlite database path")
	return storeKind, dbPath
}

func newClient(storeKind, dbPath string) (*papi.Client, error) {
	return papi.New(papi.Options{StoreKind: storeKind, DBPath: dbPath})
}

func runInit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	storeKind, dbPath := storeFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Init(ctx); err != nil {
		return err
	}
	fmt.Printf("initialized store=%s\n", *storeKind)
	return nil
}

func runReset(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset", flag.ContinueOnError)
	storeKind, dbPath := storeFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Init(ctx); err != nil {
		return err
	}
	if err := client.Reset(ctx); err != nil {
		return err
	}
	fmt.Println("store reset")
	return nil
}

func runRun(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	storeKind, dbPath := storeFlags(fs)
	configPath := fs.String("config", defaultConfigPath, "run configuration file")
	runID := fs.String("run-id", "", "run id (generated when empty)")
	seed := fs.Int64("seed", 0, "random seed override (0 keeps the config value)")
	epochs := fs.Int("epochs", -1, "epoch count override (negative keeps the config value)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *seed != 0 {
		cfg.Algorithm.Seed = *seed
	}
	if *epochs >= 0 {
		cfg.Algorithm.NEpochs = *epochs
	}

	cities, names, err := cfg.Locations()
	if err != nil {
		return err
	}

	client, err := newClient(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	summary, err := client.Run(ctx, papi.RunRequest{
		RunID:          *runID,
		Cities:         cities,
		CityNames:      names,
		PopulationSize: cfg.Algorithm.PopulationSize,
		TournamentSize: cfg.Algorithm.TournamentSize,
		MutationRate:   cfg.Algorithm.MutationRate,
		NOffsprings:    cfg.Algorithm.NOffsprings,
		NEpochs:        cfg.Algorithm.NEpochs,
		CrossoverAlpha: cfg.Algorithm.CrossoverAlpha,
		Seed:           cfg.Algorithm.Seed,
		Verbose:        cfg.Algorithm.Verbose,
		LogWriter:      os.Stdout,
	})
	if err != nil {
		return err
	}

	result := summary.Result
	hist, err := stats.SummarizeHistory(result.LengthHistory, result.TotalMutations)
	if err != nil {
		return err
	}
	fmt.Printf("run %s finished\n", summary.RunID)
	fmt.Printf("  epochs: %d\n", hist.Epochs)
	fmt.Printf("  initial length: %.4f\n", hist.InitialLength)
	fmt.Printf("  best length: %.4f\n", hist.FinalLength)
	fmt.Printf("  improvement: %.2f%%\n", hist.ImprovementPct)
	fmt.Printf("  mean length: %.4f (stddev %.4f)\n", hist.MeanLength, hist.StdDevLength)
	fmt.Printf("  mutations/epoch: %.2f\n", hist.MutationsPerEpoch)
	fmt.Printf("  best route: %v\n", result.BestRoute)

	if cfg.Output.SaveCSV || cfg.Output.SavePlots {
		export, err := client.Export(ctx, papi.ExportRequest{
			RunID:  summary.RunID,
			OutDir: cfg.Output.ResultsDir,
			Plots:  cfg.Output.SavePlots,
		})
		if err != nil {
			return err
		}
		fmt.Printf("  artifacts: %s\n", export.Directory)
	}
	return nil
}

func runRuns(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	storeKind, dbPath := storeFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	records, err := client.Runs(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("no stored runs")
		return nil
	}
	fmt.Printf("%-36s  %-20s  %6s  %12s  %12s  %8s\n",
		"run", "created", "cities", "initial", "best", "improve")
	for _, rec := range records {
		fmt.Printf("%-36s  %-20s  %6d  %12.4f  %12.4f  %7.2f%%\n",
			rec.ID, rec.CreatedAtUTC, len(rec.Cities),
			rec.InitialLength, rec.BestLength, rec.ImprovementPct)
	}
	return nil
}

func runHistory(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	storeKind, dbPath := storeFlags(fs)
	runID := fs.String("run-id", "", "run id")
	latest := fs.Bool("latest", false, "use the most recent run")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	id, history, err := client.History(ctx, papi.HistoryRequest{RunID: *runID, Latest: *latest})
	if err != nil {
		return err
	}
	fmt.Printf("run %s (%d entries)\n", id, len(history))
	for epoch, length := range history {
		fmt.Printf("%6d  %12.4f\n", epoch, length)
	}
	return nil
}

func runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	storeKind, dbPath := storeFlags(fs)
	runID := fs.String("run-id", "", "run id")
	latest := fs.Bool("latest", false, "use the most recent run")
	outDir := fs.String("out", "results", "artifact output directory")
	plots := fs.Bool("plots", true, "write PNG plots")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	export, err := client.Export(ctx, papi.ExportRequest{
		RunID:  *runID,
		Latest: *latest,
		OutDir: *outDir,
		Plots:  *plots,
	})
	if err != nil {
		return err
	}
	fmt.Printf("exported run %s to %s\n", export.RunID, export.Directory)
	return nil
}

func runConfig(_ context.Context, args []string) error {
	if len(args) == 0 || args[0] != "init" {
		return usageError("config supports: init")
	}
	fs := flag.NewFlagSet("config init", flag.ContinueOnError)
	configPath := fs.String("config", defaultConfigPath, "config file to write")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	if err := WriteConfig(*configPath, DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", *configPath)
	return nil
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: planetesctl <init|reset|run|runs|history|export|config> [flags]", msg)
}
