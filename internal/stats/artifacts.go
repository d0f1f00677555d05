package stats

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"planetes/internal/model"
)

const (
	runRecordFile     = "run.json"
	historyCSVFile    = "length_history.csv"
	routeCSVFile      = "best_route.csv"
	historyPlotFile   = "length_history.png"
	routePlotFile     = "best_route.png"
	summaryFile       = "summary.json"
	defaultDirPerm    = 0o755
	defaultCreatePerm = 0o644
)

// RunArtifacts bundles everything exported for one finished run.
type RunArtifacts struct {
	Record  model.RunRecord
	History []float64
	// Plots controls whether the PNG files are rendered in addition to
	// the JSON and CSV exports.
	Plots bool
}

// WriteRunArtifacts writes a per-run directory under baseDir and returns its
// path. Layout: run.json, summary.json, length_history.csv, best_route.csv,
// and optionally length_history.png and best_route.png.
func WriteRunArtifacts(baseDir string, artifacts RunArtifacts) (string, error) {
	if artifacts.Record.ID == "" {
		return "", fmt.Errorf("run id is required")
	}

	runDir := filepath.Join(baseDir, artifacts.Record.ID)
	if err := os.MkdirAll(runDir, defaultDirPerm); err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(runDir, runRecordFile), artifacts.Record); err != nil {
		return "", err
	}

	summary, err := SummarizeHistory(artifacts.History, artifacts.Record.TotalMutations)
	if err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(runDir, summaryFile), summary); err != nil {
		return "", err
	}

	if err := writeHistoryCSV(filepath.Join(runDir, historyCSVFile), artifacts.History); err != nil {
		return "", err
	}
	if err := writeRouteCSV(filepath.Join(runDir, routeCSVFile), artifacts.Record); err != nil {
		return "", err
	}

	if artifacts.Plots {
		if err := SaveLengthHistoryPlot(artifacts.History, filepath.Join(runDir, historyPlotFile)); err != nil {
			return "", err
		}
		title := fmt.Sprintf("Best route (length %.2f)", artifacts.Record.BestLength)
		if err := SaveRoutePlot(artifacts.Record.Cities, artifacts.Record.BestRoute, artifacts.Record.CityNames, title, filepath.Join(runDir, routePlotFile)); err != nil {
			return "", err
		}
	}

	return runDir, nil
}

func writeHistoryCSV(path string, history []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"epoch", "best_length"}); err != nil {
		return err
	}
	for i, length := range history {
		record := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(length, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeRouteCSV(path string, record model.RunRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"stop", "city_index", "name", "x", "y"}); err != nil {
		return err
	}
	for stop, city := range record.BestRoute {
		name := ""
		if len(record.CityNames) == len(record.Cities) {
			name = record.CityNames[city]
		}
		row := []string{
			strconv.Itoa(stop),
			strconv.Itoa(city),
			name,
			strconv.FormatFloat(record.Cities[city].X, 'f', -1, 64),
			strconv.FormatFloat(record.Cities[city].Y, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), defaultCreatePerm)
}
