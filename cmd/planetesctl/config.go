package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"

	"planetes/internal/model"
	"planetes/internal/tsp"
)

// Config is the JSON run configuration consumed by the run command. Exactly
// one of cities.named or cities.random selects the problem instance; named
// takes precedence when both are present.
type Config struct {
	Cities    CitiesConfig    `json:"cities"`
	Algorithm AlgorithmConfig `json:"algorithm"`
	Output    OutputConfig    `json:"output"`
}

type CitiesConfig struct {
	Named  *NamedCities  `json:"named,omitempty"`
	Random *RandomCities `json:"random,omitempty"`
}

type NamedCities struct {
	CityNames   []string     `json:"city_names"`
	Coordinates [][2]float64 `json:"coordinates"`
}

type RandomCities struct {
	Count int     `json:"count"`
	MinX  float64 `json:"min_x"`
	MaxX  float64 `json:"max_x"`
	MinY  float64 `json:"min_y"`
	MaxY  float64 `json:"max_y"`
}

type AlgorithmConfig struct {
	PopulationSize int     `json:"population_size"`
	TournamentSize int     `json:"tournament_size"`
	MutationRate   float64 `json:"mutation_rate"`
	NOffsprings    int     `json:"n_offsprings"`
	NEpochs        int     `json:"n_epochs"`
	CrossoverAlpha float64 `json:"crossover_alpha"`
	Seed           int64   `json:"seed"`
	Verbose        bool    `json:"verbose"`
}

type OutputConfig struct {
	ResultsDir string `json:"results_dir"`
	SavePlots  bool   `json:"save_plots"`
	SaveCSV    bool   `json:"save_csv"`
}

// DefaultConfig is the stock 20-city instance.
func DefaultConfig() Config {
	return Config{
		Cities: CitiesConfig{
			Named: &NamedCities{
				CityNames: []string{
					"A", "B", "C", "D", "E", "F", "G", "H", "I", "J",
					"K", "L", "M", "N", "O", "P", "Q", "R", "S", "T",
				},
				Coordinates: [][2]float64{
					{60, 200}, {180, 200}, {80, 180}, {140, 180}, {20, 160},
					{100, 160}, {200, 160}, {140, 140}, {40, 120}, {100, 120},
					{180, 100}, {60, 80}, {120, 80}, {180, 60}, {20, 40},
					{100, 40}, {200, 40}, {20, 20}, {60, 20}, {160, 20},
				},
			},
		},
		Algorithm: AlgorithmConfig{
			PopulationSize: 100,
			TournamentSize: 5,
			MutationRate:   0.01,
			NOffsprings:    30,
			NEpochs:        500,
			CrossoverAlpha: 0.5,
			Seed:           0,
			Verbose:        true,
		},
		Output: OutputConfig{
			ResultsDir: "results",
			SavePlots:  true,
			SaveCSV:    true,
		},
	}
}

// LoadConfig reads a JSON config file. A missing file yields the default
// configuration so the run command works out of the box.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteConfig writes a config file, refusing to overwrite an existing one.
func WriteConfig(path string, cfg Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config %s already exists", path)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Locations resolves the configured city set, generating random cities with
// the algorithm seed when no named set is given.
func (c Config) Locations() ([]model.Location, []string, error) {
	if named := c.Cities.Named; named != nil {
		if len(named.Coordinates) == 0 {
			return nil, nil, errors.New("cities.named.coordinates is empty")
		}
		if len(named.CityNames) != 0 && len(named.CityNames) != len(named.Coordinates) {
			return nil, nil, fmt.Errorf("cities.named has %d names for %d coordinates",
				len(named.CityNames), len(named.Coordinates))
		}
		cities := make([]model.Location, len(named.Coordinates))
		for i, coord := range named.Coordinates {
			cities[i] = model.Location{X: coord[0], Y: coord[1]}
		}
		return cities, named.CityNames, nil
	}

	random := c.Cities.Random
	if random == nil {
		return nil, nil, errors.New("config selects no cities: set cities.named or cities.random")
	}
	seed := c.Algorithm.Seed
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))
	cities, err := tsp.GenerateCities(random.Count, random.MinX, random.MaxX, random.MinY, random.MaxY, rng)
	if err != nil {
		return nil, nil, err
	}
	return cities, nil, nil
}
