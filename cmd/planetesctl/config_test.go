package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigShape(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Cities.Named == nil {
		t.Fatal("default config has no named cities")
	}
	if got := len(cfg.Cities.Named.Coordinates); got != 20 {
		t.Fatalf("default city count = %d, want 20", got)
	}
	if got := len(cfg.Cities.Named.CityNames); got != 20 {
		t.Fatalf("default name count = %d, want 20", got)
	}
	if cfg.Algorithm.PopulationSize != 100 || cfg.Algorithm.NEpochs != 500 {
		t.Fatalf("unexpected algorithm defaults: %+v", cfg.Algorithm)
	}
}

func TestLoadConfigMissingFileYieldsDefault(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Cities.Named == nil || len(cfg.Cities.Named.Coordinates) != 20 {
		t.Fatalf("missing file did not yield the default config: %+v", cfg.Cities)
	}
}

func TestLoadConfigRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planetes.json")
	if err := WriteConfig(path, DefaultConfig()); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.Cities.Named.Coordinates) != 20 {
		t.Fatalf("round-tripped city count = %d, want 20", len(cfg.Cities.Named.Coordinates))
	}
	if err := WriteConfig(path, DefaultConfig()); err == nil {
		t.Fatal("expected an error overwriting an existing config")
	}
}

func TestLocationsNamed(t *testing.T) {
	cfg := DefaultConfig()
	cities, names, err := cfg.Locations()
	if err != nil {
		t.Fatalf("Locations: %v", err)
	}
	if len(cities) != 20 || len(names) != 20 {
		t.Fatalf("got %d cities, %d names", len(cities), len(names))
	}
	if cities[0].X != 60 || cities[0].Y != 200 {
		t.Fatalf("first city = %+v, want (60, 200)", cities[0])
	}
}

func TestLocationsNamedMismatch(t *testing.T) {
	cfg := Config{Cities: CitiesConfig{Named: &NamedCities{
		CityNames:   []string{"A"},
		Coordinates: [][2]float64{{0, 0}, {1, 1}},
	}}}
	if _, _, err := cfg.Locations(); err == nil {
		t.Fatal("expected a name/coordinate mismatch error")
	}
}

func TestLocationsRandomDeterministic(t *testing.T) {
	cfg := Config{
		Cities: CitiesConfig{Random: &RandomCities{
			Count: 10, MinX: 0, MaxX: 100, MinY: 0, MaxY: 100,
		}},
		Algorithm: AlgorithmConfig{Seed: 42},
	}
	first, names, err := cfg.Locations()
	if err != nil {
		t.Fatalf("Locations: %v", err)
	}
	if names != nil {
		t.Fatalf("random cities should be unnamed, got %v", names)
	}
	second, _, err := cfg.Locations()
	if err != nil {
		t.Fatalf("Locations: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("city %d differs between identical seeds: %+v vs %+v", i, first[i], second[i])
		}
	}
	for _, city := range first {
		if city.X < 0 || city.X > 100 || city.Y < 0 || city.Y > 100 {
			t.Fatalf("city out of range: %+v", city)
		}
	}
}

func TestLocationsNoCities(t *testing.T) {
	var cfg Config
	if _, _, err := cfg.Locations(); err == nil {
		t.Fatal("expected an error when no city set is configured")
	}
}
