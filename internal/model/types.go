package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// Location is a 2-D coordinate of one problem site. Read-only to the engine.
type Location struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AlgorithmParams mirrors the algorithm section of the run configuration.
// NOffsprings is carried for compatibility with stored run records but the
// engine regenerates the full pool each epoch; see evo.Config.
type AlgorithmParams struct {
	PopulationSize int     `json:"population_size"`
	TournamentSize int     `json:"tournament_size"`
	MutationRate   float64 `json:"mutation_rate"`
	NOffsprings    int     `json:"n_offsprings"`
	NEpochs        int     `json:"n_epochs"`
	CrossoverAlpha float64 `json:"crossover_alpha"`
}

// RunResult is the outcome of one optimization run. LengthHistory always has
// NEpochs+1 entries; entry 0 is the best length before the first epoch.
type RunResult struct {
	BestRoute       []int     `json:"best_route"`
	BestLength      float64   `json:"best_length"`
	InitialLength   float64   `json:"initial_length"`
	ImprovementPct  float64   `json:"improvement_pct"`
	LengthHistory   []float64 `json:"length_history"`
	TotalMutations  int       `json:"total_mutations"`
	Improvements    int       `json:"improvements"`
	LastImprovement int       `json:"last_improvement"`
}

// RunRecord is the persisted summary of a finished run. The length history is
// stored separately, keyed by run ID.
type RunRecord struct {
	VersionedRecord
	ID              string          `json:"id"`
	CreatedAtUTC    string          `json:"created_at_utc"`
	Seed            int64           `json:"seed"`
	Cities          []Location      `json:"cities"`
	CityNames       []string        `json:"city_names,omitempty"`
	Params          AlgorithmParams `json:"params"`
	BestRoute       []int           `json:"best_route"`
	BestLength      float64         `json:"best_length"`
	InitialLength   float64         `json:"initial_length"`
	ImprovementPct  float64         `json:"improvement_pct"`
	TotalMutations  int             `json:"total_mutations"`
	Improvements    int             `json:"improvements"`
	LastImprovement int             `json:"last_improvement"`
}
