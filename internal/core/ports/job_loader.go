package ports

import "go.orqa.ch/estim/internal/core/domain"

// JobFile is a parsed estimation job file: the tasks to estimate plus
// file-level execution defaults.
type JobFile struct {
	Tasks      []domain.EstimationTask
	SymbolMaps []domain.SymbolMap
	Seed       uint64
	HasSeed    bool

	// TotalShots is the file-level shot budget. When HasTotalShots is
	// false the file gave none and per-task shot counts apply.
	TotalShots    int
	HasTotalShots bool
}

// JobLoader loads estimation jobs from a file.
//
//go:generate mockgen -source=job_loader.go -destination=mocks/mock_job_loader.go -package=mocks
type JobLoader interface {
	// Load reads and parses the job file at path.
	Load(path string) (*JobFile, error)
}
