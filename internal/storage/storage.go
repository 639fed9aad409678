package storage

import (
	"time"

	"sqlfix/internal/config"
	"sqlfix/internal/domain"
)

// Storage persists and loads fixture run results (e.g. for the errors viewer).
type Storage interface {
	Save(results []domain.ScriptResult, failures []domain.StatementFailure, duration time.Duration, phase domain.Phase, database string) error
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output (e.g. after resolved-flag updates).
	SaveOutput(output *domain.RunOutput) error
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
