package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sqlfix/internal/domain"
)

// Save writes script results and failures to the configured JSON output file.
func (s *JSONStorage) Save(results []domain.ScriptResult, failures []domain.StatementFailure, duration time.Duration, phase domain.Phase, database string) error {
	passed := 0
	failed := 0
	totalStatements := 0
	for _, r := range results {
		totalStatements += r.Statements
		if r.Success {
			passed++
		} else {
			failed++
		}
	}

	output := domain.RunOutput{
		Meta: domain.RunMeta{
			TotalScripts:     len(results),
			FailedScripts:    failed,
			PassedScripts:    passed,
			TotalStatements:  totalStatements,
			FailedStatements: len(failures),
			Phase:            string(phase),
			Database:         database,
			Duration:         duration.String(),
			DurationSeconds:  duration.Seconds(),
			Timestamp:        time.Now().Format(time.RFC3339),
		},
		Details: failures,
	}

	return s.SaveOutput(&output)
}

// Load reads the last fixture run from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file (e.g. after toggling resolved flags).
func (s *JSONStorage) SaveOutput(output *domain.RunOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
