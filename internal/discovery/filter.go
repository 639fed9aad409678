package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters fixture scripts by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters scripts by name pattern using wildcard matching
// Supports patterns like "*users.setup.sql" or "*orders*"
func (f *Filter) FilterByName(scripts []string, pattern string) []string {
	if pattern == "" {
		return scripts
	}

	var filtered []string

	for _, script := range scripts {
		// Get just the filename from the full path
		scriptName := filepath.Base(script)

		// Try to match using filepath.Match (supports * and ? wildcards)
		matched, err := filepath.Match(pattern, scriptName)
		if err == nil && matched {
			filtered = append(filtered, script)
			continue
		}

		// If pattern contains wildcards but filepath.Match didn't match,
		// try a more flexible substring match for patterns like "*orders*"
		if strings.Contains(pattern, "*") {
			// Remove wildcards and check if the remaining pattern is in the script name
			patternParts := strings.Split(pattern, "*")
			allPartsMatch := true
			hasNonEmptyPart := false
			for _, part := range patternParts {
				if part == "" {
					continue
				}
				hasNonEmptyPart = true
				if !strings.Contains(scriptName, part) {
					allPartsMatch = false
					break
				}
			}
			if allPartsMatch && hasNonEmptyPart {
				filtered = append(filtered, script)
			}
			continue
		}

		// If no wildcards, do a simple contains check
		if !strings.Contains(pattern, "?") && strings.Contains(scriptName, pattern) {
			filtered = append(filtered, script)
		}
	}

	return filtered
}

// FilterByPhase keeps only scripts whose filename carries the given suffix
// (e.g. ".setup.sql" or ".teardown.sql")
func (f *Filter) FilterByPhase(scripts []string, suffix string) []string {
	var filtered []string
	for _, script := range scripts {
		if strings.HasSuffix(filepath.Base(script), suffix) {
			filtered = append(filtered, script)
		}
	}
	return filtered
}
