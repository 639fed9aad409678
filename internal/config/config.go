package config

import (
	"os"
	"path/filepath"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	FixturePath string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Paths to ignore when scanning
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	FixturePath    string
	Script         string
	TeardownScript string
	NameFilter     string
	Statements     bool
	OpenErrors     bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		FixturePath:    DefaultFixturePath,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
	// Copy default paths to ignore
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags
	return cfg
}

// GetFixturePath returns the fixture scripts path, using flag if provided
func (c *Config) GetFixturePath() string {
	if c.Flags.FixturePath != "" {
		// If FixturePath is provided, make it relative to PROJECT_PATH if it's not absolute
		if filepath.IsAbs(c.Flags.FixturePath) {
			return c.Flags.FixturePath
		}
		return filepath.Join(c.ProjectPath, c.Flags.FixturePath)
	}

	// Default: combine project path and fixture path
	return filepath.Join(c.ProjectPath, c.FixturePath)
}

// GetScriptPath resolves a script location against the project path
func (c *Config) GetScriptPath(location string) string {
	if filepath.IsAbs(location) {
		return location
	}
	return filepath.Join(c.ProjectPath, location)
}

// GetOutputPath returns the full path to the output JSON file (under project so load and errors use the same file).
// Resolves to an absolute path so load and errors always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetDatabaseName returns the name of the test database fixtures are loaded into
func (c *Config) GetDatabaseName() string {
	name := os.Getenv("DB_DATABASE")
	if name == "" {
		name = DefaultDatabaseName
	}
	return name
}
