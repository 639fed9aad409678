package cli

import "sqlfix/internal/config"

// Flags holds command-line flags
type Flags struct {
	FixturePath    string
	Script         string
	TeardownScript string
	NameFilter     string
	Statements     bool
	OpenErrors     bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		FixturePath:    f.FixturePath,
		Script:         f.Script,
		TeardownScript: f.TeardownScript,
		NameFilter:     f.NameFilter,
		Statements:     f.Statements,
		OpenErrors:     f.OpenErrors,
	}
}
