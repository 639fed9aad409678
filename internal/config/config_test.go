package config

import (
	"testing"
)

func TestConfig_GetFixturePath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default path",
			config: &Config{
				ProjectPath: ".",
				FixturePath: "fixtures",
				Flags:       Flags{},
			},
			expected: "fixtures",
		},
		{
			name: "with fixture path flag",
			config: &Config{
				ProjectPath: "/project",
				FixturePath: "fixtures",
				Flags: Flags{
					FixturePath: "testdata/sql",
				},
			},
			expected: "/project/testdata/sql",
		},
		{
			name: "absolute fixture path",
			config: &Config{
				ProjectPath: "/project",
				FixturePath: "fixtures",
				Flags: Flags{
					FixturePath: "/absolute/path",
				},
			},
			expected: "/absolute/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetFixturePath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_GetScriptPath(t *testing.T) {
	cfg := &Config{ProjectPath: "/project"}

	t.Run("relative script resolves under project", func(t *testing.T) {
		if got := cfg.GetScriptPath("fixtures/users.setup.sql"); got != "/project/fixtures/users.setup.sql" {
			t.Errorf("unexpected script path: %s", got)
		}
	})

	t.Run("absolute script kept as-is", func(t *testing.T) {
		if got := cfg.GetScriptPath("/elsewhere/users.setup.sql"); got != "/elsewhere/users.setup.sql" {
			t.Errorf("unexpected script path: %s", got)
		}
	})
}

func TestConfig_GetDatabaseName(t *testing.T) {
	cfg := New()

	t.Run("default database name", func(t *testing.T) {
		t.Setenv("DB_DATABASE", "")
		name := cfg.GetDatabaseName()
		if name != DefaultDatabaseName {
			t.Errorf("expected %s, got %s", DefaultDatabaseName, name)
		}
	})

	t.Run("database name from environment", func(t *testing.T) {
		t.Setenv("DB_DATABASE", "app_testing")
		name := cfg.GetDatabaseName()
		if name != "app_testing" {
			t.Errorf("expected app_testing, got %s", name)
		}
	})
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}

	if cfg.FixturePath != DefaultFixturePath {
		t.Errorf("expected FixturePath %s, got %s", DefaultFixturePath, cfg.FixturePath)
	}

	if len(cfg.PathsToIgnore) != len(DefaultPathsToIgnore) {
		t.Errorf("expected %d paths to ignore, got %d", len(DefaultPathsToIgnore), len(cfg.PathsToIgnore))
	}
}
