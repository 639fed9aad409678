package discovery

import (
	"testing"
)

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		scripts  []string
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			scripts:  []string{"users.setup.sql", "orders.setup.sql", "guilds.setup.sql"},
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches suffix",
			scripts:  []string{"users.setup.sql", "orders.setup.sql", "guilds.setup.sql"},
			pattern:  "*users.setup.sql",
			expected: 1,
		},
		{
			name:     "wildcard pattern matches substring",
			scripts:  []string{"users.setup.sql", "orders.setup.sql", "order_items.setup.sql"},
			pattern:  "*order*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			scripts:  []string{"users.setup.sql", "orders.setup.sql"},
			pattern:  "orders",
			expected: 1,
		},
		{
			name:     "no matches",
			scripts:  []string{"users.setup.sql", "orders.setup.sql"},
			pattern:  "*nonexistent*",
			expected: 0,
		},
		{
			name:     "full path with wildcard",
			scripts:  []string{"/path/to/users.setup.sql", "/path/to/orders.setup.sql"},
			pattern:  "*users.setup.sql",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(tt.scripts, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d: %v", tt.expected, len(result), result)
			}
		})
	}
}

func TestFilter_FilterByPhase(t *testing.T) {
	filter := NewFilter()

	scripts := []string{
		"fixtures/users.setup.sql",
		"fixtures/users.teardown.sql",
		"fixtures/orders.setup.sql",
		"fixtures/schema.sql",
	}

	t.Run("setup scripts", func(t *testing.T) {
		result := filter.FilterByPhase(scripts, ".setup.sql")
		if len(result) != 2 {
			t.Errorf("expected 2 setup scripts, got %d: %v", len(result), result)
		}
	})

	t.Run("teardown scripts", func(t *testing.T) {
		result := filter.FilterByPhase(scripts, ".teardown.sql")
		if len(result) != 1 {
			t.Errorf("expected 1 teardown script, got %d: %v", len(result), result)
		}
	})
}
