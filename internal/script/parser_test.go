package script

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParser_Split(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:    "multiple statements",
			content: "INSERT INTO users (id) VALUES (1);\nINSERT INTO users (id) VALUES (2);",
			expected: []string{
				"INSERT INTO users (id) VALUES (1)",
				"INSERT INTO users (id) VALUES (2)",
			},
		},
		{
			name:     "semicolon inside string literal",
			content:  "INSERT INTO notes (body) VALUES ('a; b');",
			expected: []string{"INSERT INTO notes (body) VALUES ('a; b')"},
		},
		{
			name:     "escaped quote inside string",
			content:  `INSERT INTO notes (body) VALUES ('it\'s; fine');`,
			expected: []string{`INSERT INTO notes (body) VALUES ('it\'s; fine')`},
		},
		{
			name:     "backtick identifier with semicolon",
			content:  "CREATE TABLE `odd;name` (id INT);",
			expected: []string{"CREATE TABLE `odd;name` (id INT)"},
		},
		{
			name:     "line comments stripped",
			content:  "-- seed users\nINSERT INTO users (id) VALUES (1);\n# trailing comment\n",
			expected: []string{"INSERT INTO users (id) VALUES (1)"},
		},
		{
			name:     "double dash without space is not a comment",
			content:  "UPDATE counters SET n = n--1;",
			expected: []string{"UPDATE counters SET n = n--1"},
		},
		{
			name:     "block comment stripped",
			content:  "/* header\ncomment */ INSERT INTO users (id) VALUES (1);",
			expected: []string{"INSERT INTO users (id) VALUES (1)"},
		},
		{
			name:     "unterminated final statement kept",
			content:  "INSERT INTO users (id) VALUES (1);\nINSERT INTO users (id) VALUES (2)",
			expected: []string{"INSERT INTO users (id) VALUES (1)", "INSERT INTO users (id) VALUES (2)"},
		},
		{
			name:     "empty and comment-only content",
			content:  "-- nothing here\n\n# still nothing\n",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statements := parser.Split(tt.content)
			if len(statements) != len(tt.expected) {
				t.Fatalf("expected %d statements, got %d: %#v", len(tt.expected), len(statements), statements)
			}
			for i, stmt := range statements {
				if stmt.SQL != tt.expected[i] {
					t.Errorf("statement %d: expected %q, got %q", i, tt.expected[i], stmt.SQL)
				}
				if stmt.Index != i {
					t.Errorf("statement %d: expected index %d, got %d", i, i, stmt.Index)
				}
			}
		})
	}
}

func TestParser_Split_LineNumbers(t *testing.T) {
	parser := NewParser()

	content := "-- seed data\n\nINSERT INTO users (id) VALUES (1);\nINSERT INTO users (id)\nVALUES (2);"
	statements := parser.Split(content)

	if len(statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(statements))
	}
	if statements[0].Line != 3 {
		t.Errorf("expected first statement on line 3, got %d", statements[0].Line)
	}
	if statements[1].Line != 4 {
		t.Errorf("expected second statement on line 4, got %d", statements[1].Line)
	}
}

func TestParser_Parse(t *testing.T) {
	parser := NewParser()

	tmpDir, err := os.MkdirTemp("", "sqlfix-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	t.Run("parses script file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "users.setup.sql")
		content := "INSERT INTO users (id) VALUES (1);\nINSERT INTO users (id) VALUES (2);"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write script: %v", err)
		}

		statements, err := parser.Parse(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(statements) != 2 {
			t.Errorf("expected 2 statements, got %d", len(statements))
		}
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		_, err := parser.Parse(filepath.Join(tmpDir, "missing.sql"))
		if err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("returns error for empty script", func(t *testing.T) {
		path := filepath.Join(tmpDir, "empty.sql")
		if err := os.WriteFile(path, []byte("-- comments only\n"), 0644); err != nil {
			t.Fatalf("failed to write script: %v", err)
		}

		_, err := parser.Parse(path)
		if err == nil {
			t.Error("expected error for empty script")
		}
	})
}
