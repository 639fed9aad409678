package storage

import (
	"os"
	"testing"
	"time"

	"sqlfix/internal/config"
	"sqlfix/internal/domain"
)

func TestJSONStorage_SaveLoad(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "sqlfix-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cfg := config.New()
	cfg.ProjectPath = tmpDir
	st := NewJSONStorage(cfg)

	results := []domain.ScriptResult{
		{ScriptPath: "fixtures/users.setup.sql", Phase: domain.PhaseSetup, Statements: 3, Executed: 3, Success: true},
		{ScriptPath: "fixtures/orders.setup.sql", Phase: domain.PhaseSetup, Statements: 2, Executed: 1},
	}
	failures := []domain.StatementFailure{
		{
			ScriptPath: "fixtures/orders.setup.sql",
			Phase:      "setup",
			Index:      1,
			Line:       4,
			SQL:        "INSERT INTO orders (id, user_id) VALUES (1, 99)",
			Message:    "Cannot add or update a child row",
		},
	}

	if err := st.Save(results, failures, 1500*time.Millisecond, domain.PhaseSetup, "testing"); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	output, err := st.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	meta := output.Meta
	if meta.TotalScripts != 2 || meta.PassedScripts != 1 || meta.FailedScripts != 1 {
		t.Errorf("unexpected script counts: %+v", meta)
	}
	if meta.TotalStatements != 5 {
		t.Errorf("expected 5 total statements, got %d", meta.TotalStatements)
	}
	if meta.FailedStatements != 1 {
		t.Errorf("expected 1 failed statement, got %d", meta.FailedStatements)
	}
	if meta.Phase != "setup" || meta.Database != "testing" {
		t.Errorf("unexpected phase/database: %s/%s", meta.Phase, meta.Database)
	}

	if len(output.Details) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(output.Details))
	}
	if output.Details[0].SQL != failures[0].SQL {
		t.Errorf("expected SQL %q, got %q", failures[0].SQL, output.Details[0].SQL)
	}
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "sqlfix-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cfg := config.New()
	cfg.ProjectPath = tmpDir
	st := NewJSONStorage(cfg)

	if _, err := st.Load(); err == nil {
		t.Error("expected error when no results file exists")
	}
}
