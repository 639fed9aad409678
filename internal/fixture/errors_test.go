package fixture

import (
	"errors"
	"strings"
	"testing"

	"sqlfix/internal/domain"
)

func TestScriptError(t *testing.T) {
	cause := errors.New("Duplicate entry '1' for key 'PRIMARY'")
	scriptErr := &ScriptError{
		ScriptPath: "fixtures/users.setup.sql",
		Phase:      domain.PhaseSetup,
		Index:      2,
		Line:       14,
		SQL:        "INSERT INTO users (id) VALUES (1)",
		Err:        cause,
	}

	t.Run("message names script, statement and line", func(t *testing.T) {
		msg := scriptErr.Error()
		for _, want := range []string{"setup", "fixtures/users.setup.sql", "statement 3", "line 14", cause.Error()} {
			if !strings.Contains(msg, want) {
				t.Errorf("expected message to contain %q, got %q", want, msg)
			}
		}
	})

	t.Run("unwraps to the statement error", func(t *testing.T) {
		if !errors.Is(scriptErr, cause) {
			t.Error("expected errors.Is to find the cause")
		}
	})

	t.Run("converts to statement failure", func(t *testing.T) {
		failure := scriptErr.Failure()
		if failure.ScriptPath != scriptErr.ScriptPath {
			t.Errorf("expected script path %s, got %s", scriptErr.ScriptPath, failure.ScriptPath)
		}
		if failure.Phase != string(domain.PhaseSetup) {
			t.Errorf("expected phase setup, got %s", failure.Phase)
		}
		if failure.Index != 2 || failure.Line != 14 {
			t.Errorf("unexpected position: index %d line %d", failure.Index, failure.Line)
		}
		if failure.Message != cause.Error() {
			t.Errorf("expected message %q, got %q", cause.Error(), failure.Message)
		}
	})
}
