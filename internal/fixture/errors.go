package fixture

import (
	"fmt"

	"sqlfix/internal/domain"
)

// ScriptError reports the first statement that failed while executing a
// fixture script. Remaining statements are not executed.
type ScriptError struct {
	ScriptPath string
	Phase      domain.Phase
	Index      int
	Line       int
	SQL        string
	Err        error
}

// Error implements the error interface
func (e *ScriptError) Error() string {
	return fmt.Sprintf("%s script %s: statement %d (line %d) failed: %v",
		e.Phase, e.ScriptPath, e.Index+1, e.Line, e.Err)
}

// Unwrap returns the underlying statement error
func (e *ScriptError) Unwrap() error {
	return e.Err
}

// Failure converts the error into a storable statement failure
func (e *ScriptError) Failure() domain.StatementFailure {
	return domain.StatementFailure{
		ScriptPath: e.ScriptPath,
		Phase:      string(e.Phase),
		Index:      e.Index,
		Line:       e.Line,
		SQL:        e.SQL,
		Message:    e.Err.Error(),
	}
}
