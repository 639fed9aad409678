package fixture

import (
	"context"
	"database/sql"
	"time"

	"sqlfix/internal/domain"
	"sqlfix/internal/script"
	"sqlfix/internal/ui"
)

// Loader executes fixture scripts statement by statement over one session.
// Each call opens a session, runs every statement in order and closes the
// session; the first failing statement aborts the rest.
type Loader struct {
	db       *sql.DB
	parser   *script.Parser
	progress *ui.ProgressBar

	// Cumulative counts across scripts for the progress bar
	executedTotal int
	failedTotal   int
}

// NewLoader creates a new Loader
func NewLoader(db *sql.DB, parser *script.Parser) *Loader {
	return &Loader{
		db:     db,
		parser: parser,
	}
}

// SetProgress sets the progress bar updated as statements execute
func (l *Loader) SetProgress(progress *ui.ProgressBar) {
	l.progress = progress
}

// Setup executes a setup script
func (l *Loader) Setup(ctx context.Context, scriptLocation string) (domain.ScriptResult, error) {
	return l.execute(ctx, scriptLocation, domain.PhaseSetup)
}

// Teardown executes a teardown script
func (l *Loader) Teardown(ctx context.Context, scriptLocation string) (domain.ScriptResult, error) {
	return l.execute(ctx, scriptLocation, domain.PhaseTeardown)
}

// execute runs all statements of a script sequentially on a fresh session
func (l *Loader) execute(ctx context.Context, scriptLocation string, phase domain.Phase) (domain.ScriptResult, error) {
	result := domain.ScriptResult{
		ScriptPath: scriptLocation,
		Phase:      phase,
	}

	statements, err := l.parser.Parse(scriptLocation)
	if err != nil {
		result.Error = err
		return result, err
	}
	result.Statements = len(statements)

	startTime := time.Now()

	conn, err := l.db.Conn(ctx)
	if err != nil {
		result.Error = err
		result.Duration = time.Since(startTime)
		return result, err
	}
	defer conn.Close()

	for _, stmt := range statements {
		if _, err := conn.ExecContext(ctx, stmt.SQL); err != nil {
			scriptErr := &ScriptError{
				ScriptPath: scriptLocation,
				Phase:      phase,
				Index:      stmt.Index,
				Line:       stmt.Line,
				SQL:        stmt.SQL,
				Err:        err,
			}
			result.Error = scriptErr
			result.Duration = time.Since(startTime)
			l.failedTotal++
			if l.progress != nil {
				l.progress.Update(l.executedTotal, l.failedTotal)
			}
			return result, scriptErr
		}
		result.Executed++
		l.executedTotal++
		if l.progress != nil {
			l.progress.Update(l.executedTotal, l.failedTotal)
		}
	}

	result.Success = true
	result.Duration = time.Since(startTime)
	return result, nil
}
