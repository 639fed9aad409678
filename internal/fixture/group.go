package fixture

import (
	"context"
	"database/sql"
	"fmt"
)

// TestFunc is a single test case run inside a group. The connection is the
// group's shared session and is nil when the group has no database handle.
type TestFunc func(ctx context.Context, conn *sql.Conn) error

// Group owns the lifecycle of one test group: the setup script runs exactly
// once before the first test case, the teardown script exactly once after
// the last, and all test cases share one session in between.
type Group struct {
	db             *sql.DB
	executor       Executor
	setupScript    string
	teardownScript string

	conn      *sql.Conn
	setupDone bool
	tornDown  bool
}

// NewGroup creates a new Group. db may be nil when test cases do not need
// the shared session.
func NewGroup(db *sql.DB, executor Executor, setupScript, teardownScript string) *Group {
	return &Group{
		db:             db,
		executor:       executor,
		setupScript:    setupScript,
		teardownScript: teardownScript,
	}
}

// Setup runs the group's setup script and opens the shared session.
// Calling Setup twice without a teardown in between is an error: fixture
// scripts are not idempotent, so a repeat run would fail on duplicate data
// anyway and the group rejects it deterministically instead.
func (g *Group) Setup(ctx context.Context) error {
	if g.tornDown {
		return fmt.Errorf("group is already torn down")
	}
	if g.setupDone {
		return fmt.Errorf("setup already ran for this group")
	}

	if _, err := g.executor.Setup(ctx, g.setupScript); err != nil {
		return err
	}

	if g.db != nil {
		conn, err := g.db.Conn(ctx)
		if err != nil {
			return fmt.Errorf("failed to open group session: %w", err)
		}
		g.conn = conn
	}

	g.setupDone = true
	return nil
}

// Teardown runs the group's teardown script and releases the shared session.
// It refuses to run before Setup and runs at most once.
func (g *Group) Teardown(ctx context.Context) error {
	if !g.setupDone {
		return fmt.Errorf("teardown before setup")
	}
	if g.tornDown {
		return fmt.Errorf("teardown already ran for this group")
	}

	// Release the shared session before cleanup touches the data
	if g.conn != nil {
		g.conn.Close()
		g.conn = nil
	}

	g.tornDown = true
	_, err := g.executor.Teardown(ctx, g.teardownScript)
	return err
}

// Conn returns the group's shared session (nil before Setup or after Teardown)
func (g *Group) Conn() *sql.Conn {
	return g.conn
}

// Run drives the full lifecycle: setup once, every test case in order,
// teardown once. Teardown still runs when a test case fails; a failed setup
// means no test case runs and no teardown happens. The first error
// encountered is returned.
func (g *Group) Run(ctx context.Context, fns []TestFunc) error {
	if err := g.Setup(ctx); err != nil {
		return err
	}

	var firstErr error
	for _, fn := range fns {
		if err := fn(ctx, g.conn); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if err := g.Teardown(ctx); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
