package commands

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"sqlfix/internal/config"
	"sqlfix/internal/database"
	"sqlfix/internal/fixture"
	"sqlfix/internal/script"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command: one fixture lifecycle wrapped around
// an external test command
type RunCommand struct {
	config    *config.Config
	parser    *script.Parser
	dbManager *database.Manager
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, parser *script.Parser, dbManager *database.Manager) *RunCommand {
	return &RunCommand{
		config:    cfg,
		parser:    parser,
		dbManager: dbManager,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	setupScript := rc.config.Flags.Script
	if setupScript == "" {
		setupScript = filepath.Join(rc.config.GetFixturePath(), "setup.sql")
	} else {
		setupScript = rc.config.GetScriptPath(setupScript)
	}

	teardownScript := rc.config.Flags.TeardownScript
	if teardownScript == "" {
		teardownScript = filepath.Join(rc.config.GetFixturePath(), "teardown.sql")
	} else {
		teardownScript = rc.config.GetScriptPath(teardownScript)
	}

	db, err := rc.dbManager.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	loader := fixture.NewLoader(db, rc.parser)
	group := fixture.NewGroup(db, loader, setupScript, teardownScript)

	dbName := rc.config.GetDatabaseName()
	ctx := context.Background()
	startTime := time.Now()

	color.Cyan("Fixture lifecycle: %s", dbName)
	color.White("  setup:    %s", setupScript)
	color.White("  teardown: %s", teardownScript)
	fmt.Println()

	runErr := group.Run(ctx, []fixture.TestFunc{
		func(ctx context.Context, conn *sql.Conn) error {
			return rc.runExternal(ctx, args, dbName)
		},
	})

	duration := time.Since(startTime)
	fmt.Println()
	if runErr != nil {
		color.Red("✗ Fixture lifecycle failed: %v", runErr)
		color.White("Duration: %s", duration.Round(time.Millisecond))
		return runErr
	}

	color.Green("✓ Fixture lifecycle completed")
	color.White("Duration: %s", duration.Round(time.Millisecond))
	return nil
}

// runExternal executes the wrapped command with streaming output and the
// test database exported as DB_DATABASE
func (rc *RunCommand) runExternal(ctx context.Context, args []string, dbName string) error {
	projectAbsPath, err := filepath.Abs(rc.config.ProjectPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute project path: %w", err)
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	// Set environment variables
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, fmt.Sprintf("DB_DATABASE=%s", dbName))

	// Set working directory
	cmd.Dir = projectAbsPath

	// Get stdout and stderr pipes for streaming
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to create stdout pipe: %w", err)
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	// Start the command
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start command: %w", err)
	}

	var scanWg sync.WaitGroup

	// Stream stdout
	scanWg.Add(1)
	go func() {
		defer scanWg.Done()
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			fmt.Fprintln(os.Stdout, scanner.Text())
		}
	}()

	// Stream stderr
	scanWg.Add(1)
	go func() {
		defer scanWg.Done()
		scanner := bufio.NewScanner(stderr)
		for scanner.Scan() {
			fmt.Fprintln(os.Stderr, scanner.Text())
		}
	}()

	// Wait for command to complete
	err = cmd.Wait()

	// Wait for all scanners to finish
	scanWg.Wait()

	if err != nil {
		return fmt.Errorf("command %q failed: %w", args[0], err)
	}
	return nil
}
