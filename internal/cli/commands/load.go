package commands

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"sqlfix/internal/config"
	"sqlfix/internal/database"
	"sqlfix/internal/discovery"
	"sqlfix/internal/domain"
	"sqlfix/internal/fixture"
	"sqlfix/internal/script"
	"sqlfix/internal/storage"
	"sqlfix/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// LoadCommand handles the load command
type LoadCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	parser    *script.Parser
	dbManager *database.Manager
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewLoadCommand creates a new LoadCommand
func NewLoadCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	parser *script.Parser,
	dbManager *database.Manager,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer ui.Viewer,
) *LoadCommand {
	return &LoadCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		parser:    parser,
		dbManager: dbManager,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (lc *LoadCommand) Execute(cmd *cobra.Command, args []string) error {
	return executePhase(
		lc.config, lc.scanner, lc.filter, lc.parser, lc.dbManager,
		lc.storage, lc.formatter, lc.viewer,
		domain.PhaseSetup, config.SetupSuffix,
	)
}

// executePhase discovers the phase's scripts and executes them sequentially,
// stopping at the first failing script. Shared by load and clean.
func executePhase(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	parser *script.Parser,
	dbManager *database.Manager,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer ui.Viewer,
	phase domain.Phase,
	suffix string,
) error {
	scripts, err := resolveScripts(cfg, scanner, filter, suffix)
	if err != nil {
		return err
	}

	if len(scripts) == 0 {
		color.Yellow("No fixture scripts to execute")
		return nil
	}

	db, err := dbManager.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	// Size the progress bar to the total statement count
	totalStatements, err := formatter.CountStatements(scripts)
	if err != nil {
		return err
	}

	loader := fixture.NewLoader(db, parser)
	progressBar := ui.NewProgressBar(totalStatements)
	loader.SetProgress(progressBar)

	ctx := context.Background()
	startTime := time.Now()

	var results []domain.ScriptResult
	var failures []domain.StatementFailure
	var runErr error

	execute := loader.Setup
	if phase == domain.PhaseTeardown {
		execute = loader.Teardown
	}

	for _, s := range scripts {
		result, err := execute(ctx, s)
		results = append(results, result)
		if err != nil {
			var scriptErr *fixture.ScriptError
			if errors.As(err, &scriptErr) {
				failures = append(failures, scriptErr.Failure())
			}
			runErr = err
			break
		}
	}

	progressBar.Finish()
	duration := time.Since(startTime)

	// Save results
	if err := st.Save(results, failures, duration, phase, cfg.GetDatabaseName()); err != nil {
		return fmt.Errorf("failed to save fixture results: %w", err)
	}

	// Print stats
	if err := formatter.PrintMetaStats(); err != nil {
		return err
	}

	if runErr != nil && cfg.Flags.OpenErrors {
		output, err := st.Load()
		if err != nil {
			return err
		}
		if err := viewer.View(output); err != nil {
			return err
		}
	}

	return runErr
}

// resolveScripts returns the scripts to execute: the --script flag if given,
// otherwise all discovered scripts for the phase, in path order.
func resolveScripts(cfg *config.Config, scanner *discovery.Scanner, filter *discovery.Filter, suffix string) ([]string, error) {
	if cfg.Flags.Script != "" {
		return []string{cfg.GetScriptPath(cfg.Flags.Script)}, nil
	}

	scripts, err := scanner.Scan(cfg.GetFixturePath())
	if err != nil {
		return nil, err
	}

	scripts = filter.FilterByPhase(scripts, suffix)
	scripts = filter.FilterByName(scripts, cfg.Flags.NameFilter)
	sort.Strings(scripts)
	return scripts, nil
}
