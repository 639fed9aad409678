package main

import (
	"fmt"
	"os"

	"sqlfix/internal/cli"
	"sqlfix/internal/cli/commands"
	"sqlfix/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "sqlfix",
		Short:   "SQL test-fixture lifecycle manager",
		Long:    `Load and clean SQL fixture data for test databases. Executes a setup script once before a group of tests and a teardown script once after, sharing a single database session for the group's lifetime.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
