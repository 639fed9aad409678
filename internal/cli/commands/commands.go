package commands

import (
	"sqlfix/internal/cli"
	"sqlfix/internal/config"
	"sqlfix/internal/database"
	"sqlfix/internal/discovery"
	"sqlfix/internal/script"
	"sqlfix/internal/storage"
	"sqlfix/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Load   *LoadCommand
	Clean  *CleanCommand
	Run    *RunCommand
	List   *ListCommand
	Errors *ErrorsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner(cfg.PathsToIgnore)
	filter := discovery.NewFilter()
	parser := script.NewParser()
	dbManager := database.NewManager(cfg)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg, parser)
	errorViewer := ui.NewErrorViewer(cfg, jsonStorage)

	return &Commands{
		Load:   NewLoadCommand(cfg, scanner, filter, parser, dbManager, jsonStorage, formatter, errorViewer),
		Clean:  NewCleanCommand(cfg, scanner, filter, parser, dbManager, jsonStorage, formatter, errorViewer),
		Run:    NewRunCommand(cfg, parser, dbManager),
		List:   NewListCommand(cfg, scanner, filter, formatter),
		Errors: NewErrorsCommand(cfg, jsonStorage, errorViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Load command
	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Execute setup fixture scripts",
		Long:  "Execute setup scripts against the test database, statement by statement, stopping at the first failure",
		RunE:  c.Load.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	loadCmd.Flags().StringVarP(&flags.Script, "script", "s", "", "Execute a single script instead of all discovered setup scripts")
	loadCmd.Flags().StringVarP(&flags.FixturePath, "fixture-path", "x", "", "Path to the folder where script discovery should start")
	loadCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter scripts by name pattern (supports wildcards, e.g., '*users*')")
	loadCmd.Flags().BoolVar(&flags.OpenErrors, "open-errors", false, "Open the errors viewer when the load finishes with failures")
	rootCmd.AddCommand(loadCmd)

	// Clean command
	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Execute teardown fixture scripts",
		Long:  "Execute teardown scripts against the test database to reverse loaded fixture data",
		RunE:  c.Clean.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	cleanCmd.Flags().StringVarP(&flags.Script, "script", "s", "", "Execute a single script instead of all discovered teardown scripts")
	cleanCmd.Flags().StringVarP(&flags.FixturePath, "fixture-path", "x", "", "Path to the folder where script discovery should start")
	cleanCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter scripts by name pattern (supports wildcards, e.g., '*users*')")
	cleanCmd.Flags().BoolVar(&flags.OpenErrors, "open-errors", false, "Open the errors viewer when the clean finishes with failures")
	rootCmd.AddCommand(cleanCmd)

	// Run command
	runCmd := &cobra.Command{
		Use:   "run [flags] -- command [args...]",
		Short: "Run a command inside a fixture lifecycle",
		Long:  "Execute the setup script once, run the given command with DB_DATABASE exported, then execute the teardown script once (even when the command fails)",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.Script, "setup", "s", "", "Setup script location (default: <fixture-path>/setup.sql)")
	runCmd.Flags().StringVarP(&flags.TeardownScript, "teardown", "t", "", "Teardown script location (default: <fixture-path>/teardown.sql)")
	runCmd.Flags().StringVarP(&flags.FixturePath, "fixture-path", "x", "", "Path used to resolve default script locations")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered fixture scripts",
		Long:  "Scan and list all fixture scripts without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter scripts by name pattern (supports wildcards, e.g., '*users*')")
	listCmd.Flags().StringVarP(&flags.FixturePath, "fixture-path", "x", "", "Path to the folder where script discovery should start")
	listCmd.Flags().BoolVarP(&flags.Statements, "statements", "c", false, "List parsed statements instead of just script files")
	rootCmd.AddCommand(listCmd)

	// Errors command
	errorsCmd := &cobra.Command{
		Use:   "errors",
		Short: "View statement failures interactively",
		Long:  "Display statement failures from the last fixture run in an interactive viewer",
		RunE:  c.Errors.Execute,
	}
	rootCmd.AddCommand(errorsCmd)
}
