package commands

import (
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"sqlfix/internal/config"
	"sqlfix/internal/discovery"
	"sqlfix/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	scripts, err := lc.scanner.Scan(lc.config.GetFixturePath())
	if err != nil {
		return err
	}

	// Filter scripts
	scripts = lc.filter.FilterByName(scripts, lc.config.Flags.NameFilter)
	sort.Strings(scripts)

	if len(scripts) == 0 {
		color.Yellow("No fixture scripts found")
		return nil
	}

	return lc.formatter.PrintScriptList(scripts, lc.config.Flags.Statements)
}
