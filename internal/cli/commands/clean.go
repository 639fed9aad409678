package commands

import (
	"sqlfix/internal/config"
	"sqlfix/internal/database"
	"sqlfix/internal/discovery"
	"sqlfix/internal/domain"
	"sqlfix/internal/script"
	"sqlfix/internal/storage"
	"sqlfix/internal/ui"

	"github.com/spf13/cobra"
)

// CleanCommand handles the clean command
type CleanCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	parser    *script.Parser
	dbManager *database.Manager
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewCleanCommand creates a new CleanCommand
func NewCleanCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	parser *script.Parser,
	dbManager *database.Manager,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer ui.Viewer,
) *CleanCommand {
	return &CleanCommand{
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
func (cc *CleanCommand) Execute(cmd *cobra.Command, args []string) error {
	return executePhase(
		cc.config, cc.scanner, cc.filter, cc.parser, cc.dbManager,
		cc.storage, cc.formatter, cc.viewer,
		domain.PhaseTeardown, config.TeardownSuffix,
	)
}
