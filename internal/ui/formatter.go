package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"sqlfix/internal/config"
	"sqlfix/internal/domain"
	"sqlfix/internal/script"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	parser *script.Parser
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, parser *script.Parser) *Formatter {
	return &Formatter{
		config: cfg,
		parser: parser,
	}
}

// PrintMetaStats reads and displays meta statistics from the JSON results file
func (f *Formatter) PrintMetaStats() error {
	outputPath := f.config.GetOutputPath()

	// Read JSON file
	data, err := os.ReadFile(outputPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}

	// Parse JSON
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	meta := output.Meta

	// Print header
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                   Fixture Execution Statistics                ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	rows := []struct {
		label string
		print func(format string, a ...interface{})
		value string
	}{
		{"Phase", color.White, meta.Phase},
		{"Database", color.White, meta.Database},
		{"Total Scripts", color.White, fmt.Sprintf("%d", meta.TotalScripts)},
		{"Passed Scripts", color.Green, fmt.Sprintf("%d", meta.PassedScripts)},
		{"Failed Scripts", color.Red, fmt.Sprintf("%d", meta.FailedScripts)},
		{"Total Statements", color.White, fmt.Sprintf("%d", meta.TotalStatements)},
		{"Failed Statements", color.Red, fmt.Sprintf("%d", meta.FailedStatements)},
		{"Duration", color.White, fmt.Sprintf("%.2fs", meta.DurationSeconds)},
		{"Timestamp", color.White, meta.Timestamp},
	}

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")
	for i, row := range rows {
		fmt.Printf("│ %-31s │ ", row.label)
		row.print("%-27s │\n", row.value)
		if i < len(rows)-1 {
			fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")
		}
	}
	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	// Print summary line
	fmt.Println()
	if meta.FailedScripts == 0 {
		color.Green("✓ All fixture scripts executed!")
	} else {
		color.Red("✗ %d script(s) failed with %d statement failure(s)", meta.FailedScripts, meta.FailedStatements)
		fmt.Println()
		f.printFailedStatementsTree(output.Details)
	}

	return nil
}

// printFailedStatementsTree prints failed statements grouped by script path
func (f *Formatter) printFailedStatementsTree(failures []domain.StatementFailure) {
	if len(failures) == 0 {
		return
	}

	// Group failures by script path
	fileMap := make(map[string][]domain.StatementFailure)
	var paths []string
	for _, failure := range failures {
		if _, ok := fileMap[failure.ScriptPath]; !ok {
			paths = append(paths, failure.ScriptPath)
		}
		fileMap[failure.ScriptPath] = append(fileMap[failure.ScriptPath], failure)
	}
	sort.Strings(paths)

	for i, path := range paths {
		isLastFile := i == len(paths)-1
		if isLastFile {
			color.Yellow("└── %s", f.relPath(path))
		} else {
			color.Yellow("├── %s", f.relPath(path))
		}

		fileFailures := fileMap[path]
		for j, failure := range fileFailures {
			isLastCase := j == len(fileFailures)-1
			var prefix string
			if isLastFile {
				if isLastCase {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if isLastCase {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}
			color.Red("%sstatement %d (line %d): %s", prefix, failure.Index+1, failure.Line, truncateSQL(failure.SQL, 60))
		}
	}
}

// relPath returns a path relative to the project for cleaner display
func (f *Formatter) relPath(path string) string {
	rel, err := filepath.Rel(f.config.ProjectPath, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// CountStatements returns the total number of statements across the given scripts.
func (f *Formatter) CountStatements(scripts []string) (int, error) {
	var total int
	for _, s := range scripts {
		statements, err := f.parser.Parse(s)
		if err != nil {
			return 0, err
		}
		total += len(statements)
	}
	return total, nil
}

// PrintScriptList prints a list of fixture scripts, optionally with their statements.
func (f *Formatter) PrintScriptList(scripts []string, showStatements bool) error {
	if showStatements {
		// Display tree view with parsed statements
		color.Green("Found %d fixture script(s) with statements:\n", len(scripts))

		for i, s := range scripts {
			statements, err := f.parser.Parse(s)
			if err != nil {
				color.Red("Error reading script %s: %v", s, err)
				continue
			}

			isLastFile := i == len(scripts)-1
			if isLastFile {
				color.Cyan("└── %s", f.relPath(s))
			} else {
				color.Cyan("├── %s", f.relPath(s))
			}

			// Print statements as children
			for j, stmt := range statements {
				isLastCase := j == len(statements)-1

				var prefix string
				if isLastFile {
					if isLastCase {
						prefix = "    └── "
					} else {
						prefix = "    ├── "
					}
				} else {
					if isLastCase {
						prefix = "│   └── "
					} else {
						prefix = "│   ├── "
					}
				}

				fmt.Printf("%s%s\n", prefix, color.YellowString(truncateSQL(stmt.SQL, 70)))
			}

			// Add spacing between files (except for the last one)
			if i < len(scripts)-1 {
				fmt.Println()
			}
		}
	} else {
		// Display simple list of scripts
		color.Green("Found %d fixture script(s):\n", len(scripts))

		for i, s := range scripts {
			if i == len(scripts)-1 {
				color.Cyan("└── %s", f.relPath(s))
			} else {
				color.Cyan("├── %s", f.relPath(s))
			}
		}
	}

	return nil
}

// truncateSQL collapses whitespace and truncates a statement for display
func truncateSQL(sql string, max int) string {
	collapsed := strings.Join(strings.Fields(sql), " ")
	if len(collapsed) <= max {
		return collapsed
	}
	return collapsed[:max-3] + "..."
}
