package script

import (
	"fmt"
	"os"
	"strings"

	"sqlfix/internal/domain"
)

// Parser parses fixture script files into ordered statements
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads a fixture script file and splits it into ordered statements
func (p *Parser) Parse(filePath string) ([]domain.Statement, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading script %s: %w", filePath, err)
	}

	statements := p.Split(string(content))
	if len(statements) == 0 {
		return nil, fmt.Errorf("script %s contains no statements", filePath)
	}

	return statements, nil
}

// Split splits script content into ordered statements.
// Statements are terminated by ';' outside of quoted strings, backtick
// identifiers and comments. Line comments ("-- ", "#") and block comments
// are stripped. The line number of each statement's first token is recorded.
func (p *Parser) Split(content string) []domain.Statement {
	var statements []domain.Statement
	var buf strings.Builder

	const (
		stateNormal = iota
		stateSingleQuote
		stateDoubleQuote
		stateBacktick
		stateLineComment
		stateBlockComment
	)

	state := stateNormal
	line := 1
	startLine := 0 // line of the current statement's first token

	flush := func() {
		sql := strings.TrimSpace(buf.String())
		buf.Reset()
		if sql == "" {
			startLine = 0
			return
		}
		statements = append(statements, domain.Statement{
			Index: len(statements),
			Line:  startLine,
			SQL:   sql,
		})
		startLine = 0
	}

	runes := []rune(content)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		var next rune
		if i+1 < len(runes) {
			next = runes[i+1]
		}

		if ch == '\n' {
			line++
		}

		switch state {
		case stateLineComment:
			if ch == '\n' {
				state = stateNormal
				// Preserve statement separation across comment lines
				buf.WriteRune(' ')
			}
			continue

		case stateBlockComment:
			if ch == '*' && next == '/' {
				state = stateNormal
				i++
				buf.WriteRune(' ')
			}
			continue

		case stateSingleQuote, stateDoubleQuote:
			buf.WriteRune(ch)
			// Backslash escapes the next character inside strings
			if ch == '\\' && i+1 < len(runes) {
				if next == '\n' {
					line++
				}
				buf.WriteRune(next)
				i++
				continue
			}
			if (state == stateSingleQuote && ch == '\'') || (state == stateDoubleQuote && ch == '"') {
				state = stateNormal
			}
			continue

		case stateBacktick:
			buf.WriteRune(ch)
			if ch == '`' {
				state = stateNormal
			}
			continue
		}

		// stateNormal from here on

		// Comment openers
		if ch == '#' {
			state = stateLineComment
			continue
		}
		if ch == '-' && next == '-' {
			// MySQL requires whitespace (or EOL) after "--" for a comment
			if i+2 >= len(runes) || runes[i+2] == ' ' || runes[i+2] == '\t' || runes[i+2] == '\n' || runes[i+2] == '\r' {
				state = stateLineComment
				i++
				continue
			}
		}
		if ch == '/' && next == '*' {
			state = stateBlockComment
			i++
			continue
		}

		// Statement terminator
		if ch == ';' {
			flush()
			continue
		}

		// Quote openers
		switch ch {
		case '\'':
			state = stateSingleQuote
		case '"':
			state = stateDoubleQuote
		case '`':
			state = stateBacktick
		}

		if startLine == 0 && !isSpace(ch) {
			startLine = line
		}
		buf.WriteRune(ch)
	}

	// Unterminated final statement is executed as-is
	flush()

	return statements
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
