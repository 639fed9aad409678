package ui

import "sqlfix/internal/domain"

// Viewer displays fixture run results in an interactive TUI
type Viewer interface {
	View(results *domain.RunOutput) error
}
