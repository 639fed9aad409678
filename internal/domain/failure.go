package domain

// StatementFailure represents a failed fixture statement
type StatementFailure struct {
	ScriptPath string `json:"script_path"`
	Phase      string `json:"phase"`
	Index      int    `json:"index"`
	Line       int    `json:"line"`
	SQL        string `json:"sql"`
	Message    string `json:"message"`
	Resolved   bool   `json:"resolved,omitempty"` // Track if failure is marked as resolved
}
