package domain

import "time"

// ScriptResult represents the result of executing a fixture script
type ScriptResult struct {
	ScriptPath string        // Path to the script that was executed
	Phase      Phase         // Setup or teardown
	Statements int           // Statements parsed from the script
	Executed   int           // Statements that ran before stopping
	Success    bool          // Whether every statement succeeded
	Error      error         // First statement error, if any
	Duration   time.Duration // Time taken to execute
}

// RunMeta contains metadata about a fixture run
type RunMeta struct {
	TotalScripts     int     `json:"total_scripts"`
	FailedScripts    int     `json:"failed_scripts"`
	PassedScripts    int     `json:"passed_scripts"`
	TotalStatements  int     `json:"total_statements"`
	FailedStatements int     `json:"failed_statements"`
	Phase            string  `json:"phase"`
	Database         string  `json:"database"`
	Duration         string  `json:"duration"`
	DurationSeconds  float64 `json:"duration_seconds"`
	Timestamp        string  `json:"timestamp"`
}

// RunOutput is the complete output structure for a fixture run
type RunOutput struct {
	Meta    RunMeta            `json:"meta"`
	Details []StatementFailure `json:"details"`
}
