package domain

// Script represents a fixture script file to be executed
type Script struct {
	Path     string // Full path to the script file
	FilePath string // Relative file path
	FileName string // Just the filename
}

// Statement represents a single executable statement within a fixture script
type Statement struct {
	Index int    // Zero-based position within the script
	Line  int    // Line number of the statement's first token
	SQL   string // Statement text without the trailing terminator
}

// Phase identifies which half of the group lifecycle a script belongs to
type Phase string

const (
	PhaseSetup    Phase = "setup"
	PhaseTeardown Phase = "teardown"
)
