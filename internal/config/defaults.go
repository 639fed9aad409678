package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultFixturePath is the default path scanned for fixture scripts
	DefaultFixturePath = "fixtures"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "fixture-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultDatabaseName is the test database used when DB_DATABASE is unset
	DefaultDatabaseName = "testing"
	// SetupSuffix marks a script as a setup script
	SetupSuffix = ".setup.sql"
	// TeardownSuffix marks a script as a teardown script
	TeardownSuffix = ".teardown.sql"
)

// DefaultPathsToIgnore are the default directories to ignore when scanning for fixture scripts
var DefaultPathsToIgnore = []string{
	"vendor",
	"node_modules",
	"storage",
	"migrations",
	"tmp",
}
