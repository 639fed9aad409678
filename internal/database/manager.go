package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"sqlfix/internal/config"
)

// Manager manages the test database fixtures are loaded into
type Manager struct {
	config *config.Config
}

// NewManager creates a new Manager
func NewManager(cfg *config.Config) *Manager {
	return &Manager{config: cfg}
}

// EnsureDatabase checks that the test database exists and creates it if it doesn't
func (m *Manager) EnsureDatabase() (string, error) {
	m.loadEnv()

	// Connect to MySQL server (without specifying database)
	db, err := sql.Open("mysql", m.serverDSN())
	if err != nil {
		return "", fmt.Errorf("failed to connect to database server: %w", err)
	}
	defer db.Close()

	// Test connection
	if err := db.Ping(); err != nil {
		return "", fmt.Errorf("failed to ping database server: %w", err)
	}

	dbName := m.config.GetDatabaseName()

	exists, err := m.databaseExists(db, dbName)
	if err != nil {
		return "", fmt.Errorf("failed to check database %s: %w", dbName, err)
	}

	if !exists {
		if err := m.createDatabase(db, dbName); err != nil {
			return "", fmt.Errorf("failed to create database %s: %w", dbName, err)
		}
	}

	return dbName, nil
}

// Open opens a handle scoped to the test database, creating the database if needed
func (m *Manager) Open() (*sql.DB, error) {
	dbName, err := m.EnsureDatabase()
	if err != nil {
		return nil, err
	}

	dsn := m.serverDSN() + dbName + "?multiStatements=false"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", dbName, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database %s: %w", dbName, err)
	}
	return db, nil
}

// loadEnv loads the project .env file, if present
func (m *Manager) loadEnv() {
	envPath := filepath.Join(m.config.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}
}

// serverDSN builds a server-level DSN from environment or defaults
func (m *Manager) serverDSN() string {
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "127.0.0.1"
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "3306"
	}
	dbUser := os.Getenv("DB_USERNAME")
	if dbUser == "" {
		dbUser = "root"
	}
	dbPassword := os.Getenv("DB_PASSWORD")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/", dbUser, dbPassword, dbHost, dbPort)
}

// databaseExists checks if a database exists
func (m *Manager) databaseExists(db *sql.DB, dbName string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT SCHEMA_NAME FROM INFORMATION_SCHEMA.SCHEMATA WHERE SCHEMA_NAME = ?)"
	err := db.QueryRow(query, dbName).Scan(&exists)
	return exists, err
}

// createDatabase creates a new database
func (m *Manager) createDatabase(db *sql.DB, dbName string) error {
	// Sanitize database name to prevent SQL injection
	if !m.isValidDatabaseName(dbName) {
		return fmt.Errorf("invalid database name: %s", dbName)
	}

	query := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", dbName)
	_, err := db.Exec(query)
	return err
}

// isValidDatabaseName validates database name (basic check)
func (m *Manager) isValidDatabaseName(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	// Check for SQL injection patterns
	invalidChars := []string{"'", "\"", ";", "--", "/*", "*/", "DROP", "DELETE", "TRUNCATE"}
	upperName := strings.ToUpper(name)
	for _, char := range invalidChars {
		if strings.Contains(upperName, char) {
			return false
		}
	}
	return true
}
