// Package iotesting provides shared test utilities for store and
// integration tests. This is an internal package for test infrastructure
// only.
package iotesting

import (
	"os"
	"strconv"
	"testing"

	"github.com/gnames/gnpest/pkg/config"
)

const (
	// TestDatabaseName is the database name used for all server
	// integration tests. Tests never run against a production catalog.
	TestDatabaseName = "gnpest_test"
)

// PostgresConfig returns database settings for PostgreSQL integration
// tests. The test is skipped unless GNPEST_TEST_POSTGRES is set.
// Connection parameters come from the usual GNPEST_DATABASE_* variables.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.PostgresConfig(t)
//	    // ... use cfg for database operations
//	}
func PostgresConfig(t *testing.T) *config.DatabaseConfig {
	t.Helper()
	return serverConfig(t, "postgres", "GNPEST_TEST_POSTGRES", 5432)
}

// MySQLConfig returns database settings for MySQL integration tests.
// The test is skipped unless GNPEST_TEST_MYSQL is set.
func MySQLConfig(t *testing.T) *config.DatabaseConfig {
	t.Helper()
	return serverConfig(t, "mysql", "GNPEST_TEST_MYSQL", 3306)
}

func serverConfig(
	t *testing.T,
	driver, switchEnv string,
	port int,
) *config.DatabaseConfig {
	t.Helper()
	if os.Getenv(switchEnv) == "" {
		t.Skipf("Skipping %s integration test, %s is not set", driver, switchEnv)
	}

	cfg := config.New()
	opts := []config.Option{
		config.OptDatabaseDriver(driver),
		config.OptDatabasePort(port),
	}
	if s := os.Getenv("GNPEST_DATABASE_HOST"); s != "" {
		opts = append(opts, config.OptDatabaseHost(s))
	}
	if s := os.Getenv("GNPEST_DATABASE_PORT"); s != "" {
		if i, err := strconv.Atoi(s); err == nil {
			opts = append(opts, config.OptDatabasePort(i))
		}
	}
	if s := os.Getenv("GNPEST_DATABASE_USER"); s != "" {
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if s := os.Getenv("GNPEST_DATABASE_PASSWORD"); s != "" {
		opts = append(opts, config.OptDatabasePassword(s))
	}
	cfg.Update(opts)

	// Always use test database for safety
	cfg.Database.Database = TestDatabaseName

	return &cfg.Database
}

// SetupTempHome creates a temporary home directory for a test and
// returns a config that points all GNpest paths into it.
func SetupTempHome(t *testing.T) *config.Config {
	t.Helper()
	home := t.TempDir()
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir(home)})
	return cfg
}
