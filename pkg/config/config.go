// Package config provides configuration management for GNpest.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: driver, path, host, port, user, password, database, ssl_mode
//   - Classifier: model_path, labels_path, top_k, input_size, threads
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields:
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNPEST_ prefix with underscores for nesting:
//
//	GNPEST_DATABASE_DRIVER=sqlite
//	GNPEST_DATABASE_PATH=/data/pests.db
//	GNPEST_CLASSIFIER_TOP_K=3
//	GNPEST_LOG_LEVEL=info
package config

import (
	"runtime"
)

// Config represents the complete GNpest configuration.
type Config struct {
	// Database contains settings of the species catalog store.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Classifier contains settings of the image classification model.
	Classifier ClassifierConfig `mapstructure:"classifier" yaml:"classifier"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of name parsers kept in the parser pool.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains catalog store connection parameters.
type DatabaseConfig struct {
	// Driver selects the relational backend.
	// Valid values: "sqlite", "postgres", "mysql".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// Path is the SQLite database file. Used only by the sqlite driver.
	// When empty, the catalog is expected at DataDir/pests.db.
	Path string `mapstructure:"path" yaml:"path"`

	// Host is the database server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the database server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode for PostgreSQL.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// ClassifierConfig contains settings of the TensorFlow Lite classifier.
type ClassifierConfig struct {
	// ModelPath is the path to the .tflite model file.
	ModelPath string `mapstructure:"model_path" yaml:"model_path"`

	// LabelsPath is the path to a JSON class mapping
	// (e.g. {"0": "Aedes_albopictus"}).
	LabelsPath string `mapstructure:"labels_path" yaml:"labels_path"`

	// TopK is the number of ranked predictions returned for an image.
	TopK int `mapstructure:"top_k" yaml:"top_k"`

	// InputSize is the side of the square input image the model expects.
	InputSize int `mapstructure:"input_size" yaml:"input_size"`

	// Threads is the number of CPU threads used by the interpreter.
	Threads int `mapstructure:"threads" yaml:"threads"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Driver:   "sqlite",
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "pests",
			SSLMode:  "disable",
		},
		Classifier: ClassifierConfig{
			ModelPath:  "best_convnext_tiny.tflite",
			LabelsPath: "class_mapping.json",
			TopK:       3,
			InputSize:  224,
			Threads:    runtime.NumCPU(),
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}

// SQLitePath returns the SQLite catalog file. An explicit Database.Path
// wins, otherwise the file is placed in the data directory.
func (c *Config) SQLitePath() string {
	if c.Database.Path != "" {
		return c.Database.Path
	}
	return CatalogFilePath(c.HomeDir)
}
