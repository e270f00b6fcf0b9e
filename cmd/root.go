/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnpest/internal/iofs"
	"github.com/gnames/gnpest/internal/iologger"
	app "github.com/gnames/gnpest/pkg"
	"github.com/gnames/gnpest/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir   string
	opts      []config.Option
	cfg       *config.Config
	logCloser io.Closer
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gnpest [IMAGE]",
		Short:   "GNpest identifies pests and disease vectors on photos",
		Long: `GNpest identifies insect pests and disease vectors on a photo.

An image classifier (TensorFlow Lite) ranks the most likely species,
their labels are converted to scientific names, and each name is looked
up in a species catalog (SQLite, PostgreSQL or MySQL). For every found
species GNpest prints the Chinese name, alternative names, distinguishing
traits, taxonomy, distribution and carried diseases.

Configuration precedence (highest to lowest):
  1. CLI flags (--top-k, --db-driver, etc.)
  2. Environment variables (GNPEST_*)
  3. Config file (~/.config/gnpest/config.yaml)
  4. Built-in defaults

Examples:
  gnpest mosquito.jpg
  gnpest identify mosquito.jpg --top-k 5
  gnpest lookup "Aedes albopictus"`,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gnpest version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnpest")

	catalogFlags(rootCmd)
	classifierFlags(rootCmd)

	rootCmd.AddCommand(
		getIdentifyCmd(),
		getLookupCmd(),
		getCreateCmd(),
		getMigrateCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, _ []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if logCloser, err = iologger.Init(
		config.LogDir(homeDir), defaultLog, false,
	); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Flags win over config file and environment
	cfg.Update(flagOptions(cmd))

	// Reconfigure logging with user's settings
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"driver", cfg.Database.Driver,
	)

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
// The bootstrap log file is continued, not truncated.
func reconfigureLogging(cfg *config.Config) error {
	closeLog()
	var err error
	logDir := config.LogDir(cfg.HomeDir)
	logCloser, err = iologger.Init(logDir, cfg.Log, true)
	return err
}

func closeLog() {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	return runIdentify(cmd, args[0])
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	closeLog()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNPEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	v.BindEnv("database.driver", "GNPEST_DATABASE_DRIVER")
	v.BindEnv("database.path", "GNPEST_DATABASE_PATH")
	v.BindEnv("database.host", "GNPEST_DATABASE_HOST")
	v.BindEnv("database.port", "GNPEST_DATABASE_PORT")
	v.BindEnv("database.user", "GNPEST_DATABASE_USER")
	v.BindEnv("database.password", "GNPEST_DATABASE_PASSWORD")
	v.BindEnv("database.database", "GNPEST_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "GNPEST_DATABASE_SSL_MODE")

	// Classifier configuration
	v.BindEnv("classifier.model_path", "GNPEST_CLASSIFIER_MODEL_PATH")
	v.BindEnv("classifier.labels_path", "GNPEST_CLASSIFIER_LABELS_PATH")
	v.BindEnv("classifier.top_k", "GNPEST_CLASSIFIER_TOP_K")
	v.BindEnv("classifier.input_size", "GNPEST_CLASSIFIER_INPUT_SIZE")
	v.BindEnv("classifier.threads", "GNPEST_CLASSIFIER_THREADS")

	// Log configuration
	v.BindEnv("log.level", "GNPEST_LOG_LEVEL")
	v.BindEnv("log.format", "GNPEST_LOG_FORMAT")
	v.BindEnv("log.destination", "GNPEST_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "GNPEST_JOBS_NUMBER")

	v.AutomaticEnv()
}
