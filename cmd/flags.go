package cmd

import (
	"github.com/gnames/gnpest/pkg/config"
	"github.com/spf13/cobra"
)

// catalogFlags adds catalog connection flags inherited by subcommands.
func catalogFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("db-driver", "",
		"catalog backend: sqlite, postgres or mysql")
	cmd.PersistentFlags().String("db-path", "",
		"SQLite catalog file")
}

// classifierFlags adds flags that change classification settings.
func classifierFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("top-k", "k", 0,
		"number of ranked predictions to look up (default from config)")
	cmd.Flags().StringP("model", "m", "",
		"TensorFlow Lite model file")
	cmd.Flags().StringP("labels", "l", "",
		"JSON mapping of class indices to labels")
	cmd.Flags().BoolP("json", "j", false,
		"print the report as JSON")
}

// flagOptions converts explicitly set flags of the running command
// to config options. Flags the command does not have are skipped.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	if flags.Changed("db-driver") {
		s, _ := flags.GetString("db-driver")
		res = append(res, config.OptDatabaseDriver(s))
	}
	if flags.Changed("db-path") {
		s, _ := flags.GetString("db-path")
		res = append(res, config.OptDatabasePath(s))
	}
	if flags.Changed("top-k") {
		i, _ := flags.GetInt("top-k")
		res = append(res, config.OptClassifierTopK(i))
	}
	if flags.Changed("model") {
		s, _ := flags.GetString("model")
		res = append(res, config.OptClassifierModelPath(s))
	}
	if flags.Changed("labels") {
		s, _ := flags.GetString("labels")
		res = append(res, config.OptClassifierLabelsPath(s))
	}

	return res
}
