package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/winctl/internal/config"
	"github.com/mj1618/winctl/internal/logger"
	"github.com/mj1618/winctl/internal/output"
	"github.com/mj1618/winctl/internal/version"
	"github.com/spf13/cobra"
)

// cfg is the configuration loaded by the root command before any subcommand runs.
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:          "winctl",
	Short:        "Enumerate, select and activate top-level desktop windows",
	Long:         "A CLI tool that lists top-level windows, selects them by title substrings, and brings them to the foreground.",
	SilenceUsage: true,
}

func Execute() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}

// execute runs the root command and closes any log file it opened.
func execute() error {
	err := rootCmd.Execute()
	logger.CloseLogFile()
	return err
}

// applyConfigLogLevel sets the log level from c unless --log-level was given.
func applyConfigLogLevel(c *config.Config) {
	if rootCmd.PersistentFlags().Changed("log-level") {
		return
	}
	logger.SetLevel(c.Log.Level)
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json, text")
	rootCmd.PersistentFlags().String("config", "", "Config file (default $WINCTL_CONFIG or ~/.config/winctl/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error, off")
	rootCmd.PersistentFlags().String("log-file", "", "Append logs to this file instead of stderr")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		configPath, _ := rootCmd.PersistentFlags().GetString("config")
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		// Flags win over the config file.
		level, _ := rootCmd.PersistentFlags().GetString("log-level")
		if level == "" {
			level = cfg.Log.Level
		}
		logger.SetLevel(level)

		logFile, _ := rootCmd.PersistentFlags().GetString("log-file")
		if logFile == "" {
			logFile = cfg.Log.File
		}
		if logFile != "" {
			if err := logger.SetOutputFile(logFile); err != nil {
				return err
			}
		}

		format, _ := rootCmd.PersistentFlags().GetString("format")
		if format == "" {
			format = cfg.Format
		}

		// Smart default: auto-detect format when not explicitly set.
		// Piped output → json. Terminal output → yaml.
		if format == "" {
			if output.IsOutputPiped() {
				format = "json"
			} else {
				format = "yaml"
			}
		}

		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		if prettyFlag := cmd.Flags().Lookup("pretty"); prettyFlag != nil {
			if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
				output.PrettyOutput = true
			}
		}
		return nil
	}
}
