package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"naturalli/internal/configuration"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "naturalli",
	Short: "Scoring client and corpus tools for the NaturalLI inference server",
	Long: `naturalli talks to a running NaturalLI inference server.

Commands:
  query     interactive scored query client, reads blocks from stdin
  solr      runs NaturalLI test statements against a Solr index
  baseline  answers multiple-choice test files with an IR baseline
  snli      converts SNLI jsonl files to the classifier TSV format

Configuration is read from the optional --config YAML file and from
NATURALLI_<SECTION>_<KEY> environment variables.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (optional)")
}

// prepareLogger sets the global slog logger: JSON on stderr at the given level.
// Unknown levels fall back to info.
func prepareLogger(level string) {
	var logLevel slog.Level

	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn", "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)
}

// loadConfig reads the configuration and prepares the logger.
func loadConfig() (*configuration.AppConfig, error) {
	config, err := configuration.LoadConfig(configPath)
	if err != nil {
		slog.Error("Unable to load configuration", "error", err)
		return nil, err
	}
	prepareLogger(config.Logger.Level)
	return config, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
