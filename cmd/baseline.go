package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"naturalli/internal/baseline"
	"naturalli/internal/solr"

	"github.com/spf13/cobra"
)

var (
	baselineCollection string
	baselineStopwords  string
)

var baselineCmd = &cobra.Command{
	Use:   "baseline FILE...",
	Short: "Run the IR multiple-choice baseline over NaturalLI test files",
	Long: `Answer every multiple-choice question of the given test files with an IR baseline.
Each candidate statement is sent to Solr; the candidate whose answer overlaps best with
its own hits (weighted down the ranking) times the top Solr score is the guess.
Prints the accuracy against the TRUE: statement of each question.

Examples:
  naturalli baseline --collection aristo test/data/regents.test
  naturalli baseline --collection aristo --stopwords etc/stopwords.txt test/data/*.test`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBaseline,
}

func init() {
	rootCmd.AddCommand(baselineCmd)
	baselineCmd.Flags().StringVar(&baselineCollection, "collection", "", "Solr collection (overrides solr.collection)")
	baselineCmd.Flags().StringVar(&baselineStopwords, "stopwords", "", "file with one stop word per line")
}

func runBaseline(cmd *cobra.Command, args []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}
	if baselineCollection != "" {
		config.Solr.Collection = baselineCollection
	}
	if config.Solr.Collection == "" {
		return errors.New("solr collection must be specified")
	}

	stopwords, err := readStopwords(baselineStopwords)
	if err != nil {
		return err
	}
	groups, err := readAllGroups(args)
	if err != nil {
		return err
	}

	appCtx, appCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer appCancel()

	searcher := solr.NewClient(config.Solr.Host, config.Solr.Port, config.Solr.Timeout)
	report, err := baseline.Run(appCtx, searcher, config.Solr.Collection, groups, baseline.DefaultRows, stopwords)
	if err != nil {
		return err
	}
	return report.Print(os.Stdout)
}

// readStopwords loads the stop word file; an empty path means no stop words.
func readStopwords(file string) (baseline.Stopwords, error) {
	if file == "" {
		return baseline.Stopwords{}, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words, err := baseline.ReadStopwords(f)
	if err != nil {
		return nil, err
	}
	slog.Info("Stop words loaded", "count", len(words))
	return words, nil
}
