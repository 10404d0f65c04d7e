package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"naturalli/internal/input"
	"naturalli/internal/solr"

	"github.com/spf13/cobra"
)

var (
	solrCollection string
	solrCount      int
	solrNegatives  bool
)

var solrCmd = &cobra.Command{
	Use:   "solr FILE...",
	Short: "Query a Solr index with every statement of NaturalLI test files",
	Long: `Send each statement of the given test files to a Solr collection and print
one TSV line per retrieved document:

  question-index <TAB> True|False <TAB> document <TAB> statement

Question indices keep counting across files. Exact copies of the statement are
dropped from the hits. With --negatives only false statements are queried and a
single hit is kept per statement unless --count is given.

Examples:
  naturalli solr --collection aristo test/data/turk.test
  naturalli solr --negatives --count 4 test/data/*.test`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolr,
}

func init() {
	rootCmd.AddCommand(solrCmd)
	solrCmd.Flags().StringVar(&solrCollection, "collection", "", "Solr collection (overrides solr.collection)")
	solrCmd.Flags().IntVar(&solrCount, "count", 0, "hits per statement (default solr.count, or 1 with --negatives)")
	solrCmd.Flags().BoolVar(&solrNegatives, "negatives", false, "query false statements only")
}

func runSolr(cmd *cobra.Command, args []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}
	if solrCollection != "" {
		config.Solr.Collection = solrCollection
	}
	if config.Solr.Collection == "" {
		return errors.New("solr collection must be specified")
	}

	appCtx, appCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer appCancel()

	groups, err := readAllGroups(args)
	if err != nil {
		return err
	}
	searcher := solr.NewClient(config.Solr.Host, config.Solr.Port, config.Solr.Timeout)
	count := hitsPerStatement(config.Solr.Count, solrCount, solrNegatives)
	return solr.RunQueries(appCtx, searcher, config.Solr.Collection, groups, count, solrNegatives, os.Stdout)
}

// hitsPerStatement resolves the number of hits per statement: the flag wins, negatives
// mode keeps a single hit, otherwise the configured count applies.
func hitsPerStatement(configured, flag int, negatives bool) int {
	switch {
	case flag > 0:
		return flag
	case negatives:
		return 1
	default:
		return configured
	}
}

// readAllGroups reads the groups of every file in order, so question indices keep
// counting across files.
func readAllGroups(files []string) ([]input.StatementGroup, error) {
	var groups []input.StatementGroup
	for _, file := range files {
		g, err := readGroups(file)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g...)
	}
	return groups, nil
}

func readGroups(file string) ([]input.StatementGroup, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	groups, err := input.ReadGroups(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return groups, nil
}
