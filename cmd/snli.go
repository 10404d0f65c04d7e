package main

import (
	"fmt"
	"os"

	"naturalli/internal/snli"

	"github.com/spf13/cobra"
)

var snliCmd = &cobra.Command{
	Use:   "snli FILE...",
	Short: "Convert SNLI jsonl files to the classifier TSV format",
	Long: `Read SNLI jsonl files and print one line per pair:

  id <TAB> True|False|Unknown <TAB> premise <TAB> hypothesis

Ids continue across files. The truth value is the majority annotator label.

Example:
  naturalli snli snli_1.0_dev.jsonl > snli.dev.tab`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSnli,
}

func init() {
	rootCmd.AddCommand(snliCmd)
}

func runSnli(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	id := 0
	for _, file := range args {
		next, err := convertFile(file, id)
		if err != nil {
			return err
		}
		id = next
	}
	return nil
}

func convertFile(file string, start int) (int, error) {
	f, err := os.Open(file)
	if err != nil {
		return start, err
	}
	defer f.Close()

	next, err := snli.Convert(f, os.Stdout, start)
	if err != nil {
		return next, fmt.Errorf("%s: %w", file, err)
	}
	return next, nil
}
