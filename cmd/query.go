package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"naturalli/internal/client"
	"naturalli/internal/configuration"
	"naturalli/internal/costs"
	"naturalli/internal/dataset"
	"naturalli/internal/runner"
	"naturalli/internal/score"
	"naturalli/internal/score/learner"
	"naturalli/internal/score/rule"
	"naturalli/internal/server"

	"github.com/spf13/cobra"
)

const banner = `Connecting to %s on %d threads
Enter a number of optional premises, separated by newlines,
followed by a query and two newlines. Or, pipe one of the test
case files in test/data/ .
For example:

All cats have tails.
Some animals have tails.

=> 'Some animals have tails.' is true (0.999075)

vv Your input here (^D to exit) vv
`

var queryCmd = &cobra.Command{
	Use:   "query [host [port [parallelism [in-model [out-model]]]]]",
	Short: "Score query blocks read from stdin against the inference server",
	Long: `Read blocks of premises followed by a query from stdin, send each block to the
inference server and print the verdict. Blocks are separated by blank lines; lines
starting with # are ignored. A query may carry a gold label prefix (TRUE:, FALSE:, UNK:),
in which case the answer is scored and the cost model is updated.

Positional arguments override the inference and model settings of the configuration.
The exit code is 0 whatever the queries return. Startup problems are the exception and
exit with 1: an unreadable configuration, model or rules file, or a non-numeric or
out of range port or parallelism argument.

Examples:
  naturalli query < test/data/fracas.examples
  naturalli query localhost 1337 8 model.in model.out < queries.txt`,
	Args: cobra.MaximumNArgs(5),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
}

// applyQueryArgs overrides the configuration with positional arguments.
func applyQueryArgs(config *configuration.AppConfig, args []string) error {
	if len(args) > 0 {
		config.Inference.Host = args[0]
	}
	if len(args) > 1 {
		port, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("port: %w", err)
		}
		config.Inference.Port = port
	}
	if len(args) > 2 {
		parallelism, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("parallelism: %w", err)
		}
		config.Inference.Parallelism = parallelism
	}
	if len(args) > 3 {
		config.Model.Input = args[3]
	}
	if len(args) > 4 {
		config.Model.Output = args[4]
	}
	return config.Inference.Validate()
}

func runQuery(cmd *cobra.Command, args []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyQueryArgs(config, args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	vector, err := costs.Load(config.Model.Input)
	if err != nil {
		slog.Error("Unable to load model", "error", err)
		return err
	}
	rules, err := rule.LoadFromFile(config.Learning.Rules)
	if err != nil {
		slog.Error("Unable to load rules", "error", err)
		return err
	}

	accumulator := score.NewAccumulator(config.Learning.Window)
	var results dataset.ResultsRepository
	if config.Dataset.File != "" {
		repo := dataset.NewJsonResultsRepository(config.Dataset.File, config.Dataset.Size, config.Dataset.Amount)
		defer repo.Close()
		results = repo
	}

	inference := client.NewClient(
		config.Inference.Host,
		config.Inference.Port,
		config.Inference.Timeout,
		config.Inference.BufferSize,
	)
	rn := runner.NewRunner(
		inference,
		vector,
		learner.NewLearner(vector, rules),
		accumulator,
		results,
		runner.Options{
			Parallelism: config.Inference.Parallelism,
			SendCosts:   config.Inference.SendCosts,
			Out:         os.Stdout,
			ErrOut:      os.Stderr,
		},
	)

	appCtx, appCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer appCancel()

	var srv *server.Server
	if config.Status.Address != "" {
		srv = server.NewServer(config.Status.Address, accumulator, vector)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("Status server", "error", err)
			}
		}()
		slog.Info("Status server listening " + config.Status.Address)
	}

	fmt.Fprintf(os.Stderr, banner, inference.Address(), config.Inference.Parallelism)
	runQueries(appCtx, rn, os.Stdin, config.Model.Output)

	if srv != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second*10)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Status server shutdown", "error", err)
		}
		slog.Info("Status server stopped")
	}
	return nil
}

// runQueries drives the runner to the end of input and writes the report and the model.
// Failures here are logged only; they never change the exit code.
func runQueries(ctx context.Context, rn *runner.Runner, in io.Reader, modelPath string) {
	if err := rn.Run(ctx, in); err != nil {
		slog.Error("Input aborted", "error", err)
	}
	if err := rn.Finish(os.Stdout, modelPath); err != nil {
		slog.Error("Unable to finish run", "error", err)
	}
}
