package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"naturalli/internal/costs"
	"naturalli/internal/dataset"
	"naturalli/internal/input"
	"naturalli/internal/protocol"
	"naturalli/internal/score"
	"naturalli/internal/score/learner"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Querier sends one block to the inference server.
type Querier interface {
	Query(ctx context.Context, preamble []string, block input.Block) (*protocol.Response, error)
}

// Options configure a Runner.
type Options struct {
	// Parallelism is the number of queries in flight; values below 1 mean 1.
	Parallelism int
	// SendCosts sends the cost vector preamble with every query.
	SendCosts bool
	// Out receives result lines, ErrOut server failure messages.
	Out    io.Writer
	ErrOut io.Writer
}

// Runner reads query blocks, dispatches them on a bounded pool and scores the answers.
type Runner struct {
	client      Querier
	vector      *costs.Vector
	learner     *learner.Learner
	accumulator *score.Accumulator
	results     dataset.ResultsRepository
	opts        Options

	outMu sync.Mutex
}

// Run consumes blocks from r until EOF or until ctx is cancelled, then waits for the
// queries in flight. Individual query failures are logged and never stop the run;
// the returned error only reports a failure to read the input.
func (rn *Runner) Run(ctx context.Context, r io.Reader) error {
	reader := input.NewReader(r)
	blocks := make(chan input.Block)
	readErr := make(chan error, 1)

	// stdin reads cannot be interrupted, so the reader lives in its own goroutine
	go func() {
		defer close(blocks)
		for {
			block, err := reader.Next()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					readErr <- err
				}
				return
			}
			select {
			case blocks <- block:
			case <-ctx.Done():
				return
			}
		}
	}()

	var g errgroup.Group
	g.SetLimit(rn.opts.Parallelism)

loop:
	for {
		select {
		case <-ctx.Done():
			slog.Info("Input interrupted", "error", ctx.Err())
			break loop
		case block, ok := <-blocks:
			if !ok {
				break loop
			}
			// the preamble reflects the costs at submission time
			var preamble []string
			if rn.opts.SendCosts {
				preamble = costs.Preamble(rn.vector.Snapshot())
			}
			g.Go(func() error {
				rn.process(ctx, block, preamble)
				return nil
			})
		}
	}

	_ = g.Wait()

	select {
	case err := <-readErr:
		return fmt.Errorf("read input: %w", err)
	default:
		return nil
	}
}

// process runs one query and records its outcome.
func (rn *Runner) process(ctx context.Context, block input.Block, preamble []string) {
	id := uuid.NewString()
	logger := slog.With("request", id)

	resp, err := rn.client.Query(ctx, preamble, block)
	var serverErr *protocol.ServerError
	if errors.As(err, &serverErr) {
		logger.Warn("Query failed", "query", block.Query, "message", serverErr.Message)
		rn.printf(rn.opts.ErrOut, "Query failed: %s\n", serverErr.Message)
		return
	}
	if err != nil {
		logger.Error("Query aborted", "query", block.Query, "error", err)
		return
	}

	var features []float64
	if resp.Features != nil {
		features = resp.Features.Vector()
	}
	outcome := score.NewOutcome(block.Gold, resp.Truth, features)

	update := rn.learner.Apply(outcome)
	if update != nil {
		logger.Debug("Costs updated", "action", update.Action, "rate", update.Rate)
	}
	rn.accumulator.Record(outcome)

	if outcome.HasGold() {
		rn.printf(rn.opts.Out, "=> %s '%s' is %s (%f) because '%s'\n",
			outcome.Prefix(), block.Query, outcome.Guess, outcome.Probability, resp.BestPremise)
		accuracy, window := rn.accumulator.RecentAccuracy()
		logger.Debug("Query scored", "verdict", outcome.Prefix(), "recentAccuracy", accuracy, "window", window)
	} else {
		rn.printf(rn.opts.Out, "=> '%s' is %s (%f) because '%s'\n",
			block.Query, outcome.Guess, outcome.Probability, resp.BestPremise)
	}

	rn.results.Append(dataset.Record{
		Request:     id,
		Gold:        string(outcome.Gold),
		Guess:       string(outcome.Guess),
		Probability: outcome.Probability,
		Verdict:     outcome.Prefix(),
		Query:       block.Query,
		Premises:    block.Premises,
		BestPremise: resp.BestPremise,
		Updated:     update != nil,
	})
}

func (rn *Runner) printf(w io.Writer, format string, args ...any) {
	rn.outMu.Lock()
	defer rn.outMu.Unlock()
	fmt.Fprintf(w, format, args...)
}

// Finish prints the metrics report to w and saves the cost vector to modelPath.
func (rn *Runner) Finish(w io.Writer, modelPath string) error {
	if err := rn.accumulator.Metrics().Report(w); err != nil {
		return err
	}
	if err := rn.vector.Save(modelPath); err != nil {
		return fmt.Errorf("save model %s: %w", modelPath, err)
	}
	return nil
}

// NewRunner wires a runner. A nil results repository discards records.
func NewRunner(
	client Querier,
	vector *costs.Vector,
	learner *learner.Learner,
	accumulator *score.Accumulator,
	results dataset.ResultsRepository,
	opts Options,
) *Runner {
	if opts.Parallelism < 1 {
		opts.Parallelism = 1
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.ErrOut == nil {
		opts.ErrOut = io.Discard
	}
	if results == nil {
		results = dataset.Discard{}
	}
	return &Runner{
		client:      client,
		vector:      vector,
		learner:     learner,
		accumulator: accumulator,
		results:     results,
		opts:        opts,
	}
}
