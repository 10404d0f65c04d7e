package dataset

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

const timeLayout = "2006-01-02 15:04:05"

// lineHandler is a slog handler writing every record as one JSON object with the time
// and the record attributes at the top level. Levels and messages are dropped.
type lineHandler struct {
	out io.Writer
}

func newLineHandler(out io.Writer) *lineHandler {
	return &lineHandler{out: out}
}

// Handle serializes the record as a single JSONL line.
func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any)
	attrs["time"] = r.Time.Format(timeLayout)

	r.Attrs(func(a slog.Attr) bool {
		if a.Key != "" && a.Value.Any() != nil {
			attrs[a.Key] = a.Value.Any()
		}
		return true
	})

	data, err := json.Marshal(attrs)
	if err != nil {
		return err
	}
	_, err = h.out.Write(append(data, '\n'))
	return err
}

// WithAttrs is not supported.
func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	panic("WithAttrs is not supported by lineHandler")
}

// WithGroup is not supported.
func (h *lineHandler) WithGroup(name string) slog.Handler {
	panic("WithGroup is not supported by lineHandler")
}

// Enabled accepts every level.
func (h *lineHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// JsonResultsRepository appends scored queries to a rotating JSONL file.
type JsonResultsRepository struct {
	lumberjack *lumberjack.Logger
	logger     *slog.Logger
}

// NewJsonResultsRepository creates a repository writing to file.
// maxSize is the size in megabytes before rotation, maxBackups the number of rotated files kept.
func NewJsonResultsRepository(file string, maxSize, maxBackups int) *JsonResultsRepository {
	repo := JsonResultsRepository{}
	repo.lumberjack = &lumberjack.Logger{
		Filename:   file,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		Compress:   true,
	}
	repo.logger = slog.New(newLineHandler(repo.lumberjack))
	return &repo
}

// Append writes one record. Safe for concurrent use.
func (r *JsonResultsRepository) Append(rec Record) {
	r.logger.Info("",
		"request", rec.Request,
		"gold", rec.Gold,
		"guess", rec.Guess,
		"probability", rec.Probability,
		"verdict", rec.Verdict,
		"query", rec.Query,
		"premises", rec.Premises,
		"bestPremise", rec.BestPremise,
		"updated", rec.Updated,
	)
}

// Close flushes and closes the current file.
func (r *JsonResultsRepository) Close() {
	r.lumberjack.Close()
}
