package solr

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"naturalli/internal/input"
)

// Searcher runs a single IR query.
type Searcher interface {
	Query(ctx context.Context, collection, q string, rows int) (*QueryResult, error)
}

// RunQueries queries every statement of every group and writes one TSV line per hit:
// group index, truth of the statement, hit text, statement text.
// With negativesOnly set, true statements are skipped.
func RunQueries(
	ctx context.Context,
	searcher Searcher,
	collection string,
	groups []input.StatementGroup,
	count int,
	negativesOnly bool,
	w io.Writer,
) error {
	for qid, group := range groups {
		for _, statement := range group.Statements {
			if negativesOnly && statement.Truth {
				continue
			}
			result, err := searcher.Query(ctx, collection, statement.Text, count)
			if err != nil {
				return fmt.Errorf("query %q: %w", statement.Text, err)
			}
			for _, hit := range result.Results {
				if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", qid, truthString(statement.Truth), hit, statement.Text); err != nil {
					return err
				}
			}
		}
		slog.Debug("Group queried", "group", qid, "of", len(groups))
	}
	return nil
}

func truthString(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
