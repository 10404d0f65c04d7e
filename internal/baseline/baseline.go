package baseline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"naturalli/internal/input"
	"naturalli/internal/solr"
)

// DefaultRows is the number of hits fetched per candidate statement.
const DefaultRows = 10

// decay controls how fast lower ranked hits lose weight in AverageScore.
const decay = 10.0

// Stopwords is a set of lower-case tokens ignored by Overlap.
type Stopwords map[string]struct{}

// ReadStopwords reads one stop word per line.
func ReadStopwords(r io.Reader) (Stopwords, error) {
	words := Stopwords{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		words[strings.TrimSpace(scanner.Text())] = struct{}{}
	}
	return words, scanner.Err()
}

// Tokens splits s on single spaces, drops the question words what, why and how
// and lower-cases the rest.
func Tokens(s string) []string {
	var tokens []string
	for _, tok := range strings.Split(s, " ") {
		if tok == "what" || tok == "why" || tok == "how" {
			continue
		}
		tokens = append(tokens, strings.ToLower(tok))
	}
	return tokens
}

func tokenSet(tokens []string, stopwords Stopwords) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if _, stop := stopwords[tok]; !stop {
			set[tok] = struct{}{}
		}
	}
	// a text made only of stop words keeps them all
	if len(set) == 0 {
		for _, tok := range tokens {
			set[tok] = struct{}{}
		}
	}
	return set
}

// Overlap returns |A ∩ B| / min(|A|, |B|) over the token sets of a and b without stop
// words. It is 0 when either side has no tokens.
func Overlap(a, b []string, stopwords Stopwords) float64 {
	setA := tokenSet(a, stopwords)
	setB := tokenSet(b, stopwords)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	shared := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			shared++
		}
	}
	return float64(shared) / float64(min(len(setA), len(setB)))
}

// AverageScore is the mean overlap between answer and each hit, the i-th of n hits
// weighted by exp(-10*i/n). No hits score 0.
func AverageScore(answer string, hits []string, stopwords Stopwords) float64 {
	if len(hits) == 0 {
		return 0
	}
	answerTokens := Tokens(answer)
	n := float64(len(hits))
	sum := 0.0
	for i, hit := range hits {
		sum += Overlap(answerTokens, Tokens(hit), stopwords) * math.Exp(-decay*float64(i)/n)
	}
	return sum / n
}

// Guess picks the candidate maximizing lexScore² × top Solr score, where lexScore is
// the AverageScore of the candidate's answer against its own hits. Ties and all-zero
// scores keep the lower index; results must be aligned with the group statements.
func Guess(group input.StatementGroup, results []*solr.QueryResult, stopwords Stopwords) int {
	best, bestScore := 0, 0.0
	for i, statement := range group.Statements {
		result := results[i]
		lexScore := AverageScore(statement.Answer, result.Results, stopwords)
		score := lexScore * lexScore * result.TopScore()
		slog.Debug("Candidate scored",
			"question", group.Question,
			"candidate", i,
			"lexScore", lexScore,
			"topScore", result.TopScore(),
			"averageSolrScore", result.AverageScore(),
			"score", score,
		)
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

// Report is the outcome of a baseline run.
type Report struct {
	Correct int
	Total   int
}

// Accuracy returns the share of correctly answered groups, 0 for an empty run.
func (r Report) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

// Print writes the accuracy line as a percentage.
func (r Report) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\n\nAccuracy: %.4g%%\n", 100*r.Accuracy())
	return err
}

// Run queries every statement of every group and counts the groups whose guess is the
// true statement. Groups without a true statement count as misses.
func Run(
	ctx context.Context,
	searcher solr.Searcher,
	collection string,
	groups []input.StatementGroup,
	rows int,
	stopwords Stopwords,
) (Report, error) {
	report := Report{Total: len(groups)}
	for gid, group := range groups {
		results := make([]*solr.QueryResult, len(group.Statements))
		for i, statement := range group.Statements {
			result, err := searcher.Query(ctx, collection, statement.Text, rows)
			if err != nil {
				return report, fmt.Errorf("query %q: %w", statement.Text, err)
			}
			results[i] = result
		}
		if Guess(group, results, stopwords) == group.Correct() {
			report.Correct++
		}
		slog.Debug("Group answered", "group", gid, "of", len(groups))
	}
	return report, nil
}
