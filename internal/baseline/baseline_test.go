package baseline

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"naturalli/internal/input"
	"naturalli/internal/solr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"do", "cats", "have", "tails?"}, Tokens("what do Cats have tails?"))
	assert.Equal(t, []string{"what"}, Tokens("What"), "only lower-case question words are dropped")
}

func TestOverlap(t *testing.T) {
	stopwords := Stopwords{"the": {}, "a": {}, "have": {}}

	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "cats have tails", "cats have tails", 1},
		{"disjoint", "cats purr", "dogs bark", 0},
		{"normalized by the smaller set", "cats tails", "cats have long fluffy tails", 1},
		{"partial", "cats have tails", "cats have whiskers", 0.5},
		{"stop words only keep them", "the", "the", 1},
		{"case insensitive", "Cats", "cats", 1},
		{"no tokens", "what", "cats", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Overlap(Tokens(tt.a), Tokens(tt.b), stopwords), 1e-12)
		})
	}
}

func TestAverageScore(t *testing.T) {
	tests := []struct {
		name string
		hits []string
		want float64
	}{
		{"no hits", nil, 0},
		{"single hit", []string{"cats have tails"}, 1},
		{"decay on lower hits", []string{"cats have tails", "cats have tails"}, (1 + math.Exp(-5)) / 2},
		{"miss first", []string{"dogs bark", "cats have tails"}, math.Exp(-5) / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AverageScore("cats have tails", tt.hits, Stopwords{}), 1e-12)
		})
	}
}

func group(correct int, answers ...string) input.StatementGroup {
	g := input.StatementGroup{Question: "what has tails?"}
	for i, a := range answers {
		g.Statements = append(g.Statements, input.Statement{Text: a, Answer: a, Truth: i == correct})
	}
	return g
}

func result(score float64, hits ...string) *solr.QueryResult {
	r := &solr.QueryResult{Results: hits}
	for range hits {
		r.Scores = append(r.Scores, score)
	}
	return r
}

func TestGuess(t *testing.T) {
	tests := []struct {
		name    string
		results []*solr.QueryResult
		want    int
	}{
		{
			"best overlap wins",
			[]*solr.QueryResult{result(1, "dogs bark"), result(1, "cats have tails")},
			1,
		},
		{
			"solr score breaks equal overlap",
			[]*solr.QueryResult{result(1, "cats have tails"), result(2, "fish have tails")},
			1,
		},
		{
			"lexical score is squared",
			[]*solr.QueryResult{result(1, "cats have tails"), result(3.9, "fish eat worms")},
			0,
		},
		{
			"all zero keeps the first",
			[]*solr.QueryResult{result(1), result(1)},
			0,
		},
	}

	g := group(1, "cats have tails", "fish have tails")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Guess(g, tt.results, Stopwords{}))
		})
	}
}

type stubSearcher struct {
	hits map[string]*solr.QueryResult
	err  error
}

func (s *stubSearcher) Query(_ context.Context, _, q string, _ int) (*solr.QueryResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	if r, ok := s.hits[q]; ok {
		return r, nil
	}
	return &solr.QueryResult{Query: q}, nil
}

func TestRun(t *testing.T) {
	searcher := &stubSearcher{hits: map[string]*solr.QueryResult{
		"cats have tails": result(1, "cats have tails"),
		"fish have fins":  result(1, "fish have fins"),
	}}
	groups := []input.StatementGroup{
		group(0, "cats have tails", "rocks have tails"),
		group(1, "fish have fins", "birds have fins"),
		group(-1, "nothing is true", "really"),
	}

	report, err := Run(context.Background(), searcher, "facts", groups, DefaultRows, Stopwords{})
	require.NoError(t, err)

	assert.Equal(t, Report{Correct: 1, Total: 3}, report)
	assert.InDelta(t, 1.0/3.0, report.Accuracy(), 1e-12)

	var out bytes.Buffer
	require.NoError(t, report.Print(&out))
	assert.Equal(t, "\n\nAccuracy: 33.33%\n", out.String())
}

func TestRun_SearchError(t *testing.T) {
	_, err := Run(context.Background(), &stubSearcher{err: errors.New("down")}, "facts",
		[]input.StatementGroup{group(0, "cats have tails")}, DefaultRows, Stopwords{})
	assert.Error(t, err)
}

func TestReport_Empty(t *testing.T) {
	assert.Zero(t, Report{}.Accuracy())
}

func TestReadStopwords(t *testing.T) {
	words, err := ReadStopwords(strings.NewReader("the\n a \nof\n"))
	require.NoError(t, err)

	assert.Len(t, words, 3)
	assert.Contains(t, words, "a")
}
