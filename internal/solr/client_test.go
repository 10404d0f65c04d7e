package solr

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"naturalli/internal/input"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selectBody = `{"response": {"numFound": 42, "maxScore": 3.0, "docs": [
	{"id": "1", "text": ["cats have tails"], "score": 3.0},
	{"id": "2", "text": ["all cats have fur"], "score": 2.0},
	{"id": "3", "text": ["cats like milk"], "score": 1.0},
	{"id": "4", "text": ["dogs bark"], "score": 0.5}
]}}`

func TestClient_Query(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Write([]byte(selectBody))
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL+"/solr", time.Second)
	result, err := c.Query(context.Background(), "facts", "cats have tails", 2)
	require.NoError(t, err)

	assert.Equal(t, "/solr/facts/select/", got.URL.Path)
	assert.Equal(t, "json", got.URL.Query().Get("wt"))
	assert.Equal(t, "id text score", got.URL.Query().Get("fl"))
	assert.Equal(t, "5", got.URL.Query().Get("rows"))
	assert.Equal(t, "cats have tails", got.URL.Query().Get("q"))

	assert.Equal(t, 42, result.NumFound)
	assert.Equal(t, []string{"all cats have fur", "cats like milk"}, result.Results, "the exact match is dropped")
	assert.Equal(t, 2.0, result.TopScore())
	assert.Equal(t, 1.5, result.AverageScore())
}

func TestClient_QueryEscapesColon(t *testing.T) {
	var q string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q = r.URL.Query().Get("q")
		w.Write([]byte(`{"response": {"numFound": 0, "maxScore": 0, "docs": []}}`))
	}))
	defer srv.Close()

	c := NewClientWithURL(srv.URL+"/solr/", time.Second)
	result, err := c.Query(context.Background(), "facts", "ratio 1:2", 8)
	require.NoError(t, err)

	assert.Equal(t, `ratio 1\:2`, q)
	assert.Empty(t, result.Results)
	assert.Zero(t, result.TopScore())
	assert.Zero(t, result.AverageScore())
}

func TestClient_QueryBadResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": {"msg": "undefined field"}}`))
	}))
	defer srv.Close()

	_, err := NewClientWithURL(srv.URL, time.Second).Query(context.Background(), "facts", "q", 1)
	assert.ErrorIs(t, err, ErrBadResponse)
}

func TestClient_QueryHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClientWithURL(srv.URL, time.Second).Query(context.Background(), "facts", "q", 1)
	assert.Error(t, err)
}

type fakeSearcher struct {
	queries []string
}

func (f *fakeSearcher) Query(_ context.Context, _ string, q string, rows int) (*QueryResult, error) {
	f.queries = append(f.queries, q)
	return &QueryResult{Query: q, Results: []string{"hit for " + q}}, nil
}

func TestRunQueries(t *testing.T) {
	groups := []input.StatementGroup{
		{Statements: []input.Statement{{Text: "cats have tails", Truth: true}, {Text: "cats have wings"}}},
		{Statements: []input.Statement{{Text: "fish swim", Truth: true}}},
	}

	var out bytes.Buffer
	searcher := &fakeSearcher{}
	require.NoError(t, RunQueries(context.Background(), searcher, "facts", groups, 8, false, &out))

	assert.Equal(t,
		"0\tTrue\thit for cats have tails\tcats have tails\n"+
			"0\tFalse\thit for cats have wings\tcats have wings\n"+
			"1\tTrue\thit for fish swim\tfish swim\n",
		out.String())
}

func TestRunQueries_NegativesOnly(t *testing.T) {
	groups := []input.StatementGroup{
		{Statements: []input.Statement{{Text: "cats have tails", Truth: true}, {Text: "cats have wings"}}},
	}

	var out bytes.Buffer
	searcher := &fakeSearcher{}
	require.NoError(t, RunQueries(context.Background(), searcher, "facts", groups, 1, true, &out))

	assert.Equal(t, []string{"cats have wings"}, searcher.queries)
	assert.Equal(t, "0\tFalse\thit for cats have wings\tcats have wings\n", out.String())
}
