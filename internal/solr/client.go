package solr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrBadResponse is returned when Solr answers without a "response" object.
var ErrBadResponse = errors.New("bad solr response")

// extraRows are fetched on top of the requested rows to make up for dropped exact matches.
const extraRows = 3

// Doc is one search hit.
type Doc struct {
	ID    json.RawMessage `json:"id"`
	Text  []string        `json:"text"`
	Score float64         `json:"score"`
}

// QueryResult holds the hits of one query, exact matches of the query removed.
type QueryResult struct {
	Query    string
	NumFound int
	MaxScore float64
	Results  []string
	Scores   []float64
}

// TopScore returns the score of the best hit or 0.
func (r *QueryResult) TopScore() float64 {
	if len(r.Scores) == 0 {
		return 0
	}
	return r.Scores[0]
}

// AverageScore returns the mean hit score or 0.
func (r *QueryResult) AverageScore() float64 {
	if len(r.Scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range r.Scores {
		sum += s
	}
	return sum / float64(len(r.Scores))
}

type selectResponse struct {
	Response *struct {
		NumFound int     `json:"numFound"`
		MaxScore float64 `json:"maxScore"`
		Docs     []Doc   `json:"docs"`
	} `json:"response"`
}

// Client queries the select handler of a Solr collection.
type Client struct {
	baseURL string       // e.g. http://localhost:8983/solr
	client  *http.Client // HTTP client with a request timeout
}

// Query runs q against the collection and returns up to rows hits whose text differs
// from the query (ignoring spaces).
func (c *Client) Query(ctx context.Context, collection, q string, rows int) (*QueryResult, error) {
	params := url.Values{}
	params.Set("wt", "json")
	params.Set("fl", "id text score")
	params.Set("q", strings.ReplaceAll(q, ":", `\:`))
	params.Set("rows", strconv.Itoa(rows+extraRows))

	endpoint := c.baseURL + "/" + url.PathEscape(collection) + "/select/?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("solr response error code=%d status=%s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var data selectResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, err
	}
	if data.Response == nil {
		return nil, fmt.Errorf("%w for query: %s", ErrBadResponse, q)
	}

	result := &QueryResult{
		Query:    q,
		NumFound: data.Response.NumFound,
		MaxScore: data.Response.MaxScore,
	}
	squashedQuery := strings.ReplaceAll(q, " ", "")
	for _, doc := range data.Response.Docs {
		if len(result.Results) >= rows {
			break
		}
		if len(doc.Text) == 0 {
			continue
		}
		if strings.ReplaceAll(doc.Text[0], " ", "") == squashedQuery {
			continue
		}
		result.Results = append(result.Results, doc.Text[0])
		result.Scores = append(result.Scores, doc.Score)
	}
	return result, nil
}

// NewClient creates a client for the Solr instance at host:port.
func NewClient(host string, port int, timeout time.Duration) *Client {
	return NewClientWithURL(fmt.Sprintf("http://%s:%d/solr", host, port), timeout)
}

// NewClientWithURL creates a client for an explicit Solr base URL.
func NewClientWithURL(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}
