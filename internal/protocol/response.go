package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"naturalli/internal/costs"
)

// Verdict is the informational PASS/FAIL prefix of a server response.
type Verdict string

const (
	VerdictNone Verdict = ""
	VerdictPass Verdict = "PASS"
	VerdictFail Verdict = "FAIL"
)

// ErrMissingResponse is returned when the server closed the connection without replying.
var ErrMissingResponse = errors.New("empty response from server")

// MalformedResponseError reports a response that is not a valid result object.
type MalformedResponseError struct {
	reason string
	err    error
}

// Error returns the text description of the error.
func (e *MalformedResponseError) Error() string {
	if e.err != nil {
		return "malformed response: " + e.reason + ": " + e.err.Error()
	}
	return "malformed response: " + e.reason
}

func (e *MalformedResponseError) Unwrap() error {
	return e.err
}

// ServerError is returned when the server reports success=false.
type ServerError struct {
	Message string
}

// Error returns the text description of the error.
func (e *ServerError) Error() string {
	return "query failed: " + e.Message
}

// Features holds the edit counts of the best proof, aligned with the cost vector layout.
type Features struct {
	MutationCounts            []float64 `json:"mutationCounts"`
	TransitionFromTrueCounts  []float64 `json:"transitionFromTrueCounts"`
	TransitionFromFalseCounts []float64 `json:"transitionFromFalseCounts"`
	// InsertionCounts is published by the server under the "insertionCosts" key.
	InsertionCounts []float64 `json:"insertionCosts"`
}

// Vector maps the counts onto the cost vector indexing.
func (f *Features) Vector() []float64 {
	v := make([]float64, costs.Size)
	put := func(offset, limit int, counts []float64) {
		for i, c := range counts {
			if offset+i >= limit {
				break
			}
			v[offset+i] = c
		}
	}
	put(costs.MutationOffset, costs.TransitionFromTrueOffset, f.MutationCounts)
	put(costs.TransitionFromTrueOffset, costs.TransitionFromFalseOffset, f.TransitionFromTrueCounts)
	put(costs.TransitionFromFalseOffset, costs.InsertionOffset, f.TransitionFromFalseCounts)
	put(costs.InsertionOffset, costs.Size, f.InsertionCounts)
	return v
}

// Response is the result of one inference request.
type Response struct {
	Verdict     Verdict           `json:"-"`
	Success     bool              `json:"success"`
	Message     string            `json:"message,omitempty"`
	Truth       float64           `json:"truth"`
	NumResults  int               `json:"numResults"`
	TotalTicks  int               `json:"totalTicks"`
	BestPremise string            `json:"bestPremise"`
	Path        []json.RawMessage `json:"path"`
	Features    *Features         `json:"features,omitempty"`
}

// wireResponse uses pointers to tell missing required fields from zero values.
type wireResponse struct {
	Success     *bool             `json:"success"`
	Message     string            `json:"message"`
	Truth       *float64          `json:"truth"`
	NumResults  int               `json:"numResults"`
	TotalTicks  int               `json:"totalTicks"`
	BestPremise string            `json:"bestPremise"`
	Path        []json.RawMessage `json:"path"`
	Features    *Features         `json:"features"`
}

// ParseResponse decodes a raw server reply. It returns a *ServerError when the server
// reports a failure and a *MalformedResponseError when the payload does not match the schema.
func ParseResponse(raw []byte) (*Response, error) {
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil, ErrMissingResponse
	}

	verdict := VerdictNone
	switch {
	case strings.HasPrefix(text, "PASS: "):
		verdict = VerdictPass
		text = text[len("PASS: "):]
	case strings.HasPrefix(text, "FAIL: "):
		verdict = VerdictFail
		text = text[len("FAIL: "):]
	}

	var wire wireResponse
	if err := json.Unmarshal([]byte(text), &wire); err != nil {
		return nil, &MalformedResponseError{reason: "invalid JSON", err: err}
	}
	if wire.Success == nil {
		return nil, &MalformedResponseError{reason: "missing success flag"}
	}
	if !*wire.Success {
		return nil, &ServerError{Message: wire.Message}
	}
	if wire.Truth == nil {
		return nil, &MalformedResponseError{reason: "missing truth"}
	}
	if *wire.Truth < 0 || *wire.Truth > 1 {
		return nil, &MalformedResponseError{reason: fmt.Sprintf("truth %g outside [0, 1]", *wire.Truth)}
	}

	return &Response{
		Verdict:     verdict,
		Success:     true,
		Message:     wire.Message,
		Truth:       *wire.Truth,
		NumResults:  wire.NumResults,
		TotalTicks:  wire.TotalTicks,
		BestPremise: wire.BestPremise,
		Path:        wire.Path,
		Features:    wire.Features,
	}, nil
}
