package snli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// UnknownLabelError is returned for an annotator label outside the SNLI label set.
type UnknownLabelError struct {
	Label string
}

// Error returns the text description of the error.
func (e *UnknownLabelError) Error() string {
	return "unknown trilean value: " + e.Label
}

type pair struct {
	AnnotatorLabels    []string `json:"annotator_labels"`
	Sentence1          string   `json:"sentence1"`
	Sentence2          string   `json:"sentence2"`
	Sentence2Corrected *string  `json:"sentence2_corrected"`
}

// Trilean maps an SNLI label onto the classifier truth values.
func Trilean(label string) (string, error) {
	switch label {
	case "entailment":
		return "True", nil
	case "contradiction":
		return "False", nil
	case "neutral":
		return "Unknown", nil
	default:
		return "", &UnknownLabelError{Label: label}
	}
}

// Mode returns the most frequent label; ties go to the label seen first.
func Mode(labels []string) string {
	counts := make(map[string]int, len(labels))
	var order []string
	for _, l := range labels {
		if counts[l] == 0 {
			order = append(order, l)
		}
		counts[l]++
	}

	best, bestCount := "", 0
	for _, l := range order {
		if counts[l] > bestCount {
			best, bestCount = l, counts[l]
		}
	}
	return best
}

// Convert reads SNLI jsonl pairs from r and writes "id\ttruth\tpremise\thypothesis" lines to w,
// numbering pairs from start. It returns the next free id.
func Convert(r io.Reader, w io.Writer, start int) (int, error) {
	id := start
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var p pair
		if err := json.Unmarshal([]byte(line), &p); err != nil {
			return id, fmt.Errorf("pair %d: %w", id, err)
		}
		truth, err := Trilean(Mode(p.AnnotatorLabels))
		if err != nil {
			return id, fmt.Errorf("pair %d: %w", id, err)
		}
		hypothesis := p.Sentence2
		if p.Sentence2Corrected != nil {
			hypothesis = *p.Sentence2Corrected
		}

		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", id, truth, p.Sentence1, hypothesis); err != nil {
			return id, err
		}
		id++
	}
	return id, scanner.Err()
}
