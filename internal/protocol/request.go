package protocol

import (
	"bufio"
	"io"
	"strings"
)

// WriteRequest writes one inference request: the optional configuration preamble,
// the premises and the query, each on its own line, followed by a blank line.
func WriteRequest(w io.Writer, preamble, premises []string, query string) error {
	bw := bufio.NewWriter(w)
	for _, line := range preamble {
		if _, err := bw.WriteString(strings.TrimSpace(line) + "\n"); err != nil {
			return err
		}
	}
	for _, premise := range premises {
		if _, err := bw.WriteString(strings.TrimSpace(premise) + "\n"); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString(strings.TrimSpace(query) + "\n\n"); err != nil {
		return err
	}
	return bw.Flush()
}
