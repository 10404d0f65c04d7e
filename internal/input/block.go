package input

import (
	"bufio"
	"io"
	"strings"
)

// Label is the gold truth value attached to a query.
type Label string

const (
	LabelNone    Label = ""
	LabelTrue    Label = "true"
	LabelFalse   Label = "false"
	LabelUnknown Label = "unknown"
)

var labelPrefixes = []struct {
	prefix string
	label  Label
}{
	{"TRUE: ", LabelTrue},
	{"FALSE: ", LabelFalse},
	{"UNK: ", LabelUnknown},
}

// ParseLabel strips a gold label prefix from a query line.
// Lines without a recognised prefix are returned unchanged with LabelNone.
func ParseLabel(line string) (Label, string) {
	for _, p := range labelPrefixes {
		if strings.HasPrefix(line, p.prefix) {
			return p.label, line[len(p.prefix):]
		}
	}
	return LabelNone, line
}

// Block is one query together with its premises.
type Block struct {
	// Gold is the label parsed from the query prefix, LabelNone if absent.
	Gold Label
	// Query is the query text with the label prefix removed.
	Query string
	// Raw is the query line as it was read, prefix included.
	Raw string
	// Premises in the order they were read.
	Premises []string
}

// Reader splits line-delimited input into blocks. A blank line terminates a block,
// lines starting with '#' are comments.
type Reader struct {
	scanner *bufio.Scanner
	lines   []string
	done    bool
}

// NewReader creates a block reader over r.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{scanner: scanner}
}

// Next returns the next non-empty block. It returns io.EOF once the input is exhausted;
// a final block without a trailing blank line is still returned.
func (r *Reader) Next() (Block, error) {
	for !r.done {
		if !r.scanner.Scan() {
			r.done = true
			if err := r.scanner.Err(); err != nil {
				return Block{}, err
			}
			break
		}

		line := strings.TrimSpace(r.scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		if line != "" {
			r.lines = append(r.lines, line)
			continue
		}
		if len(r.lines) == 0 {
			continue
		}
		return r.flush(), nil
	}

	if len(r.lines) > 0 {
		return r.flush(), nil
	}
	return Block{}, io.EOF
}

func (r *Reader) flush() Block {
	block := NewBlock(r.lines)
	r.lines = nil
	return block
}

// NewBlock builds a block from lines in reading order: the last line is the query,
// the preceding ones are premises.
func NewBlock(lines []string) Block {
	if len(lines) == 0 {
		return Block{}
	}

	raw := lines[len(lines)-1]
	gold, query := ParseLabel(raw)
	premises := make([]string, len(lines)-1)
	copy(premises, lines[:len(lines)-1])

	return Block{
		Gold:     gold,
		Query:    query,
		Raw:      raw,
		Premises: premises,
	}
}
