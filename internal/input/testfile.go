package input

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ErrMultipleCorrect is returned when a question group marks more than one statement as true.
var ErrMultipleCorrect = errors.New("multiple correct statements in group")

// Statement is a candidate answer rewritten as a declarative sentence.
type Statement struct {
	Text   string
	Answer string
	Truth  bool
}

// StatementGroup is a multiple choice question: at most one statement is true.
type StatementGroup struct {
	Question   string
	Statements []Statement
}

// Correct returns the index of the true statement or -1.
func (g StatementGroup) Correct() int {
	for i, s := range g.Statements {
		if s.Truth {
			return i
		}
	}
	return -1
}

// ReadGroups parses a NaturalLI test file. Statements are the last line before a blank line,
// "#Q: " starts a new question group and "#A: " marks the literal answer of the next statement.
// A file without question markers produces a single group.
func ReadGroups(r io.Reader) ([]StatementGroup, error) {
	var (
		groups   []StatementGroup
		current  []Statement
		question string
		answer   string
		last     string
	)

	closeGroup := func() error {
		if len(current) == 0 {
			return nil
		}
		group := StatementGroup{Question: question, Statements: current}
		correct := 0
		for _, s := range current {
			if s.Truth {
				correct++
			}
		}
		if correct > 1 {
			return ErrMultipleCorrect
		}
		groups = append(groups, group)
		current = nil
		return nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			if last != "" && !strings.HasPrefix(last, "#") {
				current = append(current, newStatement(last, answer))
			}
			answer = ""
		case strings.HasPrefix(line, "#A: "):
			answer = line[len("#A: "):]
		case strings.HasPrefix(line, "#Q: "):
			if err := closeGroup(); err != nil {
				return nil, err
			}
			question = line[len("#Q: "):]
		}
		last = line
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := closeGroup(); err != nil {
		return nil, err
	}
	return groups, nil
}

func newStatement(line, answer string) Statement {
	label, text := ParseLabel(line)
	if answer == "" {
		answer = text
	}
	return Statement{
		Text:   text,
		Answer: answer,
		// statements without a label count as true
		Truth: label == LabelTrue || label == LabelNone,
	}
}
