package costs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// ParseError is returned when a model file contains a value that is not a number.
type ParseError struct {
	Path string
	Line int
	Err  error
}

// Error returns the text description of the error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads a model file with one weight per line.
// An empty path or a missing file yields the defaults; slots missing from a short file
// keep their default value.
func Load(path string) (*Vector, error) {
	if path == "" {
		return NewVector(nil), nil
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewVector(nil), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !stat.Mode().IsRegular() {
		return NewVector(nil), nil
	}

	weights := make([]float64, 0, Size)
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() && len(weights) < Size {
		line++
		text := strings.TrimSpace(scanner.Text())
		w, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, &ParseError{Path: path, Line: line, Err: err}
		}
		weights = append(weights, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// the remaining slots keep their defaults
	defaults := Defaults()
	weights = append(weights, defaults[len(weights):]...)
	return NewVector(weights), nil
}

// Save writes the vector one weight per line in schema order.
func (v *Vector) Save(path string) error {
	if path == "" {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for _, weight := range v.Snapshot() {
		if _, err := w.WriteString(FormatWeight(weight) + "\n"); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
