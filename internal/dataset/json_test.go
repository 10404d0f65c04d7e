package dataset

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonResultsRepository_Append(t *testing.T) {
	file := filepath.Join(t.TempDir(), "results.jsonl")
	repo := NewJsonResultsRepository(file, 1, 1)

	repo.Append(Record{
		Request:     "r-1",
		Gold:        "true",
		Guess:       "false",
		Probability: 0.25,
		Verdict:     "FAIL:",
		Query:       "cats have tails",
		Premises:    []string{"all cats have tails"},
		BestPremise: "all cats have tails",
	})
	repo.Close()

	content, err := os.ReadFile(file)
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(content, &line))
	assert.Equal(t, "r-1", line["request"])
	assert.Equal(t, "true", line["gold"])
	assert.Equal(t, "false", line["guess"])
	assert.Equal(t, 0.25, line["probability"])
	assert.Equal(t, []any{"all cats have tails"}, line["premises"])
	assert.Equal(t, false, line["updated"])
	assert.NotEmpty(t, line["time"])
	assert.NotContains(t, line, "level")
	assert.NotContains(t, line, "msg")
}

func TestJsonResultsRepository_ConcurrentAppend(t *testing.T) {
	file := filepath.Join(t.TempDir(), "results.jsonl")
	repo := NewJsonResultsRepository(file, 1, 1)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.Append(Record{Query: "q"})
		}()
	}
	wg.Wait()
	repo.Close()

	f, err := os.Open(file)
	require.NoError(t, err)
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line), "every line is a complete object")
		lines++
	}
	assert.Equal(t, 20, lines)
}
