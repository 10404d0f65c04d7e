package input

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, text string) []Block {
	t.Helper()
	r := NewReader(strings.NewReader(text))
	var blocks []Block
	for {
		b, err := r.Next()
		if errors.Is(err, io.EOF) {
			return blocks
		}
		require.NoError(t, err)
		blocks = append(blocks, b)
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		line  string
		label Label
		text  string
	}{
		{"TRUE: cats have tails", LabelTrue, "cats have tails"},
		{"FALSE: cats have wings", LabelFalse, "cats have wings"},
		{"UNK: cats like jazz", LabelUnknown, "cats like jazz"},
		{"cats have tails", LabelNone, "cats have tails"},
		{"TRUE:no space", LabelNone, "TRUE:no space"},
		{"true: lowercase", LabelNone, "true: lowercase"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			label, text := ParseLabel(tt.line)
			assert.Equal(t, tt.label, label)
			assert.Equal(t, tt.text, text)
		})
	}
}

func TestReader_SingleLineBlock(t *testing.T) {
	blocks := readAll(t, "Some animals have tails.\n\n")

	require.Len(t, blocks, 1)
	assert.Equal(t, "Some animals have tails.", blocks[0].Query)
	assert.Empty(t, blocks[0].Premises)
	assert.Equal(t, LabelNone, blocks[0].Gold)
}

func TestReader_PremisesKeepOrder(t *testing.T) {
	blocks := readAll(t, "first premise\nsecond premise\nthird premise\nTRUE: the query\n\n")

	require.Len(t, blocks, 1)
	assert.Equal(t, []string{"first premise", "second premise", "third premise"}, blocks[0].Premises)
	assert.Equal(t, "the query", blocks[0].Query)
	assert.Equal(t, "TRUE: the query", blocks[0].Raw)
	assert.Equal(t, LabelTrue, blocks[0].Gold)
}

func TestReader_SkipsCommentsAndEmptyBlocks(t *testing.T) {
	text := "# header\n\n\nAll cats have tails.\n  # inline comment\nSome animals have tails.\n\n\n\nFALSE: No cats have tails.\n\n"
	blocks := readAll(t, text)

	require.Len(t, blocks, 2)
	assert.Equal(t, []string{"All cats have tails."}, blocks[0].Premises)
	assert.Equal(t, "Some animals have tails.", blocks[0].Query)
	assert.Equal(t, LabelFalse, blocks[1].Gold)
	assert.Equal(t, "No cats have tails.", blocks[1].Query)
}

func TestReader_TrailingBlockWithoutBlankLine(t *testing.T) {
	blocks := readAll(t, "premise\nquery")

	require.Len(t, blocks, 1)
	assert.Equal(t, "query", blocks[0].Query)
	assert.Equal(t, []string{"premise"}, blocks[0].Premises)
}

func TestReader_Empty(t *testing.T) {
	assert.Empty(t, readAll(t, ""))
	assert.Empty(t, readAll(t, "\n\n# only comments\n"))
}

func TestNewBlock_Empty(t *testing.T) {
	assert.Equal(t, Block{}, NewBlock(nil))
}
