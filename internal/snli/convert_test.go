package snli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode(t *testing.T) {
	assert.Equal(t, "neutral", Mode([]string{"entailment", "neutral", "neutral"}))
	assert.Equal(t, "entailment", Mode([]string{"entailment", "neutral"}), "ties go to the first label")
	assert.Equal(t, "neutral", Mode([]string{"neutral", "entailment", "entailment", "neutral", "contradiction"}),
		"ties go to the first label even when the other reaches the count first")
	assert.Equal(t, "", Mode(nil))
}

func TestTrilean(t *testing.T) {
	for label, want := range map[string]string{
		"entailment":    "True",
		"contradiction": "False",
		"neutral":       "Unknown",
	} {
		got, err := Trilean(label)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := Trilean("-")
	var unknown *UnknownLabelError
	assert.ErrorAs(t, err, &unknown)
}

func TestConvert(t *testing.T) {
	in := strings.Join([]string{
		`{"annotator_labels": ["entailment", "entailment", "neutral"], "sentence1": "A cat sleeps.", "sentence2": "A cat is asleep", "sentence2_corrected": "A cat is asleep."}`,
		``,
		`{"annotator_labels": ["contradiction"], "sentence1": "A dog runs.", "sentence2": "A dog sits."}`,
	}, "\n")

	var out bytes.Buffer
	next, err := Convert(strings.NewReader(in), &out, 10)
	require.NoError(t, err)

	assert.Equal(t, 12, next)
	assert.Equal(t,
		"10\tTrue\tA cat sleeps.\tA cat is asleep.\n"+
			"11\tFalse\tA dog runs.\tA dog sits.\n",
		out.String())
}

func TestConvert_BadLabel(t *testing.T) {
	var out bytes.Buffer
	_, err := Convert(strings.NewReader(`{"annotator_labels": ["maybe"], "sentence1": "a", "sentence2": "b"}`), &out, 0)

	var unknown *UnknownLabelError
	assert.ErrorAs(t, err, &unknown)
	assert.Empty(t, out.String())
}

func TestConvert_BadJSON(t *testing.T) {
	var out bytes.Buffer
	_, err := Convert(strings.NewReader("{"), &out, 0)
	assert.Error(t, err)
}
