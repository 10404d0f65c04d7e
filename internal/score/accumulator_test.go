package score

import (
	"bytes"
	"sync"
	"testing"

	"naturalli/internal/input"

	"github.com/stretchr/testify/assert"
)

func TestGuess(t *testing.T) {
	assert.Equal(t, input.LabelTrue, Guess(0.7))
	assert.Equal(t, input.LabelFalse, Guess(0.3))
	assert.Equal(t, input.LabelUnknown, Guess(0.5))
}

func TestOutcome_Prefix(t *testing.T) {
	tests := []struct {
		name        string
		gold        input.Label
		probability float64
		want        string
	}{
		{"no gold", input.LabelNone, 0.9, ""},
		{"true hit", input.LabelTrue, 0.9, "PASS:"},
		{"true miss", input.LabelTrue, 0.1, "FAIL:"},
		{"false answered unknown", input.LabelFalse, 0.5, "????:"},
		{"unknown hit", input.LabelUnknown, 0.5, "PASS:"},
		{"unknown answered false", input.LabelUnknown, 0.2, "FAIL:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewOutcome(tt.gold, tt.probability, nil).Prefix())
		})
	}
}

func TestAccumulator_TrueHit(t *testing.T) {
	acc := NewAccumulator(0)
	acc.Record(NewOutcome(input.LabelTrue, 0.7, nil))

	assert.Equal(t, Counters{
		GuessAndCorrect: 1,
		GuessTrue:       1,
		GoldTrue:        1,
		Correct:         1,
		StrictCorrect:   1,
		Total:           1,
	}, acc.Snapshot())
}

func TestAccumulator_UnknownGoldCountsAsFalse(t *testing.T) {
	acc := NewAccumulator(0)
	acc.Record(NewOutcome(input.LabelUnknown, 0.2, nil))

	c := acc.Snapshot()
	assert.Equal(t, 1, c.Correct, "two-way: false guess matches unknown gold")
	assert.Equal(t, 0, c.StrictCorrect, "three-way: false is not unknown")
	assert.Equal(t, 0, c.GoldTrue)
}

func TestAccumulator_IgnoresUnlabelled(t *testing.T) {
	acc := NewAccumulator(0)
	acc.Record(NewOutcome(input.LabelNone, 0.9, nil))

	assert.Equal(t, Counters{}, acc.Snapshot())
	_, n := acc.RecentAccuracy()
	assert.Zero(t, n)
}

func TestAccumulator_Concurrent(t *testing.T) {
	acc := NewAccumulator(10)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			gold := input.LabelTrue
			if i%2 == 0 {
				gold = input.LabelFalse
			}
			acc.Record(NewOutcome(gold, 0.9, nil))
		}(i)
	}
	wg.Wait()

	c := acc.Snapshot()
	assert.Equal(t, 100, c.Total)
	assert.Equal(t, 100, c.GuessTrue)
	assert.Equal(t, 50, c.GoldTrue)
	assert.Equal(t, 50, c.Correct)

	_, n := acc.RecentAccuracy()
	assert.Equal(t, 10, n)
}

func TestAccumulator_RecentAccuracy(t *testing.T) {
	acc := NewAccumulator(2)
	acc.Record(NewOutcome(input.LabelTrue, 0.1, nil))
	acc.Record(NewOutcome(input.LabelTrue, 0.9, nil))
	acc.Record(NewOutcome(input.LabelFalse, 0.1, nil))

	accuracy, n := acc.RecentAccuracy()
	assert.Equal(t, 2, n)
	assert.Equal(t, 1.0, accuracy, "the miss fell out of the window")
}

func TestCounters_MetricsDefaults(t *testing.T) {
	m := Counters{}.Metrics()

	assert.Equal(t, 1.0, m.Precision)
	assert.Equal(t, 0.0, m.Recall)
	assert.Equal(t, 0.0, m.F1)
	assert.Equal(t, 0.0, m.Accuracy)
	assert.Equal(t, 0.0, m.Strict)
}

func TestCounters_MetricsZeroPrecisionAndRecall(t *testing.T) {
	m := Counters{GuessTrue: 2, GoldTrue: 3, Total: 5}.Metrics()

	assert.Equal(t, 0.0, m.Precision)
	assert.Equal(t, 0.0, m.Recall)
	assert.Equal(t, 0.0, m.F1, "F1 must not divide by zero")
}

func TestCounters_Metrics(t *testing.T) {
	m := Counters{
		GuessAndCorrect: 3,
		GuessTrue:       4,
		GoldTrue:        6,
		Correct:         7,
		StrictCorrect:   5,
		Total:           10,
	}.Metrics()

	assert.InDelta(t, 0.75, m.Precision, 1e-12)
	assert.InDelta(t, 0.5, m.Recall, 1e-12)
	assert.InDelta(t, 0.6, m.F1, 1e-12)
	assert.InDelta(t, 0.7, m.Accuracy, 1e-12)
	assert.InDelta(t, 0.5, m.Strict, 1e-12)
}

func TestMetrics_Report(t *testing.T) {
	var buf bytes.Buffer
	m := Counters{GuessAndCorrect: 1, GuessTrue: 1, GoldTrue: 2, Correct: 1, StrictCorrect: 1, Total: 2}.Metrics()

	assert.NoError(t, m.Report(&buf))
	assert.Equal(t,
		"--------------------\n"+
			"P:        1\n"+
			"R:        0.5\n"+
			"F1:       0.667\n"+
			"Accuracy: 0.5\n"+
			"3-class:  0.5\n"+
			"\n"+
			"(Total):  2\n"+
			"--------------------\n",
		buf.String())
}

func TestMetrics_ReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, Counters{}.Metrics().Report(&buf))
	assert.Empty(t, buf.String())
}
