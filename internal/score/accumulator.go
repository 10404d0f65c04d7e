package score

import (
	"fmt"
	"io"
	"sync"

	"naturalli/internal/utils"
)

// DefaultWindow is the number of recent outcomes kept for RecentAccuracy.
const DefaultWindow = 100

// Counters are the aggregate evaluation counts.
type Counters struct {
	GuessAndCorrect int `json:"guessAndCorrect"` // guessed true and gold true
	GuessTrue       int `json:"guessTrue"`
	GoldTrue        int `json:"goldTrue"`
	Correct         int `json:"correct"`       // two-way agreement
	StrictCorrect   int `json:"strictCorrect"` // three-way agreement
	Total           int `json:"total"`
}

// Metrics are the scores derived from Counters.
type Metrics struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Accuracy  float64 `json:"accuracy"`
	Strict    float64 `json:"strict"`
	Total     int     `json:"total"`
}

// Metrics computes precision, recall, F1 and accuracies. Precision defaults to 1.0 when
// nothing was guessed true, recall to 0.0 when no gold was true, the rest to 0.0.
func (c Counters) Metrics() Metrics {
	m := Metrics{Precision: 1.0, Total: c.Total}
	if c.GuessTrue > 0 {
		m.Precision = float64(c.GuessAndCorrect) / float64(c.GuessTrue)
	}
	if c.GoldTrue > 0 {
		m.Recall = float64(c.GuessAndCorrect) / float64(c.GoldTrue)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	if c.Total > 0 {
		m.Accuracy = float64(c.Correct) / float64(c.Total)
		m.Strict = float64(c.StrictCorrect) / float64(c.Total)
	}
	return m
}

// Report prints the metrics block. Nothing is printed when no labelled query was scored.
func (m Metrics) Report(w io.Writer) error {
	if m.Total == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w,
		"--------------------\n"+
			"P:        %.3g\n"+
			"R:        %.3g\n"+
			"F1:       %.3g\n"+
			"Accuracy: %.3g\n"+
			"3-class:  %.3g\n"+
			"\n"+
			"(Total):  %d\n"+
			"--------------------\n",
		m.Precision, m.Recall, m.F1, m.Accuracy, m.Strict, m.Total)
	return err
}

// Accumulator collects outcomes from concurrent workers.
type Accumulator struct {
	mu       sync.Mutex
	counters Counters
	recent   *utils.RingBuffer[bool] // two-way correctness of the latest labelled outcomes
}

// Record adds a labelled outcome to the counters. Outcomes without gold are ignored.
func (a *Accumulator) Record(o Outcome) {
	if !o.HasGold() {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.counters.Total++
	if o.Correct() {
		a.counters.Correct++
	}
	if o.StrictlyCorrect() {
		a.counters.StrictCorrect++
	}
	if o.GuessTrue() && o.GoldTrue() {
		a.counters.GuessAndCorrect++
	}
	if o.GuessTrue() {
		a.counters.GuessTrue++
	}
	if o.GoldTrue() {
		a.counters.GoldTrue++
	}
	a.recent.Push(o.Correct())
}

// Snapshot returns a copy of the counters.
func (a *Accumulator) Snapshot() Counters {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.counters
}

// Metrics returns the metrics for the current counters.
func (a *Accumulator) Metrics() Metrics {
	return a.Snapshot().Metrics()
}

// RecentAccuracy returns the two-way accuracy over the latest window of labelled outcomes
// and the number of outcomes it covers.
func (a *Accumulator) RecentAccuracy() (float64, int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := a.recent.Len()
	if n == 0 {
		return 0, 0
	}
	hits := a.recent.Count(func(hit bool) bool { return hit })
	return float64(hits) / float64(n), n
}

// NewAccumulator creates an accumulator whose rolling accuracy covers window outcomes.
// A non-positive window selects DefaultWindow.
func NewAccumulator(window int) *Accumulator {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Accumulator{recent: utils.NewRingBuffer[bool](window)}
}
