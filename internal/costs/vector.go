package costs

import (
	"fmt"
	"strconv"
	"sync"
)

// Size is the number of weights in a cost vector.
const Size = 353

// Baseline weights used by Defaults.
const (
	constantCost = 0.001
	goodCost     = 0.01
	softCost     = 0.1
	badCost      = 1.0
)

// forInsertionIndex is the insertion slot for "prep_for", which is penalised like a bad transition.
const forInsertionIndex = 119

// Defaults returns the hand-tuned soft natural logic costs.
func Defaults() []float64 {
	c := make([]float64, Size)
	for i := range c {
		c[i] = constantCost
	}

	// angle_nn and verb_entail are soft, every other mutation is constant
	c[0] = softCost
	c[1] = softCost

	fromTrue := [7]float64{goodCost, goodCost, badCost, goodCost, goodCost, badCost, badCost}
	fromFalse := [7]float64{goodCost, badCost, goodCost, goodCost, badCost, goodCost, badCost}
	copy(c[TransitionFromTrueOffset:], fromTrue[:])
	copy(c[TransitionFromFalseOffset:], fromFalse[:])

	c[forInsertionIndex] = badCost
	return c
}

// Vector is a thread-safe cost vector shared between query workers.
// The lock is held only for the read-modify-write of the weights.
type Vector struct {
	mu      sync.RWMutex
	weights []float64
}

// NewVector creates a vector from the given weights. Missing trailing weights take the
// default value, extra weights are ignored.
func NewVector(weights []float64) *Vector {
	v := &Vector{weights: Defaults()}
	copy(v.weights, weights)
	return v
}

// Snapshot returns a copy of the current weights.
func (v *Vector) Snapshot() []float64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	result := make([]float64, len(v.weights))
	copy(result, v.weights)
	return result
}

// At returns the weight at index i. Panics if i is out of range.
func (v *Vector) At(i int) float64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.weights[i]
}

// Increment performs cost[i] += rate * features[i] for every slot covered by features.
func (v *Vector) Increment(features []float64, rate float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := 0; i < len(v.weights) && i < len(features); i++ {
		v.weights[i] += rate * features[i]
	}
}

// Discount lowers every weight by step, never going below floor.
func (v *Vector) Discount(step, floor float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.weights {
		v.weights[i] -= step
		if v.weights[i] < floor {
			v.weights[i] = floor
		}
	}
}

// FormatWeight renders a weight with the shortest representation that parses back to the same value.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}

// Preamble renders the configuration directives sent ahead of a query.
func Preamble(weights []float64) []string {
	lines := make([]string, 0, len(weights)+1)
	lines = append(lines, "%skipNegationSearch = true")
	for i, w := range weights {
		if i >= Size {
			break
		}
		d := Schema[i]
		lines = append(lines, fmt.Sprintf("%%%s @ %s = %s", d.Family, d.Relation, FormatWeight(w)))
	}
	return lines
}
