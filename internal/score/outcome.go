package score

import "naturalli/internal/input"

// Guess turns the server's truth probability into a label.
// Exactly 0.5 is treated as unknown.
func Guess(probability float64) input.Label {
	switch {
	case probability > 0.5:
		return input.LabelTrue
	case probability < 0.5:
		return input.LabelFalse
	default:
		return input.LabelUnknown
	}
}

// Outcome is a classified server response for one query.
type Outcome struct {
	// Gold is the expected label, input.LabelNone when the query was not labelled.
	Gold input.Label
	// Guess is the label derived from Probability.
	Guess input.Label
	// Probability is the truth value reported by the server.
	Probability float64
	// Features are the proof edit counts aligned with the cost vector, nil if not reported.
	Features []float64
}

// NewOutcome classifies a probability against a gold label.
func NewOutcome(gold input.Label, probability float64, features []float64) Outcome {
	return Outcome{
		Gold:        gold,
		Guess:       Guess(probability),
		Probability: probability,
		Features:    features,
	}
}

// HasGold reports whether the query carried a gold label.
func (o Outcome) HasGold() bool {
	return o.Gold != input.LabelNone
}

// GoldTrue is the two-way view of the gold label: unknown counts as false.
func (o Outcome) GoldTrue() bool {
	return o.Gold == input.LabelTrue
}

// GuessTrue is the two-way view of the guess.
func (o Outcome) GuessTrue() bool {
	return o.Guess == input.LabelTrue
}

// Correct reports a two-way match between guess and gold.
func (o Outcome) Correct() bool {
	return o.GoldTrue() == o.GuessTrue()
}

// StrictlyCorrect reports a three-way match between guess and gold.
func (o Outcome) StrictlyCorrect() bool {
	return o.Gold == o.Guess
}

// Prefix is the judgement printed before the result line: "PASS:", "FAIL:" or "????:"
// for a false gold answered with unknown (a three-way miss but a two-way hit).
// It is empty when there is no gold label.
func (o Outcome) Prefix() string {
	switch {
	case !o.HasGold():
		return ""
	case o.Gold == o.Guess:
		return "PASS:"
	case o.Gold == input.LabelFalse && o.Guess == input.LabelUnknown:
		return "????:"
	default:
		return "FAIL:"
	}
}
