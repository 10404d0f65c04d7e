package rule

import (
	"naturalli/internal/score"

	"github.com/google/cel-go/cel"
)

// NewOutcomeEnv declares the variables a rule condition may use.
func NewOutcomeEnv() (*cel.Env, error) {
	return cel.NewEnv(
		// --- Gold label ---
		cel.Variable("hasGold", cel.BoolType),
		cel.Variable("gold", cel.StringType), // "true", "false", "unknown" or ""
		cel.Variable("goldTrue", cel.BoolType),

		// --- Server answer ---
		cel.Variable("guess", cel.StringType),
		cel.Variable("guessTrue", cel.BoolType),
		cel.Variable("probability", cel.DoubleType),
		cel.Variable("hasFeatures", cel.BoolType),
	)
}

// Activation exposes an outcome to a CEL program.
func Activation(o score.Outcome) map[string]any {
	return map[string]any{
		"hasGold":     o.HasGold(),
		"gold":        string(o.Gold),
		"goldTrue":    o.GoldTrue(),
		"guess":       string(o.Guess),
		"guessTrue":   o.GuessTrue(),
		"probability": o.Probability,
		"hasFeatures": o.Features != nil,
	}
}
