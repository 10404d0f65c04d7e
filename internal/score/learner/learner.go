package learner

import (
	"log/slog"

	"naturalli/internal/costs"
	"naturalli/internal/score"
	"naturalli/internal/score/rule"
)

// Learner updates the shared cost vector from scored outcomes.
// Rules are checked in declaration order and the first one that fires is applied.
type Learner struct {
	vector *costs.Vector // shared weights
	rules  []rule.Rule   // compiled update rules
}

// Apply evaluates the rules against the outcome and updates the vector.
// It returns the applied update, or nil when no rule fired or the rule could not be applied.
// Rule evaluation errors are logged and the rule is skipped.
func (l *Learner) Apply(o score.Outcome) *rule.Update {
	for i := range l.rules {
		r := &l.rules[i]
		fired, err := r.Eval(o)
		if err != nil {
			slog.Error("rule eval", "error", err, "rule", r.When)
			continue
		}
		if !fired {
			continue
		}

		switch r.Then.Action {
		case rule.ActionIncrement:
			if o.Features == nil {
				slog.Debug("No features to update costs", "rule", r.When)
				return nil
			}
			l.vector.Increment(o.Features, r.Then.Rate)
		case rule.ActionDiscount:
			l.vector.Discount(r.Then.Rate, r.Then.Floor)
		}
		update := r.Then
		return &update
	}
	return nil
}

// NewLearner creates a learner updating vector with the given compiled rules.
func NewLearner(vector *costs.Vector, rules []rule.Rule) *Learner {
	return &Learner{vector: vector, rules: rules}
}
