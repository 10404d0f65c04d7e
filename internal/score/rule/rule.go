package rule

import (
	"fmt"

	"naturalli/internal/score"

	"github.com/google/cel-go/cel"
	"gopkg.in/yaml.v3"
)

// Update actions.
const (
	ActionIncrement = "increment"
	ActionDiscount  = "discount"
)

// Default update parameters.
const (
	DefaultRate  = 0.1
	DefaultFloor = 0.001
)

// Update describes how the cost vector changes when a rule fires.
type Update struct {
	// Action is either "increment" (cost[i] += rate * feature[i]) or "discount"
	// (cost[i] -= rate, floored at floor).
	Action string `yaml:"action"`
	// Rate is the learning rate of an increment or the step of a discount.
	// Defaults to DefaultRate when absent; an explicit 0 disables the rule's effect.
	Rate float64 `yaml:"rate"`
	// Floor is the lowest weight a discount may leave. Defaults to DefaultFloor when absent.
	Floor float64 `yaml:"floor"`
}

// UnmarshalYAML decodes an update and fills the defaults of absent keys.
func (u *Update) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Action string   `yaml:"action"`
		Rate   *float64 `yaml:"rate"`
		Floor  *float64 `yaml:"floor"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	*u = Update{Action: raw.Action, Rate: DefaultRate}
	if raw.Rate != nil {
		u.Rate = *raw.Rate
	}
	if raw.Floor != nil {
		u.Floor = *raw.Floor
	} else if raw.Action == ActionDiscount {
		u.Floor = DefaultFloor
	}
	return nil
}

// Rule is a cost update triggered by a CEL condition over a scored outcome.
type Rule struct {
	// When is a CEL expression returning bool, see NewOutcomeEnv for the variables.
	When string `yaml:"when"`
	// Then is applied to the cost vector if When is true.
	Then Update `yaml:"then"`
	// program is the compiled When expression.
	program cel.Program
}

// Init compiles the When expression.
// Returns an error for syntax or type errors, unknown actions and negative rates.
func (r *Rule) Init(env *cel.Env) error {
	switch r.Then.Action {
	case ActionIncrement, ActionDiscount:
	default:
		return fmt.Errorf("rule %q: unsupported action %q", r.When, r.Then.Action)
	}
	if r.Then.Rate < 0 {
		return fmt.Errorf("rule %q: negative rate %v", r.When, r.Then.Rate)
	}

	ast, iss := env.Compile(r.When)
	if iss.Err() != nil {
		return iss.Err()
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return fmt.Errorf("rule %q: condition must be bool, got %s", r.When, ast.OutputType())
	}

	var err error
	r.program, err = env.Program(ast)
	return err
}

// Eval reports whether the rule fires for the outcome.
func (r *Rule) Eval(o score.Outcome) (bool, error) {
	result, _, err := r.program.Eval(Activation(o))
	if err != nil {
		return false, err
	}
	fired, ok := result.Value().(bool)
	if !ok {
		return false, fmt.Errorf("rule %q: non-bool result %v", r.When, result.Value())
	}
	return fired, nil
}
