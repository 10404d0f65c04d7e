package rule

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultRules raise the costs of the edits used in a proof that made a false (or unknown)
// query look true. Misses in the other direction are left alone.
const DefaultRules = `
- when: hasGold && !goldTrue && guessTrue
  then:
    action: increment
    rate: 0.1
`

// Parse decodes a YAML list of rules and compiles each of them.
func Parse(content []byte) ([]Rule, error) {
	rules := []Rule{}
	if err := yaml.Unmarshal(content, &rules); err != nil {
		return nil, err
	}

	for i := range rules {
		env, err := NewOutcomeEnv()
		if err != nil {
			return nil, err
		}
		if err := rules[i].Init(env); err != nil {
			return nil, err
		}
	}
	return rules, nil
}

// LoadFromFile reads rules from a YAML file, or returns DefaultRules when file is empty.
func LoadFromFile(file string) ([]Rule, error) {
	if file == "" {
		return Parse([]byte(DefaultRules))
	}

	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return Parse(content)
}
