package extract

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed metrics.yaml
var defaultRulesYAML []byte

// Rule defines one extractable metric: a canonical name plus the keyword
// synonyms searched for it, in priority order.
type Rule struct {
	Name     string   `yaml:"name" validate:"required"`
	Synonyms []string `yaml:"synonyms" validate:"min=1,dive,required"`
	Units    string   `yaml:"units"`
}

// RuleSet is an ordered collection of metric rules.
type RuleSet struct {
	Metrics []Rule `yaml:"metrics" validate:"min=1,dive"`

	byName map[string]Rule
}

// Validate checks the rule set against its struct tags.
func (rs *RuleSet) Validate() error {
	validate := validator.New()
	return validate.Struct(rs)
}

// Find returns the rule with the given canonical name.
func (rs *RuleSet) Find(name string) (Rule, bool) {
	rule, ok := rs.byName[strings.ToLower(name)]
	return rule, ok
}

// Synonyms returns the synonym list for a canonical name, or nil when the
// name is not registered.
func (rs *RuleSet) Synonyms(name string) []string {
	rule, ok := rs.Find(name)
	if !ok {
		return nil
	}
	return rule.Synonyms
}

// ParseRules parses and validates a YAML rule set.
func ParseRules(data []byte) (*RuleSet, error) {
	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("failed to parse metric rules: %w", err)
	}
	if err := rs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid metric rules: %w", err)
	}
	rs.byName = make(map[string]Rule, len(rs.Metrics))
	for _, rule := range rs.Metrics {
		rs.byName[strings.ToLower(rule.Name)] = rule
	}
	return &rs, nil
}

// DefaultRules returns the embedded metric rule set. The embedded rules are
// covered by TestDefaultRules, so failure here is a programming error.
func DefaultRules() *RuleSet {
	rs, err := ParseRules(defaultRulesYAML)
	if err != nil {
		panic(err)
	}
	return rs
}
