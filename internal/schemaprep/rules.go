package schemaprep

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var rulesYAML []byte

// TriggerRule names a trigger and the table it fires on.
type TriggerRule struct {
	Name  string `yaml:"name"`
	Table string `yaml:"table"`
}

// IndexRule names a secondary index together with the statement that
// rebuilds it. Dropping is derived from the name; rebuilding needs the
// full definition.
type IndexRule struct {
	Name   string `yaml:"name"`
	Create string `yaml:"create"`
}

// RuleSet is the catalog of schema objects suspended during bulk loads.
// The version field lets a stored copy be rejected when the catalog
// format changes.
type RuleSet struct {
	Version  int           `yaml:"version"`
	Triggers []TriggerRule `yaml:"triggers"`
	Indexes  []IndexRule   `yaml:"indexes"`
}

// DefaultRules parses the embedded catalog.
func DefaultRules() (*RuleSet, error) {
	return ParseRules(rulesYAML)
}

func ParseRules(data []byte) (*RuleSet, error) {
	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("failed to parse schema rules: %w", err)
	}
	if rs.Version != 1 {
		return nil, fmt.Errorf("unsupported schema rules version %d", rs.Version)
	}
	for i, idx := range rs.Indexes {
		if idx.Name == "" || idx.Create == "" {
			return nil, fmt.Errorf("index rule %d is missing a name or create statement", i)
		}
	}
	for i, trg := range rs.Triggers {
		if trg.Name == "" || trg.Table == "" {
			return nil, fmt.Errorf("trigger rule %d is missing a name or table", i)
		}
	}
	return &rs, nil
}
