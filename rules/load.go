package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a rule set from a YAML file. Unknown fields are an error
// so typos in rule files fail loudly instead of silently dropping
// rules.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rule file: %w", err)
	}
	defer f.Close()

	var set Set
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&set); err != nil {
		return nil, fmt.Errorf("decode rule file %s: %w", path, err)
	}
	return &set, nil
}
