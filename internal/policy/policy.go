// Package policy holds the explicit review-category configuration that
// replaces prose review guidance. The triage judgment itself stays with the
// external reviewer; this object only says which categories of findings are
// acceptable in a submission.
package policy

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Policy lists review-comment categories to include or exclude. Comments
// without a category are always allowed: the tool invents no heuristics of
// its own.
type Policy struct {
	Include []string `mapstructure:"include"`
	Exclude []string `mapstructure:"exclude"`
}

// Default mirrors the conventional review philosophy: surface correctness,
// security, performance and compatibility findings; leave style alone.
func Default() Policy {
	return Policy{
		Include: []string{"bug", "security", "performance", "breaking-change"},
		Exclude: []string{"style", "nit"},
	}
}

// Allows reports whether a comment with the given category may be submitted.
// Empty and unknown categories pass; only an explicit exclude blocks.
func (p Policy) Allows(category string) bool {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return true
	}
	for _, excluded := range p.Exclude {
		if strings.ToLower(excluded) == category {
			return false
		}
	}
	return true
}

// Load reads a policy file. A missing path yields the zero policy, which
// allows everything.
func Load(path string) (Policy, error) {
	if path == "" {
		return Policy{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Policy{}, fmt.Errorf("policy file not found: %s", path)
		}
		return Policy{}, fmt.Errorf("failed to read policy file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Policy{}, fmt.Errorf("failed to load policy file: %w", err)
	}

	var pol Policy
	if err := v.UnmarshalKey("categories", &pol); err != nil {
		return Policy{}, fmt.Errorf("failed to parse policy file: %w", err)
	}
	return pol, nil
}
