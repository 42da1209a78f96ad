package rules

import (
	_ "embed"
	"fmt"
)

//go:embed literals.yaml
var defaultLiterals []byte

// Default returns a registry with the built-in literal table and pattern
// rules.
func Default() (*Registry, error) {
	r := NewRegistry()

	if err := r.Load(defaultLiterals); err != nil {
		return nil, fmt.Errorf("built-in literal table: %w", err)
	}

	for _, p := range DefaultPatterns() {
		r.AddPattern(p)
	}

	return r, nil
}
