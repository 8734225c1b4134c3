// Package flags provides reusable flag types for CLI commands.
package flags

import (
	"fmt"
	"strings"
)

// StringSlice implements pflag.Value for repeatable string flags.
type StringSlice []string

// String returns the string representation of the flag value.
func (s *StringSlice) String() string {
	return strings.Join(*s, ",")
}

// Set appends a value to the slice.
func (s *StringSlice) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// Type specifies the type label for Cobra flags.
func (s *StringSlice) Type() string {
	return "stringSlice"
}

// Pair is a name=value flag argument.
type Pair struct {
	Name  string
	Value string
}

// Pairs splits every value on its first '='. The value part may be empty;
// the name may not.
func (s StringSlice) Pairs() ([]Pair, error) {
	pairs := make([]Pair, 0, len(s))
	for _, raw := range s {
		name, value, ok := strings.Cut(raw, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid value %q: expected name=value", raw)
		}
		pairs = append(pairs, Pair{Name: name, Value: value})
	}
	return pairs, nil
}
