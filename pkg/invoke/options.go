package invoke

import (
	"maps"
	"slices"
)

// Option keys read by "invoke local".
const (
	OptionFunction = "f"
	OptionData     = "d"
)

// Options is the framework's CLI option state, keyed by flag name.
type Options map[string]string

// Clone returns an independent copy. A nil Options clones to nil.
func (o Options) Clone() Options {
	if o == nil {
		return nil
	}
	return maps.Clone(o)
}

// Flags renders the options as command line arguments in key order.
// Single-letter keys become -k, longer ones --key.
func (o Options) Flags() []string {
	keys := slices.Sorted(maps.Keys(o))
	args := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		if len(k) == 1 {
			args = append(args, "-"+k)
		} else {
			args = append(args, "--"+k)
		}
		args = append(args, o[k])
	}
	return args
}
