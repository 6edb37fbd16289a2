// FILE: pkdgrav/simconfig/resolve.go
package simconfig

import (
	"fmt"
	"strings"
)

// EndOfParameters stops parameter parsing; every later token is passed
// through untouched.
const EndOfParameters = "--"

// Parse resolves command-line tokens against the registry. It returns the
// fully populated configuration and, in order, every token that matched no
// surface form. Unrecognized tokens are not errors; they belong to a later
// stage of the host. Parsing is all-or-nothing: on error no configuration
// is returned. Parse seals the registry.
func (r *Registry) Parse(args []string) (*Configuration, []string, error) {
	r.Seal()
	cfg := newConfiguration(r)

	rest := make([]string, 0)

	for i := 0; i < len(args); i++ {
		tok := args[i]

		if tok == EndOfParameters {
			rest = append(rest, args[i+1:]...)
			break
		}

		key, pol, ok := r.ResolveSurfaceForm(tok)
		var value string
		hasInline := false
		if !ok {
			// "-name=value" for ordinary flags
			name, inline, found := strings.Cut(tok, "=")
			if !found {
				rest = append(rest, tok)
				continue
			}
			key, pol, ok = r.ResolveSurfaceForm(name)
			if !ok || pol != PolarityNone {
				rest = append(rest, tok)
				continue
			}
			value, hasInline = inline, true
		}

		d, _ := r.Lookup(key)

		if implied, isToggle := pol.Value(); isToggle {
			if err := cfg.specifyCLI(d, implied); err != nil {
				return nil, nil, err
			}
			continue
		}

		if !hasInline {
			if i+1 >= len(args) {
				return nil, nil, &InvalidValueError{Key: key, Token: "", Type: d.Type, Err: ErrMissingValue}
			}
			i++
			value = args[i]
		}

		parsed, err := parseToken(d.Type, value)
		if err != nil {
			return nil, nil, &InvalidValueError{Key: key, Token: value, Type: d.Type, Err: err}
		}
		if err := cfg.specifyCLI(d, parsed); err != nil {
			return nil, nil, err
		}
	}

	return cfg, rest, nil
}

// specifyCLI records an explicit command-line value. Repeatable parameters
// append; everything else takes the last occurrence.
func (c *Configuration) specifyCLI(d Descriptor, value any) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	current := c.items[d.Key]
	first := current.source != SourceCLI

	if first {
		for _, other := range d.ExclusiveWith {
			if c.items[other].source == SourceCLI {
				return &ConflictingParametersError{First: other, Second: d.Key}
			}
		}
	}

	if d.Repeatable() {
		var list []int64
		if !first {
			list, _ = current.value.([]int64)
		}
		c.set(d.Key, append(list, value.(int64)), SourceCLI)
		return nil
	}

	c.set(d.Key, value, SourceCLI)
	return nil
}

// SplitScript separates the positional script argument from the tokens Parse
// did not consume: the first token that does not look like a flag.
func SplitScript(rest []string) (script string, remaining []string) {
	remaining = make([]string, 0, len(rest))
	for _, tok := range rest {
		if script == "" && tok != "" && !strings.HasPrefix(tok, FlagPrefix) && !strings.HasPrefix(tok, TruePrefix) {
			script = tok
			continue
		}
		remaining = append(remaining, tok)
	}
	return script, remaining
}

// MustParse is like Parse but panics on error.
func (r *Registry) MustParse(args []string) (*Configuration, []string) {
	cfg, rest, err := r.Parse(args)
	if err != nil {
		panic(fmt.Sprintf("simconfig: parse failed: %v", err))
	}
	return cfg, rest
}
