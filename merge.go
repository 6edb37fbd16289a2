// FILE: pkdgrav/simconfig/merge.go
package simconfig

import (
	"sort"
)

// MergeOptions configures how an override set is folded into a configuration.
type MergeOptions struct {
	// Strict reports override keys that no descriptor declares as
	// *UnknownOverrideError instead of ignoring them. Nothing is applied
	// when the check fails.
	Strict bool

	// Source is recorded for every accepted override.
	// Default: SourceOverride
	Source Source
}

// DefaultMergeOptions returns the standard merge options: unknown keys are
// ignored and accepted values are tagged SourceOverride.
func DefaultMergeOptions() MergeOptions {
	return MergeOptions{Source: SourceOverride}
}

// Merge layers overrides underneath the values already specified. A key that
// is already specified keeps its value; an unspecified key takes the override
// and becomes specified. Unknown keys are ignored. Merging the same set twice
// has no further effect.
func (c *Configuration) Merge(overrides map[string]any) error {
	return c.MergeWithOptions(overrides, DefaultMergeOptions())
}

// MergeWithOptions is Merge with explicit options. Only overrides for keys
// that are still unspecified are converted to the declared type; if any of
// those conversions fails, nothing is applied. Overrides for specified keys
// are discarded without being looked at. SourceDefault is not a valid merge
// source and is treated like the empty value.
func (c *Configuration) MergeWithOptions(overrides map[string]any, opts MergeOptions) error {
	if opts.Source == "" || opts.Source == SourceDefault {
		opts.Source = SourceOverride
	}

	// Sorted for deterministic errors and logs
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var unknown []string
	for _, key := range keys {
		if !c.registry.Has(key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 && opts.Strict {
		return &UnknownOverrideError{Keys: unknown}
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	for _, key := range unknown {
		c.logger.Debug("Ignoring override for unregistered parameter", "key", key, "source", opts.Source)
	}

	pending := make([]string, 0, len(keys))
	converted := make(map[string]any, len(keys))
	for _, key := range keys {
		d, ok := c.registry.Lookup(key)
		if !ok {
			continue
		}
		if current := c.items[key]; current.source != SourceDefault {
			c.logger.Debug("Discarding override for specified parameter",
				"key", key, "specified_by", current.source, "source", opts.Source)
			continue
		}
		raw := overrides[key]
		value, err := convertValue(d.Type, raw)
		if err != nil {
			return &InvalidValueError{Key: key, Token: formatRaw(raw), Type: d.Type, Err: err}
		}
		pending = append(pending, key)
		converted[key] = value
	}

	for _, key := range pending {
		c.set(key, converted[key], opts.Source)
	}

	c.logger.Debug("Merged overrides", "source", opts.Source, "applied", len(pending), "offered", len(overrides))
	return nil
}
