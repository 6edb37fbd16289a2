// FILE: pkdgrav/simconfig/configuration.go
package simconfig

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// Source identifies where a resolved value came from.
type Source string

const (
	// SourceDefault marks a value filled from the declared default
	SourceDefault Source = "default"
	// SourceCLI marks a value given explicitly on the command line
	SourceCLI Source = "cli"
	// SourceEnv marks a value taken from an environment variable
	SourceEnv Source = "env"
	// SourceOverride marks a value supplied programmatically, e.g. by a script
	SourceOverride Source = "override"
	// SourceFile marks a value read from a parameter file
	SourceFile Source = "file"
)

// item holds the resolved value of one key and the source that supplied it.
type item struct {
	value  any
	source Source
}

// Configuration is the resolved value set together with its provenance.
// Every registered key is always present. It is created by Registry.Parse
// and changed afterwards only by Merge.
type Configuration struct {
	registry *Registry
	items    map[string]item
	mutex    sync.RWMutex
	logger   *slog.Logger
}

// newConfiguration fills every key with its default.
func newConfiguration(r *Registry) *Configuration {
	c := &Configuration{
		registry: r,
		items:    make(map[string]item, r.Len()),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, d := range r.Descriptors() {
		c.items[d.Key] = item{value: d.Default, source: SourceDefault}
	}
	return c
}

// SetLogger sets the logger used for merge diagnostics.
func (c *Configuration) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c.mutex.Lock()
	c.logger = logger
	c.mutex.Unlock()
}

// Registry returns the registry the configuration was resolved against.
func (c *Configuration) Registry() *Registry {
	return c.registry
}

// Get returns the current value for key. The second return value reports
// whether key is registered. A registered key with an absent default yields nil.
func (c *Configuration) Get(key string) (any, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	it, ok := c.items[key]
	if !ok {
		return nil, false
	}
	return cloneValue(it.value), true
}

// Specified reports whether key was explicitly supplied by any source.
func (c *Configuration) Specified(key string) bool {
	return c.Source(key) != SourceDefault
}

// Source returns the source of key's current value. Unregistered keys report
// SourceDefault.
func (c *Configuration) Source(key string) Source {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	it, ok := c.items[key]
	if !ok {
		return SourceDefault
	}
	return it.source
}

// Values returns a copy of the resolved key/value map.
func (c *Configuration) Values() map[string]any {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	out := make(map[string]any, len(c.items))
	for k, it := range c.items {
		out[k] = cloneValue(it.value)
	}
	return out
}

// Provenance returns a copy of the key -> explicitly-specified map.
func (c *Configuration) Provenance() map[string]bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	out := make(map[string]bool, len(c.items))
	for k, it := range c.items {
		out[k] = it.source != SourceDefault
	}
	return out
}

// Sources returns a copy of the key -> source map.
func (c *Configuration) Sources() map[string]Source {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	out := make(map[string]Source, len(c.items))
	for k, it := range c.items {
		out[k] = it.source
	}
	return out
}

// String retrieves a string value. Absent values yield "".
func (c *Configuration) String(key string) (string, error) {
	val, found := c.Get(key)
	if !found {
		return "", fmt.Errorf("parameter not registered: %s", key)
	}
	if val == nil {
		return "", nil
	}

	switch v := val.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case []int64:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = strconv.FormatInt(n, 10)
		}
		return strings.Join(parts, ","), nil
	default:
		return "", fmt.Errorf("cannot convert type %T to string for parameter %s", val, key)
	}
}

// Int64 retrieves an integer value.
func (c *Configuration) Int64(key string) (int64, error) {
	val, found := c.Get(key)
	if !found {
		return 0, fmt.Errorf("parameter not registered: %s", key)
	}
	if val == nil {
		return 0, fmt.Errorf("parameter %s has no value, cannot convert to int64", key)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int64:
		return v.Int(), nil
	case reflect.Float64:
		return int64(v.Float()), nil
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.String:
		s := v.String()
		i, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert string %q to int64 for parameter %s: %w", s, key, err)
		}
		return i, nil
	}

	return 0, fmt.Errorf("cannot convert type %T to int64 for parameter %s", val, key)
}

// Float64 retrieves a floating point value.
func (c *Configuration) Float64(key string) (float64, error) {
	val, found := c.Get(key)
	if !found {
		return 0.0, fmt.Errorf("parameter not registered: %s", key)
	}
	if val == nil {
		return 0.0, fmt.Errorf("parameter %s has no value, cannot convert to float64", key)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Float64:
		return v.Float(), nil
	case reflect.Int64:
		return float64(v.Int()), nil
	case reflect.String:
		s := v.String()
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0.0, fmt.Errorf("cannot convert string %q to float64 for parameter %s: %w", s, key, err)
		}
		return f, nil
	case reflect.Bool:
		if v.Bool() {
			return 1.0, nil
		}
		return 0.0, nil
	}

	return 0.0, fmt.Errorf("cannot convert type %T to float64 for parameter %s", val, key)
}

// Bool retrieves a boolean value. Numbers are true when non-zero.
func (c *Configuration) Bool(key string) (bool, error) {
	val, found := c.Get(key)
	if !found {
		return false, fmt.Errorf("parameter not registered: %s", key)
	}
	if val == nil {
		return false, fmt.Errorf("parameter %s has no value, cannot convert to bool", key)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.String:
		s := v.String()
		b, err := strconv.ParseBool(s)
		if err != nil {
			return false, fmt.Errorf("cannot convert string %q to bool for parameter %s: %w", s, key, err)
		}
		return b, nil
	case reflect.Int64:
		return v.Int() != 0, nil
	case reflect.Float64:
		return v.Float() != 0, nil
	}

	return false, fmt.Errorf("cannot convert type %T to bool for parameter %s", val, key)
}

// Ints retrieves an integer list. Absent values yield a nil slice.
func (c *Configuration) Ints(key string) ([]int64, error) {
	val, found := c.Get(key)
	if !found {
		return nil, fmt.Errorf("parameter not registered: %s", key)
	}
	if val == nil {
		return nil, nil
	}

	switch v := val.(type) {
	case []int64:
		return v, nil
	case int64:
		return []int64{v}, nil
	}
	return nil, fmt.Errorf("cannot convert type %T to []int64 for parameter %s", val, key)
}

// Clone creates a deep copy, e.g. to start another resolution cycle from the
// same command-line result.
func (c *Configuration) Clone() *Configuration {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	clone := &Configuration{
		registry: c.registry,
		items:    make(map[string]item, len(c.items)),
		logger:   c.logger,
	}
	for k, it := range c.items {
		clone.items[k] = item{value: cloneValue(it.value), source: it.source}
	}
	return clone
}

// Debug returns a formatted listing of every value and its source, in
// registration order.
func (c *Configuration) Debug() string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var b strings.Builder
	b.WriteString("Resolved parameters:\n")
	for _, d := range c.registry.Descriptors() {
		it := c.items[d.Key]
		fmt.Fprintf(&b, "  %s:\n", d.Key)
		fmt.Fprintf(&b, "    Current: %v\n", it.value)
		fmt.Fprintf(&b, "    Default: %v\n", d.Default)
		fmt.Fprintf(&b, "    Source:  %s\n", it.source)
	}
	return b.String()
}

// Dump writes the current values as TOML. Absent values are omitted.
func (c *Configuration) Dump(w io.Writer) error {
	values := c.Values()
	maps.DeleteFunc(values, func(_ string, v any) bool { return v == nil })

	encoder := toml.NewEncoder(w)
	if err := encoder.Encode(values); err != nil {
		return fmt.Errorf("failed to encode parameters as TOML: %w", err)
	}
	return nil
}

// set stores a value; callers hold the write lock.
func (c *Configuration) set(key string, value any, source Source) {
	c.items[key] = item{value: value, source: source}
}
