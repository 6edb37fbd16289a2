// FILE: pkdgrav/simconfig/registry.go
package simconfig

import (
	"fmt"
	"slices"
	"sync"
)

// Registry holds the declared parameter surface. It is populated once and
// sealed before the first Parse; afterwards it is read-only.
type Registry struct {
	mutex       sync.RWMutex
	descriptors map[string]*Descriptor
	order       []string               // keys in registration order
	forms       map[string]formBinding // surface token -> key and polarity
	groups      []string               // group labels in first-seen order
	sealed      bool
}

type formBinding struct {
	key      string
	polarity Polarity
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		descriptors: make(map[string]*Descriptor),
		forms:       make(map[string]formBinding),
	}
}

// Register adds a descriptor. Duplicate keys and surface forms are rejected
// with *DuplicateKeyError and *DuplicateSurfaceFormError.
func (r *Registry) Register(d Descriptor) error {
	if err := d.validate(); err != nil {
		return err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.sealed {
		return fmt.Errorf("%w: cannot register %q", ErrRegistrySealed, d.Key)
	}
	if _, exists := r.descriptors[d.Key]; exists {
		return &DuplicateKeyError{Key: d.Key}
	}
	seen := make(map[string]bool, len(d.Forms))
	for _, f := range d.Forms {
		if existing, taken := r.forms[f.Token]; taken {
			return &DuplicateSurfaceFormError{Token: f.Token, Key: d.Key, Existing: existing.key}
		}
		if seen[f.Token] {
			return &DuplicateSurfaceFormError{Token: f.Token, Key: d.Key, Existing: d.Key}
		}
		seen[f.Token] = true
	}

	for _, f := range d.Forms {
		r.forms[f.Token] = formBinding{key: d.Key, polarity: f.Polarity}
	}
	r.descriptors[d.Key] = &d
	r.order = append(r.order, d.Key)
	if d.Group != "" && !r.hasGroup(d.Group) {
		r.groups = append(r.groups, d.Group)
	}
	return nil
}

// RegisterGroup registers descriptors under one group label, stopping at the
// first error.
func (r *Registry) RegisterGroup(label string, ds ...Descriptor) error {
	for _, d := range ds {
		d.Group = label
		if err := r.Register(d); err != nil {
			return fmt.Errorf("group %q: %w", label, err)
		}
	}
	return nil
}

// MustRegister is like Register but panics on error. Registration failures
// are defects in the declaration list.
func (r *Registry) MustRegister(ds ...Descriptor) {
	for _, d := range ds {
		if err := r.Register(d); err != nil {
			panic(fmt.Sprintf("simconfig: %v", err))
		}
	}
}

// Exclusive declares that at most one of keys may be given explicitly on
// the command line. All keys must already be registered.
func (r *Registry) Exclusive(keys ...string) error {
	if len(keys) < 2 {
		return fmt.Errorf("%w: exclusion group needs at least two keys", ErrInvalidDescriptor)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.sealed {
		return fmt.Errorf("%w: cannot add exclusion group", ErrRegistrySealed)
	}
	for _, k := range keys {
		if _, ok := r.descriptors[k]; !ok {
			return fmt.Errorf("%w: exclusion group names unregistered key %q", ErrInvalidDescriptor, k)
		}
	}
	for _, k := range keys {
		d := r.descriptors[k]
		for _, other := range keys {
			if other != k && !slices.Contains(d.ExclusiveWith, other) {
				d.ExclusiveWith = append(d.ExclusiveWith, other)
			}
		}
	}
	return nil
}

// Seal freezes the registry. Parse seals implicitly.
func (r *Registry) Seal() {
	r.mutex.Lock()
	r.sealed = true
	r.mutex.Unlock()
}

// Sealed reports whether the registry accepts no more registrations.
func (r *Registry) Sealed() bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.sealed
}

// ResolveSurfaceForm maps a command-line token to its key. For toggle forms
// pol carries the implied boolean; for ordinary flags it is PolarityNone and
// the value must follow as a separate token.
func (r *Registry) ResolveSurfaceForm(token string) (key string, pol Polarity, ok bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	b, ok := r.forms[token]
	if !ok {
		return "", PolarityNone, false
	}
	return b.key, b.polarity, true
}

// Lookup returns a copy of the descriptor for key.
func (r *Registry) Lookup(key string) (Descriptor, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	d, ok := r.descriptors[key]
	if !ok {
		return Descriptor{}, false
	}
	return copyDescriptor(d), true
}

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	_, ok := r.descriptors[key]
	return ok
}

// AllKeys returns every registered key in registration order.
func (r *Registry) AllKeys() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return append([]string(nil), r.order...)
}

// Descriptors returns copies of all descriptors in registration order.
func (r *Registry) Descriptors() []Descriptor {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]Descriptor, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, copyDescriptor(r.descriptors[k]))
	}
	return out
}

// Groups returns group labels in the order they were first used.
func (r *Registry) Groups() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return append([]string(nil), r.groups...)
}

// Len returns the number of registered parameters.
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.order)
}

// hasGroup must be called with the lock held.
func (r *Registry) hasGroup(label string) bool {
	return slices.Contains(r.groups, label)
}

func copyDescriptor(d *Descriptor) Descriptor {
	c := *d
	c.Forms = append([]SurfaceForm(nil), d.Forms...)
	c.ExclusiveWith = append([]string(nil), d.ExclusiveWith...)
	c.Default = cloneValue(d.Default)
	return c
}
