// FILE: pkdgrav/simconfig/descriptor.go
package simconfig

import (
	"fmt"
	"strings"
)

// Surface-form prefixes. Ordinary flags and the false polarity of a toggle
// share the dash, so "-p" can only belong to one descriptor.
const (
	FlagPrefix  = "-"
	TruePrefix  = "+"
	FalsePrefix = "-"
)

// Polarity tags a surface form. Ordinary flags carry PolarityNone and take
// their value from the following token.
type Polarity int

const (
	PolarityNone Polarity = iota
	PolarityTrue
	PolarityFalse
)

// Value returns the boolean implied by the polarity. ok is false for PolarityNone.
func (p Polarity) Value() (value bool, ok bool) {
	switch p {
	case PolarityTrue:
		return true, true
	case PolarityFalse:
		return false, true
	default:
		return false, false
	}
}

func (p Polarity) String() string {
	switch p {
	case PolarityTrue:
		return "true"
	case PolarityFalse:
		return "false"
	default:
		return "none"
	}
}

// SurfaceForm is one literal command-line spelling of a parameter.
type SurfaceForm struct {
	Token    string
	Polarity Polarity
}

// Descriptor declares one parameter.
type Descriptor struct {
	Key     string
	Type    ValueType
	Default any // nil means absent
	Forms   []SurfaceForm

	Group string
	Help  string
	Docs  string // longer text, preferred over Help by documentation renderers

	// ExclusiveWith names keys that may not be given explicitly together
	// with this one. Usually filled by Registry.Exclusive.
	ExclusiveWith []string
}

// Toggle reports whether the descriptor is a dual-polarity boolean.
func (d Descriptor) Toggle() bool {
	for _, f := range d.Forms {
		if f.Polarity != PolarityNone {
			return true
		}
	}
	return false
}

// Repeatable reports whether each occurrence appends instead of overwriting.
func (d Descriptor) Repeatable() bool {
	return d.Type == TypeIntList
}

// Flag returns the primary spelling used in documentation: the ordinary
// flag, or the true polarity of a toggle.
func (d Descriptor) Flag() string {
	for _, f := range d.Forms {
		if f.Polarity == PolarityNone || f.Polarity == PolarityTrue {
			return f.Token
		}
	}
	if len(d.Forms) > 0 {
		return d.Forms[0].Token
	}
	return ""
}

// Toggle declares a boolean parameter spelled +name (true) and -name (false).
func Toggle(key, name string, def bool, help string) Descriptor {
	return Descriptor{
		Key:     key,
		Type:    TypeBool,
		Default: def,
		Forms: []SurfaceForm{
			{Token: TruePrefix + name, Polarity: PolarityTrue},
			{Token: FalsePrefix + name, Polarity: PolarityFalse},
		},
		Help: help,
	}
}

// Bool declares a boolean parameter taking an explicit value (-name true).
func Bool(key, name string, def any, help string) Descriptor {
	return flagDescriptor(key, name, TypeBool, def, help)
}

// Int declares an integer parameter. def may be nil.
func Int(key, name string, def any, help string) Descriptor {
	return flagDescriptor(key, name, TypeInt, def, help)
}

// Float declares a floating point parameter. def may be nil.
func Float(key, name string, def any, help string) Descriptor {
	return flagDescriptor(key, name, TypeFloat, def, help)
}

// String declares a string parameter. def may be nil.
func String(key, name string, def any, help string) Descriptor {
	return flagDescriptor(key, name, TypeString, def, help)
}

// IntList declares a repeatable integer parameter with an absent default.
func IntList(key, name string, help string) Descriptor {
	return flagDescriptor(key, name, TypeIntList, nil, help)
}

func flagDescriptor(key, name string, t ValueType, def any, help string) Descriptor {
	return Descriptor{
		Key:     key,
		Type:    t,
		Default: def,
		Forms:   []SurfaceForm{{Token: FlagPrefix + name, Polarity: PolarityNone}},
		Help:    help,
	}
}

// WithDocs returns a copy of d carrying long-form documentation.
func (d Descriptor) WithDocs(docs string) Descriptor {
	d.Docs = docs
	return d
}

// validate checks the descriptor's own consistency and normalizes its default.
func (d *Descriptor) validate() error {
	if !isValidKeySegment(d.Key) {
		return fmt.Errorf("%w: invalid key %q", ErrInvalidDescriptor, d.Key)
	}
	if !d.Type.valid() {
		return fmt.Errorf("%w: parameter %q has unknown type %d", ErrInvalidDescriptor, d.Key, int(d.Type))
	}

	var none, truthy, falsy int
	for _, f := range d.Forms {
		if !isValidSurfaceToken(f.Token) {
			return fmt.Errorf("%w: parameter %q has invalid surface form %q", ErrInvalidDescriptor, d.Key, f.Token)
		}
		switch f.Polarity {
		case PolarityNone:
			none++
		case PolarityTrue:
			truthy++
		case PolarityFalse:
			falsy++
		default:
			return fmt.Errorf("%w: parameter %q has unknown polarity on %q", ErrInvalidDescriptor, d.Key, f.Token)
		}
	}

	switch {
	case none == 1 && truthy == 0 && falsy == 0:
	case none == 0 && truthy == 1 && falsy == 1:
		if d.Type != TypeBool {
			return fmt.Errorf("%w: toggle %q must be boolean, not %s", ErrInvalidDescriptor, d.Key, d.Type)
		}
	default:
		return fmt.Errorf("%w: parameter %q needs one flag or one true/false pair, got %d forms",
			ErrInvalidDescriptor, d.Key, len(d.Forms))
	}

	def, err := convertValue(d.Type, d.Default)
	if err != nil {
		return fmt.Errorf("%w: default of %q: %w", ErrInvalidDescriptor, d.Key, err)
	}
	d.Default = def
	d.Forms = append([]SurfaceForm(nil), d.Forms...)
	d.ExclusiveWith = append([]string(nil), d.ExclusiveWith...)
	return nil
}

// isValidSurfaceToken accepts a polarity/flag prefix followed by a bare name.
func isValidSurfaceToken(tok string) bool {
	var name string
	switch {
	case strings.HasPrefix(tok, TruePrefix):
		name = strings.TrimPrefix(tok, TruePrefix)
	case strings.HasPrefix(tok, FlagPrefix):
		name = strings.TrimPrefix(tok, FlagPrefix)
	default:
		return false
	}
	if strings.HasPrefix(name, "-") || strings.HasPrefix(name, "+") {
		return false
	}
	return isValidKeySegment(name)
}
