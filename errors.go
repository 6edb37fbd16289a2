// FILE: pkdgrav/simconfig/errors.go
package simconfig

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, usable with errors.Is. The typed errors below unwrap to them.
var (
	ErrDuplicateKey          = errors.New("duplicate parameter key")
	ErrDuplicateSurfaceForm  = errors.New("duplicate surface form")
	ErrInvalidValue          = errors.New("invalid parameter value")
	ErrConflictingParameters = errors.New("conflicting parameters")
	ErrUnknownOverride       = errors.New("unknown override key")

	ErrInvalidDescriptor = errors.New("invalid parameter descriptor")
	ErrRegistrySealed    = errors.New("registry is sealed")
	ErrMissingValue      = errors.New("missing value")
	ErrUnknownFormat     = errors.New("unknown parameter file format")
	ErrAmbiguousOverride = errors.New("parameter given under more than one section")
)

// DuplicateKeyError reports a second registration of the same key.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("parameter %q is already registered", e.Key)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

// DuplicateSurfaceFormError reports a command-line spelling claimed by two keys.
type DuplicateSurfaceFormError struct {
	Token    string
	Key      string // key being registered
	Existing string // key already owning the token
}

func (e *DuplicateSurfaceFormError) Error() string {
	return fmt.Sprintf("surface form %q of parameter %q is already used by %q", e.Token, e.Key, e.Existing)
}

func (e *DuplicateSurfaceFormError) Unwrap() error { return ErrDuplicateSurfaceForm }

// InvalidValueError reports a value that cannot be converted to the
// parameter's declared type. Token holds the raw input as supplied.
type InvalidValueError struct {
	Key   string
	Token string
	Type  ValueType
	Err   error
}

func (e *InvalidValueError) Error() string {
	if errors.Is(e.Err, ErrMissingValue) {
		return fmt.Sprintf("parameter %q expects a %s value but none was given", e.Key, e.Type)
	}
	if e.Err != nil {
		return fmt.Sprintf("invalid %s value %q for parameter %q: %v", e.Type, e.Token, e.Key, e.Err)
	}
	return fmt.Sprintf("invalid %s value %q for parameter %q", e.Type, e.Token, e.Key)
}

// Unwrap exposes both the sentinel and the underlying conversion error.
func (e *InvalidValueError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidValue}
	}
	return []error{ErrInvalidValue, e.Err}
}

// ConflictingParametersError reports two members of one mutual-exclusion
// group that were both given explicitly. First is the one seen earlier.
type ConflictingParametersError struct {
	First  string
	Second string
}

func (e *ConflictingParametersError) Error() string {
	return fmt.Sprintf("parameter %q is not allowed together with %q", e.Second, e.First)
}

func (e *ConflictingParametersError) Unwrap() error { return ErrConflictingParameters }

// UnknownOverrideError lists override keys that no descriptor declares.
// Only produced by strict merges.
type UnknownOverrideError struct {
	Keys []string
}

func (e *UnknownOverrideError) Error() string {
	return fmt.Sprintf("unknown override key(s): %s", strings.Join(e.Keys, ", "))
}

func (e *UnknownOverrideError) Unwrap() error { return ErrUnknownOverride }
