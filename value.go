// FILE: pkdgrav/simconfig/value.go
package simconfig

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ValueType is the declared type of a parameter.
type ValueType int

const (
	TypeBool ValueType = iota
	TypeInt
	TypeFloat
	TypeString
	TypeIntList // repeatable, accumulates in order
)

func (t ValueType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeIntList:
		return "int list"
	default:
		return fmt.Sprintf("ValueType(%d)", int(t))
	}
}

func (t ValueType) valid() bool {
	return t >= TypeBool && t <= TypeIntList
}

// parseToken converts a single command-line token according to t.
// For TypeIntList the result is the element (int64), not a slice.
func parseToken(t ValueType, token string) (any, error) {
	switch t {
	case TypeBool:
		return strconv.ParseBool(token)
	case TypeInt, TypeIntList:
		return strconv.ParseInt(token, 10, 64)
	case TypeFloat:
		return strconv.ParseFloat(token, 64)
	case TypeString:
		return token, nil
	default:
		return nil, fmt.Errorf("unsupported value type %s", t)
	}
}

// convertValue coerces a value supplied by a program or a parameter file to
// the Go representation of t: bool, int64, float64, string or []int64.
// A nil value stays nil (absent).
func convertValue(t ValueType, raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}

	// Integer parameters refuse to silently truncate fractional input
	if t == TypeInt || t == TypeIntList {
		if err := checkIntegral(raw); err != nil {
			return nil, err
		}
	}

	switch t {
	case TypeBool:
		var out bool
		if err := weakDecode(raw, &out); err != nil {
			return nil, err
		}
		return out, nil
	case TypeInt:
		var out int64
		if err := weakDecode(raw, &out); err != nil {
			return nil, err
		}
		return out, nil
	case TypeFloat:
		var out float64
		if err := weakDecode(raw, &out); err != nil {
			return nil, err
		}
		return out, nil
	case TypeString:
		var out string
		if err := weakDecode(raw, &out); err != nil {
			return nil, err
		}
		return out, nil
	case TypeIntList:
		var out []int64
		if s, ok := raw.(string); ok {
			// "1, 2, 3" is accepted as well as "1,2,3"
			raw = strings.ReplaceAll(s, " ", "")
		}
		if err := weakDecode(raw, &out); err != nil {
			return nil, err
		}
		if out == nil {
			out = []int64{}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value type %s", t)
	}
}

// weakDecode runs mapstructure with the same weak typing the loader uses for
// file values.
func weakDecode(raw any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}
	return decoder.Decode(raw)
}

// checkIntegral rejects floats with a fractional part, including inside slices.
func checkIntegral(raw any) error {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%v is not an integer", v)
		}
	case float32:
		return checkIntegral(float64(v))
	case json.Number:
		if _, err := v.Int64(); err != nil {
			return fmt.Errorf("%s is not an integer", v.String())
		}
	case string:
		if strings.ContainsAny(v, ".eE") {
			if _, err := strconv.ParseInt(v, 10, 64); err != nil {
				return fmt.Errorf("%q is not an integer", v)
			}
		}
	default:
		rv := reflect.ValueOf(raw)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			for i := 0; i < rv.Len(); i++ {
				if err := checkIntegral(rv.Index(i).Interface()); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// cloneValue copies list values so callers cannot alias stored slices.
func cloneValue(v any) any {
	if l, ok := v.([]int64); ok && l != nil {
		return append([]int64(nil), l...)
	}
	return v
}

// formatRaw renders a raw override value for error messages.
func formatRaw(raw any) string {
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", raw)
}
