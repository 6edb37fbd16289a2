// FILE: pkdgrav/simconfig/decode.go
package simconfig

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag Scan uses to map fields to parameter keys.
const TagName = "param"

// Scan decodes the current values into target, which must be a non-nil
// pointer to a struct or map. Struct fields are matched by their `param`
// tag; fields without a matching key are left untouched. Absent values are
// skipped.
func (c *Configuration) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	values := c.Values()
	for k, v := range values {
		if v == nil {
			delete(values, k)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          TagName,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("failed to scan parameters into %T: %w", target, err)
	}
	return nil
}
