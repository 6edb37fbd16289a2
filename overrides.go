// FILE: pkdgrav/simconfig/overrides.go
package simconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"gopkg.in/yaml.v3"
)

// Format names a parameter file syntax.
type Format string

const (
	FormatAuto Format = "auto"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

// LoadOverrides reads a parameter file into an override set. With FormatAuto
// the format is taken from the extension, then from the content.
func LoadOverrides(path string, format Format) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameter file '%s': %w", path, err)
	}

	if format == "" || format == FormatAuto {
		format = detectFileFormat(path)
		if format == "" {
			format = detectFormatFromContent(data)
		}
		if format == "" {
			return nil, fmt.Errorf("%w: '%s'", ErrUnknownFormat, path)
		}
	}

	overrides, err := decodeOverrides(data, format, path)
	if err != nil {
		return nil, err
	}
	return overrides, nil
}

// DecodeOverrides parses parameter file content in the given format into a
// flat override set. Nested tables are flattened to dotted keys.
func DecodeOverrides(data []byte, format Format) (map[string]any, error) {
	return decodeOverrides(data, format, "<input>")
}

func decodeOverrides(data []byte, format Format, name string) (map[string]any, error) {
	parsed := make(map[string]any)

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("failed to parse TOML parameter file '%s': %w", name, err)
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&parsed); err != nil {
			return nil, fmt.Errorf("failed to parse JSON parameter file '%s': %w", name, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("failed to parse YAML parameter file '%s': %w", name, err)
		}
	case FormatHCL:
		attrs, err := decodeHCL(data, name)
		if err != nil {
			return nil, err
		}
		parsed = attrs
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return flattenMap(parsed, ""), nil
}

// ResolveSections rewrites dotted override keys whose last segment is a
// registered key ("Cosmology.dOmega0" -> "dOmega0"), so parameter files may
// group keys under section headers. A key written without a section wins
// over any sectioned form of it. Two sectioned forms of the same key
// ("A.dPeriod" and "B.dPeriod") are reported with ErrAmbiguousOverride.
func ResolveSections(r *Registry, overrides map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(overrides))
	sectioned := make(map[string]string)

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if r.Has(k) {
			out[k] = overrides[k]
			continue
		}
		short := lastSegment(k)
		if !r.Has(short) {
			out[k] = overrides[k]
			continue
		}
		if _, plain := overrides[short]; plain {
			continue
		}
		if first, seen := sectioned[short]; seen {
			return nil, fmt.Errorf("%w: %q and %q both set %q", ErrAmbiguousOverride, first, k, short)
		}
		sectioned[short] = k
		out[short] = overrides[k]
	}
	return out, nil
}

// IsParameterFile reports whether path has an extension LoadOverrides knows.
func IsParameterFile(path string) bool {
	return detectFileFormat(path) != ""
}

// hclEvalContext exposes a few constants and math functions to HCL parameter
// files, e.g. `dPreFacRhoLoc = 4 * pi / 3`.
var hclEvalContext = &hcl.EvalContext{
	Variables: map[string]cty.Value{
		"pi": cty.NumberFloatVal(math.Pi),
		"e":  cty.NumberFloatVal(math.E),
	},
	Functions: map[string]function.Function{
		"abs":   stdlib.AbsoluteFunc,
		"ceil":  stdlib.CeilFunc,
		"floor": stdlib.FloorFunc,
		"log":   stdlib.LogFunc,
		"max":   stdlib.MaxFunc,
		"min":   stdlib.MinFunc,
		"pow":   stdlib.PowFunc,
	},
}

// decodeHCL evaluates every top-level attribute of an HCL body.
func decodeHCL(data []byte, name string) (map[string]any, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL parameter file '%s': %w", name, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to read HCL parameter file '%s': %w", name, diags)
	}

	out := make(map[string]any, len(attrs))
	for key, attr := range attrs {
		val, diags := attr.Expr.Value(hclEvalContext)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate '%s' in '%s': %w", key, name, diags)
		}
		goVal, err := ctyToGo(val)
		if err != nil {
			return nil, fmt.Errorf("parameter '%s' in '%s': %w", key, name, err)
		}
		out[key] = goVal
	}
	return out, nil
}

// ctyToGo converts an evaluated HCL value into the plain Go values the other
// decoders produce.
func ctyToGo(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsWhollyKnown() {
		return nil, errors.New("value is not known")
	}

	t := v.Type()
	switch {
	case t == cty.Bool:
		return v.True(), nil
	case t == cty.String:
		return v.AsString(), nil
	case t == cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return i, nil
			}
		}
		f, _ := bf.Float64()
		return f, nil
	case t.IsTupleType() || t.IsListType() || t.IsSetType():
		out := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			gv, err := ctyToGo(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, gv)
		}
		return out, nil
	case t.IsObjectType() || t.IsMapType():
		out := make(map[string]any, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			gv, err := ctyToGo(ev)
			if err != nil {
				return nil, err
			}
			out[k.AsString()] = gv
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported HCL value type %s", t.FriendlyName())
	}
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".hcl":
		return FormatHCL
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) Format {
	// Try JSON first (strict format)
	var jsonTest map[string]any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return FormatJSON
	}

	// TOML before YAML: plain `key = value` lines are not YAML mappings
	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return FormatTOML
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return FormatYAML
	}

	parser := hclparse.NewParser()
	if _, diags := parser.ParseHCL(data, "<detect>"); !diags.HasErrors() {
		return FormatHCL
	}

	return ""
}
