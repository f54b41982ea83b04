package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrValidation marks arguments that do not match a tool's input shape.
var ErrValidation = errors.New("invalid arguments")

// Validate checks raw against s and returns a fresh mapping holding only
// the declared fields. Integers come back as int64 and numbers as float64,
// so the output validates to itself. Keys the schema does not declare are
// dropped; null never stands in for an absent optional field. The first
// violation, in declaration order, is returned.
func Validate(s *Schema, raw map[string]any) (map[string]any, error) {
	if s == nil {
		return nil, errors.New("no input schema")
	}
	return validateObject(raw, s, "")
}

func validateObject(raw map[string]any, s *Schema, path string) (map[string]any, error) {
	out := make(map[string]any, len(s.Fields()))
	for _, f := range s.Fields() {
		fieldPath := dottedPath(path, f.Name)
		value, ok := raw[f.Name]
		if !ok {
			if f.Required {
				return nil, invalidArgs("missing required argument %q", fieldPath)
			}
			continue
		}
		checked, err := validateValue(value, f, fieldPath)
		if err != nil {
			return nil, err
		}
		out[f.Name] = checked
	}
	return out, nil
}

func validateValue(value any, f *Field, path string) (any, error) {
	if value == nil {
		return nil, invalidArgs("argument %q must be %s, got null", path, f.Kind)
	}

	switch f.Kind {
	case KindString:
		s, ok := value.(string)
		if !ok {
			return nil, invalidType(path, f.Kind, value)
		}
		if len(f.Allowed) > 0 && !contains(f.Allowed, s) {
			return nil, invalidArgs("argument %q must be one of %s, got %q", path, strings.Join(f.Allowed, ", "), s)
		}
		return s, nil
	case KindBoolean:
		b, ok := value.(bool)
		if !ok {
			return nil, invalidType(path, f.Kind, value)
		}
		return b, nil
	case KindInteger:
		i, err := toInteger(value, path)
		if err != nil {
			return nil, err
		}
		if err := checkBounds(float64(i), f, path); err != nil {
			return nil, err
		}
		return i, nil
	case KindNumber:
		n, err := toNumber(value, path)
		if err != nil {
			return nil, err
		}
		if err := checkBounds(n, f, path); err != nil {
			return nil, err
		}
		return n, nil
	case KindArray:
		return validateArray(value, f, path)
	case KindObject:
		obj, ok := value.(map[string]any)
		if !ok {
			return nil, invalidType(path, f.Kind, value)
		}
		if f.Props == nil {
			return map[string]any{}, nil
		}
		return validateObject(obj, f.Props, path)
	default:
		return nil, errors.Newf("argument %q has unsupported schema kind %q", path, f.Kind)
	}
}

func validateArray(value any, f *Field, path string) ([]any, error) {
	items, ok := asSlice(value)
	if !ok {
		return nil, invalidType(path, f.Kind, value)
	}
	if f.MinItems != nil && len(items) < *f.MinItems {
		return nil, invalidArgs("argument %q must contain at least %d items, got %d", path, *f.MinItems, len(items))
	}
	if f.MaxItems != nil && len(items) > *f.MaxItems {
		return nil, invalidArgs("argument %q must contain at most %d items, got %d", path, *f.MaxItems, len(items))
	}

	out := make([]any, 0, len(items))
	for i, item := range items {
		if f.Items == nil {
			out = append(out, item)
			continue
		}
		checked, err := validateValue(item, f.Items, indexedPath(path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, checked)
	}
	return out, nil
}

func asSlice(value any) ([]any, bool) {
	if v, ok := value.([]any); ok {
		return v, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func toInteger(value any, path string) (int64, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case float32:
		return floatToInteger(float64(v), path)
	case float64:
		return floatToInteger(v, path)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		f, err := v.Float64()
		if err != nil {
			return 0, invalidType(path, KindInteger, value)
		}
		return floatToInteger(f, path)
	default:
		return 0, invalidType(path, KindInteger, value)
	}
}

var twoTo63 = math.Ldexp(1, 63)

func floatToInteger(f float64, path string) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, invalidArgs("argument %q must be integer, got %v", path, f)
	}
	// float64(math.MaxInt64) rounds up to 2^63, which int64 cannot hold.
	if f >= twoTo63 || f < -twoTo63 {
		return 0, invalidArgs("argument %q is out of integer range", path)
	}
	return int64(f), nil
}

func toNumber(value any, path string) (float64, error) {
	var f float64
	switch v := value.(type) {
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case float32:
		f = float64(v)
	case float64:
		f = v
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, invalidType(path, KindNumber, value)
		}
		f = parsed
	default:
		return 0, invalidType(path, KindNumber, value)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, invalidArgs("argument %q must be a finite number", path)
	}
	return f, nil
}

func checkBounds(v float64, f *Field, path string) error {
	if f.Minimum != nil {
		lo := *f.Minimum
		if f.ExclusiveMinimum && v <= lo {
			if lo == 0 {
				return invalidArgs("argument %q must be positive, got %v", path, v)
			}
			return invalidArgs("argument %q must be greater than %v, got %v", path, lo, v)
		}
		if !f.ExclusiveMinimum && v < lo {
			return invalidArgs("argument %q must be >= %v, got %v", path, lo, v)
		}
	}
	if f.Maximum != nil && v > *f.Maximum {
		return invalidArgs("argument %q must be <= %v, got %v", path, *f.Maximum, v)
	}
	return nil
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

func invalidType(path string, want Kind, got any) error {
	return invalidArgs("argument %q must be %s, got %s", path, want, jsonTypeName(got))
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int32, int64, float32, float64, json.Number:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func invalidArgs(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrValidation)
}

func dottedPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func indexedPath(path string, idx int) string {
	return fmt.Sprintf("%s[%d]", path, idx)
}
