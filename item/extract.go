package item

import (
	"errors"
	"reflect"
	"strings"
)

// Extract resolves a single named field on an item.
//
// Resolution order: mapping key, exported struct field (exact then
// case-insensitive match) or zero-argument method, then the item's
// [Arrayable] form. An empty field returns a stringable item unchanged.
//
// Returns [ErrFieldNotFound] when the field cannot be resolved and
// [ErrUnsupportedType] when the item's shape supports no extraction at all.
func Extract(v any, field string) (any, error) {
	if field == "" {
		if Stringable(v) {
			return v, nil
		}
		return nil, &UnsupportedError{TypeTag: TypeOf(v)}
	}

	switch ShapeOf(v) {
	case ShapeMapping:
		if out, ok := mappingLookup(v, field); ok {
			return out, nil
		}
		if out, ok := arrayableLookup(v, field); ok {
			return out, nil
		}
		return nil, &FieldError{Field: field}

	case ShapeObject:
		if out, ok := objectLookup(v, field); ok {
			return out, nil
		}
		if out, ok := arrayableLookup(v, field); ok {
			return out, nil
		}
		return nil, &FieldError{Field: field}

	case ShapeConvertible:
		if out, ok := arrayableLookup(v, field); ok {
			return out, nil
		}
		return nil, &FieldError{Field: field}

	case ShapeScalar:
		return nil, &FieldError{Field: field}

	default:
		return nil, &UnsupportedError{Field: field, TypeTag: TypeOf(v)}
	}
}

// ExtractDotted resolves a period-delimited path segment by segment,
// re-resolving the shape at every level. Failure at any level aborts with
// the failing segment named.
func ExtractDotted(v any, path string) (any, error) {
	if !strings.Contains(path, ".") {
		return Extract(v, path)
	}
	current := v
	for _, seg := range strings.Split(path, ".") {
		next, err := Extract(current, seg)
		if err != nil {
			var fe *FieldError
			if errors.As(err, &fe) {
				return nil, &FieldError{Field: seg, Path: path}
			}
			return nil, err
		}
		current = next
	}
	return current, nil
}

func mappingLookup(v any, field string) (any, bool) {
	if m, ok := v.(map[string]any); ok {
		out, ok := m[field]
		return out, ok
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := rv.MapIndex(reflect.ValueOf(field).Convert(rv.Type().Key()))
	if !out.IsValid() {
		return nil, false
	}
	return out.Interface(), true
}

func objectLookup(v any, field string) (any, bool) {
	rv := reflect.ValueOf(v)
	// Zero-argument methods double as computed fields; pointer receivers
	// are found on the pointer value.
	if m := rv.MethodByName(field); m.IsValid() && m.Type().NumIn() == 0 && m.Type().NumOut() == 1 {
		return m.Call(nil)[0].Interface(), true
	}
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	if f := rv.FieldByName(field); f.IsValid() && f.CanInterface() {
		return f.Interface(), true
	}
	// Tolerate lower-cased field names ("name" resolving Name), as long
	// as the match is unambiguous.
	f := rv.FieldByNameFunc(func(name string) bool { return strings.EqualFold(name, field) })
	if f.IsValid() && f.CanInterface() {
		return f.Interface(), true
	}
	return nil, false
}

func arrayableLookup(v any, field string) (any, bool) {
	a, ok := v.(Arrayable)
	if !ok {
		return nil, false
	}
	out, ok := a.ToArray()[field]
	return out, ok
}
