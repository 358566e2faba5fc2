package item

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// Scalar type tags reported by [TypeOf] for non-structured values.
const (
	TypeString   = "string"
	TypeInteger  = "integer"
	TypeFloat    = "float"
	TypeBoolean  = "boolean"
	TypeNull     = "null"
	TypeArray    = "array"
	TypeCallable = "callable"
)

// Shape classifies an item for field extraction. See the package
// documentation for what each shape means.
type Shape int

const (
	ShapeInvalid Shape = iota
	ShapeScalar
	ShapeMapping
	ShapeObject
	ShapeConvertible
)

// String returns the shape name, e.g. "mapping".
func (s Shape) String() string {
	switch s {
	case ShapeScalar:
		return "scalar"
	case ShapeMapping:
		return "mapping"
	case ShapeObject:
		return "object"
	case ShapeConvertible:
		return "convertible"
	}
	return "invalid"
}

// Arrayable is implemented by foreign item types that can expose themselves
// as a plain key/value mapping for extraction and conversion purposes.
type Arrayable interface {
	ToArray() map[string]any
}

// TypeOf returns the type tag of v: a scalar tag for plain values, or the
// concrete Go type name for structured (object-like) values. Named scalar
// types (e.g. `type Status string`) report their underlying scalar tag.
func TypeOf(v any) string {
	if v == nil {
		return TypeNull
	}
	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.String:
		return TypeString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return TypeInteger
	case reflect.Float32, reflect.Float64:
		return TypeFloat
	case reflect.Bool:
		return TypeBoolean
	case reflect.Func:
		return TypeCallable
	case reflect.Map, reflect.Slice, reflect.Array:
		return TypeArray
	case reflect.Pointer:
		if t.Elem().Kind() == reflect.Struct {
			return t.Elem().String()
		}
		return t.String()
	default:
		return t.String()
	}
}

// ShapeOf returns the primary shape of v.
//
// A struct that also implements [Arrayable] is reported as [ShapeObject];
// its array form is only consulted as a fallback during extraction.
func ShapeOf(v any) Shape {
	if v == nil {
		return ShapeScalar
	}
	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.Map:
		return ShapeMapping
	case reflect.Struct:
		return ShapeObject
	case reflect.Pointer:
		if t.Elem().Kind() == reflect.Struct {
			return ShapeObject
		}
	}
	if _, ok := v.(Arrayable); ok {
		return ShapeConvertible
	}
	if Stringable(v) {
		return ShapeScalar
	}
	return ShapeInvalid
}

// Stringable reports whether v can be treated as a bare scalar for
// comparison and dedup purposes: nil, Go scalars, and fmt.Stringer values.
func Stringable(v any) bool {
	if v == nil {
		return true
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	_, ok := v.(fmt.Stringer)
	return ok
}

// String renders a stringable value as a string.
// Returns an [UnsupportedError] when v is not stringable.
func String(v any) (string, error) {
	if !Stringable(v) {
		return "", &UnsupportedError{TypeTag: TypeOf(v)}
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", &UnsupportedError{TypeTag: TypeOf(v)}
	}
	return s, nil
}
