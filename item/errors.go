package item

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by field extraction.
// Match on the kind with errors.Is; recover detail with errors.As.
var (
	// ErrFieldNotFound is returned when a (possibly dotted) field path
	// cannot be resolved on an item.
	ErrFieldNotFound = errors.New("item: field not found")

	// ErrUnsupportedType is returned when an item shape has no defined
	// extraction or comparison behavior.
	ErrUnsupportedType = errors.New("item: unsupported item type")
)

// FieldError reports the path segment that could not be resolved.
type FieldError struct {
	// Field is the failing segment of the requested path.
	Field string
	// Path is the full dotted path, when the lookup was dotted.
	Path string
}

func (e *FieldError) Error() string {
	if e.Path != "" && e.Path != e.Field {
		return fmt.Sprintf("item: field %q not found (in path %q)", e.Field, e.Path)
	}
	return fmt.Sprintf("item: field %q not found", e.Field)
}

func (e *FieldError) Unwrap() error { return ErrFieldNotFound }

// UnsupportedError reports an item whose shape supports no extraction.
type UnsupportedError struct {
	// Field is the field that was being resolved, if any.
	Field string
	// TypeTag is the item's resolved type tag.
	TypeTag string
}

func (e *UnsupportedError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("item: cannot extract field %q from item of type %s", e.Field, e.TypeTag)
	}
	return fmt.Sprintf("item: unsupported item of type %s", e.TypeTag)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupportedType }
