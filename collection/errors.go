package collection

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Collection operations. Match the kind with
// errors.Is; recover expected/actual detail with errors.As on the typed
// errors below.
var (
	// ErrTypeMismatch is returned when an item violates the collection's
	// expected type.
	ErrTypeMismatch = errors.New("collection: item type mismatch")

	// ErrLiteralMismatch is returned when an item does not structurally
	// equal the literal value the collection is typed to.
	ErrLiteralMismatch = errors.New("collection: literal value mismatch")

	// ErrItemNotFound is returned by strict lookups on an absent entry.
	ErrItemNotFound = errors.New("collection: item not found")

	// ErrImmutable is returned when an in-place mutation is invoked on a
	// copy-on-write collection.
	ErrImmutable = errors.New("collection: collection is immutable")

	// ErrCollectionTypeMismatch is returned by binary operations invoked
	// across incompatible expected types with type checking enabled.
	ErrCollectionTypeMismatch = errors.New("collection: collection types do not match")

	// ErrMismatchedLengths is returned by Combine when the key sequence
	// and the entry list have different lengths.
	ErrMismatchedLengths = errors.New("collection: keys and values must have the same length")

	// ErrInvalidChunkSize is returned when Chunk is called with size <= 0.
	ErrInvalidChunkSize = errors.New("collection: chunk size must be greater than 0")

	// ErrInvalidArguments is returned by Where when the argument list fits
	// none of its supported forms.
	ErrInvalidArguments = errors.New("collection: invalid arguments")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collection: macro not found")
)

// TypeError reports an item that failed expected-type validation.
// It unwraps to [ErrTypeMismatch], or [ErrLiteralMismatch] for collections
// in literal-type mode.
type TypeError struct {
	// Expected is the declared type label (tag, type name, or rendered
	// literal value).
	Expected string
	// Actual is the offending item's type tag, or its rendered value in
	// literal mode.
	Actual string
	// Key is the offending entry's key, when known.
	Key any
	// Literal marks literal-type mode.
	Literal bool
}

func (e *TypeError) Error() string {
	what := "item of type"
	if e.Literal {
		what = "literal value"
	}
	if e.Key != nil {
		return fmt.Sprintf("collection: expected %s %s, got %s at key %v", what, e.Expected, e.Actual, e.Key)
	}
	return fmt.Sprintf("collection: expected %s %s, got %s", what, e.Expected, e.Actual)
}

func (e *TypeError) Unwrap() error {
	if e.Literal {
		return ErrLiteralMismatch
	}
	return ErrTypeMismatch
}

// LookupError reports a failed strict lookup. It unwraps to [ErrItemNotFound].
type LookupError struct {
	Key any
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("collection: item not found at key %v", e.Key)
}

func (e *LookupError) Unwrap() error { return ErrItemNotFound }

// PairTypeError reports a binary operation across incompatible collection
// types. It unwraps to [ErrCollectionTypeMismatch].
type PairTypeError struct {
	Left, Right string
}

func (e *PairTypeError) Error() string {
	return fmt.Sprintf("collection: collection types do not match: %s and %s", e.Left, e.Right)
}

func (e *PairTypeError) Unwrap() error { return ErrCollectionTypeMismatch }
