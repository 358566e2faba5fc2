package collection

// Enumerable is the read-and-filter surface satisfied by [Collection].
//
// Accept Enumerable in your own functions and interfaces so that consumers
// can substitute alternative implementations without depending on the
// concrete *Collection type.
type Enumerable interface {
	// All returns a copy of every entry in insertion order.
	All() []Entry

	// Count returns the number of entries.
	Count() int

	// Each calls fn(key, value) for every entry.
	Each(fn func(key, value any))

	// Filter returns a collection containing only the entries whose value
	// satisfies fn.
	Filter(fn func(any) bool) *Collection

	// First returns the first value, optionally matching fns[0].
	First(fns ...func(any) bool) (any, bool)

	// IsEmpty reports whether the collection contains no entries.
	IsEmpty() bool

	// IsNotEmpty reports whether the collection has at least one entry.
	IsNotEmpty() bool

	// Last returns the last value, optionally matching fns[0].
	Last(fns ...func(any) bool) (any, bool)

	// Reject returns a collection with the entries whose value satisfies
	// fn removed.
	Reject(fn func(any) bool) *Collection

	// ToValues returns the value sequence as a plain slice.
	ToValues() []any
}
