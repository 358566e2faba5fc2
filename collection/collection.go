package collection

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-typed-collection/compare"
	"github.com/hasbyte1/go-typed-collection/item"
)

// Any is the wildcard expected type: every item is accepted.
const Any = "*"

// Collection is an ordered set of key/value entries with an optional
// runtime-enforced element type.
//
// Every item entering the collection is validated against the expected
// type declared at construction (a scalar tag such as "integer", a Go type
// obtained with [Of], or a literal value via [Literal]); a violation fails
// with [ErrTypeMismatch] before anything is stored.
//
// By default a Collection is copy-on-write: every mutating operation
// returns a new instance and the original is untouched, which makes it
// safe for concurrent reads. A collection built with [Mutable] mutates in
// place instead and returns the same instance; such an instance needs
// external synchronization when shared across goroutines. Either way,
// object-valued entries are never deep-copied: copies alias the same
// referenced objects.
type Collection struct {
	entries  entries
	expected any // Any, a scalar tag, a reflect.Type, or a literal value
	literal  bool
	mutable  bool
}

// Option configures a collection at construction. The expected type and
// mutability are fixed for the lifetime of the instance.
type Option func(*Collection)

// Typed constrains every item to the given expected type: a scalar tag
// ("string", "integer", "float", "boolean", "null", "array", "callable"),
// a concrete Go type name, or a reflect.Type obtained with [Of] (which
// also accepts interface types).
func Typed(expected any) Option {
	return func(c *Collection) {
		c.expected = expected
		c.literal = false
	}
}

// Literal constrains every item to structurally equal the given value.
// Literal values are expected to be plain data (scalars, maps, slices).
func Literal(value any) Option {
	return func(c *Collection) {
		c.expected = value
		c.literal = true
	}
}

// Mutable makes the collection mutate in place instead of copy-on-write.
func Mutable() Option {
	return func(c *Collection) { c.mutable = true }
}

// Of returns the reflect.Type of T for use with [Typed]. T may be an
// interface type, in which case items are validated by interface
// satisfaction.
func Of[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an untyped (Any), copy-on-write collection from a list of
// values, keyed 0..n-1. It cannot fail because the wildcard type accepts
// everything.
func New(values ...any) *Collection {
	c, _ := From(values)
	return c
}

// Empty creates an empty collection with the given options.
func Empty(opts ...Option) *Collection {
	c := &Collection{entries: entries{}, expected: Any}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// From creates a collection from a value sequence, keyed 0..n-1, and
// validates every value against the configured expected type.
func From(values []any, opts ...Option) (*Collection, error) {
	list := make([]Entry, len(values))
	for i, v := range values {
		list[i] = Entry{Key: i, Value: v}
	}
	return FromEntries(list, opts...)
}

// FromEntries creates a collection from explicit key/value pairs,
// preserving their order. A repeated key keeps its first position and
// takes the last value.
func FromEntries(list []Entry, opts ...Option) (*Collection, error) {
	c := Empty(opts...)
	es := make(entries, 0, len(list))
	for _, e := range list {
		key := normalizeKey(e.Key)
		if pos, ok := es.find(key); ok {
			es[pos].Value = e.Value
			continue
		}
		es = append(es, Entry{Key: key, Value: e.Value})
	}
	c.entries = es
	if err := c.validateAll(); err != nil {
		return nil, err
	}
	return c, nil
}

// FromMap creates a collection from a map. Go maps carry no order, so keys
// are sorted for a deterministic result.
func FromMap(m map[string]any, opts ...Option) (*Collection, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	list := make([]Entry, len(keys))
	for i, k := range keys {
		list[i] = Entry{Key: k, Value: m[k]}
	}
	return FromEntries(list, opts...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Type validation
// ─────────────────────────────────────────────────────────────────────────────

// ExpectedType returns a label for the collection's expected type:
// the wildcard "*", a scalar tag, a Go type name, or "value(...)" for
// literal mode.
func (c *Collection) ExpectedType() string { return c.typeLabel() }

// IsMutable reports whether the collection mutates in place.
func (c *Collection) IsMutable() bool { return c.mutable }

// IsLiteralType reports whether the expected type is a literal value.
func (c *Collection) IsLiteralType() bool { return c.literal }

func (c *Collection) isValid(v any) bool {
	if c.literal {
		return cmp.Equal(v, c.expected)
	}
	switch expected := c.expected.(type) {
	case string:
		return expected == Any || item.TypeOf(v) == expected
	case reflect.Type:
		t := reflect.TypeOf(v)
		if t == nil {
			return false
		}
		if t == expected || t.AssignableTo(expected) {
			return true
		}
		return expected.Kind() == reflect.Interface && t.Implements(expected)
	}
	return false
}

func (c *Collection) validate(key, value any) error {
	if c.isValid(value) {
		return nil
	}
	actual := item.TypeOf(value)
	if c.literal {
		actual = fmt.Sprintf("value(%v)", value)
	}
	return &TypeError{Expected: c.typeLabel(), Actual: actual, Key: key, Literal: c.literal}
}

func (c *Collection) validateAll() error {
	if !c.literal {
		if s, ok := c.expected.(string); ok && s == Any {
			return nil
		}
	}
	for _, e := range c.entries {
		if err := c.validate(e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}

func (c *Collection) typeLabel() string {
	if c.literal {
		return fmt.Sprintf("value(%v)", c.expected)
	}
	switch e := c.expected.(type) {
	case string:
		return e
	case reflect.Type:
		return e.String()
	}
	return fmt.Sprintf("%v", c.expected)
}

// sameType reports whether two collections declare the same expected type.
func (c *Collection) sameType(other *Collection) bool {
	if c.literal != other.literal {
		return false
	}
	if c.literal {
		return cmp.Equal(c.expected, other.expected)
	}
	return c.expected == other.expected
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of entries.
func (c *Collection) Count() int { return len(c.entries) }

// IsEmpty reports whether the collection contains no entries.
func (c *Collection) IsEmpty() bool { return len(c.entries) == 0 }

// IsNotEmpty reports whether the collection has at least one entry.
func (c *Collection) IsNotEmpty() bool { return len(c.entries) > 0 }

// All returns a copy of the entry list in insertion order.
func (c *Collection) All() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Get returns the value stored under key, or [ErrItemNotFound].
func (c *Collection) Get(key any) (any, error) {
	pos, ok := c.entries.find(normalizeKey(key))
	if !ok {
		return nil, &LookupError{Key: key}
	}
	return c.entries[pos].Value, nil
}

// HasKey reports whether an entry exists under key.
func (c *Collection) HasKey(key any) bool {
	_, ok := c.entries.find(normalizeKey(key))
	return ok
}

// Has reports whether value is loosely equal to any stored value.
func (c *Collection) Has(value any) bool {
	for _, e := range c.entries {
		if compare.Loose(e.Value, value) {
			return true
		}
	}
	return false
}

// First returns the first value, optionally the first matching fns[0].
// Returns the zero value and false when nothing matches.
func (c *Collection) First(fns ...func(any) bool) (any, bool) {
	if len(fns) > 0 {
		for _, e := range c.entries {
			if fns[0](e.Value) {
				return e.Value, true
			}
		}
		return nil, false
	}
	if len(c.entries) == 0 {
		return nil, false
	}
	return c.entries[0].Value, true
}

// Last returns the last value, optionally the last matching fns[0].
func (c *Collection) Last(fns ...func(any) bool) (any, bool) {
	if len(fns) > 0 {
		var found any
		matched := false
		for _, e := range c.entries {
			if fns[0](e.Value) {
				found = e.Value
				matched = true
			}
		}
		return found, matched
	}
	if len(c.entries) == 0 {
		return nil, false
	}
	return c.entries[len(c.entries)-1].Value, true
}

// Index returns the value at position i in insertion order (independent of
// keys). When the position is absent, strict mode fails with
// [ErrItemNotFound] and lenient mode returns nil.
func (c *Collection) Index(i int, strict bool) (any, error) {
	if i < 0 || i >= len(c.entries) {
		if strict {
			return nil, &LookupError{Key: i}
		}
		return nil, nil
	}
	return c.entries[i].Value, nil
}

// Keys returns the key sequence as a new untyped collection.
func (c *Collection) Keys() *Collection { return New(c.entries.keys()...) }

// Values returns the value sequence, renumbered 0..n-1, as a new untyped
// collection.
func (c *Collection) Values() *Collection { return New(c.entries.values()...) }

// Each calls fn(key, value) for every entry in insertion order.
func (c *Collection) Each(fn func(key, value any)) {
	for _, e := range c.entries {
		fn(e.Key, e.Value)
	}
}

// Tap calls fn(c) for side effects and returns c for chaining.
func (c *Collection) Tap(fn func(*Collection)) *Collection {
	fn(c)
	return c
}

// Dump prints the collection to stdout and returns c for chaining.
func (c *Collection) Dump() *Collection {
	fmt.Println(c.String())
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Add / Remove
// ─────────────────────────────────────────────────────────────────────────────

// Set stores value under key, validating it first. Only mutable
// collections support Set; copy-on-write instances fail with
// [ErrImmutable]. A nil or empty key appends under the next integer key.
func (c *Collection) Set(key, value any) error {
	if !c.mutable {
		return ErrImmutable
	}
	if err := c.validate(key, value); err != nil {
		return err
	}
	k := normalizeKey(key)
	if k == "" {
		c.entries = append(c.entries, Entry{Key: c.entries.nextIndex(), Value: value})
		return nil
	}
	if pos, ok := c.entries.find(k); ok {
		c.entries[pos].Value = value
		return nil
	}
	c.entries = append(c.entries, Entry{Key: k, Value: value})
	return nil
}

// Unset removes the entry under key, if present. Remaining keys keep their
// identity (integer keys become sparse rather than being renumbered).
func (c *Collection) Unset(key any) *Collection {
	pos, ok := c.entries.find(normalizeKey(key))
	if !ok {
		return c
	}
	es := c.entries.clone()
	es = append(es[:pos], es[pos+1:]...)
	return c.apply(es)
}

// Append validates value and adds it at the end under the next integer key.
func (c *Collection) Append(value any) (*Collection, error) {
	if err := c.validate(nil, value); err != nil {
		return nil, err
	}
	es := append(c.entries.clone(), Entry{Key: c.entries.nextIndex(), Value: value})
	return c.apply(es), nil
}

// Prepend validates value and inserts it at the front under the next
// integer key, preserving the relative order of the rest.
func (c *Collection) Prepend(value any) (*Collection, error) {
	if err := c.validate(nil, value); err != nil {
		return nil, err
	}
	es := make(entries, 0, len(c.entries)+1)
	es = append(es, Entry{Key: c.entries.nextIndex(), Value: value})
	es = append(es, c.entries...)
	return c.apply(es), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Filter keeps the entries whose value satisfies fn. Keys are preserved.
// This is the primitive beneath the whole where-family.
func (c *Collection) Filter(fn func(any) bool) *Collection {
	kept := make(entries, 0, len(c.entries))
	for _, e := range c.entries {
		if fn(e.Value) {
			kept = append(kept, e)
		}
	}
	return c.apply(kept)
}

// Reject drops the entries whose value satisfies fn. It is the complement
// of [Collection.Filter].
func (c *Collection) Reject(fn func(any) bool) *Collection {
	return c.Filter(func(v any) bool { return !fn(v) })
}
