package collection

import (
	"reflect"

	"github.com/spf13/cast"
)

// Entry is one key/value pair stored in a collection.
//
// Keys are ints or strings. Insertion order is significant and integer keys
// may be sparse (non-contiguous) after removals; they are never renumbered
// implicitly.
type Entry struct {
	Key   any
	Value any
}

// entries is the ordered backing store. Key lookup is a linear scan; the
// library targets small record sets, not large-N search.
type entries []Entry

func (es entries) find(key any) (int, bool) {
	for i, e := range es {
		if e.Key == key {
			return i, true
		}
	}
	return 0, false
}

// nextIndex returns the integer key an appended entry receives: one past
// the largest integer key seen so far.
func (es entries) nextIndex() int {
	next := 0
	for _, e := range es {
		if k, ok := e.Key.(int); ok && k >= next {
			next = k + 1
		}
	}
	return next
}

func (es entries) clone() entries {
	out := make(entries, len(es))
	copy(out, es)
	return out
}

func (es entries) keys() []any {
	out := make([]any, len(es))
	for i, e := range es {
		out[i] = e.Key
	}
	return out
}

func (es entries) values() []any {
	out := make([]any, len(es))
	for i, e := range es {
		out[i] = e.Value
	}
	return out
}

// normalizeKey coerces a candidate key to int or string.
func normalizeKey(key any) any {
	switch k := key.(type) {
	case int:
		return k
	case string:
		return k
	case nil:
		return ""
	}
	rv := reflect.ValueOf(key)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint())
	}
	return cast.ToString(key)
}
