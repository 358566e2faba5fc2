package collection

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"

	"github.com/hasbyte1/go-typed-collection/item"
)

// ToArray returns the collection's plain ordered key/value form. Nested
// collections and [item.Arrayable] values are converted recursively, so
// the result contains only plain data. Round-trips through [FromEntries].
func (c *Collection) ToArray() []Entry {
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		out[i] = Entry{Key: e.Key, Value: convertValue(e.Value)}
	}
	return out
}

// ToValues returns the value sequence as a plain slice, insertion order
// preserved, without recursive conversion.
func (c *Collection) ToValues() []any { return c.entries.values() }

// ToMap returns the entries as a map with stringified keys. Insertion
// order is necessarily lost; use [Collection.ToArray] when order matters.
func (c *Collection) ToMap() map[string]any {
	out := make(map[string]any, len(c.entries))
	for _, e := range c.entries {
		out[cast.ToString(e.Key)] = convertValue(e.Value)
	}
	return out
}

// ToJSON serialises the collection: a JSON array when the keys are the
// dense sequence 0..n-1, otherwise a JSON object in insertion order.
func (c *Collection) ToJSON() ([]byte, error) {
	if c.isList() {
		return json.Marshal(c.entries.values())
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(cast.ToString(e.Key))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler so nested collections serialise
// through [Collection.ToJSON].
func (c *Collection) MarshalJSON() ([]byte, error) { return c.ToJSON() }

// String returns a JSON representation. It implements fmt.Stringer.
func (c *Collection) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", []Entry(c.entries))
	}
	return string(b)
}

// isList reports whether the keys are exactly 0..n-1 in order.
func (c *Collection) isList() bool {
	for i, e := range c.entries {
		if k, ok := e.Key.(int); !ok || k != i {
			return false
		}
	}
	return true
}

func convertValue(v any) any {
	switch t := v.(type) {
	case *Collection:
		return t.ToArray()
	case item.Arrayable:
		return t.ToArray()
	}
	return v
}
