package collection

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cast"

	"github.com/hasbyte1/go-typed-collection/compare"
	"github.com/hasbyte1/go-typed-collection/item"
)

// Map applies fn to every value. With checkType=true each transformed
// value must still satisfy the collection's expected type (else
// [ErrTypeMismatch]); with checkType=false the result's expected type
// becomes Any.
func (c *Collection) Map(fn func(value any) any, checkType bool) (*Collection, error) {
	out := c.entries.clone()
	for i, e := range out {
		v := fn(e.Value)
		if checkType {
			if err := c.validate(e.Key, v); err != nil {
				return nil, err
			}
		}
		out[i].Value = v
	}
	res := c.apply(out)
	if !checkType {
		res.expected = Any
		res.literal = false
	}
	return res, nil
}

// Reduce folds the values in insertion order.
func (c *Collection) Reduce(fn func(carry, value any) any, initial any) any {
	carry := initial
	for _, e := range c.entries {
		carry = fn(carry, e.Value)
	}
	return carry
}

// Sum adds all values, coercing each to a number. Fails on the first value
// that cannot be coerced.
func (c *Collection) Sum() (float64, error) {
	var sum float64
	for _, e := range c.entries {
		f, err := cast.ToFloat64E(e.Value)
		if err != nil {
			return 0, fmt.Errorf("collection: sum: %w", err)
		}
		sum += f
	}
	return sum, nil
}

// Product multiplies all values, coercing each to a number. The product of
// an empty collection is 1.
func (c *Collection) Product() (float64, error) {
	product := 1.0
	for _, e := range c.entries {
		f, err := cast.ToFloat64E(e.Value)
		if err != nil {
			return 0, fmt.Errorf("collection: product: %w", err)
		}
		product *= f
	}
	return product, nil
}

// Average returns the arithmetic mean, or 0 for an empty collection.
func (c *Collection) Average() (float64, error) {
	if len(c.entries) == 0 {
		return 0, nil
	}
	sum, err := c.Sum()
	if err != nil {
		return 0, err
	}
	return sum / float64(len(c.entries)), nil
}

// Min returns the naturally smallest value, or false when empty.
func (c *Collection) Min() (any, bool) { return c.extreme(-1) }

// Max returns the naturally largest value, or false when empty.
func (c *Collection) Max() (any, bool) { return c.extreme(1) }

func (c *Collection) extreme(sign int) (any, bool) {
	if len(c.entries) == 0 {
		return nil, false
	}
	best := c.entries[0].Value
	for _, e := range c.entries[1:] {
		if d := compare.Natural(e.Value, best); (sign < 0 && d < 0) || (sign > 0 && d > 0) {
			best = e.Value
		}
	}
	return best, true
}

// Reverse reverses the entry order. Keys keep their identity.
func (c *Collection) Reverse() *Collection {
	n := len(c.entries)
	out := make(entries, n)
	for i, e := range c.entries {
		out[n-1-i] = e
	}
	return c.apply(out)
}

// Slice returns entries starting at offset with at most length entries,
// keys preserved. A negative offset counts from the end; length -1 means
// "to the end".
func (c *Collection) Slice(offset, length int) *Collection {
	total := len(c.entries)
	if offset < 0 {
		offset = total + offset
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return c.apply(entries{})
	}
	end := total
	if length >= 0 && offset+length < total {
		end = offset + length
	}
	return c.apply(c.entries[offset:end].clone())
}

// Take returns at most n entries from the start; a negative n takes from
// the end.
func (c *Collection) Take(n int) *Collection {
	if n < 0 {
		return c.Slice(n, -1)
	}
	return c.Slice(0, n)
}

// Skip drops the first n entries.
func (c *Collection) Skip(n int) *Collection {
	if n < 0 {
		n = 0
	}
	return c.Slice(n, -1)
}

// Chunk splits the collection into consecutive sub-collections of at most
// size entries, keys preserved. The chunks are untyped (Any): a chunk is
// an array of entries, not a value of the original element type. Fails
// with [ErrInvalidChunkSize] when size <= 0.
func (c *Collection) Chunk(size int) ([]*Collection, error) {
	if size <= 0 {
		return nil, ErrInvalidChunkSize
	}
	chunks := make([]*Collection, 0, (len(c.entries)+size-1)/size)
	for i := 0; i < len(c.entries); i += size {
		end := i + size
		if end > len(c.entries) {
			end = len(c.entries)
		}
		chunk := c.derive(c.entries[i:end].clone())
		chunk.expected = Any
		chunk.literal = false
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

// Column extracts the (possibly dotted) path from every value and returns
// the results as a new untyped collection keyed 0..n-1. Fails on the first
// item where the path cannot be resolved.
func (c *Collection) Column(path string) (*Collection, error) {
	out := make([]any, 0, len(c.entries))
	for _, e := range c.entries {
		v, err := item.ExtractDotted(e.Value, path)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return New(out...), nil
}

// Implode joins the stringable values with sep. Fails on the first value
// that is not stringable.
func (c *Collection) Implode(sep string) (string, error) {
	parts := make([]string, len(c.entries))
	for i, e := range c.entries {
		s, err := item.String(e.Value)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, sep), nil
}

// Sort orders the values by less and re-indexes the result 0..n-1.
// The sort is stable. Pass nil to sort by natural order.
func (c *Collection) Sort(less func(a, b any) bool) *Collection {
	if less == nil {
		less = func(a, b any) bool { return compare.Natural(a, b) < 0 }
	}
	vals := c.entries.values()
	sort.SliceStable(vals, func(i, j int) bool { return less(vals[i], vals[j]) })
	out := make(entries, len(vals))
	for i, v := range vals {
		out[i] = Entry{Key: i, Value: v}
	}
	return c.apply(out)
}

// Contains reports whether at least one value satisfies fn.
func (c *Collection) Contains(fn func(any) bool) bool {
	for _, e := range c.entries {
		if fn(e.Value) {
			return true
		}
	}
	return false
}

// Search returns the key of the first value satisfying fn.
func (c *Collection) Search(fn func(any) bool) (any, bool) {
	for _, e := range c.entries {
		if fn(e.Value) {
			return e.Key, true
		}
	}
	return nil, false
}

// Partition splits the collection in two without touching the receiver:
// entries satisfying fn, then the rest. Both results carry the same
// expected type and mutability flags.
func (c *Collection) Partition(fn func(any) bool) (*Collection, *Collection) {
	pass := make(entries, 0)
	fail := make(entries, 0)
	for _, e := range c.entries {
		if fn(e.Value) {
			pass = append(pass, e)
		} else {
			fail = append(fail, e)
		}
	}
	return c.derive(pass), c.derive(fail)
}

// GroupBy groups entries by the key returned by fn. The group key must be
// a comparable value.
func (c *Collection) GroupBy(fn func(value any) any) map[any]*Collection {
	groups := make(map[any]*Collection)
	for _, e := range c.entries {
		k := fn(e.Value)
		if groups[k] == nil {
			groups[k] = c.derive(entries{})
		}
		groups[k].entries = append(groups[k].entries, e)
	}
	return groups
}

// When calls fn(c) if condition is true and returns the result; otherwise
// returns c unchanged.
func (c *Collection) When(condition bool, fn func(*Collection) *Collection) *Collection {
	if condition {
		return fn(c)
	}
	return c
}

// Unless calls fn(c) if condition is false; otherwise returns c.
func (c *Collection) Unless(condition bool, fn func(*Collection) *Collection) *Collection {
	return c.When(!condition, fn)
}
