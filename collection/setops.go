package collection

import (
	"github.com/hasbyte1/go-typed-collection/compare"
)

// Comparator orders two values: negative when a sorts before b, zero when
// they are equal, positive otherwise. The set operations treat zero as
// membership.
type Comparator func(a, b any) int

// Diff returns the entries of c whose values do not appear in other.
//
// With checkType=true a mismatch between the two collections' expected
// types fails with [ErrCollectionTypeMismatch] before any entries are
// compared. With checkType=false mismatched inputs are allowed and the
// result's expected type degrades to Any. An optional comparator overrides
// the natural one (stringables by natural order, objects by identity,
// mixed underlying types never equal).
func (c *Collection) Diff(other *Collection, checkType bool, comparator ...Comparator) (*Collection, error) {
	return c.setOp(other, checkType, false, comparator...)
}

// Intersect returns the entries of c whose values also appear in other.
// Type checking and comparator semantics match [Collection.Diff].
func (c *Collection) Intersect(other *Collection, checkType bool, comparator ...Comparator) (*Collection, error) {
	return c.setOp(other, checkType, true, comparator...)
}

// DiffAssoc returns the entries of c whose key/value pair is not mirrored
// in other: the key is absent there, or present with a different value.
func (c *Collection) DiffAssoc(other *Collection, checkType bool, comparator ...Comparator) (*Collection, error) {
	return c.assocOp(other, checkType, false, comparator...)
}

// IntersectAssoc returns the entries of c whose key/value pair appears
// identically in other.
func (c *Collection) IntersectAssoc(other *Collection, checkType bool, comparator ...Comparator) (*Collection, error) {
	return c.assocOp(other, checkType, true, comparator...)
}

// Merge concatenates other onto c. String keys present in both take
// other's value in their original position; integer keys are renumbered
// sequentially across both operands. With checkType=true mismatched
// expected types fail with [ErrCollectionTypeMismatch]; with
// checkType=false the result degrades to Any on mismatch.
func (c *Collection) Merge(other *Collection, checkType bool) (*Collection, error) {
	if err := c.checkPair(other, checkType); err != nil {
		return nil, err
	}
	out := make(entries, 0, len(c.entries)+len(other.entries))
	next := 0
	add := func(e Entry) {
		if _, isInt := e.Key.(int); isInt {
			out = append(out, Entry{Key: next, Value: e.Value})
			next++
			return
		}
		if pos, ok := out.find(e.Key); ok {
			out[pos].Value = e.Value
			return
		}
		out = append(out, e)
	}
	for _, e := range c.entries {
		add(e)
	}
	for _, e := range other.entries {
		add(e)
	}
	return c.applyDegraded(other, out), nil
}

// Combine replaces the collection's keys with the supplied key sequence,
// pairing by position. Fails with [ErrMismatchedLengths] when the lengths
// differ; truncation would silently drop entries.
func (c *Collection) Combine(keys []any) (*Collection, error) {
	if len(keys) != len(c.entries) {
		return nil, ErrMismatchedLengths
	}
	out := make(entries, 0, len(c.entries))
	for i, e := range c.entries {
		key := normalizeKey(keys[i])
		if pos, ok := out.find(key); ok {
			out[pos].Value = e.Value
			continue
		}
		out = append(out, Entry{Key: key, Value: e.Value})
	}
	return c.apply(out), nil
}

func (c *Collection) setOp(other *Collection, checkType, keepPresent bool, comparator ...Comparator) (*Collection, error) {
	if err := c.checkPair(other, checkType); err != nil {
		return nil, err
	}
	cmpFn := pickComparator(comparator)
	kept := make(entries, 0, len(c.entries))
	for _, e := range c.entries {
		present := false
		for _, o := range other.entries {
			if cmpFn(e.Value, o.Value) == 0 {
				present = true
				break
			}
		}
		if present == keepPresent {
			kept = append(kept, e)
		}
	}
	return c.applyDegraded(other, kept), nil
}

func (c *Collection) assocOp(other *Collection, checkType, keepMatching bool, comparator ...Comparator) (*Collection, error) {
	if err := c.checkPair(other, checkType); err != nil {
		return nil, err
	}
	cmpFn := pickComparator(comparator)
	kept := make(entries, 0, len(c.entries))
	for _, e := range c.entries {
		pos, ok := other.entries.find(e.Key)
		match := ok && cmpFn(e.Value, other.entries[pos].Value) == 0
		if match == keepMatching {
			kept = append(kept, e)
		}
	}
	return c.applyDegraded(other, kept), nil
}

func (c *Collection) checkPair(other *Collection, checkType bool) error {
	if checkType && !c.sameType(other) {
		return &PairTypeError{Left: c.typeLabel(), Right: other.typeLabel()}
	}
	return nil
}

// applyDegraded applies the mutation strategy and collapses the result's
// expected type to Any when the operands' types differ.
func (c *Collection) applyDegraded(other *Collection, es entries) *Collection {
	res := c.apply(es)
	if !c.sameType(other) {
		res.expected = Any
		res.literal = false
	}
	return res
}

func pickComparator(comparator []Comparator) Comparator {
	if len(comparator) > 0 && comparator[0] != nil {
		return comparator[0]
	}
	return compare.Natural
}
