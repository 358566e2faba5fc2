package collection

import (
	"errors"

	"github.com/hasbyte1/go-typed-collection/compare"
	"github.com/hasbyte1/go-typed-collection/item"
)

// Unique removes duplicate values, keeping the first occurrence of each in
// insertion order. Distinctness is loose equality by default; strict=true
// requires matching dynamic types and keeps string case significant.
func (c *Collection) Unique(strict bool) *Collection {
	return c.UniqueFunc(func(v any) any { return v }, strict)
}

// UniqueBy dedupes on the value under the (possibly dotted) column path.
// Stringable items stand for themselves regardless of the column. When the
// path cannot be resolved on an item, failOnMissing=true aborts with the
// field error; failOnMissing=false keeps that item unconditionally.
func (c *Collection) UniqueBy(column string, strict, failOnMissing bool) (*Collection, error) {
	seen := make([]any, 0, len(c.entries))
	kept := make(entries, 0, len(c.entries))
	for _, e := range c.entries {
		key, err := dedupKey(e.Value, column)
		if err != nil {
			if failOnMissing || !errors.Is(err, item.ErrFieldNotFound) {
				return nil, err
			}
			kept = append(kept, e)
			continue
		}
		if !seenBefore(seen, key, strict) {
			seen = append(seen, key)
			kept = append(kept, e)
		}
	}
	return c.apply(kept), nil
}

// UniqueFunc dedupes on a caller-computed key.
func (c *Collection) UniqueFunc(key func(value any) any, strict bool) *Collection {
	seen := make([]any, 0, len(c.entries))
	kept := make(entries, 0, len(c.entries))
	for _, e := range c.entries {
		k := key(e.Value)
		if !seenBefore(seen, k, strict) {
			seen = append(seen, k)
			kept = append(kept, e)
		}
	}
	return c.apply(kept)
}

func dedupKey(v any, column string) (any, error) {
	if column == "" || item.Stringable(v) {
		return v, nil
	}
	return item.ExtractDotted(v, column)
}

func seenBefore(seen []any, key any, strict bool) bool {
	for _, s := range seen {
		if strict {
			if compare.Strict(key, s) {
				return true
			}
		} else if compare.Loose(key, s) {
			return true
		}
	}
	return false
}
