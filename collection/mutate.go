package collection

// apply is the single mutation path used by every operation that replaces
// the entry set.
//
// Mutable collections are rewritten in place and return the same instance,
// so the change is visible through every alias. Copy-on-write collections
// return a shallow duplicate carrying the same expected type and
// mutability; the original is untouched. Object-valued entries are shared
// by reference between the two.
func (c *Collection) apply(es entries) *Collection {
	if c.mutable {
		c.entries = es
		return c
	}
	return c.derive(es)
}

// derive always duplicates, regardless of mutability. Used by operations
// that produce results without replacing the receiver's entry set
// (partitioning, chunking).
func (c *Collection) derive(es entries) *Collection {
	dup := *c
	dup.entries = es
	return &dup
}
