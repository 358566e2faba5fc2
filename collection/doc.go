// Package collection provides an ordered key/value collection with
// runtime-enforced element types and a predicate-based query surface,
// inspired by array-of-records semantics in dynamically typed languages.
//
// # Creating a collection
//
//	c := collection.New(1, 2, 3)                                  // untyped
//	c, err := collection.From(values, collection.Typed("integer")) // int-only
//	c, err := collection.From(values, collection.Typed(collection.Of[User]()))
//	c, err := collection.From(values, collection.Literal("ok"))   // one allowed value
//
// Every value entering the collection is validated against the expected
// type; a violation fails with [ErrTypeMismatch] (or [ErrLiteralMismatch])
// carrying the expected and actual types.
//
// # Copy-on-write vs in-place
//
// By default every mutating operation returns a new instance and leaves
// the original untouched, which makes collections safe to share across
// goroutines for reading. Constructing with [Mutable] switches the
// instance to in-place mutation: operations return the same instance and
// changes are visible through every alias. Object-valued entries are never
// deep-copied either way.
//
// # Querying
//
// The where-family filters by field values, resolving dotted paths into
// maps, structs and [item.Arrayable] values:
//
//	adults, err := users.Where("age", ">=", 18)
//	cities, err := users.Column("address.city")
//	matches, err := users.WhereLike("name", "%son")
//	firsts, err := users.UniqueBy("id", false, true)
//
// Comparisons are loose (type-coercing, case-insensitive) unless the
// strict variant is used; see the compare package for the exact operator
// semantics.
//
// # Set algebra
//
// Diff, Intersect, their Assoc variants and Merge combine two collections.
// With type checking enabled a mismatch between the operands' expected
// types fails with [ErrCollectionTypeMismatch] before any entries are
// touched; with it disabled the result's type degrades to Any.
//
// # Macros (runtime extension)
//
// Register named functions at runtime via [RegisterMacro] and call them
// through [Collection.Macro]:
//
//	collection.RegisterMacro("values", func(c *collection.Collection, _ ...any) any {
//	    return c.Values()
//	})
//	out, _ := c.Macro("values")
package collection
