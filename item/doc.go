// Package item classifies arbitrary values for use inside typed
// collections and resolves named fields out of them.
//
// # Type tags
//
// [TypeOf] maps a value to the tag a collection validates against: one of
// the scalar tags ([TypeString], [TypeInteger], [TypeFloat], [TypeBoolean],
// [TypeNull], [TypeArray], [TypeCallable]) or, for structured values, the
// concrete Go type name as reported by reflect.
//
// # Item shapes
//
// Field extraction dispatches over a closed set of shapes rather than ad hoc
// type switches:
//
//   - [ShapeMapping]     — a map; fields are looked up as keys
//   - [ShapeObject]      — a struct or pointer to struct; fields are exported
//     struct fields or zero-argument methods
//   - [ShapeConvertible] — a value implementing [Arrayable]; fields are
//     looked up in its array form
//   - [ShapeScalar]      — a bare stringable value; it has no fields and
//     stands for itself
//
// [Extract] resolves a single field, [ExtractDotted] a period-delimited
// path ("user.address.city"), descending one shape at a time.
package item
