// Package compare implements the comparison sublanguage used by the
// collection where-family: a closed set of operators ([Operator]), parsing
// from their caller-facing string forms ([Parse], [FromPattern]), and a
// single evaluation entry point ([Evaluate]).
//
// # Loose vs strict
//
// By default comparisons are loose, mirroring type-coercing equality in
// dynamically typed languages: "10" equals 10, and string comparisons are
// case-insensitive (both operands are lower-cased first). Passing
// strict=true to [Evaluate] switches equality to structural equality over
// matching dynamic types and keeps string case significant.
package compare
