package collection

import (
	"github.com/hasbyte1/go-typed-collection/compare"
	"github.com/hasbyte1/go-typed-collection/item"
)

// Where filters entries through the comparison sublanguage. The argument
// list is dispatched by count:
//
//	Where(value)                    // items loosely equal to value
//	Where(column, value)            // column loosely equal to value
//	Where(column, operator, value)  // explicit operator string
//
// column may be a dotted path ("user.address.city"). Operator strings are
// the forms accepted by the compare package ("=", "===", "!=", ">", "<=",
// "between", "in", "like", "%like", "like%", and their negations).
//
// A field path that cannot be resolved on some item, or operands the
// operator cannot compare, abort the whole operation with the underlying
// error; no partial result is produced.
func (c *Collection) Where(args ...any) (*Collection, error) {
	switch len(args) {
	case 1:
		return c.whereOp("", compare.Equal, args[0], false)
	case 2:
		column, ok := args[0].(string)
		if !ok {
			return nil, ErrInvalidArguments
		}
		return c.whereOp(column, compare.Equal, args[1], false)
	case 3:
		column, colOK := args[0].(string)
		opStr, opOK := args[1].(string)
		if !colOK || !opOK {
			return nil, ErrInvalidArguments
		}
		op, err := compare.Parse(opStr)
		if err != nil {
			return nil, err
		}
		return c.whereOp(column, op, args[2], false)
	}
	return nil, ErrInvalidArguments
}

// WhereStrict is Where(column, value) with strict equality semantics:
// matching dynamic types and case-sensitive strings.
func (c *Collection) WhereStrict(column string, value any) (*Collection, error) {
	return c.whereOp(column, compare.Equal, value, true)
}

// WhereLike keeps entries whose column matches the LIKE pattern; the
// operator is chosen from the wildcard position(s) of the pattern
// ("%o" suffix match, "o%" prefix match, "%o%" or bare "o" substring).
func (c *Collection) WhereLike(column, pattern string) (*Collection, error) {
	op, needle := compare.FromPattern(pattern)
	return c.whereOp(column, op, needle, false)
}

// WhereNotLike is the complement of [Collection.WhereLike].
func (c *Collection) WhereNotLike(column, pattern string) (*Collection, error) {
	op, needle := compare.FromPattern(pattern)
	return c.whereOp(column, op.Negate(), needle, false)
}

// WhereNull keeps entries whose column resolves to nil.
func (c *Collection) WhereNull(column string) (*Collection, error) {
	return c.whereOp(column, compare.EqualStrict, nil, false)
}

// WhereNotNull keeps entries whose column resolves to a non-nil value.
func (c *Collection) WhereNotNull(column string) (*Collection, error) {
	return c.whereOp(column, compare.NotEqual, nil, false)
}

// WhereBetween keeps entries whose column lies within [lower, upper],
// bounds included.
func (c *Collection) WhereBetween(column string, lower, upper any) (*Collection, error) {
	return c.whereOp(column, compare.Between, []any{lower, upper}, false)
}

// WhereNotBetween keeps entries whose column lies outside [lower, upper].
func (c *Collection) WhereNotBetween(column string, lower, upper any) (*Collection, error) {
	return c.whereOp(column, compare.NotBetween, []any{lower, upper}, false)
}

// WhereIn keeps entries whose column is loosely equal to a member of values.
func (c *Collection) WhereIn(column string, values []any) (*Collection, error) {
	return c.whereOp(column, compare.In, values, false)
}

// WhereNotIn keeps entries whose column matches no member of values.
func (c *Collection) WhereNotIn(column string, values []any) (*Collection, error) {
	return c.whereOp(column, compare.NotIn, values, false)
}

// whereOp builds the keep/drop decision per entry from the field extractor
// and the comparator engine, then applies it through the mutation strategy.
func (c *Collection) whereOp(column string, op compare.Operator, operand any, strict bool) (*Collection, error) {
	kept := make(entries, 0, len(c.entries))
	for _, e := range c.entries {
		actual, err := item.ExtractDotted(e.Value, column)
		if err != nil {
			return nil, err
		}
		ok, err := compare.Evaluate(op, actual, operand, strict)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, e)
		}
	}
	return c.apply(kept), nil
}
