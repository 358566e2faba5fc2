package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-typed-collection/collection"
	"github.com/hasbyte1/go-typed-collection/item"
)

func people() *collection.Collection {
	return collection.New(
		map[string]any{"name": "Theo", "age": 30, "score": 5},
		map[string]any{"name": "Bob", "age": 30, "score": 15},
		map[string]any{"name": "Ann", "age": 41, "score": 25},
	)
}

func names(t *testing.T, c *collection.Collection) []any {
	t.Helper()
	col, err := c.Column("name")
	require.NoError(t, err)
	return col.ToValues()
}

func TestWhereArgumentDispatch(t *testing.T) {
	// Two arguments are shorthand for equality.
	short, err := people().Where("age", 30)
	require.NoError(t, err)
	full, err := people().Where("age", "=", 30)
	require.NoError(t, err)
	assert.Equal(t, names(t, full), names(t, short))
	assert.Equal(t, []any{"Theo", "Bob"}, names(t, short))

	// One argument matches the items themselves.
	scalars := collection.New(5, 3, 5, 9)
	out, err := scalars.Where(5)
	require.NoError(t, err)
	assert.Equal(t, []any{5, 5}, out.ToValues())
}

func TestWhereOperators(t *testing.T) {
	out, err := people().Where("age", ">", 30)
	require.NoError(t, err)
	assert.Equal(t, []any{"Ann"}, names(t, out))

	out, err = people().Where("name", "!=", "Bob")
	require.NoError(t, err)
	assert.Equal(t, []any{"Theo", "Ann"}, names(t, out))

	out, err = people().Where("age", "in", []any{41, 50})
	require.NoError(t, err)
	assert.Equal(t, []any{"Ann"}, names(t, out))
}

func TestWhereBadArguments(t *testing.T) {
	_, err := people().Where()
	assert.ErrorIs(t, err, collection.ErrInvalidArguments)
	_, err = people().Where(1, 2, 3, 4)
	assert.ErrorIs(t, err, collection.ErrInvalidArguments)
	_, err = people().Where("age", "~", 30)
	assert.Error(t, err)
}

func TestWhereMissingFieldAborts(t *testing.T) {
	_, err := people().Where("salary", 10)
	assert.ErrorIs(t, err, item.ErrFieldNotFound)
}

func TestWhereStrict(t *testing.T) {
	c := collection.New(
		map[string]any{"name": "Al"},
		map[string]any{"name": "al"},
	)
	loose, err := c.Where("name", "Al")
	require.NoError(t, err)
	assert.Equal(t, 2, loose.Count())

	strict, err := c.WhereStrict("name", "Al")
	require.NoError(t, err)
	assert.Equal(t, 1, strict.Count())
}

func TestWhereLike(t *testing.T) {
	out, err := people().WhereLike("name", "%o")
	require.NoError(t, err)
	assert.Equal(t, []any{"Theo"}, names(t, out), "leading wildcard is a suffix match")

	out, err = people().WhereLike("name", "%o%")
	require.NoError(t, err)
	assert.Equal(t, []any{"Theo", "Bob"}, names(t, out))

	out, err = people().WhereLike("name", "b%")
	require.NoError(t, err)
	assert.Equal(t, []any{"Bob"}, names(t, out), "pattern matching is case-insensitive")

	out, err = people().WhereNotLike("name", "%o%")
	require.NoError(t, err)
	assert.Equal(t, []any{"Ann"}, names(t, out))
}

func TestWhereBetween(t *testing.T) {
	scores := collection.New(
		map[string]any{"score": 5},
		map[string]any{"score": 15},
		map[string]any{"score": 25},
		map[string]any{"score": 10},
		map[string]any{"score": 20},
	)
	out, err := scores.WhereBetween("score", 10, 20)
	require.NoError(t, err)
	col, err := out.Column("score")
	require.NoError(t, err)
	assert.Equal(t, []any{15, 10, 20}, col.ToValues())

	out, err = scores.WhereNotBetween("score", 10, 20)
	require.NoError(t, err)
	col, err = out.Column("score")
	require.NoError(t, err)
	assert.Equal(t, []any{5, 25}, col.ToValues())
}

func TestWhereNull(t *testing.T) {
	c := collection.New(
		map[string]any{"name": "Al", "email": nil},
		map[string]any{"name": "Bo", "email": "bo@example.com"},
	)
	out, err := c.WhereNull("email")
	require.NoError(t, err)
	assert.Equal(t, []any{"Al"}, names(t, out))

	out, err = c.WhereNotNull("email")
	require.NoError(t, err)
	assert.Equal(t, []any{"Bo"}, names(t, out))
}

func TestWhereIn(t *testing.T) {
	out, err := people().WhereIn("name", []any{"ann", "bob"})
	require.NoError(t, err)
	assert.Equal(t, []any{"Bob", "Ann"}, names(t, out))

	out, err = people().WhereNotIn("name", []any{"ann", "bob"})
	require.NoError(t, err)
	assert.Equal(t, []any{"Theo"}, names(t, out))
}

func TestWhereOnStructs(t *testing.T) {
	c := collection.New(user{1, "Al"}, user{2, "Bo"}, user{3, "Al"})
	out, err := c.Where("Name", "Al")
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count())

	// Lower-cased field names resolve too.
	out, err = c.Where("name", "Al")
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count())
}

func TestWhereDottedPath(t *testing.T) {
	c := collection.New(
		map[string]any{"name": "Al", "address": map[string]any{"city": "London"}},
		map[string]any{"name": "Bo", "address": map[string]any{"city": "Paris"}},
	)
	out, err := c.Where("address.city", "london")
	require.NoError(t, err)
	assert.Equal(t, []any{"Al"}, names(t, out))
}
