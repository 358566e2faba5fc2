package compare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-typed-collection/compare"
)

func TestParse(t *testing.T) {
	cases := map[string]compare.Operator{
		"=":           compare.Equal,
		"==":          compare.Equal,
		"===":         compare.EqualStrict,
		"!=":          compare.NotEqual,
		"<>":          compare.NotEqual,
		"!==":         compare.NotEqual,
		">":           compare.GreaterThan,
		">=":          compare.GreaterOrEqual,
		"<":           compare.LessThan,
		"<=":          compare.LessOrEqual,
		"between":     compare.Between,
		"not_between": compare.NotBetween,
		"NOT BETWEEN": compare.NotBetween,
		"in":          compare.In,
		"not in":      compare.NotIn,
		"like":        compare.Contains,
		"%like%":      compare.Contains,
		"not like":    compare.NotContains,
		"like%":       compare.StartsWith,
		"%like":       compare.EndsWith,
	}
	for in, want := range cases {
		op, err := compare.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, op, in)
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := compare.Parse("~=")
	assert.ErrorIs(t, err, compare.ErrUnknownOperator)
}

func TestFromPattern(t *testing.T) {
	cases := []struct {
		pattern string
		op      compare.Operator
		needle  string
	}{
		{"%o", compare.EndsWith, "o"},
		{"o%", compare.StartsWith, "o"},
		{"%o%", compare.Contains, "o"},
		{"o", compare.Contains, "o"},
	}
	for _, c := range cases {
		op, needle := compare.FromPattern(c.pattern)
		assert.Equal(t, c.op, op, c.pattern)
		assert.Equal(t, c.needle, needle, c.pattern)
	}
}

func TestNegateIsInvolution(t *testing.T) {
	ops := []compare.Operator{
		compare.NotEqual, compare.GreaterThan, compare.GreaterOrEqual,
		compare.LessThan, compare.LessOrEqual, compare.Between,
		compare.NotBetween, compare.In, compare.NotIn, compare.Contains,
		compare.NotContains, compare.StartsWith, compare.NotStartsWith,
		compare.EndsWith, compare.NotEndsWith,
	}
	for _, op := range ops {
		assert.Equal(t, op, op.Negate().Negate(), op.String())
	}
}
