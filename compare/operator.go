package compare

import (
	"errors"
	"fmt"
	"strings"
)

// Operator enumerates the supported comparison operators.
// Modelling them as a closed enum (rather than free-form strings) keeps
// evaluation exhaustiveness checkable.
type Operator int

const (
	// Equal is loose, type-coercing equality ("=", "==").
	Equal Operator = iota
	// EqualStrict requires matching dynamic types ("===").
	EqualStrict
	// NotEqual is strict inequality ("!=", "<>", "!==").
	NotEqual
	GreaterThan
	GreaterOrEqual
	LessThan
	LessOrEqual
	// Between matches lower <= actual <= upper.
	Between
	NotBetween
	// In matches membership in a value set.
	In
	NotIn
	// Contains matches a substring anywhere ("like", "%like%").
	Contains
	NotContains
	// StartsWith matches a leading substring ("like%").
	StartsWith
	NotStartsWith
	// EndsWith matches a trailing substring ("%like").
	EndsWith
	NotEndsWith
)

var operatorNames = map[Operator]string{
	Equal:          "=",
	EqualStrict:    "===",
	NotEqual:       "!=",
	GreaterThan:    ">",
	GreaterOrEqual: ">=",
	LessThan:       "<",
	LessOrEqual:    "<=",
	Between:        "between",
	NotBetween:     "not between",
	In:             "in",
	NotIn:          "not in",
	Contains:       "%like%",
	NotContains:    "%not like%",
	StartsWith:     "like%",
	NotStartsWith:  "not like%",
	EndsWith:       "%like",
	NotEndsWith:    "%not like",
}

// String returns the canonical caller-facing form of the operator.
func (op Operator) String() string {
	if s, ok := operatorNames[op]; ok {
		return s
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// ErrUnknownOperator is returned by [Parse] for unrecognised operator strings.
var ErrUnknownOperator = errors.New("compare: unknown operator")

// Parse maps an operator string to its [Operator]. Matching is
// case-insensitive and tolerates underscores for spaces ("not_between").
func Parse(s string) (Operator, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", " ") {
	case "=", "==", "eq":
		return Equal, nil
	case "===":
		return EqualStrict, nil
	case "!=", "<>", "!==", "ne":
		return NotEqual, nil
	case ">", "gt":
		return GreaterThan, nil
	case ">=", "gte":
		return GreaterOrEqual, nil
	case "<", "lt":
		return LessThan, nil
	case "<=", "lte":
		return LessOrEqual, nil
	case "between":
		return Between, nil
	case "not between":
		return NotBetween, nil
	case "in":
		return In, nil
	case "not in":
		return NotIn, nil
	case "like", "%like%", "contains":
		return Contains, nil
	case "not like", "%not like%", "not contains":
		return NotContains, nil
	case "like%", "starts with":
		return StartsWith, nil
	case "not like%", "not starts with":
		return NotStartsWith, nil
	case "%like", "ends with":
		return EndsWith, nil
	case "%not like", "not ends with":
		return NotEndsWith, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, s)
}

// FromPattern picks the substring operator from the wildcard position(s)
// of a LIKE pattern and returns it with the wildcards stripped:
//
//	"%o"  → EndsWith,   "o"
//	"o%"  → StartsWith, "o"
//	"%o%" → Contains,   "o"
//	"o"   → Contains,   "o"
func FromPattern(pattern string) (Operator, string) {
	leading := strings.HasPrefix(pattern, "%")
	trailing := strings.HasSuffix(pattern, "%") && len(pattern) > 1
	needle := strings.Trim(pattern, "%")
	switch {
	case leading && !trailing:
		return EndsWith, needle
	case trailing && !leading:
		return StartsWith, needle
	default:
		return Contains, needle
	}
}

// Negate returns the logical complement of op.
func (op Operator) Negate() Operator {
	switch op {
	case Equal, EqualStrict:
		return NotEqual
	case NotEqual:
		return Equal
	case GreaterThan:
		return LessOrEqual
	case GreaterOrEqual:
		return LessThan
	case LessThan:
		return GreaterOrEqual
	case LessOrEqual:
		return GreaterThan
	case Between:
		return NotBetween
	case NotBetween:
		return Between
	case In:
		return NotIn
	case NotIn:
		return In
	case Contains:
		return NotContains
	case NotContains:
		return Contains
	case StartsWith:
		return NotStartsWith
	case NotStartsWith:
		return StartsWith
	case EndsWith:
		return NotEndsWith
	case NotEndsWith:
		return EndsWith
	}
	return op
}
