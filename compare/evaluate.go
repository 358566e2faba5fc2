package compare

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/hasbyte1/go-typed-collection/item"
)

// Sentinel errors returned by [Evaluate].
var (
	// ErrNotComparable is returned when the two operands admit neither a
	// numeric nor a string comparison.
	ErrNotComparable = errors.New("compare: values are not comparable")

	// ErrInvalidOperand is returned when the right-hand operand does not
	// fit the operator (e.g. Between without a two-element bound pair).
	ErrInvalidOperand = errors.New("compare: invalid operand for operator")
)

// Evaluate reports whether actual satisfies op against operand.
//
// Operand conventions: Between/NotBetween expect a two-element []any
// holding the lower and upper bound; In/NotIn expect a slice of candidate
// values; the substring operators expect a stringable needle.
//
// strict disables lower-casing for string comparisons and upgrades Equal
// to structural equality over matching dynamic types.
func Evaluate(op Operator, actual, operand any, strict bool) (bool, error) {
	if strict && op == Equal {
		op = EqualStrict
	}
	switch op {
	case Equal:
		return Loose(actual, operand), nil
	case EqualStrict:
		return Strict(actual, operand), nil
	case NotEqual:
		return !Strict(actual, operand), nil

	case GreaterThan, GreaterOrEqual, LessThan, LessOrEqual:
		c, err := order(actual, operand, strict)
		if err != nil {
			return false, err
		}
		switch op {
		case GreaterThan:
			return c > 0, nil
		case GreaterOrEqual:
			return c >= 0, nil
		case LessThan:
			return c < 0, nil
		default:
			return c <= 0, nil
		}

	case Between, NotBetween:
		lower, upper, err := bounds(operand)
		if err != nil {
			return false, err
		}
		lo, err := order(actual, lower, strict)
		if err != nil {
			return false, err
		}
		hi, err := order(actual, upper, strict)
		if err != nil {
			return false, err
		}
		in := lo >= 0 && hi <= 0
		return in == (op == Between), nil

	case In, NotIn:
		set, err := valueSet(operand)
		if err != nil {
			return false, err
		}
		found := false
		for _, member := range set {
			if equal(actual, member, strict) {
				found = true
				break
			}
		}
		return found == (op == In), nil

	case Contains, NotContains, StartsWith, NotStartsWith, EndsWith, NotEndsWith:
		haystack, needle, err := stringOperands(actual, operand, strict)
		if err != nil {
			return false, err
		}
		var match bool
		switch op {
		case Contains, NotContains:
			match = strings.Contains(haystack, needle)
		case StartsWith, NotStartsWith:
			match = strings.HasPrefix(haystack, needle)
		default:
			match = strings.HasSuffix(haystack, needle)
		}
		switch op {
		case NotContains, NotStartsWith, NotEndsWith:
			return !match, nil
		}
		return match, nil
	}
	return false, fmt.Errorf("%w: %v", ErrUnknownOperator, op)
}

// Loose reports type-coercing equality: numeric values compare by value
// regardless of their Go type, strings compare case-insensitively, and
// anything else falls back to deep equality.
func Loose(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	fa, errA := toFloat(a)
	fb, errB := toFloat(b)
	if errA == nil && errB == nil {
		return fa == fb
	}
	sa, errA := cast.ToStringE(a)
	sb, errB := cast.ToStringE(b)
	if errA == nil && errB == nil {
		return strings.EqualFold(sa, sb)
	}
	return reflect.DeepEqual(a, b)
}

// Strict reports structural equality over matching dynamic types.
func Strict(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return reflect.DeepEqual(a, b)
}

// Natural is the default comparator for set algebra: stringable values
// compare by their natural string ordering, objects collapse to an opaque
// identity number, and differing underlying types never compare equal.
func Natural(a, b any) int {
	if item.Stringable(a) && item.Stringable(b) {
		sa, _ := item.String(a)
		sb, _ := item.String(b)
		return strings.Compare(sa, sb)
	}
	ta, tb := item.TypeOf(a), item.TypeOf(b)
	if ta != tb {
		return strings.Compare(ta, tb)
	}
	if ia, ib := identity(a), identity(b); ia != 0 || ib != 0 {
		switch {
		case ia < ib:
			return -1
		case ia > ib:
			return 1
		}
		return 0
	}
	if reflect.DeepEqual(a, b) {
		return 0
	}
	return strings.Compare(fmt.Sprintf("%v", a), fmt.Sprintf("%v", b))
}

// identity returns a stable opaque number for reference values, 0 otherwise.
func identity(v any) uintptr {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.Pointer()
	}
	return 0
}

func equal(a, b any, strict bool) bool {
	if strict {
		return Strict(a, b)
	}
	return Loose(a, b)
}

// order compares a and b, numerically when both coerce to numbers, else as
// strings (case-insensitively unless strict).
func order(a, b any, strict bool) (int, error) {
	if a == nil && b == nil {
		return 0, nil
	}
	fa, errA := toFloat(a)
	fb, errB := toFloat(b)
	if errA == nil && errB == nil {
		switch {
		case fa < fb:
			return -1, nil
		case fa > fb:
			return 1, nil
		}
		return 0, nil
	}
	sa, errA := cast.ToStringE(a)
	sb, errB := cast.ToStringE(b)
	if errA != nil || errB != nil {
		return 0, fmt.Errorf("%w: %s and %s", ErrNotComparable, item.TypeOf(a), item.TypeOf(b))
	}
	if !strict {
		sa, sb = strings.ToLower(sa), strings.ToLower(sb)
	}
	return strings.Compare(sa, sb), nil
}

// toFloat coerces genuinely numeric values (including numeric strings) to
// float64. Booleans and non-numeric strings are rejected; cast alone would
// coerce them too eagerly.
func toFloat(v any) (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: null", ErrNotComparable)
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool:
		return 0, fmt.Errorf("%w: boolean is not numeric", ErrNotComparable)
	case reflect.String:
		s, _ := cast.ToStringE(v)
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not numeric", ErrNotComparable, s)
		}
		return f, nil
	}
	return cast.ToFloat64E(v)
}

func bounds(operand any) (lower, upper any, err error) {
	rv := reflect.ValueOf(operand)
	if operand == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Len() != 2 {
		return nil, nil, fmt.Errorf("%w: between needs a [lower, upper] pair", ErrInvalidOperand)
	}
	return rv.Index(0).Interface(), rv.Index(1).Interface(), nil
}

func valueSet(operand any) ([]any, error) {
	if set, ok := operand.([]any); ok {
		return set, nil
	}
	rv := reflect.ValueOf(operand)
	if operand == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, fmt.Errorf("%w: in needs a value set", ErrInvalidOperand)
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

func stringOperands(actual, operand any, strict bool) (haystack, needle string, err error) {
	haystack, errA := cast.ToStringE(actual)
	needle, errB := cast.ToStringE(operand)
	if errA != nil || errB != nil {
		return "", "", fmt.Errorf("%w: %s and %s", ErrNotComparable, item.TypeOf(actual), item.TypeOf(operand))
	}
	if !strict {
		haystack, needle = strings.ToLower(haystack), strings.ToLower(needle)
	}
	return haystack, needle, nil
}
