package item_test

import (
	"fmt"
	"testing"

	"github.com/hasbyte1/go-typed-collection/item"
)

type user struct {
	Name string
	Age  int
}

type temperature float64

func (t temperature) String() string { return fmt.Sprintf("%.1f°C", float64(t)) }

func TestTypeOfScalars(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, item.TypeNull},
		{"hi", item.TypeString},
		{42, item.TypeInteger},
		{int64(42), item.TypeInteger},
		{uint8(7), item.TypeInteger},
		{3.14, item.TypeFloat},
		{true, item.TypeBoolean},
		{[]any{1, 2}, item.TypeArray},
		{map[string]any{}, item.TypeArray},
		{func() {}, item.TypeCallable},
	}
	for _, c := range cases {
		if got := item.TypeOf(c.in); got != c.want {
			t.Fatalf("TypeOf(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTypeOfStructs(t *testing.T) {
	if got := item.TypeOf(user{}); got != "item_test.user" {
		t.Fatalf("TypeOf(user{}) = %q", got)
	}
	// Pointers to structs report the struct type, not the pointer type.
	if got := item.TypeOf(&user{}); got != "item_test.user" {
		t.Fatalf("TypeOf(&user{}) = %q", got)
	}
}

func TestShapeOf(t *testing.T) {
	if got := item.ShapeOf(map[string]any{}); got != item.ShapeMapping {
		t.Fatalf("map shape = %v", got)
	}
	if got := item.ShapeOf(user{}); got != item.ShapeObject {
		t.Fatalf("struct shape = %v", got)
	}
	if got := item.ShapeOf(&user{}); got != item.ShapeObject {
		t.Fatalf("struct pointer shape = %v", got)
	}
	if got := item.ShapeOf("hi"); got != item.ShapeScalar {
		t.Fatalf("string shape = %v", got)
	}
	if got := item.ShapeOf(nil); got != item.ShapeScalar {
		t.Fatalf("nil shape = %v", got)
	}
	if got := item.ShapeOf([]any{1}); got != item.ShapeInvalid {
		t.Fatalf("slice shape = %v", got)
	}
}

func TestStringable(t *testing.T) {
	for _, v := range []any{nil, "s", 1, 2.5, true, temperature(21)} {
		if !item.Stringable(v) {
			t.Fatalf("Stringable(%v) should be true", v)
		}
	}
	if item.Stringable(user{}) {
		t.Fatal("struct should not be stringable")
	}
	if item.Stringable([]any{1}) {
		t.Fatal("slice should not be stringable")
	}
}

func TestString(t *testing.T) {
	s, err := item.String(temperature(21))
	if err != nil {
		t.Fatal(err)
	}
	if s != "21.0°C" {
		t.Fatalf("String(temperature) = %q", s)
	}
	if _, err := item.String(user{}); err == nil {
		t.Fatal("String(struct) should fail")
	}
}
