package collection_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-typed-collection/collection"
)

type badge struct {
	label string
	level int
}

func (b badge) ToArray() map[string]any {
	return map[string]any{"label": b.label, "level": b.level}
}

func TestToArrayRoundTrip(t *testing.T) {
	src := []collection.Entry{
		{Key: "a", Value: 1},
		{Key: 7, Value: "x"},
		{Key: "b", Value: 2},
	}
	c, err := collection.FromEntries(src)
	if err != nil {
		t.Fatal(err)
	}
	out := c.ToArray()
	if diff := cmp.Diff(src, out); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	// And back again.
	c2, err := collection.FromEntries(out)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(c.All(), c2.All()); diff != "" {
		t.Fatalf("second trip mismatch (-want +got):\n%s", diff)
	}
}

func TestToArrayConvertsNestedValues(t *testing.T) {
	c := collection.New(badge{label: "gold", level: 3})
	got := c.ToArray()[0].Value
	want := map[string]any{"label": "gold", "level": 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("nested conversion (-want +got):\n%s", diff)
	}

	nested := collection.New(collection.New(1, 2))
	inner := nested.ToArray()[0].Value.([]collection.Entry)
	if len(inner) != 2 || inner[0].Value != 1 {
		t.Fatalf("nested collection = %v", inner)
	}
}

func TestToJSONList(t *testing.T) {
	b, err := collection.New(1, 2, 3).ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "[1,2,3]" {
		t.Fatalf("ToJSON = %s", b)
	}
}

func TestToJSONObjectKeepsOrder(t *testing.T) {
	c, err := collection.FromEntries([]collection.Entry{
		{Key: "z", Value: 1},
		{Key: "a", Value: 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"z":1,"a":2}` {
		t.Fatalf("ToJSON = %s", b)
	}
}

func TestToJSONSparseKeysBecomeObject(t *testing.T) {
	c := collection.New("a", "b", "c").Unset(1)
	b, err := c.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"0":"a","2":"c"}` {
		t.Fatalf("ToJSON = %s", b)
	}
}

func TestToMap(t *testing.T) {
	c, err := collection.FromEntries([]collection.Entry{
		{Key: 0, Value: "x"},
		{Key: "k", Value: "y"},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"0": "x", "k": "y"}
	if diff := cmp.Diff(want, c.ToMap()); diff != "" {
		t.Fatalf("ToMap (-want +got):\n%s", diff)
	}
}

func TestString(t *testing.T) {
	if s := collection.New(1, 2).String(); s != "[1,2]" {
		t.Fatalf("String = %q", s)
	}
}
