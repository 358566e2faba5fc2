package collection_test

import (
	"testing"

	"github.com/hasbyte1/go-typed-collection/collection"
)

// makeInts creates an integer-typed collection of size n for benchmarks.
func makeInts(b *testing.B, n int) *collection.Collection {
	values := make([]any, n)
	for i := range values {
		values[i] = i + 1
	}
	c, err := collection.From(values, collection.Typed("integer"))
	if err != nil {
		b.Fatal(err)
	}
	return c
}

func makeRecords(n int) *collection.Collection {
	values := make([]any, n)
	for i := range values {
		values[i] = map[string]any{"id": i % 100, "score": i}
	}
	return collection.New(values...)
}

func BenchmarkConstructTyped(b *testing.B) {
	values := make([]any, 1_000)
	for i := range values {
		values[i] = i
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := collection.From(values, collection.Typed("integer")); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFilter(b *testing.B) {
	c := makeInts(b, 10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Filter(func(v any) bool { return v.(int)%2 == 0 })
	}
}

func BenchmarkWhere(b *testing.B) {
	c := makeRecords(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Where("score", ">", 500); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUniqueBy(b *testing.B) {
	c := makeRecords(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.UniqueBy("id", true, true); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAppendMutable(b *testing.B) {
	c, err := collection.From(nil, collection.Typed("integer"), collection.Mutable())
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Append(i); err != nil {
			b.Fatal(err)
		}
	}
}
