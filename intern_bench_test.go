package intern_test

import (
	"fmt"
	"github.com/gostonefire/intern"
	"github.com/gostonefire/intern/hashfunc"
	"testing"
)

func benchValues(n int) []string {
	values := make([]string, n)
	for i := range values {
		values[i] = fmt.Sprintf("value-%06d", i)
	}
	return values
}

func BenchmarkStore_Intern(b *testing.B) {
	for _, size := range []int{100, 1000, 10000} {
		values := benchValues(size)

		b.Run(fmt.Sprintf("linear-%d", size), func(b *testing.B) {
			store := intern.New[string]()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				store.Intern(values[i%size])
			}
		})

		b.Run(fmt.Sprintf("indexed-%d", size), func(b *testing.B) {
			store, err := intern.NewWithConfig(intern.Config[string]{Hasher: hashfunc.XXString{}})
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				store.Intern(values[i%size])
			}
		})
	}
}

func BenchmarkStore_Contains(b *testing.B) {
	const size = 10000
	values := benchValues(size)

	b.Run("linear", func(b *testing.B) {
		store := intern.New[string]()
		for _, v := range values {
			store.Intern(v)
		}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			store.Contains(values[i%size])
		}
	})

	b.Run("indexed", func(b *testing.B) {
		store, err := intern.NewWithConfig(intern.Config[string]{Hasher: hashfunc.XXString{}})
		if err != nil {
			b.Fatal(err)
		}
		for _, v := range values {
			store.Intern(v)
		}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			store.Contains(values[i%size])
		}
	})
}
