//go:build unit

package chunk

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("creates an empty chunk with given capacity", func(t *testing.T) {
		// Execute
		c := New[int](32)

		// Check
		assert.Equal(t, 0, c.Len(), "chunk starts empty")
		assert.Equal(t, 32, c.Cap(), "correct capacity")
	})
}

func TestChunk_TryAppend(t *testing.T) {
	t.Run("appends values up to capacity", func(t *testing.T) {
		// Prepare
		c := New[int](4)

		// Execute and Check
		for i := 0; i < 4; i++ {
			ref, ok := c.TryAppend(i * 10)
			assert.Truef(t, ok, "value #%d is stored", i)
			assert.Equalf(t, i*10, *ref, "ref #%d addresses the stored copy", i)
		}

		assert.Equal(t, 4, c.Len(), "all slots occupied")
	})

	t.Run("rejects values when full", func(t *testing.T) {
		// Prepare
		c := New[int](2)
		_, _ = c.TryAppend(1)
		_, _ = c.TryAppend(2)

		// Execute
		ref, ok := c.TryAppend(3)

		// Check
		assert.False(t, ok, "full chunk rejects the value")
		assert.Nil(t, ref, "no address is handed out")
		assert.Equal(t, 2, c.Len(), "chunk is left untouched")
	})

	t.Run("keeps addresses stable while filling up", func(t *testing.T) {
		// Prepare
		c := New[int](32)

		// Execute
		refs := make([]*int, 32)
		for i := 0; i < 32; i++ {
			refs[i], _ = c.TryAppend(i)
		}

		// Check
		for i := 0; i < 32; i++ {
			assert.Samef(t, refs[i], c.At(i), "address of value #%d never changed", i)
			assert.Equalf(t, i, *refs[i], "value #%d still reachable through its original address", i)
		}
	})
}

func TestChunk_At(t *testing.T) {
	t.Run("returns address of occupied slot", func(t *testing.T) {
		// Prepare
		c := New[string](4)
		ref, _ := c.TryAppend("alpha")
		_, _ = c.TryAppend("beta")

		// Execute
		got := c.At(0)

		// Check
		assert.Same(t, ref, got, "same address as handed out by TryAppend")
		assert.Equal(t, "alpha", *got, "correct value in slot")
		assert.Equal(t, "beta", *c.At(1), "correct value in second slot")
	})
}
