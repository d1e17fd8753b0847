package hashfunc

import (
	"github.com/cespare/xxhash/v2"
)

// Hasher - Interface that permits an implementation using the Store to supply a custom hash
// algorithm suited for its particular type of values. It is only consulted when the Store
// was created with a lookup index, the default Store does a plain linear scan.
type Hasher[T any] interface {
	// Sum64 - Given value it generates a 64 bit hash sum.
	// Implementations must return equal sums for values the store considers equal, otherwise
	// the index will fail to find already stored values and duplicates will be let in.
	Sum64(value T) uint64
}

// HasherFunc - Adapter to allow the use of an ordinary function as a Hasher.
type HasherFunc[T any] func(value T) uint64

// Sum64 - Calls H(value)
func (H HasherFunc[T]) Sum64(value T) uint64 {
	return H(value)
}

// XXString - Hasher implementation for string values using the xxHash algorithm.
type XXString struct{}

// Sum64 - Given value it generates a 64 bit hash sum
func (X XXString) Sum64(value string) uint64 {
	return xxhash.Sum64String(value)
}

// XXBytes - Hasher implementation for byte slice values using the xxHash algorithm.
// Byte slices have no built-in equality, so a store of byte slices is created through
// NewFunc with an equality function such as bytes.Equal.
type XXBytes struct{}

// Sum64 - Given value it generates a 64 bit hash sum
func (X XXBytes) Sum64(value []byte) uint64 {
	return xxhash.Sum64(value)
}
