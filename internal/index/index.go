package index

import (
	"github.com/gostonefire/intern/hashfunc"
)

// Index - Side lookup index over stored values. It maps 64 bit hash sums to the addresses
// of stored values carrying that sum, letting the store narrow a lookup down to a handful
// of candidates instead of scanning every chunk. Hash sums may collide, so candidates still
// have to be confirmed against the store's equality before they count as a match.
type Index[T any] struct {
	hasher  hashfunc.Hasher[T]
	buckets map[uint64][]*T
}

// New - Returns a pointer to a new Index instance
//   - hasher is the hash algorithm to sum values with, it must not be nil
func New[T any](hasher hashfunc.Hasher[T]) *Index[T] {
	return &Index[T]{
		hasher:  hasher,
		buckets: make(map[uint64][]*T),
	}
}

// Add - Records the address of a newly stored value under its hash sum.
//   - value is the stored value
//   - ref is the address of the stored copy
func (I *Index[T]) Add(value T, ref *T) {
	sum := I.hasher.Sum64(value)
	I.buckets[sum] = append(I.buckets[sum], ref)
}

// Candidates - Returns the addresses of all stored values whose hash sum matches that of value.
// The returned slice is nil if no stored value carries the sum.
func (I *Index[T]) Candidates(value T) (refs []*T) {
	return I.buckets[I.hasher.Sum64(value)]
}

// Hasher - Returns the hash algorithm the index was created with
func (I *Index[T]) Hasher() (hasher hashfunc.Hasher[T]) {
	return I.hasher
}
