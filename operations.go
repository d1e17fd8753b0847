package intern

import (
	"github.com/gostonefire/intern/internal/chunk"
)

// StoreStat - Statistics on the overall usage and distribution over chunks
//   - Values is the total number of values stored
//   - Chunks is the number of chunks the store has grown to
//   - Capacity is the total number of value slots allocated over all chunks
//   - ChunkDistribution is the number of values stored in each chunk
type StoreStat struct {
	Values            int
	Chunks            int
	Capacity          int
	ChunkDistribution []int
}

// Intern - Stores value unless an equal value is already held, and returns a handle to
// the single stored copy. Handles returned for equal values compare equal, handles
// returned for unequal values compare unequal, and a returned handle stays valid for
// the lifetime of the store no matter how many values are interned after it.
//   - value is the value to deduplicate against everything already held
func (S *Store[T]) Intern(value T) (handle Handle[T]) {
	ref := S.lookup(value)
	if ref == nil {
		ref = S.place(value)
	}

	handle = Handle[T]{ref: ref}

	return
}

// Contains - Returns whether an equal value is already stored. It never mutates the store.
//   - value is the value to search for
func (S *Store[T]) Contains(value T) (found bool) {
	return S.lookup(value) != nil
}

// Lookup - Returns the handle of an already stored value equal to the given one, without
// storing anything.
//   - value is the value to search for
//
// It returns:
//   - handle is the handle of the matching stored value if found
//   - err is of type NoHandleFound if no equal value is stored
func (S *Store[T]) Lookup(value T) (handle Handle[T], err error) {
	ref := S.lookup(value)
	if ref == nil {
		err = NoHandleFound{}
		return
	}

	handle = Handle[T]{ref: ref}

	return
}

// Len - Returns the number of values stored
func (S *Store[T]) Len() (n int) {
	return S.size
}

// Stat - Walks through the chunks and produces a StoreStat struct with information.
//   - includeDistribution set to true will include a slice of length Chunks with number of values per chunk, false will set StoreStat.ChunkDistribution to nil.
func (S *Store[T]) Stat(includeDistribution bool) (storeStat *StoreStat) {
	var ss StoreStat

	ss.Values = S.size
	ss.Chunks = len(S.chunks)
	if includeDistribution {
		ss.ChunkDistribution = make([]int, len(S.chunks))
	}

	for i, c := range S.chunks {
		ss.Capacity += c.Cap()
		if includeDistribution {
			ss.ChunkDistribution[i] = c.Len()
		}
	}

	storeStat = &ss

	return
}

// Rebuild - Is used when an existing store needs to reflect new conditions as compared to
// when it was first created. For instance if the first estimate of base capacity was way
// off and the store has grown into a long tail of chunks, or a lookup index should be
// attached now that the value volume turned out large.
//
// It returns a new store holding the same set of values, re-interned in traversal order
// under the new configuration. Zero valued fields in conf inherit the corresponding
// setting from the existing store rather than falling back to package defaults, and a nil
// conf.Hasher keeps the existing lookup index algorithm if there was one. The existing
// store is left untouched and handles issued by it remain valid, but handles from the old
// and the new store never compare equal since the new store holds its own copies.
//   - conf is a Config struct providing configuration parameters for the new store
//
// It returns:
//   - store is a pointer to the new instance
//   - err is a normal Go error which should be nil if everything went ok
func (S *Store[T]) Rebuild(conf Config[T]) (store *Store[T], err error) {
	// Sort out new settings, zero values mean keeping those of the existing store
	if conf.BaseCapacity == 0 {
		conf.BaseCapacity = S.baseCapacity
	}
	if conf.GrowthFactor == 0 {
		conf.GrowthFactor = S.growthFactor
	}
	if conf.Hasher == nil && S.index != nil {
		conf.Hasher = S.index.Hasher()
	}

	store, err = NewFunc[T](S.equal, conf)
	if err != nil {
		return
	}

	var handle Handle[T]
	iter := S.Handles()
	for iter.HasNext() {
		handle, err = iter.Next()
		if err != nil {
			return
		}
		store.Intern(handle.Value())
	}

	return
}

// lookup - Scans for a stored value equal to the given one and returns its address, or nil
// if no equal value is held. With a lookup index attached the scan narrows to the stored
// values whose hash sum matches, otherwise every chunk is scanned in creation order and
// every slot in insertion order.
func (S *Store[T]) lookup(value T) (ref *T) {
	if S.index != nil {
		for _, r := range S.index.Candidates(value) {
			if S.equal(*r, value) {
				ref = r
				return
			}
		}
		return
	}

	for _, c := range S.chunks {
		for slot := 0; slot < c.Len(); slot++ {
			r := c.At(slot)
			if S.equal(*r, value) {
				ref = r
				return
			}
		}
	}

	return
}

// place - Stores value as a newly held one and returns the address of the stored copy.
// Insertion goes into the current chunk, which is always the last one. If that chunk is
// full a new chunk is created with capacity = floor(current capacity * growth factor),
// receives the value and becomes the new current chunk.
func (S *Store[T]) place(value T) (ref *T) {
	current := S.chunks[len(S.chunks)-1]

	ref, ok := current.TryAppend(value)
	if !ok {
		grown := chunk.New[T](int(float64(current.Cap()) * S.growthFactor))
		ref, _ = grown.TryAppend(value)
		S.chunks = append(S.chunks, grown)
	}

	if S.index != nil {
		S.index.Add(value, ref)
	}
	S.size++

	return
}
