package intern

import (
	"fmt"
	"github.com/gostonefire/intern/hashfunc"
	"github.com/gostonefire/intern/internal/chunk"
	"github.com/gostonefire/intern/internal/index"
)

// DefaultBaseCapacity - Capacity of the first chunk when none is given in Config
const DefaultBaseCapacity int = 32

// DefaultGrowthFactor - Chunk growth factor when none is given in Config
const DefaultGrowthFactor float64 = 1.5

// Config - Is a struct to be passed in the call to NewWithConfig or NewFunc and contains
// configuration that affects storage growth and lookup.
//   - BaseCapacity is the capacity of the first chunk, leave zero to get DefaultBaseCapacity
//   - GrowthFactor is the factor by which each new chunk's capacity grows over the previous one, leave zero to get DefaultGrowthFactor
//   - Hasher is an optional hash algorithm following the hashfunc.Hasher interface, a non nil value makes the store keep a lookup index instead of scanning chunks linearly
type Config[T any] struct {
	BaseCapacity int
	GrowthFactor float64
	Hasher       hashfunc.Hasher[T]
}

// Store - The main implementation struct. It owns an ordered sequence of fixed capacity
// chunks and guarantees that each distinct value, by the store's equality, is stored at
// most once. Values enter through Intern and are never moved or removed afterwards, hence
// the addresses behind handed out handles stay valid for the lifetime of the store.
//
// A Store must be created through New, NewWithConfig or NewFunc. It is not safe for
// concurrent mutation, Intern calls from multiple goroutines have to be serialized by
// the owner.
type Store[T any] struct {
	chunks       []*chunk.Chunk[T]
	equal        func(a, b T) bool
	index        *index.Index[T]
	baseCapacity int
	growthFactor float64
	size         int
}

// New - Returns a pointer to a new Store instance with default configuration, using the
// value type's own equality. It starts out with a single empty chunk of DefaultBaseCapacity.
func New[T comparable]() *Store[T] {
	store, _ := NewWithConfig[T](Config[T]{})
	return store
}

// NewWithConfig - Returns a pointer to a new Store instance using the value type's own
// equality, configured according to conf.
//   - conf is a Config struct providing configuration parameters affecting storage growth and lookup
//
// It returns:
//   - store is a pointer to the created instance
//   - err is a normal Go error which should be nil if everything went ok
func NewWithConfig[T comparable](conf Config[T]) (store *Store[T], err error) {
	return NewFunc[T](func(a, b T) bool { return a == b }, conf)
}

// NewFunc - Returns a pointer to a new Store instance using a caller supplied equality
// function. It is the constructor to use for value types that lack built-in equality,
// such as byte slices together with bytes.Equal.
//   - equal is the function deciding whether two values are the same, it must not be nil
//   - conf is a Config struct providing configuration parameters affecting storage growth and lookup
//
// It returns:
//   - store is a pointer to the created instance
//   - err is a normal Go error which should be nil if everything went ok
func NewFunc[T any](equal func(a, b T) bool, conf Config[T]) (store *Store[T], err error) {
	// Check that an equality function was given
	if equal == nil {
		err = fmt.Errorf("equal function can not be nil, it decides whether two values are the same")
		return
	}

	// Check if the base capacity is valid
	if conf.BaseCapacity < 0 {
		err = fmt.Errorf("base capacity can not be negative")
		return
	}
	if conf.BaseCapacity == 0 {
		conf.BaseCapacity = DefaultBaseCapacity
	}

	// Check if the growth factor is valid
	if conf.GrowthFactor != 0 && conf.GrowthFactor < 1.0 {
		err = fmt.Errorf("growth factor must be 1.0 or higher, a shrinking progression would end in zero capacity chunks")
		return
	}
	if conf.GrowthFactor == 0 {
		conf.GrowthFactor = DefaultGrowthFactor
	}

	store = &Store[T]{
		chunks:       []*chunk.Chunk[T]{chunk.New[T](conf.BaseCapacity)},
		equal:        equal,
		baseCapacity: conf.BaseCapacity,
		growthFactor: conf.GrowthFactor,
	}

	if conf.Hasher != nil {
		store.index = index.New[T](conf.Hasher)
	}

	return
}
