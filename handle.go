package intern

import (
	"fmt"
	"golang.org/x/exp/constraints"
)

// Handle - A cheap, copyable, non owning reference to a value stored in a Store. Handles
// are produced only by the store's operations and wrap the address of the single stored
// copy of a value, which never moves for the lifetime of the store.
//
// Handles are comparable with == for any value type, and two handles are equal exactly
// when they reference the same storage address. By the store's deduplication guarantee
// that coincides with value equality for handles from the same store, at the cost of a
// pointer comparison no matter how large the value is. Used as a map key a handle hashes
// on the same address, so equal handles always land in the same bucket. The zero Handle
// references no value.
//
// Handles may be read from any number of goroutines, the referenced value is never
// mutated once stored.
type Handle[T any] struct {
	ref *T
}

// Value - Returns a copy of the referenced value. It panics if called on the zero Handle.
func (H Handle[T]) Value() (value T) {
	return *H.ref
}

// String - Formats the referenced value rather than the reference itself, so handles
// print as the values they stand in for. The zero Handle prints as <nil>.
func (H Handle[T]) String() string {
	if H.ref == nil {
		return "<nil>"
	}
	return fmt.Sprint(*H.ref)
}

// Less - Reports whether the value referenced by a sorts before the value referenced by b.
// Ordering is delegated to the values themselves, never to their storage addresses, since
// address order is arbitrary and differs between runs.
func Less[T constraints.Ordered](a, b Handle[T]) bool {
	return *a.ref < *b.ref
}

// Compare - Returns -1, 0 or 1 depending on how the value referenced by a orders against
// the value referenced by b. Like Less it compares the values, not the addresses, so two
// unequal handles over equal values from different stores still compare as 0.
func Compare[T constraints.Ordered](a, b Handle[T]) int {
	switch {
	case *a.ref < *b.ref:
		return -1
	case *b.ref < *a.ref:
		return 1
	default:
		return 0
	}
}
