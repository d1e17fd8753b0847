package chunk

// Chunk - Represents one fixed capacity block of value storage.
// The backing storage is allocated once at creation time and is never resized or
// compacted, hence the address of a stored value never changes for the lifetime
// of the chunk.
type Chunk[T any] struct {
	items []T
}

// New - Returns a pointer to a new Chunk instance with room for exactly capacity values.
//   - capacity is the fixed number of values the chunk can hold, it must be 1 or higher
func New[T any](capacity int) *Chunk[T] {
	return &Chunk[T]{items: make([]T, 0, capacity)}
}

// TryAppend - Stores value in the next free slot and returns the address of the stored copy.
// If the chunk is already filled to capacity it is left untouched and ok is returned false,
// leaving it to the caller to find the value a new home. Appending never moves already
// stored values.
//   - value is the value to store
//
// It returns:
//   - ref is the address of the stored copy of value, or nil if the chunk was full
//   - ok is true if the value was stored
func (C *Chunk[T]) TryAppend(value T) (ref *T, ok bool) {
	if len(C.items) == cap(C.items) {
		return
	}

	C.items = append(C.items, value)
	ref = &C.items[len(C.items)-1]
	ok = true

	return
}

// At - Returns the address of the value in the given slot.
//   - slot is the slot number, it must be between 0 and Len() - 1
func (C *Chunk[T]) At(slot int) (ref *T) {
	return &C.items[slot]
}

// Len - Returns the number of occupied slots
func (C *Chunk[T]) Len() (n int) {
	return len(C.items)
}

// Cap - Returns the fixed capacity the chunk was created with
func (C *Chunk[T]) Cap() (n int) {
	return cap(C.items)
}
