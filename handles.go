package intern

// Handles - Is used to iterate over stored values one by one, handing out a handle for
// each. Values are visited exactly once, in chunk creation order and within a chunk in
// insertion order, which is the order the values were first interned in. Every call to
// Store.Handles returns an independent iterator starting from the beginning.
type Handles[T any] struct {
	store   *Store[T]
	chunkNo int
	slotNo  int
}

// newHandles - Returns a pointer to a new Handles struct
func newHandles[T any](store *Store[T]) *Handles[T] {
	return &Handles[T]{store: store}
}

// Handles - Returns an iterator over all stored values. The iterator assumes no interning
// happens while it is live, interleaving Intern calls with iteration gives an undefined
// visiting order.
func (S *Store[T]) Handles() *Handles[T] {
	return newHandles[T](S)
}

// HasNext - Returns true if there are more handles to be fetched from a call to Next.
func (H *Handles[T]) HasNext() bool {
	return H.chunkNo < len(H.store.chunks) && H.slotNo < H.store.chunks[H.chunkNo].Len()
}

// Next - Returns handle.
// It returns:
//   - handle is the handle of the next stored value.
//   - err is an error of type NoHandleFound if there are no more values when calling this function.
func (H *Handles[T]) Next() (handle Handle[T], err error) {
	if !H.HasNext() {
		err = NoHandleFound{}
		return
	}

	c := H.store.chunks[H.chunkNo]
	handle = Handle[T]{ref: c.At(H.slotNo)}

	if H.slotNo == c.Len()-1 {
		H.chunkNo++
		H.slotNo = 0
	} else {
		H.slotNo++
	}

	return
}
