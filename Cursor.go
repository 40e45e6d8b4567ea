package hashiter

// Cursor is an opaque snapshot of a hash's ambient enumeration position.
//
// The zero value is the uninitialized cursor;
// every other legal value originates from GetIterator.
// Because the state field is unexported, a foreign position value
// can never be smuggled into a hash through SetIterator,
// so the undefined behavior of writing a hand-made cursor
// is ruled out at compile time instead of being documented away.
type Cursor struct {
	state any
}

// GetIterator returns the current ambient cursor of the hash as an opaque token.
// It performs no enumeration step and has no side effect on the hash.
func GetIterator[K comparable, V any](h Hash[K, V]) Cursor {
	return Cursor{state: h.CursorState()}
}

// SetIterator overwrites the ambient cursor of the hash with a token
// previously obtained from GetIterator.
// Restoring a saved token resumes an in-progress enumeration from exactly
// the position it was at when saved, as long as the key set of the hash
// did not change in between.
func SetIterator[K comparable, V any](h Hash[K, V], c Cursor) {
	if c.state == nil {
		h.ResetCursor()
		return
	}
	h.SetCursorState(c.state)
}

// InitIterator resets the ambient cursor of the hash to its uninitialized
// state, equivalent to the hash having never been enumerated.
func InitIterator[K comparable, V any](h Hash[K, V]) {
	h.ResetCursor()
}
