// Package hashiter provides nesting-safe enumeration helpers for hash-like
// containers that carry a single shared iteration cursor.
//
// Such containers attach one mutable enumeration position to the container
// itself instead of to any particular traversal, so nested or interleaved
// passes over the same hash silently corrupt each other's progress.
// The helpers here make that cursor an explicit, saveable value,
// and build traversal primitives on top of the save/restore discipline.
package hashiter

// Hash is the contract of an associative container
// that owns a single ambient enumeration cursor.
// Clients of this package never drive the ambient cursor directly;
// they reach it through the Cursor token based helpers,
// which keep concurrent logical traversals from trampling each other.
//
// Enumeration order is container-defined.
// It must be stable while the key set is unchanged;
// structural modification during an in-progress enumeration
// leaves the cursor meaningless and is not detected.
type Hash[K comparable, V any] interface {
	// CursorState returns the raw ambient cursor of the hash.
	// A nil state means enumeration has not started, or was fully reset.
	CursorState() any
	// SetCursorState overwrites the ambient cursor with a state value
	// previously returned by CursorState on a hash with the same key set.
	// A nil state behaves as ResetCursor.
	SetCursorState(state any)
	// ResetCursor puts the ambient cursor back to its uninitialized state,
	// as if the hash had never been enumerated.
	ResetCursor()
	// Step yields the next entry using the ambient cursor.
	// On exhaustion it reports false and resets the ambient cursor,
	// so the Step after that starts the enumeration over.
	Step() (key K, value V, ok bool)
}

// Faulter is an optional contract for hashes backed by fallible resources.
// When stepping fails, such a hash reports exhaustion from Step
// and retains the failure cause for Err.
type Faulter interface {
	// Err return the error cause.
	Err() error
}
