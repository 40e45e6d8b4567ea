// Package memory provides an insertion ordered in-memory hash
// with a single ambient enumeration cursor,
// that allows easy debugging and testing during development.
package memory

import (
	"sync"
)

func NewHash[K comparable, V any]() *Hash[K, V] {
	return &Hash[K, V]{}
}

// Hash is an in-memory hashiter.Hash implementation.
//
// Entries enumerate in insertion order.
// The ambient cursor is the count of entries already yielded;
// zero stands for the uninitialized cursor.
// The hash guards itself with a mutex, since synchronization is the
// container's duty, not the traversal layer's.
type Hash[K comparable, V any] struct {
	mutex  sync.RWMutex
	values map[K]V
	order  []K
	cursor int
}

// Set stores the value under the key.
// A new key is appended to the enumeration order;
// updating an existing key keeps its original position.
func (h *Hash[K, V]) Set(key K, value V) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if h.values == nil {
		h.values = make(map[K]V)
	}
	if _, ok := h.values[key]; !ok {
		h.order = append(h.order, key)
	}
	h.values[key] = value
}

// Lookup returns the value stored under the key.
func (h *Hash[K, V]) Lookup(key K) (V, bool) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	value, ok := h.values[key]
	return value, ok
}

// Delete removes the key and its value from the hash.
// Deleting while an enumeration is in progress leaves that enumeration's
// cursor meaningless, the same way it does for the traversal helpers.
func (h *Hash[K, V]) Delete(key K) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.values[key]; !ok {
		return
	}
	delete(h.values, key)
	for i, k := range h.order {
		if k == key {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries in the hash.
func (h *Hash[K, V]) Len() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.order)
}

// Keys lists every key in enumeration order, the way a native key listing
// of a cursor-sharing runtime would: it resets the ambient cursor as a
// side effect. Use hashiter.Keys when a traversal may be in progress.
func (h *Hash[K, V]) Keys() []K {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.cursor = 0
	keys := make([]K, len(h.order))
	copy(keys, h.order)
	return keys
}

// Values lists every value in enumeration order.
// Like Keys, it resets the ambient cursor as a side effect.
func (h *Hash[K, V]) Values() []V {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.cursor = 0
	values := make([]V, 0, len(h.order))
	for _, key := range h.order {
		values = append(values, h.values[key])
	}
	return values
}

func (h *Hash[K, V]) CursorState() any {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	if h.cursor == 0 {
		return nil
	}
	return h.cursor
}

func (h *Hash[K, V]) SetCursorState(state any) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if state == nil {
		h.cursor = 0
		return
	}
	h.cursor = state.(int)
}

func (h *Hash[K, V]) ResetCursor() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.cursor = 0
}

// Step yields the next entry in insertion order.
// Past the last entry it reports false and resets the ambient cursor,
// so the following Step starts the enumeration over.
func (h *Hash[K, V]) Step() (key K, value V, ok bool) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if h.cursor >= len(h.order) {
		h.cursor = 0
		return key, value, false
	}
	key = h.order[h.cursor]
	h.cursor++
	return key, h.values[key], true
}
