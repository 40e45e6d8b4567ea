// Package contracts provides the behavior suite
// every hashiter.Hash implementation must satisfy.
package contracts

import (
	"testing"

	"github.com/adamluzsi/testcase"
	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/hashiter"
)

// Hash is the contract of the hashiter.Hash interface.
// Adapters run it from their own test package:
//
//	contracts.Hash[string, string]{
//		Subject:   func(tb testing.TB) hashiter.Hash[string, string] { ... },
//		Put:       func(tb testing.TB, h hashiter.Hash[string, string], k, v string) { ... },
//		MakeEntry: func(tb testing.TB) (string, string) { ... },
//	}.Test(t)
type Hash[K comparable, V any] struct {
	// Subject returns a fresh, empty hash under test.
	// Resource teardown belongs to the Subject through tb.Cleanup.
	Subject func(tb testing.TB) hashiter.Hash[K, V]
	// Put inserts an entry into the hash under test.
	Put func(tb testing.TB, h hashiter.Hash[K, V], key K, value V)
	// MakeEntry returns an entry whose key differs from every previously made one.
	MakeEntry func(tb testing.TB) (K, V)
}

func (c Hash[K, V]) Test(t *testing.T) {
	s := testcase.NewSpec(t)
	defer s.Finish()
	s.Describe(`Step`, c.specStep)
	s.Describe(`CursorState`, c.specCursorState)
	s.Describe(`ResetCursor`, c.specResetCursor)
	s.Describe(`cursor isolation`, c.specIsolation)
}

func (c Hash[K, V]) populate(t *testcase.T, h hashiter.Hash[K, V], n int) map[K]V {
	entries := make(map[K]V, n)
	for i := 0; i < n; i++ {
		key, value := c.MakeEntry(t)
		c.Put(t, h, key, value)
		entries[key] = value
	}
	return entries
}

// drain steps the ambient cursor from its current position until exhaustion.
func (c Hash[K, V]) drain(h hashiter.Hash[K, V]) (keys []K, values []V) {
	for {
		key, value, ok := h.Step()
		if !ok {
			return keys, values
		}
		keys = append(keys, key)
		values = append(values, value)
	}
}

func (c Hash[K, V]) specStep(s *testcase.Spec) {
	s.Then(`an empty hash is immediately exhausted`, func(t *testcase.T) {
		h := c.Subject(t)

		_, _, ok := h.Step()
		require.False(t, ok)
	})

	s.Then(`a full pass yields every entry exactly once`, func(t *testcase.T) {
		h := c.Subject(t)
		entries := c.populate(t, h, 5)

		keys, values := c.drain(h)
		require.Len(t, keys, len(entries))
		seen := make(map[K]struct{})
		for i, key := range keys {
			_, dup := seen[key]
			require.False(t, dup, `no key should be yielded twice`)
			seen[key] = struct{}{}
			expected, ok := entries[key]
			require.True(t, ok, `yielded key should be a stored one`)
			require.Equal(t, expected, values[i])
		}
	})

	s.Then(`exhaustion resets the cursor and the next pass repeats the same order`, func(t *testcase.T) {
		h := c.Subject(t)
		c.populate(t, h, 5)

		first, _ := c.drain(h)
		second, _ := c.drain(h)
		require.Equal(t, first, second)
	})
}

func (c Hash[K, V]) specCursorState(s *testcase.Spec) {
	s.Then(`a fresh hash reports the uninitialized state`, func(t *testcase.T) {
		h := c.Subject(t)
		c.populate(t, h, 3)

		require.Nil(t, h.CursorState())
	})

	s.Then(`a finished pass leaves the uninitialized state behind`, func(t *testcase.T) {
		h := c.Subject(t)
		c.populate(t, h, 3)

		c.drain(h)
		require.Nil(t, h.CursorState())
	})

	s.Then(`a saved state resumes from exactly where it was saved`, func(t *testcase.T) {
		h := c.Subject(t)
		c.populate(t, h, 6)

		_, _, ok := h.Step()
		require.True(t, ok)
		_, _, ok = h.Step()
		require.True(t, ok)

		state := h.CursorState()
		require.NotNil(t, state)

		restKeys, _ := c.drain(h)
		require.Len(t, restKeys, 4)

		h.SetCursorState(state)
		resumedKeys, _ := c.drain(h)
		require.Equal(t, restKeys, resumedKeys)
	})

	s.Then(`the nil state behaves as a reset`, func(t *testcase.T) {
		h := c.Subject(t)
		entries := c.populate(t, h, 4)

		_, _, ok := h.Step()
		require.True(t, ok)

		h.SetCursorState(nil)
		keys, _ := c.drain(h)
		require.Len(t, keys, len(entries))
	})
}

func (c Hash[K, V]) specResetCursor(s *testcase.Spec) {
	s.Then(`a mid pass reset restarts the enumeration from the first entry`, func(t *testcase.T) {
		h := c.Subject(t)
		entries := c.populate(t, h, 4)

		_, _, ok := h.Step()
		require.True(t, ok)
		_, _, ok = h.Step()
		require.True(t, ok)

		h.ResetCursor()
		keys, _ := c.drain(h)
		require.Len(t, keys, len(entries))
	})
}

func (c Hash[K, V]) specIsolation(s *testcase.Spec) {
	s.Then(`hash instances do not share cursor state`, func(t *testcase.T) {
		h1 := c.Subject(t)
		h2 := c.Subject(t)
		c.populate(t, h1, 3)
		c.populate(t, h2, 3)

		_, _, ok := h1.Step()
		require.True(t, ok)
		require.Nil(t, h2.CursorState(), `stepping one hash should not touch the other's cursor`)

		keys2, _ := c.drain(h2)
		require.Len(t, keys2, 3)

		keys1, _ := c.drain(h1)
		require.Len(t, keys1, 2, `the first hash should resume where it stood`)
	})
}
