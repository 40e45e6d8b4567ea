package hashiter_test

import (
	"testing"

	"github.com/adamluzsi/testcase"
	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/hashiter"
	"github.com/adamluzsi/hashiter/adapter/memory"
	"github.com/adamluzsi/hashiter/fixtures"
)

func NewPopulatedHash(tb testing.TB, n int) (hashiter.Hash[string, string], []fixtures.Entry) {
	h := memory.NewHash[string, string]()
	entries := fixtures.Entries(n)
	for _, entry := range entries {
		h.Set(entry.Key, entry.Value)
	}
	return h, entries
}

// drain finishes the ambient pass of the hash from its current position.
func drain[K comparable, V any](h hashiter.Hash[K, V]) (keys []K, values []V) {
	for {
		key, value, ok := h.Step()
		if !ok {
			return keys, values
		}
		keys = append(keys, key)
		values = append(values, value)
	}
}

func TestCursor(t *testing.T) {
	s := testcase.NewSpec(t)
	s.Parallel()

	s.Describe(`GetIterator / SetIterator`, func(s *testcase.Spec) {
		s.Then(`a get followed by a set is a no-op for the rest of the pass`, func(t *testcase.T) {
			h, entries := NewPopulatedHash(t, 5)

			_, _, ok := h.Step()
			require.True(t, ok)
			_, _, ok = h.Step()
			require.True(t, ok)

			hashiter.SetIterator(h, hashiter.GetIterator(h))

			keys, _ := drain(h)
			require.Len(t, keys, len(entries)-2)
		})

		s.Then(`restoring a saved token resumes from where it was saved`, func(t *testcase.T) {
			h, _ := NewPopulatedHash(t, 6)

			_, _, ok := h.Step()
			require.True(t, ok)

			saved := hashiter.GetIterator(h)
			restKeys, _ := drain(h)

			hashiter.SetIterator(h, saved)
			resumedKeys, _ := drain(h)
			require.Equal(t, restKeys, resumedKeys)
		})

		s.Then(`the zero value token stands for the uninitialized cursor`, func(t *testcase.T) {
			h, entries := NewPopulatedHash(t, 4)

			_, _, ok := h.Step()
			require.True(t, ok)

			hashiter.SetIterator(h, hashiter.Cursor{})
			keys, _ := drain(h)
			require.Len(t, keys, len(entries))
		})
	})

	s.Describe(`InitIterator`, func(s *testcase.Spec) {
		s.Then(`it restarts an in-progress enumeration`, func(t *testcase.T) {
			h, entries := NewPopulatedHash(t, 4)

			_, _, ok := h.Step()
			require.True(t, ok)
			_, _, ok = h.Step()
			require.True(t, ok)

			hashiter.InitIterator(h)
			keys, _ := drain(h)
			require.Len(t, keys, len(entries))
		})

		s.Then(`it is a no-op on a never enumerated hash`, func(t *testcase.T) {
			h, entries := NewPopulatedHash(t, 3)

			hashiter.InitIterator(h)
			keys, _ := drain(h)
			require.Len(t, keys, len(entries))
		})
	})

	s.Describe(`unrelated hashes`, func(s *testcase.Spec) {
		s.Then(`cursor operations on one hash never touch the other`, func(t *testcase.T) {
			h1, entries1 := NewPopulatedHash(t, 3)
			h2, entries2 := NewPopulatedHash(t, 3)

			_, _, ok := h1.Step()
			require.True(t, ok)
			saved := hashiter.GetIterator(h1)
			hashiter.InitIterator(h1)
			hashiter.SetIterator(h1, saved)

			keys2, _ := drain(h2)
			require.Len(t, keys2, len(entries2))

			keys1, _ := drain(h1)
			require.Len(t, keys1, len(entries1)-1)
		})
	})
}
