package hashiter

// Step yields the next entry of the hash using a caller-owned cursor
// instead of the hash's ambient one,
// so separate callers that each keep their own token
// can drive interleaved enumerations without stepping on each other.
//
// An uninitialized token (the Cursor zero value) starts a fresh pass.
// On exhaustion Step reports false and leaves the token uninitialized,
// so the call after that restarts from the first entry.
//
// Step mutates the ambient cursor only for the duration of the call and
// does not save it: interleaving Step with ambient-cursor consumers is the
// caller's problem. Each is the safe counterpart for that.
func Step[K comparable, V any](h Hash[K, V], c *Cursor) (key K, value V, ok bool) {
	SetIterator(h, *c)
	key, value, ok = h.Step()
	*c = GetIterator(h)
	return key, value, ok
}
