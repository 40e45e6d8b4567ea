package hashiter

// Keys collects every key of the hash into a slice matching the hash's
// enumeration order.
// Unlike a native key listing it leaves the ambient cursor exactly as it
// found it, so it is safe to call from inside any traversal of the same
// hash, including from an Each block.
// The error is always nil for plain in-memory hashes;
// hashes implementing Faulter report their step failures through it.
func Keys[K comparable, V any](h Hash[K, V]) ([]K, error) {
	var keys []K
	err := Each(h, func(key K, _ V) error {
		keys = append(keys, key)
		return nil
	})
	return keys, err
}
