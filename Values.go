package hashiter

// Values collects every value of the hash into a slice matching the hash's
// enumeration order, the same order Keys reports for the same unmodified
// hash, so the two slices pair up index by index.
// It shares the cursor save/restore discipline of Each.
func Values[K comparable, V any](h Hash[K, V]) ([]V, error) {
	var values []V
	err := Each(h, func(_ K, value V) error {
		values = append(values, value)
		return nil
	})
	return values, err
}
