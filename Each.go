package hashiter

// Break can be returned from an Each block to stop the traversal early
// without Each reporting an error.
const Break Error = `hashiter:break`

// Each calls blk once for every entry of the hash.
//
// The ambient cursor is saved before the traversal begins and restored
// unconditionally when Each returns, whether the traversal ran to
// exhaustion, blk returned an error, blk returned Break, or blk panicked.
// Because the saved value lives on Each's own call frame,
// blk may start further traversals of the same hash,
// including calling Each again recursively;
// each invocation restores what it saved, innermost first.
//
// An error returned by blk stops the traversal and is returned to the
// caller after the ambient cursor has been restored.
// A hash implementing Faulter has its Err checked after the loop,
// so step failures of storage backed hashes are not silently dropped.
func Each[K comparable, V any](h Hash[K, V], blk func(key K, value V) error) (rErr error) {
	saved := GetIterator(h)
	defer func() { SetIterator(h, saved) }()

	InitIterator(h)
	for {
		key, value, ok := h.Step()
		if !ok {
			break
		}
		if err := blk(key, value); err != nil {
			if err == Break {
				break
			}
			return err
		}
	}

	if f, ok := any(h).(Faulter); ok {
		return f.Err()
	}
	return nil
}
