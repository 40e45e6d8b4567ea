// Package boltdb provides a BoltDB backed hashiter.Hash,
// where the entries of a bucket enumerate through the same ambient cursor
// discipline as an in-memory hash.
package boltdb

import (
	"github.com/boltdb/bolt"
)

// NewHash opens the database file on the given path
// and backs the hash with the named bucket,
// creating the bucket when it does not exist yet.
func NewHash(path string, bucket string) (*Hash, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Hash{db: db, bucket: []byte(bucket)}, nil
}

// Hash is a hashiter.Hash over a Bolt bucket.
//
// The ambient cursor is the last yielded key;
// each Step re-seeks to it inside a fresh read transaction.
// Enumeration order is Bolt's byte order over the keys.
// Hash implements hashiter.Faulter:
// a failing transaction makes Step report exhaustion
// and retains the cause for Err.
type Hash struct {
	db     *bolt.DB
	bucket []byte
	cursor []byte
	err    error
}

// Close the database and release the file lock.
func (h *Hash) Close() error {
	return h.db.Close()
}

// Err return the error cause of the last failing operation.
func (h *Hash) Err() error {
	return h.err
}

// Set stores the value under the key.
func (h *Hash) Set(key string, value []byte) error {
	return h.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(h.bucket).Put([]byte(key), value)
	})
}

// Lookup returns the value stored under the key.
func (h *Hash) Lookup(key string) ([]byte, bool) {
	var (
		value []byte
		found bool
	)
	err := h.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(h.bucket).Get([]byte(key)); v != nil {
			value = append([]byte(nil), v...)
			found = true
		}
		return nil
	})
	if err != nil {
		h.err = err
		return nil, false
	}
	return value, found
}

// Delete removes the key and its value from the bucket.
func (h *Hash) Delete(key string) error {
	return h.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(h.bucket).Delete([]byte(key))
	})
}

// Len returns the number of entries in the bucket.
func (h *Hash) Len() int {
	var n int
	err := h.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(h.bucket).Stats().KeyN
		return nil
	})
	if err != nil {
		h.err = err
		return 0
	}
	return n
}

func (h *Hash) CursorState() any {
	if h.cursor == nil {
		return nil
	}
	return string(h.cursor)
}

func (h *Hash) SetCursorState(state any) {
	if state == nil {
		h.cursor = nil
		return
	}
	h.cursor = []byte(state.(string))
}

func (h *Hash) ResetCursor() {
	h.cursor = nil
}

// Step yields the next entry in key byte order.
// Values are copied out of the transaction, so they stay valid after Step
// returns. Past the last entry Step reports false and resets the ambient
// cursor, so the following Step starts the enumeration over.
func (h *Hash) Step() (key string, value []byte, ok bool) {
	var k, v []byte
	err := h.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(h.bucket).Cursor()
		if h.cursor == nil {
			k, v = c.First()
			return nil
		}
		c.Seek(h.cursor)
		k, v = c.Next()
		return nil
	})
	if err != nil {
		h.err = err
		h.cursor = nil
		return "", nil, false
	}
	if k == nil {
		h.cursor = nil
		return "", nil, false
	}
	h.cursor = append([]byte(nil), k...)
	return string(k), append([]byte(nil), v...), true
}
