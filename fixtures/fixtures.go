// Package fixtures provides random test data for hash based tests.
// This is primary and only used for testing.
package fixtures

import (
	"github.com/Pallinder/go-randomdata"
	uuid "github.com/satori/go.uuid"
)

// Entry is a key-value pair fixture.
type Entry struct {
	Key   string
	Value string
}

// Entries returns n entries with unique keys and random values.
func Entries(n int) []Entry {
	entries := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, Entry{Key: Key(), Value: Value()})
	}
	return entries
}

// Key returns a key that is unique across the test run.
func Key() string {
	return uuid.NewV4().String()
}

// Value returns a random human readable value.
func Value() string {
	return randomdata.SillyName()
}
