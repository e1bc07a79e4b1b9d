package proxy

import "context"

// Iter is a single-pass iterator over the keys that matched a pattern when
// Iterate was called. Values resolve lazily through Get, so a key deleted
// mid-iteration surfaces as an error from Next.
type Iter struct {
	src  Keyspace
	keys []string
	pos  int

	key string
	val any
	err error
}

// Next advances to the next matching key, resolving its value. It returns
// false when the matches are exhausted or an error occurred; check Err after.
func (it *Iter) Next(ctx context.Context) bool {
	if it.err != nil || it.pos >= len(it.keys) {
		return false
	}
	key := it.keys[it.pos]
	it.pos++

	val, err := it.src.Get(ctx, key)
	if err != nil {
		it.err = err
		return false
	}
	it.key, it.val = key, val
	return true
}

// Key returns the key of the current entry.
func (it *Iter) Key() string { return it.key }

// Value returns the value of the current entry, in the same dynamic types
// returned by Get.
func (it *Iter) Value() any { return it.val }

// Err returns the first error encountered while iterating.
func (it *Iter) Err() error { return it.err }
