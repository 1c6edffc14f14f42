// Package cellmap provides a concurrent hash map built on cell handles.
//
// Buckets use separate chaining. Reads walk snapshot pointers and never
// block behind writers of other keys; writes to a bucket serialize on the
// bucket head so chain surgery stays atomic. Values returned to callers are
// snapshots: a later Put for the same key never invalidates them.
package cellmap

import (
	"github.com/cespare/xxhash/v2"

	"shutbox/cell"
)

// defaultBuckets is the fixed size of the bucket array. Chains absorb
// collisions; the map does not resize.
const defaultBuckets = 256

// entry is one link in a bucket chain. Entries are copied by value during
// chain rebuilds; the value and next handles are shared across copies.
type entry[V any] struct {
	key   string
	value *cell.Cell[V]
	next  *cell.OptCell[entry[V]]
}

// Map is a concurrent string-keyed hash map. Construct with New.
type Map[V any] struct {
	buckets []cell.OptCell[entry[V]]
	size    *cell.Cell[int]
}

// New creates an empty Map.
func New[V any]() *Map[V] {
	return newWithBuckets[V](defaultBuckets)
}

func newWithBuckets[V any](n int) *Map[V] {
	return &Map[V]{
		buckets: make([]cell.OptCell[entry[V]], n),
		size:    cell.New(0),
	}
}

func (m *Map[V]) bucket(key string) *cell.OptCell[entry[V]] {
	return &m.buckets[xxhash.Sum64String(key)%uint64(len(m.buckets))]
}

// Put stores value under key. When the key already exists its value cell is
// swapped in place and the previous value is returned with replaced=true;
// snapshots of the previous value held by readers stay valid.
func (m *Map[V]) Put(key string, value V) (prev V, replaced bool) {
	m.bucket(key).Update(func(head *entry[V]) *entry[V] {
		if head == nil {
			return m.newEntry(key, value)
		}
		for e := head; ; {
			if e.key == key {
				prev = e.value.Value()
				replaced = true
				e.value.Set(value)
				return head
			}
			next := e.next.Get()
			if next == nil {
				e.next.Set(*m.newEntry(key, value))
				return head
			}
			e = next
		}
	})
	if !replaced {
		m.size.Update(func(n int) int { return n + 1 })
	}
	return prev, replaced
}

func (m *Map[V]) newEntry(key string, value V) *entry[V] {
	return &entry[V]{
		key:   key,
		value: cell.New(value),
		next:  &cell.OptCell[entry[V]]{},
	}
}

// Get returns a snapshot of the value stored under key. The snapshot is
// unaffected by later Put or Delete calls for the same key.
func (m *Map[V]) Get(key string) (*V, bool) {
	for e := m.bucket(key).Get(); e != nil; e = e.next.Get() {
		if e.key == key {
			return e.value.Get(), true
		}
	}
	return nil, false
}

// Delete removes key from the map. Other keys in the same bucket are
// untouched, and deleting an absent key is a no-op.
func (m *Map[V]) Delete(key string) {
	removed := false
	m.bucket(key).Update(func(head *entry[V]) *entry[V] {
		for prev, e := (*entry[V])(nil), head; e != nil; prev, e = e, e.next.Get() {
			if e.key != key {
				continue
			}
			removed = true
			if prev == nil {
				return e.next.Get()
			}
			prev.next.Replace(e.next.Get())
			return head
		}
		return head
	})
	if removed {
		m.size.Update(func(n int) int { return n - 1 })
	}
}

// Len returns the number of keys currently stored.
func (m *Map[V]) Len() int {
	return m.size.Value()
}

// Range calls fn for each key with a snapshot of its value, stopping early
// when fn returns false. Iteration is best-effort: entries added or removed
// concurrently may or may not be observed.
func (m *Map[V]) Range(fn func(key string, value *V) bool) {
	for i := range m.buckets {
		for e := m.buckets[i].Get(); e != nil; e = e.next.Get() {
			if !fn(e.key, e.value.Get()) {
				return
			}
		}
	}
}
