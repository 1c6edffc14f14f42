// Package cell provides copy-on-write shared value handles.
//
// A handle points at an immutable snapshot of its value. Readers take the
// current snapshot and keep it for as long as they like; writers install a
// fresh snapshot without invalidating anything a reader already holds. The
// lock inside a handle only guards the pointer swap, never the value itself.
package cell

import "sync/atomic"

// handleIDs hands out identities for lock ordering in joint updates.
var handleIDs atomic.Uint64

// ident is a lazily assigned, process-unique handle identity.
// It exists so that joint updates can lock handles in a canonical order
// regardless of argument order.
type ident struct {
	v atomic.Uint64
}

func (i *ident) id() uint64 {
	if v := i.v.Load(); v != 0 {
		return v
	}
	i.v.CompareAndSwap(0, handleIDs.Add(1))
	return i.v.Load()
}

// Cell is a shared handle to an always-present value.
//
// Cells are shared by pointer: every *Cell copy observes the same value and
// the same swaps. The zero value is not usable; construct with New or
// Acquire.
type Cell[T any] struct {
	locker
	ident
	ptr *T
}

// New creates a Cell holding the given value.
func New[T any](v T) *Cell[T] {
	return &Cell[T]{ptr: &v}
}

// Acquire creates a Cell adopting an existing snapshot pointer.
// The pointer must be non-nil and must not be written through afterwards.
func Acquire[T any](p *T) *Cell[T] {
	return &Cell[T]{ptr: p}
}

// Get returns the current snapshot.
//
// The snapshot is unaffected by subsequent Set, Replace or Mutate calls;
// callers holding it keep observing the value as it was.
func (c *Cell[T]) Get() *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ptr
}

// Value copies the current value out of the cell. The copy is unrelated to
// the underlying data beyond its value at the time of the call.
func (c *Cell[T]) Value() T {
	return *c.Get()
}

// Set installs a fresh snapshot holding v. Snapshots previously returned by
// Get keep pointing at the old value.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ptr = &v
}

// Replace installs the given snapshot pointer directly and returns the
// previous snapshot. The pointer must be non-nil.
func (c *Cell[T]) Replace(p *T) *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	old := c.ptr
	c.ptr = p
	return old
}

// Mutate reads a copy of the current value, applies fn and installs the
// result as a fresh snapshot.
//
// The lock is NOT held while fn runs: it is taken once to read and once to
// write. Concurrent writers may interleave between the two, in which case
// the last writer wins. Use Update when fn must be atomic with respect to
// other writers.
func (c *Cell[T]) Mutate(fn func(T) T) {
	c.Set(fn(*c.Get()))
}

// Update applies fn to the current value while holding the lock, so no other
// writer or joint update can interleave. fn must not touch this cell.
func (c *Cell[T]) Update(fn func(T) T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := fn(*c.ptr)
	c.ptr = &v
}

// OptCell is a shared handle to an optional value. The zero value is a
// usable empty cell.
type OptCell[T any] struct {
	locker
	ident
	ptr *T
}

// NewOpt creates an OptCell holding the given value.
func NewOpt[T any](v T) *OptCell[T] {
	return &OptCell[T]{ptr: &v}
}

// AcquireOpt creates an OptCell adopting an existing snapshot pointer.
// A nil pointer yields an empty cell.
func AcquireOpt[T any](p *T) *OptCell[T] {
	return &OptCell[T]{ptr: p}
}

// Get returns the current snapshot, or nil when the cell is empty.
func (o *OptCell[T]) Get() *T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.ptr
}

// Value copies the current value out of the cell. ok is false when the cell
// is empty, in which case the zero value is returned.
func (o *OptCell[T]) Value() (v T, ok bool) {
	p := o.Get()
	if p == nil {
		return v, false
	}
	return *p, true
}

// Set installs a fresh snapshot holding v.
func (o *OptCell[T]) Set(v T) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ptr = &v
}

// Replace installs the given snapshot pointer (nil empties the cell) and
// returns the previous snapshot.
func (o *OptCell[T]) Replace(p *T) *T {
	o.mu.Lock()
	defer o.mu.Unlock()
	old := o.ptr
	o.ptr = p
	return old
}

// Take empties the cell and returns the previous snapshot, which stays
// valid for the caller. Returns nil when the cell was already empty.
func (o *OptCell[T]) Take() *T {
	return o.Replace(nil)
}

// Mutate reads a copy of the current value, applies fn and installs the
// result. It has no effect when the cell is empty.
//
// As with Cell.Mutate, the lock is not held while fn runs.
func (o *OptCell[T]) Mutate(fn func(T) T) {
	p := o.Get()
	if p == nil {
		return
	}
	o.Set(fn(*p))
}

// Update applies fn to the current snapshot while holding the lock. fn
// receives nil when the cell is empty and may return nil to empty it.
// fn must not touch this cell.
func (o *OptCell[T]) Update(fn func(*T) *T) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ptr = fn(o.ptr)
}

// Equal reports whether two cells currently hold equal values. Two empty
// cells are equal.
func Equal[T comparable](a, b *OptCell[T]) bool {
	pa, pb := a.Get(), b.Get()
	if pa == nil || pb == nil {
		return pa == nil && pb == nil
	}
	return *pa == *pb
}
