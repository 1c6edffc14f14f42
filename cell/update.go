package cell

import (
	"cmp"
	"slices"
	"sync"
)

// locker carries the handle mutex. It is embedded by Cell and OptCell so
// joint updates can lock heterogeneous handles through one interface.
type locker struct {
	mu sync.Mutex
}

func (l *locker) lock()   { l.mu.Lock() }
func (l *locker) unlock() { l.mu.Unlock() }

// Handle is implemented by *Cell and *OptCell. It is sealed; the methods
// exist only so joint updates can order and lock mixed handle kinds.
type Handle interface {
	lock()
	unlock()
	id() uint64
}

var (
	_ Handle = (*Cell[int])(nil)
	_ Handle = (*OptCell[int])(nil)
)

// lockAll locks the handles in canonical identity order, so two joint
// updates over the same handles cannot deadlock regardless of the argument
// order at their call sites. Duplicate handles are not supported.
func lockAll(hs ...Handle) {
	slices.SortFunc(hs, func(a, b Handle) int {
		return cmp.Compare(a.id(), b.id())
	})
	for _, h := range hs {
		h.lock()
	}
}

func unlockAll(hs ...Handle) {
	for _, h := range hs {
		h.unlock()
	}
}

// Update2 atomically mutates two cells: both locks are held while fn runs,
// so no other writer or joint update over either cell can interleave.
// fn must not touch the participating cells.
func Update2[A, B any](a *Cell[A], b *Cell[B], fn func(A, B) (A, B)) {
	lockAll(a, b)
	defer unlockAll(a, b)

	na, nb := fn(*a.ptr, *b.ptr)
	a.ptr, b.ptr = &na, &nb
}

// Update3 atomically mutates three cells. See Update2.
func Update3[A, B, C any](a *Cell[A], b *Cell[B], c *Cell[C], fn func(A, B, C) (A, B, C)) {
	lockAll(a, b, c)
	defer unlockAll(a, b, c)

	na, nb, nc := fn(*a.ptr, *b.ptr, *c.ptr)
	a.ptr, b.ptr, c.ptr = &na, &nb, &nc
}

// UpdateOpt2 atomically mutates two optional cells. fn receives the current
// snapshots (nil for empty) and returns the snapshots to install.
func UpdateOpt2[A, B any](a *OptCell[A], b *OptCell[B], fn func(*A, *B) (*A, *B)) {
	lockAll(a, b)
	defer unlockAll(a, b)

	a.ptr, b.ptr = fn(a.ptr, b.ptr)
}

// Update2Opt atomically mutates a cell and an optional cell together. fn
// receives the cell's value and the optional cell's snapshot (nil for
// empty), and returns the value and the snapshot to install (nil empties
// the optional cell).
func Update2Opt[A, B any](a *Cell[A], b *OptCell[B], fn func(A, *B) (A, *B)) {
	lockAll(a, b)
	defer unlockAll(a, b)

	na, nb := fn(*a.ptr, b.ptr)
	a.ptr, b.ptr = &na, nb
}

// Update3Opt is Update2Opt with two cells and one optional cell.
func Update3Opt[A, B, C any](a *Cell[A], b *Cell[B], c *OptCell[C], fn func(A, B, *C) (A, B, *C)) {
	lockAll(a, b, c)
	defer unlockAll(a, b, c)

	na, nb, nc := fn(*a.ptr, *b.ptr, c.ptr)
	a.ptr, b.ptr, c.ptr = &na, &nb, nc
}
