// Package cellvec provides a concurrent growable vector built on cell
// handles. Slots hold snapshots; removing a slot leaves a hole rather than
// shifting later elements, so indices are stable.
package cellvec

import "shutbox/cell"

// Vec is a concurrent vector. Construct with New.
type Vec[V any] struct {
	// capacity is the allocated slot count of the backing array.
	capacity *cell.Cell[int]
	// length is one past the highest index ever pushed.
	length *cell.Cell[int]
	array  *cell.Cell[[]*cell.OptCell[V]]
}

// New creates an empty Vec.
func New[V any]() *Vec[V] {
	return &Vec[V]{
		capacity: cell.New(0),
		length:   cell.New(0),
		array:    cell.New([]*cell.OptCell[V]{}),
	}
}

// Push appends value to the vector, growing the backing array by doubling
// when full. Growth, the slot write and the length bump happen under one
// joint update, so concurrent pushes cannot claim the same slot.
func (v *Vec[V]) Push(value V) {
	cell.Update3(v.array, v.length, v.capacity,
		func(arr []*cell.OptCell[V], length, capacity int) ([]*cell.OptCell[V], int, int) {
			if length >= capacity {
				capacity = max(1, capacity*2)
				grown := make([]*cell.OptCell[V], capacity)
				copy(grown, arr)
				for i := len(arr); i < capacity; i++ {
					grown[i] = &cell.OptCell[V]{}
				}
				arr = grown
			}
			arr[length].Set(value)
			return arr, length + 1, capacity
		})
}

// Get returns a snapshot of the value at index. ok is false when the index
// is out of bounds or the slot was removed.
func (v *Vec[V]) Get(index int) (*V, bool) {
	if !v.inBounds(index) {
		return nil, false
	}
	p := v.slots()[index].Get()
	return p, p != nil
}

// Set stores value at index and returns the previous snapshot, which is nil
// when the slot was a hole. ok is false when the index is out of bounds.
func (v *Vec[V]) Set(index int, value V) (prev *V, ok bool) {
	if !v.inBounds(index) {
		return nil, false
	}
	p := value
	return v.slots()[index].Replace(&p), true
}

// Remove empties the slot at index and returns its previous snapshot.
// Later indices keep their positions. Returns nil when the index is out of
// bounds or the slot was already a hole.
func (v *Vec[V]) Remove(index int) *V {
	if !v.inBounds(index) {
		return nil
	}
	return v.slots()[index].Take()
}

// Len returns one past the highest index ever pushed. Holes left by Remove
// still count.
func (v *Vec[V]) Len() int {
	return v.length.Value()
}

// Cap returns the allocated slot count.
func (v *Vec[V]) Cap() int {
	return v.capacity.Value()
}

// inBounds reports whether index points at a pushed slot.
func (v *Vec[V]) inBounds(index int) bool {
	return index >= 0 && index < v.Len()
}

// slots returns a snapshot of the backing array. Slot handles are stable:
// growth copies them into the new array, so a snapshot taken before a grow
// still reaches live slots.
func (v *Vec[V]) slots() []*cell.OptCell[V] {
	return v.array.Value()
}
