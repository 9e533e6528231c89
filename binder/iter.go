package binder

import "cmp"

// Iter is a read-only forward cursor over a snapshot's entries in sequence
// order. Iterators are small comparable values: two are equal exactly when
// they reference the same position of the same snapshot, or when both are
// the distinguished no-snapshot iterator that an empty handle returns for
// both Begin and End.
//
// Any mutating operation on the handle that produced an Iter invalidates it,
// since the operation may clone or alter the snapshot it walks.
type Iter[K cmp.Ordered, V any] struct {
	s *snapshot[K, V]
	r ref
}

// Begin returns a cursor at the first entry, or the no-snapshot iterator
// when the handle is empty.
func (b *Binder[K, V]) Begin() Iter[K, V] {
	if b.snap == nil {
		return Iter[K, V]{nil, noRef}
	}
	return Iter[K, V]{b.snap, b.snap.head}
}

// End returns the cursor one past the last entry, or the no-snapshot
// iterator when the handle is empty.
func (b *Binder[K, V]) End() Iter[K, V] {
	if b.snap == nil {
		return Iter[K, V]{nil, noRef}
	}
	return Iter[K, V]{b.snap, noRef}
}

// Next returns the cursor advanced by one position. Advancing End is
// undefined.
func (it Iter[K, V]) Next() Iter[K, V] {
	return Iter[K, V]{it.s, it.s.arena[it.r].next}
}

// Done reports whether the cursor has no current entry.
func (it Iter[K, V]) Done() bool {
	return it.s == nil || it.r == noRef
}

// Key returns the key of the current entry.
func (it Iter[K, V]) Key() K {
	return it.s.arena[it.r].key
}

// Value returns the value of the current entry.
func (it Iter[K, V]) Value() V {
	return it.s.arena[it.r].val
}
