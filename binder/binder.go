package binder

import (
	"cmp"
	"iter"
)

// Binder is the user-facing handle. A nil snap means the handle is logically
// empty and owns no storage. unshareable records that a live pointer into
// the snapshot's value storage has escaped through Read; from then on the
// snapshot must not gain new aliases, so Clone deep-copies instead.
//
// Handles are used through pointers. Copying the struct directly bypasses
// the share accounting; use Clone, Assign or Move.
type Binder[K cmp.Ordered, V any] struct {
	snap        *snapshot[K, V]
	unshareable bool
}

// New returns an empty handle. No storage is allocated until the first
// insertion.
func New[K cmp.Ordered, V any]() *Binder[K, V] {
	return &Binder[K, V]{}
}

// InsertFront places a new entry with key k first in sequence order.
// Returns ErrKeyAlreadyExists if k is present.
func (b *Binder[K, V]) InsertFront(k K, v V) error {
	if b.snap != nil {
		if _, ok := b.snap.index[k]; ok {
			return ErrKeyAlreadyExists
		}
	}
	target, err := b.prepareForEdit()
	if err != nil {
		return err
	}
	if err = target.insertFront(k, v); err != nil {
		return err
	}
	b.commit(target)
	return nil
}

// InsertAfter places a new entry with key k immediately after the entry with
// key prevK. Returns ErrKeyNotFound if prevK is absent and
// ErrKeyAlreadyExists if k is present.
func (b *Binder[K, V]) InsertAfter(prevK, k K, v V) error {
	if b.snap == nil {
		return ErrKeyNotFound
	}
	if _, ok := b.snap.index[prevK]; !ok {
		return ErrKeyNotFound
	}
	if _, ok := b.snap.index[k]; ok {
		return ErrKeyAlreadyExists
	}
	target, err := b.prepareForEdit()
	if err != nil {
		return err
	}
	// prevK resolves again here: when target is a clone its slots differ
	// from the snapshot the precondition was checked on.
	if err = target.insertAfter(target.index[prevK], k, v); err != nil {
		return err
	}
	b.commit(target)
	return nil
}

// RemoveFront removes the first entry in sequence order. Returns
// ErrEmptyBinder if the handle is empty.
func (b *Binder[K, V]) RemoveFront() error {
	if b.Size() == 0 {
		return ErrEmptyBinder
	}
	return b.Remove(b.snap.arena[b.snap.head].key)
}

// Remove removes the entry with key k. Returns ErrKeyNotFound if k is
// absent.
func (b *Binder[K, V]) Remove(k K) error {
	if b.snap == nil {
		return ErrKeyNotFound
	}
	if _, ok := b.snap.index[k]; !ok {
		return ErrKeyNotFound
	}
	target, err := b.prepareForEdit()
	if err != nil {
		return err
	}
	target.remove(target.index[k])
	b.commit(target)
	return nil
}

// Read returns a live pointer to the value stored under k, suitable for
// mutation in place. The handle's snapshot becomes unshareable: the caller
// now holds a mutable alias into it, so the next Clone must deep-copy. The
// pointer is valid until the next mutating operation on this handle.
// Returns ErrKeyNotFound if k is absent.
func (b *Binder[K, V]) Read(k K) (*V, error) {
	if b.snap == nil {
		return nil, ErrKeyNotFound
	}
	if _, ok := b.snap.index[k]; !ok {
		return nil, ErrKeyNotFound
	}
	target, err := b.prepareForEdit()
	if err != nil {
		return nil, err
	}
	r := target.index[k]
	b.commit(target)
	b.unshareable = true
	return &target.arena[r].val, nil
}

// Get returns the value stored under k by copy. Sharing state is
// unaffected. Returns ErrKeyNotFound if k is absent.
func (b *Binder[K, V]) Get(k K) (V, error) {
	var zero V
	if b.snap == nil {
		return zero, ErrKeyNotFound
	}
	r, ok := b.snap.index[k]
	if !ok {
		return zero, ErrKeyNotFound
	}
	return b.snap.arena[r].val, nil
}

// Size returns the number of entries.
func (b *Binder[K, V]) Size() int {
	if b.snap == nil {
		return 0
	}
	return b.snap.count
}

// Clear detaches the handle from its snapshot. Other handles sharing that
// snapshot are unaffected.
func (b *Binder[K, V]) Clear() {
	if b.snap != nil {
		b.snap.refs--
		b.snap = nil
	}
	b.unshareable = false
}

// Clone is copy construction. When the source is unshareable the new handle
// starts from an independent deep copy; otherwise the snapshot is shared and
// the copy is cheap. The new handle is always shareable.
func (b *Binder[K, V]) Clone() (*Binder[K, V], error) {
	if b.unshareable && b.snap != nil {
		s, err := b.snap.clone()
		if err != nil {
			return nil, err
		}
		return &Binder[K, V]{snap: s}, nil
	}
	if b.snap != nil {
		b.snap.refs++
	}
	return &Binder[K, V]{snap: b.snap}, nil
}

// Assign is copy assignment, copy-then-swap: b takes a copy of other (per
// Clone's rules) and releases its previous snapshot. On failure b is
// unchanged. Afterward b is always shareable.
func (b *Binder[K, V]) Assign(other *Binder[K, V]) error {
	c, err := other.Clone()
	if err != nil {
		return err
	}
	if b.snap != nil {
		b.snap.refs--
	}
	b.snap = c.snap
	b.unshareable = false
	return nil
}

// Move transfers the snapshot and flag to a new handle, leaving b empty.
// Reassigning the result over an existing handle variable is the move
// assignment form.
func (b *Binder[K, V]) Move() *Binder[K, V] {
	nb := &Binder[K, V]{snap: b.snap, unshareable: b.unshareable}
	b.snap = nil
	b.unshareable = false
	return nb
}

// All returns the entries in sequence order. The sequence reads the
// snapshot referenced at the time of the call; any mutating operation on
// the handle invalidates an in-progress iteration.
func (b *Binder[K, V]) All() iter.Seq2[K, V] {
	s := b.snap
	return func(yield func(K, V) bool) {
		if s == nil {
			return
		}
		for r := s.head; r != noRef; r = s.arena[r].next {
			if !yield(s.arena[r].key, s.arena[r].val) {
				return
			}
		}
	}
}

// Values returns the values in sequence order.
func (b *Binder[K, V]) Values() iter.Seq[V] {
	s := b.snap
	return func(yield func(V) bool) {
		if s == nil {
			return
		}
		for r := s.head; r != noRef; r = s.arena[r].next {
			if !yield(s.arena[r].val) {
				return
			}
		}
	}
}
