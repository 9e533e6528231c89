package binder

// prepareForEdit returns a snapshot that is safe for this handle to mutate
// in place. When the current snapshot is shared by another live handle the
// result is a fresh clone; otherwise it is the current snapshot itself. An
// empty handle gets a new empty snapshot. The handle is never mutated here:
// a caller that fails after prepareForEdit simply discards the result.
func (b *Binder[K, V]) prepareForEdit() (*snapshot[K, V], error) {
	if b.snap == nil {
		return newSnapshot[K, V]()
	}
	if b.snap.refs > 1 {
		return b.snap.clone()
	}
	return b.snap, nil
}

// commit installs target as the handle's snapshot and clears the
// unshareable flag. This is the single point after which a mutation becomes
// visible, and it cannot fail.
func (b *Binder[K, V]) commit(target *snapshot[K, V]) {
	if target != b.snap {
		if b.snap != nil {
			b.snap.refs--
		}
		b.snap = target
	}
	b.unshareable = false
}
