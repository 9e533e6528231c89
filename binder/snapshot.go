package binder

import "cmp"

// entry is one (key, value) pair plus its position in the order thread.
type entry[K cmp.Ordered, V any] struct {
	key  K
	val  V
	prev ref
	next ref
	live bool
}

// snapshot is one consistent, independently ownable version of the binder's
// contents. Sequence order is the prev/next thread starting at head; the
// index maps each live key to its arena slot. refs counts the handles that
// currently reference this snapshot.
//
// Invariant: the index and the order thread are in bijection. Every indexed
// ref designates a live slot whose key maps back to that ref, and every live
// slot is reachable from head exactly once.
type snapshot[K cmp.Ordered, V any] struct {
	arena []entry[K, V]
	free  []ref
	index map[K]ref
	head  ref
	tail  ref
	count int
	refs  int
}

func newSnapshot[K cmp.Ordered, V any]() (*snapshot[K, V], error) {
	if err := reserve(1); err != nil {
		return nil, ErrResourceExhausted
	}
	return &snapshot[K, V]{
		index: make(map[K]ref),
		head:  noRef,
		tail:  noRef,
		refs:  1,
	}, nil
}

// alloc claims a slot for (k, v), reusing a freed slot when one exists. The
// slot is live but not yet linked into the order thread or the index.
func (s *snapshot[K, V]) alloc(k K, v V) (ref, error) {
	if err := reserve(1); err != nil {
		return noRef, ErrResourceExhausted
	}
	e := entry[K, V]{key: k, val: v, prev: noRef, next: noRef, live: true}
	if n := len(s.free); n > 0 {
		r := s.free[n-1]
		s.free = s.free[:n-1]
		s.arena[r] = e
		return r, nil
	}
	s.arena = append(s.arena, e)
	return ref(len(s.arena) - 1), nil
}

// insertFront links a new first entry. All fallible work happens in alloc;
// once the slot exists the linking and index insertion cannot fail.
func (s *snapshot[K, V]) insertFront(k K, v V) error {
	r, err := s.alloc(k, v)
	if err != nil {
		return err
	}
	s.arena[r].next = s.head
	if s.head != noRef {
		s.arena[s.head].prev = r
	} else {
		s.tail = r
	}
	s.head = r
	s.index[k] = r
	s.count++
	return nil
}

// insertAfter links a new entry immediately after the slot prev. The caller
// has already resolved prev through the index of this snapshot.
func (s *snapshot[K, V]) insertAfter(prev ref, k K, v V) error {
	r, err := s.alloc(k, v)
	if err != nil {
		return err
	}
	s.arena[r].prev = prev
	s.arena[r].next = s.arena[prev].next
	if s.arena[prev].next != noRef {
		s.arena[s.arena[prev].next].prev = r
	} else {
		s.tail = r
	}
	s.arena[prev].next = r
	s.index[k] = r
	s.count++
	return nil
}

// remove unlinks the slot r and returns it to the free list. Infallible.
func (s *snapshot[K, V]) remove(r ref) {
	e := &s.arena[r]
	if e.prev != noRef {
		s.arena[e.prev].next = e.next
	} else {
		s.head = e.next
	}
	if e.next != noRef {
		s.arena[e.next].prev = e.prev
	} else {
		s.tail = e.prev
	}
	delete(s.index, e.key)
	*e = entry[K, V]{prev: noRef, next: noRef}
	s.free = append(s.free, r)
	s.count--
}

// clone builds an independent snapshot with identical sequence order and
// content. The slot relation and the key index are rebuilt from scratch in
// the new snapshot; nothing in the original is touched, so a clone that
// fails partway is simply discarded.
func (s *snapshot[K, V]) clone() (*snapshot[K, V], error) {
	dst, err := newSnapshot[K, V]()
	if err != nil {
		return nil, err
	}
	prev := noRef
	for r := s.head; r != noRef; r = s.arena[r].next {
		nr, err := dst.alloc(s.arena[r].key, s.arena[r].val)
		if err != nil {
			return nil, err
		}
		dst.arena[nr].prev = prev
		if prev != noRef {
			dst.arena[prev].next = nr
		} else {
			dst.head = nr
		}
		dst.tail = nr
		dst.index[s.arena[r].key] = nr
		dst.count++
		prev = nr
	}
	return dst, nil
}

// checkInvariants walks the order thread and verifies the index bijection.
// Test support; not called on any operation path.
func (s *snapshot[K, V]) checkInvariants() bool {
	seen := 0
	prev := noRef
	for r := s.head; r != noRef; r = s.arena[r].next {
		e := s.arena[r]
		if !e.live || e.prev != prev {
			return false
		}
		if ir, ok := s.index[e.key]; !ok || ir != r {
			return false
		}
		prev = r
		seen++
	}
	return prev == s.tail && seen == s.count && len(s.index) == s.count
}
