package binder

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func snapshotKeys[K ~int, V any](s *snapshot[K, V]) []K {
	var keys []K
	for r := s.head; r != noRef; r = s.arena[r].next {
		keys = append(keys, s.arena[r].key)
	}
	return keys
}

func TestCloneRebuildsIndexIntoNewSnapshot(t *testing.T) {
	s, err := newSnapshot[int, string]()
	require.NoError(t, err)
	require.NoError(t, s.insertFront(1, "a"))
	require.NoError(t, s.insertFront(2, "b"))
	require.NoError(t, s.insertAfter(s.index[2], 3, "c"))

	c, err := s.clone()
	require.NoError(t, err)
	require.True(t, c.checkInvariants())
	require.Equal(t, []int{2, 3, 1}, snapshotKeys(c))
	require.Equal(t, 3, c.count)
	require.Equal(t, 1, c.refs)

	// Every index entry of the clone resolves into the clone's own arena.
	for k, r := range c.index {
		require.Equal(t, k, c.arena[r].key)
	}

	// Divergence: mutating the clone leaves the original untouched.
	c.remove(c.index[3])
	require.NoError(t, c.insertFront(4, "d"))
	require.Equal(t, []int{4, 2, 1}, snapshotKeys(c))
	require.Equal(t, []int{2, 3, 1}, snapshotKeys(s))
	require.True(t, s.checkInvariants())
	require.True(t, c.checkInvariants())
}

func TestRemoveReturnsSlotToFreeList(t *testing.T) {
	s, err := newSnapshot[int, string]()
	require.NoError(t, err)
	require.NoError(t, s.insertFront(1, "a"))
	require.NoError(t, s.insertFront(2, "b"))
	require.Equal(t, 2, len(s.arena))

	s.remove(s.index[2])
	require.Equal(t, 1, s.count)
	require.Equal(t, 1, len(s.free))

	// The freed slot is reused; the arena does not grow.
	require.NoError(t, s.insertFront(3, "c"))
	require.Equal(t, 2, len(s.arena))
	require.Empty(t, s.free)
	require.Equal(t, []int{3, 1}, snapshotKeys(s))
	require.True(t, s.checkInvariants())
}

func TestRemovalRelinksAtEveryPosition(t *testing.T) {
	build := func() *snapshot[int, string] {
		s, err := newSnapshot[int, string]()
		require.NoError(t, err)
		for _, k := range []int{3, 2, 1} {
			require.NoError(t, s.insertFront(k, "v"))
		}
		return s // order [1, 2, 3]
	}
	tests := []struct {
		name string
		k    int
		want []int
	}{
		{"head", 1, []int{2, 3}},
		{"middle", 2, []int{1, 3}},
		{"tail", 3, []int{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := build()
			s.remove(s.index[tt.k])
			require.Equal(t, tt.want, snapshotKeys(s))
			require.True(t, s.checkInvariants())
		})
	}
}

func TestCloneOfEmptySnapshot(t *testing.T) {
	s, err := newSnapshot[int, string]()
	require.NoError(t, err)
	c, err := s.clone()
	require.NoError(t, err)
	require.True(t, c.checkInvariants())
	require.Equal(t, 0, c.count)
	require.Equal(t, noRef, c.head)
	require.Equal(t, noRef, c.tail)
}

func TestCloneIsOrderAndContentIdentical(t *testing.T) {
	s, err := newSnapshot[int, string]()
	require.NoError(t, err)
	keys := []int{5, 9, 1, 7, 3}
	for _, k := range keys {
		require.NoError(t, s.insertFront(k, "v"))
	}
	slices.Reverse(keys)

	c, err := s.clone()
	require.NoError(t, err)
	require.Equal(t, keys, snapshotKeys(c))
	for k, r := range s.index {
		cr, ok := c.index[k]
		require.True(t, ok)
		require.Equal(t, s.arena[r].val, c.arena[cr].val)
	}
}
