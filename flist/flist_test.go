package flist

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructionOrder(t *testing.T) {
	tests := []struct {
		name string
		l    List[int]
		want []int
	}{
		{"empty", Empty[int](), nil},
		{"cons onto empty", Cons(1, Empty[int]()), []int{1}},
		{"cons preserves order", Cons(1, Cons(2, Cons(3, Empty[int]()))), []int{1, 2, 3}},
		{"new of none", New[int](), nil},
		{"new of several", New(1, 2, 3), []int{1, 2, 3}},
		{"from slice", FromSlice([]int{4, 5, 6}), []int{4, 5, 6}},
		{"from seq", FromSeq(slices.Values([]int{7, 8})), []int{7, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ToSlice(tt.l))
		})
	}
}

func TestCombinators(t *testing.T) {
	l := New(1, 2, 3)
	k := New(4, 5)

	require.Equal(t, []int{1, 2, 3, 4, 5}, ToSlice(Concat(l, k)))
	require.Equal(t, []int{3, 2, 1}, ToSlice(Rev(l)))
	require.Equal(t, []int{5, 4, 3, 2, 1}, ToSlice(Rev(Concat(l, k))))

	doubled := Map(func(x int) int { return 2 * x }, l)
	require.Equal(t, []int{2, 4, 6}, ToSlice(doubled))

	named := Map(strconv.Itoa, l)
	require.Equal(t, []string{"1", "2", "3"}, ToSlice(named))

	odd := Filter(func(x int) bool { return x%2 == 1 }, l)
	require.Equal(t, []int{1, 3}, ToSlice(odd))
	require.Empty(t, ToSlice(Filter(func(int) bool { return false }, l)))

	ll := New(New(1, 2), New[int](), New(3))
	require.Equal(t, []int{1, 2, 3}, ToSlice(Flatten(ll)))
}

func TestCombinatorsComposeWithoutRebuilding(t *testing.T) {
	// Lists are folds; composing combinators composes functions, and the
	// shared tail is genuinely shared.
	tail := New(2, 3)
	a := Cons(1, tail)
	b := Cons(9, tail)
	require.Equal(t, []int{1, 2, 3}, ToSlice(a))
	require.Equal(t, []int{9, 2, 3}, ToSlice(b))

	got := ToSlice(Rev(Map(func(x int) int { return x + 1 }, Concat(a, b))))
	require.Equal(t, []int{4, 3, 10, 4, 3, 2}, got)
}

func TestReduce(t *testing.T) {
	l := New(1, 2, 3, 4)

	sum := Reduce(l, func(x, acc int) int { return x + acc }, 0)
	require.Equal(t, 10, sum)

	// Right fold: x1 op (x2 op (... op a)).
	diff := Reduce(l, func(x, acc int) int { return x - acc }, 0)
	require.Equal(t, 1-(2-(3-(4-0))), diff)

	joined := Reduce(l, func(x int, acc string) string {
		return strconv.Itoa(x) + acc
	}, "|")
	require.Equal(t, "1234|", joined)
}

func TestString(t *testing.T) {
	require.Equal(t, "[]", String(Empty[int]()))
	require.Equal(t, "[1]", String(New(1)))
	require.Equal(t, "[1;2;3]", String(New(1, 2, 3)))
	require.Equal(t, "[a;b]", String(New("a", "b")))
}
