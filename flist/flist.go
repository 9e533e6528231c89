package flist

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Fold is the step function a list folds with. The accumulator is untyped
// inside the encoding; see Reduce.
type Fold[E any] func(x E, acc any) any

// List is an immutable list encoded as its right fold.
type List[E any] func(f Fold[E], acc any) any

// Empty returns the empty list.
func Empty[E any]() List[E] {
	return func(_ Fold[E], acc any) any {
		return acc
	}
}

// Cons returns the list l prepended with x.
func Cons[E any](x E, l List[E]) List[E] {
	return func(f Fold[E], acc any) any {
		return f(x, l(f, acc))
	}
}

// New returns the list of the given elements, first argument first.
func New[E any](xs ...E) List[E] {
	l := Empty[E]()
	for i := len(xs) - 1; i >= 0; i-- {
		l = Cons(xs[i], l)
	}
	return l
}

// FromSeq returns the list of the sequence's elements. The sequence is
// walked anew on every application of the list, mirroring that the list
// captures the range, not a copy of it.
func FromSeq[E any](seq iter.Seq[E]) List[E] {
	return func(f Fold[E], acc any) any {
		xs := slices.Collect(seq)
		var fold func(i int) any
		fold = func(i int) any {
			if i == len(xs) {
				return acc
			}
			return f(xs[i], fold(i+1))
		}
		return fold(0)
	}
}

// FromSlice returns the list of the slice's elements.
func FromSlice[E any](xs []E) List[E] {
	return FromSeq(slices.Values(xs))
}

// Concat returns the concatenation of l and k.
func Concat[E any](l, k List[E]) List[E] {
	return func(f Fold[E], acc any) any {
		return l(f, k(f, acc))
	}
}

// Rev returns the reverse of l. The fold builds a continuation that applies
// f in the opposite association, so no intermediate list is materialized.
func Rev[E any](l List[E]) List[E] {
	return func(f Fold[E], acc any) any {
		identity := func(a any) any { return a }
		phi := func(x E, alpha any) any {
			k := alpha.(func(any) any)
			return func(a any) any {
				return k(f(x, a))
			}
		}
		return l(phi, identity).(func(any) any)(acc)
	}
}

// Map returns the list of m applied to each element of l.
func Map[E, U any](m func(E) U, l List[E]) List[U] {
	return func(f Fold[U], acc any) any {
		return l(func(x E, a any) any {
			return f(m(x), a)
		}, acc)
	}
}

// Filter returns the list of elements of l satisfying p.
func Filter[E any](p func(E) bool, l List[E]) List[E] {
	return func(f Fold[E], acc any) any {
		return l(func(x E, a any) any {
			if p(x) {
				return f(x, a)
			}
			return a
		}, acc)
	}
}

// Flatten concatenates the nested lists of ll into one list.
func Flatten[E any](ll List[List[E]]) List[E] {
	return func(f Fold[E], acc any) any {
		return ll(func(l List[E], a any) any {
			return l(f, a)
		}, acc)
	}
}

// Reduce folds l with a statically typed step function and seed.
func Reduce[E, A any](l List[E], f func(E, A) A, a A) A {
	return l(func(x E, acc any) any {
		return f(x, acc.(A))
	}, a).(A)
}

// ToSlice returns the elements of l in list order.
func ToSlice[E any](l List[E]) []E {
	// A right fold reaches the last element's step first.
	var xs []E
	l(func(x E, _ any) any {
		xs = append(xs, x)
		return nil
	}, nil)
	slices.Reverse(xs)
	return xs
}

// String renders l as "[x1;x2;...;xn]" using fmt formatting of the
// elements.
func String[E any](l List[E]) string {
	parts := make([]string, 0, 8)
	for _, x := range ToSlice(l) {
		parts = append(parts, fmt.Sprint(x))
	}
	return "[" + strings.Join(parts, ";") + "]"
}
