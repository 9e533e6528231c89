// Package flist encodes immutable lists as their right folds.
//
// A list is not a data structure here: it is the function that folds over
// it. Applying a list to a step function f and a seed a computes
//
//	f(x1, f(x2, ... f(xn, a)))
//
// so Empty is the fold that returns its seed, and Cons prepends by wrapping
// one more application of f. Every combinator (Concat, Rev, Map, Filter,
// Flatten) is defined purely in terms of application, with no cells and no
// mutation anywhere.
//
// Go generics cannot express a fold that is polymorphic in its accumulator
// (rank-2 polymorphism), so the accumulator travels through the encoding as
// any. Reduce recovers a statically typed fold at the boundary; inside the
// combinators the loss of typing is invisible to callers.
package flist
