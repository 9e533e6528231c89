// Package poly provides a fixed-capacity polynomial value type.
//
// A Poly owns an immutable coefficient sequence, lowest power first. Its
// element type is anything satisfying Ring, and Poly itself satisfies Ring,
// so polynomials nest: a Poly[Poly[Scalar[int]]] is a polynomial in an outer
// variable whose coefficients are polynomials in an inner variable, which is
// how multivariate polynomials are expressed. Scalar adapts the ordinary
// numeric types to Ring.
//
// Arithmetic between polynomials of different sizes promotes to the larger
// size, with missing coefficients reading as zero. Evaluation (At) uses the
// Horner scheme and stays within the element ring, so evaluating a nested
// polynomial at a point of the outer variable yields a polynomial in the
// remaining variables.
//
// Values are immutable: every operation returns a new Poly, there is no
// resource management and no failure mode beyond arithmetic overflow of the
// underlying scalar type.
package poly
