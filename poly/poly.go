package poly

// Number is the scalar coefficient constraint.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Ring is the capability Poly requires of its elements. The zero value of
// an implementing type must be the ring's additive identity.
type Ring[E any] interface {
	Add(E) E
	Neg() E
	Mul(E) E
}

// Scalar adapts a numeric type to Ring.
type Scalar[T Number] struct{ V T }

func (s Scalar[T]) Add(o Scalar[T]) Scalar[T] { return Scalar[T]{s.V + o.V} }
func (s Scalar[T]) Neg() Scalar[T]            { return Scalar[T]{-s.V} }
func (s Scalar[T]) Mul(o Scalar[T]) Scalar[T] { return Scalar[T]{s.V * o.V} }

// elem is the untyped arithmetic used by n-ary evaluation. A method cannot
// introduce the leaf scalar type as a fresh type parameter, so AtVec
// descends the nesting through this interface instead; Scalar and Poly both
// satisfy it.
type elem interface {
	// addElem adds o, which has the receiver's dynamic type.
	addElem(o any) any
	// scaleBy multiplies every leaf by x, which has the leaf scalar type.
	scaleBy(x any) any
	// evalTail evaluates the remaining variables, outermost first.
	evalTail(vs []any) any
}

func (s Scalar[T]) addElem(o any) any { return Scalar[T]{s.V + o.(Scalar[T]).V} }
func (s Scalar[T]) scaleBy(x any) any { return Scalar[T]{s.V * x.(T)} }

// A scalar is constant in any remaining variables.
func (s Scalar[T]) evalTail([]any) any { return s }

// Poly is a polynomial over E, coefficients lowest power first. The zero
// value is the zero polynomial of size 0.
type Poly[E Ring[E]] struct {
	coeff []E
}

// New returns the polynomial with the given coefficients, constant term
// first.
func New[E Ring[E]](coeffs ...E) Poly[E] {
	out := make([]E, len(coeffs))
	copy(out, coeffs)
	return Poly[E]{out}
}

// FromScalars returns a scalar-coefficient polynomial, constant term first.
func FromScalars[T Number](vs ...T) Poly[Scalar[T]] {
	out := make([]Scalar[T], len(vs))
	for i, v := range vs {
		out[i] = Scalar[T]{v}
	}
	return Poly[Scalar[T]]{out}
}

// Const lifts p to a size-1 polynomial in an enclosing variable, in which p
// is the constant term.
func Const[E Ring[E]](p Poly[E]) Poly[Poly[E]] {
	return New(p)
}

// Size returns the number of coefficients.
func (p Poly[E]) Size() int { return len(p.coeff) }

// Coeff returns the coefficient of power i, reading past the size as zero.
func (p Poly[E]) Coeff(i int) E {
	if i < len(p.coeff) {
		return p.coeff[i]
	}
	var zero E
	return zero
}

// Coeffs returns a copy of the coefficient sequence.
func (p Poly[E]) Coeffs() []E {
	out := make([]E, len(p.coeff))
	copy(out, p.coeff)
	return out
}

// Add returns p + q, sized to the larger operand.
func (p Poly[E]) Add(q Poly[E]) Poly[E] {
	out := make([]E, max(len(p.coeff), len(q.coeff)))
	for i := range out {
		c := p.Coeff(i)
		if i < len(q.coeff) {
			c = c.Add(q.coeff[i])
		}
		out[i] = c
	}
	return Poly[E]{out}
}

// Neg returns -p.
func (p Poly[E]) Neg() Poly[E] {
	out := make([]E, len(p.coeff))
	for i, c := range p.coeff {
		out[i] = c.Neg()
	}
	return Poly[E]{out}
}

// Sub returns p - q, sized to the larger operand.
func (p Poly[E]) Sub(q Poly[E]) Poly[E] {
	return p.Add(q.Neg())
}

// Mul returns p * q, of size N+M-1, or the zero polynomial if either
// operand has size 0.
func (p Poly[E]) Mul(q Poly[E]) Poly[E] {
	if len(p.coeff) == 0 || len(q.coeff) == 0 {
		return Poly[E]{}
	}
	out := make([]E, len(p.coeff)+len(q.coeff)-1)
	for i, a := range p.coeff {
		for j, b := range q.coeff {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return Poly[E]{out}
}

// MulScalar returns p with every coefficient multiplied by x.
func (p Poly[E]) MulScalar(x E) Poly[E] {
	out := make([]E, len(p.coeff))
	for i, c := range p.coeff {
		out[i] = c.Mul(x)
	}
	return Poly[E]{out}
}

// At evaluates p at x by the Horner scheme. The zero polynomial evaluates
// to the ring's zero.
func (p Poly[E]) At(x E) E {
	var acc E
	for i := len(p.coeff) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coeff[i])
	}
	return acc
}

// At2 evaluates a two-variable polynomial at (x, y): the outer variable at
// x, then the remaining inner polynomial at y.
func At2[T Number](p Poly[Poly[Scalar[T]]], x, y T) T {
	return p.At(FromScalars(x)).At(Scalar[T]{y}).V
}

func (p Poly[E]) addElem(o any) any { return p.Add(o.(Poly[E])) }

func (p Poly[E]) scaleBy(x any) any {
	out := make([]E, len(p.coeff))
	for i, c := range p.coeff {
		out[i] = any(c).(elem).scaleBy(x).(E)
	}
	return Poly[E]{out}
}

func (p Poly[E]) evalTail(vs []any) any {
	if len(vs) == 0 {
		return p
	}
	// Horner on the outermost variable stays within the element ring, then
	// the result (a polynomial in the remaining variables) consumes the
	// rest.
	var acc any
	var zero E
	acc = zero
	for i := len(p.coeff) - 1; i >= 0; i-- {
		acc = acc.(elem).scaleBy(vs[0]).(elem).addElem(any(p.coeff[i]))
	}
	return acc.(elem).evalTail(vs[1:])
}

// AtVec evaluates a scalar-leaved polynomial of any nesting depth at one
// value per variable, outermost variable first. vs must cover the full
// nesting depth and have the leaf scalar type; values beyond the depth are
// ignored, as a scalar is constant in further variables. For partial
// evaluation use At, which stays in the element ring.
func AtVec[E Ring[E], T Number](p Poly[E], vs ...T) T {
	anyVs := make([]any, len(vs))
	for i, v := range vs {
		anyVs[i] = v
	}
	return p.evalTail(anyVs).(Scalar[T]).V
}

// Cross returns the two-variable product a(x) * b(y): a's coefficients are
// lifted to constants of the inner variable and b is embedded as a constant
// of the outer one.
func Cross[E Ring[E]](a, b Poly[E]) Poly[Poly[E]] {
	lifted := make([]Poly[E], len(a.coeff))
	for i, c := range a.coeff {
		lifted[i] = New(c)
	}
	return New(lifted...).Mul(Const(b))
}
