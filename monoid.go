// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow

// Semigroup is an associative binary operation on A:
//
//	Combine(Combine(a, b), c) == Combine(a, Combine(b, c))
type Semigroup[A any] interface {
	Combine(x, y A) A
}

// Monoid is a Semigroup with an identity element:
//
//	Combine(Empty(), x) == x == Combine(x, Empty())
type Monoid[A any] interface {
	Semigroup[A]
	Empty() A
}

// CombineAll folds xs from the left, starting at m.Empty().
func CombineAll[A any](m Monoid[A], xs ...A) A {
	acc := m.Empty()
	for _, x := range xs {
		acc = m.Combine(acc, x)
	}
	return acc
}

// FuncMonoid is a Monoid built from an identity element and a combining function.
type FuncMonoid[A any] struct {
	empty   A
	combine func(A, A) A
}

// MonoidOf creates a Monoid from an identity element and an associative function.
// The caller is responsible for the monoid laws.
func MonoidOf[A any](empty A, combine func(x, y A) A) FuncMonoid[A] {
	return FuncMonoid[A]{empty: empty, combine: combine}
}

// Combine applies the combining function.
func (m FuncMonoid[A]) Combine(x, y A) A { return m.combine(x, y) }

// Empty returns the identity element.
func (m FuncMonoid[A]) Empty() A { return m.empty }

// Number is the constraint for the additive and multiplicative monoids.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// SumMonoid is addition with identity 0.
type SumMonoid[N Number] struct{}

// Combine returns x + y.
func (SumMonoid[N]) Combine(x, y N) N { return x + y }

// Empty returns 0.
func (SumMonoid[N]) Empty() N { return 0 }

// ProductMonoid is multiplication with identity 1.
type ProductMonoid[N Number] struct{}

// Combine returns x * y.
func (ProductMonoid[N]) Combine(x, y N) N { return x * y }

// Empty returns 1.
func (ProductMonoid[N]) Empty() N { return 1 }

// StringMonoid is concatenation with identity "".
type StringMonoid struct{}

// Combine returns x followed by y.
func (StringMonoid) Combine(x, y string) string { return x + y }

// Empty returns "".
func (StringMonoid) Empty() string { return "" }

// SliceMonoid is slice concatenation with identity nil.
// Combine never aliases its second argument into the result.
type SliceMonoid[W any] struct{}

// Combine returns the elements of x followed by those of y.
func (SliceMonoid[W]) Combine(x, y []W) []W {
	if len(y) == 0 {
		return x
	}
	out := make([]W, 0, len(x)+len(y))
	out = append(out, x...)
	return append(out, y...)
}

// Empty returns nil.
func (SliceMonoid[W]) Empty() []W { return nil }

// OptionMonoid lifts a Semigroup into a Monoid over Option with None as identity.
// Two present values combine with the underlying semigroup.
type OptionMonoid[A any] struct {
	S Semigroup[A]
}

// Combine keeps whichever side is present, combining two present values.
func (m OptionMonoid[A]) Combine(x, y Option[A]) Option[A] {
	a, okA := x.Get()
	b, okB := y.Get()
	switch {
	case okA && okB:
		return Some(m.S.Combine(a, b))
	case okA:
		return x
	default:
		return y
	}
}

// Empty returns None.
func (OptionMonoid[A]) Empty() Option[A] { return None[A]() }

// ListMonoid is list concatenation with identity Nil.
type ListMonoid[A any] struct{}

// Combine returns x followed by y, sharing y.
func (ListMonoid[A]) Combine(x, y List[A]) List[A] { return Concat(x, y) }

// Empty returns the empty list.
func (ListMonoid[A]) Empty() List[A] { return Nil[A]() }
