// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow

// Semigroupoid is satisfied by the tag of a binary computation constructor
// whose computations compose.
//
// Compose receives g: A→B and f: B→C (phantom types erased) and returns
// the computation running g, then f. It must be associative.
type Semigroupoid[F any] interface {
	Compose(f, g Kind2[F, Erased, Erased]) Kind2[F, Erased, Erased]
}

// Category adds an identity computation per type.
//
//	Compose(f, Id()) == f == Compose(Id(), f)
type Category[F any] interface {
	Semigroupoid[F]
	Id() Kind2[F, Erased, Erased]
}

// Compose returns the computation that runs g, then f.
func Compose[F Semigroupoid[F], A, B, C any](f Kind2[F, B, C], g Kind2[F, A, B]) Kind2[F, A, C] {
	var s F
	return recast[A, C](s.Compose(erase2(f), erase2(g)))
}

// AndThen returns the computation that runs f, then g.
// AndThen(f, g) == Compose(g, f).
func AndThen[F Semigroupoid[F], A, B, C any](f Kind2[F, A, B], g Kind2[F, B, C]) Kind2[F, A, C] {
	return Compose(g, f)
}

// Id returns the identity computation on A.
func Id[F Category[F], A any]() Kind2[F, A, A] {
	var c F
	return recast[A, A](c.Id())
}

// Endo is the Monoid of endo-computations A→A of a Category:
// Empty is Id and Combine is Compose. The category laws are the monoid laws.
type Endo[F Category[F], A any] struct{}

// EndoMonoid returns the endo-computation Monoid of F at A.
func EndoMonoid[F Category[F], A any]() Endo[F, A] {
	return Endo[F, A]{}
}

// Combine composes x after y.
func (Endo[F, A]) Combine(x, y Kind2[F, A, A]) Kind2[F, A, A] { return Compose(x, y) }

// Empty returns Id.
func (Endo[F, A]) Empty() Kind2[F, A, A] { return Id[F, A]() }
