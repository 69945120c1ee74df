// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow

// Functor is satisfied by the tag of a unary constructor whose values can be
// mapped over:
//
//	Map(fa, id) == fa
//	Map(Map(fa, f), g) == Map(fa, g∘f)
type Functor[F any] interface {
	Map(fa Kind[F, Erased], f func(Erased) Erased) Kind[F, Erased]
}

// Applicative adds Pure and Ap. The elements of the ff argument to Ap are
// functions of type func(Erased) Erased.
type Applicative[F any] interface {
	Functor[F]
	Pure(a Erased) Kind[F, Erased]
	Ap(ff, fa Kind[F, Erased]) Kind[F, Erased]
}

// Monad adds FlatMap:
//
//	FlatMap(Pure(a), f) == f(a)
//	FlatMap(m, Pure) == m
//	FlatMap(FlatMap(m, f), g) == FlatMap(m, func(x) FlatMap(f(x), g))
type Monad[F any] interface {
	Applicative[F]
	FlatMap(fa Kind[F, Erased], f func(Erased) Kind[F, Erased]) Kind[F, Erased]
}

// Map applies f to every value held by fa.
func Map[F Functor[F], A, B any](fa Kind[F, A], f func(A) B) Kind[F, B] {
	var fn F
	return recast1[B](fn.Map(erase(fa), eraseFn(f)))
}

// Pure lifts a into F.
func Pure[F Applicative[F], A any](a A) Kind[F, A] {
	var ap F
	return recast1[A](ap.Pure(a))
}

// Ap applies the functions held by ff to the values held by fa.
func Ap[F Applicative[F], A, B any](ff Kind[F, func(A) B], fa Kind[F, A]) Kind[F, B] {
	var ap F
	fe := ap.Map(erase(ff), func(x Erased) Erased {
		return eraseFn(fromErased[func(A) B](x))
	})
	return recast1[B](ap.Ap(fe, erase(fa)))
}

// Map2 combines the values of fa and fb with f.
func Map2[F Applicative[F], A, B, C any](fa Kind[F, A], fb Kind[F, B], f func(A, B) C) Kind[F, C] {
	curried := Map(fa, func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	})
	return Ap(curried, fb)
}

// FlatMap sequences fa with f.
func FlatMap[F Monad[F], A, B any](fa Kind[F, A], f func(A) Kind[F, B]) Kind[F, B] {
	var m F
	return recast1[B](m.FlatMap(erase(fa), func(x Erased) Kind[F, Erased] {
		return erase(f(fromErased[A](x)))
	}))
}

// Flatten removes one layer of F.
func Flatten[F Monad[F], A any](ffa Kind[F, Kind[F, A]]) Kind[F, A] {
	return FlatMap(ffa, identity[Kind[F, A]])
}

// MonadAp is Ap derived from FlatMap and Map.
// It agrees with [Ap] for every lawful Monad.
func MonadAp[F Monad[F], A, B any](ff Kind[F, func(A) B], fa Kind[F, A]) Kind[F, B] {
	return FlatMap(ff, func(f func(A) B) Kind[F, B] {
		return Map(fa, f)
	})
}
