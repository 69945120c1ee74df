// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow

// Choice is a Category and Profunctor that can act on either side of an [Either].
//
// Choose receives f: A→C and g: B→D and returns the computation
// Either[A, B]→Either[C, D] over Either[Erased, Erased]. A Left input runs f
// and yields Left; a Right input runs g and yields Right.
type Choice[F any] interface {
	Category[F]
	Profunctor[F]
	Choose(f, g Kind2[F, Erased, Erased]) Kind2[F, Erased, Erased]
}

// Choose transforms each side of an Either independently, preserving which
// side is populated.
func Choose[F Choice[F], A, B, C, D any](f Kind2[F, A, C], g Kind2[F, B, D]) Kind2[F, Either[A, B], Either[C, D]] {
	var c F
	return recast[Either[A, B], Either[C, D]](
		c.Dimap(c.Choose(erase2(f), erase2(g)), eraseEither[A, B], uneraseEither[C, D]),
	)
}

// ChooseLeft runs fab on Left values and passes Right values through.
// ChooseLeft(fab) == Choose(fab, Id()).
func ChooseLeft[F Choice[F], A, B, C any](fab Kind2[F, A, B]) Kind2[F, Either[A, C], Either[B, C]] {
	return Choose(fab, Id[F, C]())
}

// ChooseRight runs fab on Right values and passes Left values through.
// ChooseRight(fab) == Choose(Id(), fab).
func ChooseRight[F Choice[F], A, B, C any](fab Kind2[F, A, B]) Kind2[F, Either[C, A], Either[C, B]] {
	return Choose(Id[F, C](), fab)
}

// Fanin dispatches on the side of an Either, running f on Left values and g
// on Right values, and produces C either way.
// Fanin(f, g) == Rmap(Choose(f, g), fold).
func Fanin[F Choice[F], A, B, C any](f Kind2[F, A, C], g Kind2[F, B, C]) Kind2[F, Either[A, B], C] {
	return Rmap(Choose(f, g), merged[C])
}

// Codiagonal collapses either side to the common value: Fanin(Id(), Id()).
func Codiagonal[F Choice[F], A any]() Kind2[F, Either[A, A], A] {
	return Fanin(Id[F, A](), Id[F, A]())
}

// merged discards the tag of an Either whose sides share a type.
func merged[A any](e Either[A, A]) A {
	return MatchEither(e, identity[A], identity[A])
}
