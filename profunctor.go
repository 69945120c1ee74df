// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow

// Profunctor is satisfied by the tag of a binary constructor that is
// contravariant in its input and covariant in its output.
//
// Dimap(fab, f, g) runs f on the input, then fab, then g on the output:
//
//	Dimap(fab, id, id) == fab
//	Dimap(Dimap(fab, f1, g1), f2, g2) == Dimap(fab, f1∘f2, g2∘g1)
type Profunctor[F any] interface {
	Dimap(fab Kind2[F, Erased, Erased], f, g func(Erased) Erased) Kind2[F, Erased, Erased]
}

// Strong is a Profunctor that can act on one slot of a [Pair].
//
// First receives fab: A→B and returns the computation
// Pair[A, C]→Pair[B, C] over Pair[Erased, Erased], leaving Snd untouched.
type Strong[F any] interface {
	Profunctor[F]
	First(fab Kind2[F, Erased, Erased]) Kind2[F, Erased, Erased]
}

// StrongSecond is implemented by Strong tags that supply Second as a
// primitive. Second receives fab: A→B and returns Pair[C, A]→Pair[C, B]
// over Pair[Erased, Erased], leaving Fst untouched. When a tag does not
// implement it, [Second] is derived from First.
type StrongSecond[F any] interface {
	Second(fab Kind2[F, Erased, Erased]) Kind2[F, Erased, Erased]
}

// Dimap pre-processes the input of fab with f and post-processes its output with g.
func Dimap[F Profunctor[F], A, B, C, D any](fab Kind2[F, A, B], f func(C) A, g func(B) D) Kind2[F, C, D] {
	var p F
	return recast[C, D](p.Dimap(erase2(fab), eraseFn(f), eraseFn(g)))
}

// Lmap pre-processes the input of fab: Dimap(fab, f, id).
func Lmap[F Profunctor[F], A, B, C any](fab Kind2[F, A, B], f func(C) A) Kind2[F, C, B] {
	var p F
	return recast[C, B](p.Dimap(erase2(fab), eraseFn(f), identity[Erased]))
}

// Rmap post-processes the output of fab: Dimap(fab, id, g).
func Rmap[F Profunctor[F], A, B, D any](fab Kind2[F, A, B], g func(B) D) Kind2[F, A, D] {
	var p F
	return recast[A, D](p.Dimap(erase2(fab), identity[Erased], eraseFn(g)))
}

// First runs fab on the Fst slot of a pair and passes Snd through.
func First[F Strong[F], A, B, C any](fab Kind2[F, A, B]) Kind2[F, Pair[A, C], Pair[B, C]] {
	var s F
	return recast[Pair[A, C], Pair[B, C]](
		s.Dimap(s.First(erase2(fab)), erasePair[A, C], unerasePair[B, C]),
	)
}

// Second runs fab on the Snd slot of a pair and passes Fst through.
//
// If F implements [StrongSecond] its primitive is used. Otherwise Second is
// Dimap(First(fab), SwapPair, SwapPair).
func Second[F Strong[F], A, B, C any](fab Kind2[F, A, B]) Kind2[F, Pair[C, A], Pair[C, B]] {
	var s F
	if ss, ok := any(s).(StrongSecond[F]); ok {
		return recast[Pair[C, A], Pair[C, B]](
			s.Dimap(ss.Second(erase2(fab)), erasePair[C, A], unerasePair[C, B]),
		)
	}
	return Dimap(First[F, A, B, C](fab), SwapPair[C, A], SwapPair[B, C])
}
