// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow

// Arrow is a Strong Category into which plain functions embed.
//
// Lift receives a function on erased values and returns the computation
// that applies it. A concrete Arrow supplies Compose, Id, Dimap, First and
// Lift; everything else on the Arrow surface is derived here and must
// agree with those primitives:
//
//	Id() == Lift(id)
//	Dimap(fab, f, g) == Compose(Lift(g), AndThen(Lift(f), fab))
type Arrow[F any] interface {
	Category[F]
	Strong[F]
	Lift(f func(Erased) Erased) Kind2[F, Erased, Erased]
}

// ArrowChoice is an Arrow that is also a Choice.
type ArrowChoice[F any] interface {
	Arrow[F]
	Choice[F]
}

// Lift embeds a plain function as a computation.
func Lift[F Arrow[F], A, B any](f func(A) B) Kind2[F, A, B] {
	var a F
	return recast[A, B](a.Lift(eraseFn(f)))
}

// ArrowId is the identity computation obtained by lifting the identity function.
// It agrees with [Id] for every lawful Arrow.
func ArrowId[F Arrow[F], A any]() Kind2[F, A, A] {
	return Lift[F](identity[A])
}

// ArrowDimap is Dimap derived from Lift and composition alone:
// pre-process with Lift(f), run fab, post-process with Lift(g).
// It agrees with the instance's own [Dimap] for every lawful Arrow.
func ArrowDimap[F Arrow[F], A, B, C, D any](fab Kind2[F, A, B], f func(C) A, g func(B) D) Kind2[F, C, D] {
	return Compose(Lift[F](g), AndThen(Lift[F](f), fab))
}

// Swap exchanges the slots of a pair.
func Swap[F Arrow[F], X, Y any]() Kind2[F, Pair[X, Y], Pair[Y, X]] {
	return Lift[F](SwapPair[X, Y])
}

// ArrowSecond is Second derived as Compose(Swap, Compose(First(fab), Swap)).
// It agrees with [Second] for every lawful Arrow.
func ArrowSecond[F Arrow[F], A, B, C any](fab Kind2[F, A, B]) Kind2[F, Pair[C, A], Pair[C, B]] {
	return Compose(Swap[F, B, C](), Compose(First[F, A, B, C](fab), Swap[F, C, A]()))
}

// Split runs f on the Fst slot and g on the Snd slot:
// AndThen(First(f), Second(g)). First(f) produces the intermediate
// Pair[B, C] that Second(g) then consumes, so f's effects precede g's.
func Split[F Arrow[F], A, B, C, D any](f Kind2[F, A, B], g Kind2[F, C, D]) Kind2[F, Pair[A, C], Pair[B, D]] {
	return AndThen(First[F, A, B, C](f), Second[F, C, D, B](g))
}

// Merge feeds the same input to f and g and pairs their outputs:
// AndThen(Lift(Dup), Split(f, g)).
func Merge[F Arrow[F], A, B, C any](f Kind2[F, A, B], g Kind2[F, A, C]) Kind2[F, A, Pair[B, C]] {
	return AndThen(Lift[F](Dup[A]), Split(f, g))
}

// Branch runs f on inputs satisfying pred and g on the others.
// Only the selected computation runs.
func Branch[F ArrowChoice[F], A, B any](pred func(A) bool, f, g Kind2[F, A, B]) Kind2[F, A, B] {
	test := func(a A) Either[A, A] {
		if pred(a) {
			return Left[A, A](a)
		}
		return Right[A](a)
	}
	return AndThen(Lift[F](test), Fanin(f, g))
}
