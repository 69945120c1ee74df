// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow

// KleisliK tags Kleisli arrows A → M[B] of the monad tagged M.
//
// Composition sequences through M.FlatMap, so the effects of the earlier
// computation happen first. KleisliK supplies First but not Second;
// [Second] is derived for it.
type KleisliK[M Monad[M]] struct{}

var (
	_ ArrowChoice[KleisliK[OptionK]] = KleisliK[OptionK]{}
	_ ArrowChoice[KleisliK[ListK]]   = KleisliK[ListK]{}
	_ ArrowChoice[KleisliK[EffK]]    = KleisliK[EffK]{}
)

// Kleisli is a function from A to M[B] viewed as a computation.
type Kleisli[M Monad[M], A, B any] struct {
	run func(Erased) Kind[M, Erased]
}

// KleisliOf wraps f as a Kleisli arrow.
func KleisliOf[M Monad[M], A, B any](f func(A) Kind[M, B]) Kleisli[M, A, B] {
	return Kleisli[M, A, B]{run: func(x Erased) Kind[M, Erased] {
		return erase(f(fromErased[A](x)))
	}}
}

// Run applies k to a.
func (k Kleisli[M, A, B]) Run(a A) Kind[M, B] {
	return recast1[B](k.run(a))
}

// Kind returns k as a handle of the KleisliK[M] constructor.
func (k Kleisli[M, A, B]) Kind() Kind2[KleisliK[M], A, B] {
	return Inject2[KleisliK[M], A, B](k.run)
}

// FixKleisli recovers the Kleisli arrow held by k.
// k must have been produced by KleisliK code; see [Project2].
func FixKleisli[M Monad[M], A, B any](k Kind2[KleisliK[M], A, B]) Kleisli[M, A, B] {
	return Kleisli[M, A, B]{run: kleisliRep(k)}
}

// RunKleisli applies the Kleisli arrow held by k to a.
func RunKleisli[M Monad[M], A, B any](k Kind2[KleisliK[M], A, B], a A) Kind[M, B] {
	return FixKleisli(k).Run(a)
}

func kleisliRep[M Monad[M], A, B any](k Kind2[KleisliK[M], A, B]) func(Erased) Kind[M, Erased] {
	return Project2[func(Erased) Kind[M, Erased]](k)
}

func kleisliKind[M Monad[M]](run func(Erased) Kind[M, Erased]) Kind2[KleisliK[M], Erased, Erased] {
	return Inject2[KleisliK[M], Erased, Erased](run)
}

// Compose implements Semigroupoid: g's effects, then f's.
func (KleisliK[M]) Compose(f, g Kind2[KleisliK[M], Erased, Erased]) Kind2[KleisliK[M], Erased, Erased] {
	var m M
	fr, gr := kleisliRep(f), kleisliRep(g)
	return kleisliKind(func(x Erased) Kind[M, Erased] {
		return m.FlatMap(gr(x), fr)
	})
}

// Id implements Category.
func (KleisliK[M]) Id() Kind2[KleisliK[M], Erased, Erased] {
	var m M
	return kleisliKind(m.Pure)
}

// Lift implements Arrow.
func (KleisliK[M]) Lift(f func(Erased) Erased) Kind2[KleisliK[M], Erased, Erased] {
	var m M
	return kleisliKind(func(x Erased) Kind[M, Erased] {
		return m.Pure(f(x))
	})
}

// Dimap implements Profunctor directly: f before, M.Map(g) after.
func (KleisliK[M]) Dimap(fab Kind2[KleisliK[M], Erased, Erased], f, g func(Erased) Erased) Kind2[KleisliK[M], Erased, Erased] {
	var m M
	r := kleisliRep(fab)
	return kleisliKind(func(x Erased) Kind[M, Erased] {
		return m.Map(r(f(x)), g)
	})
}

// First implements Strong.
func (KleisliK[M]) First(fab Kind2[KleisliK[M], Erased, Erased]) Kind2[KleisliK[M], Erased, Erased] {
	var m M
	r := kleisliRep(fab)
	return kleisliKind(func(x Erased) Kind[M, Erased] {
		p := x.(Pair[Erased, Erased])
		return m.Map(r(p.Fst), func(b Erased) Erased {
			return Pair[Erased, Erased]{Fst: b, Snd: p.Snd}
		})
	})
}

// Choose implements Choice. Only the computation for the populated side runs.
func (KleisliK[M]) Choose(f, g Kind2[KleisliK[M], Erased, Erased]) Kind2[KleisliK[M], Erased, Erased] {
	var m M
	fr, gr := kleisliRep(f), kleisliRep(g)
	return kleisliKind(func(x Erased) Kind[M, Erased] {
		e := x.(Either[Erased, Erased])
		if l, ok := e.GetLeft(); ok {
			return m.Map(fr(l), erasedLeft)
		}
		r, _ := e.GetRight()
		return m.Map(gr(r), erasedRight)
	})
}
