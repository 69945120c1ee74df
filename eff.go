// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow

// EffK tags effectful computations [Eff] as a Monad.
//
// FlatMap is [BindCont], so effects run in sequencing order. Kleisli arrows
// over EffK (KleisliK[EffK]) are effectful computations whose derived
// combinators (Split, Merge, Choose) perform the left computation's effects
// before the right one's.
type EffK struct{}

var _ Monad[EffK] = EffK{}

// EffKind returns m as a handle of the EffK constructor.
func EffKind[A any](m Eff[A]) Kind[EffK, A] {
	return Inject[EffK, A](MapCont(m, toErased[A]))
}

// FixEff recovers the computation held by k.
// k must have been produced by EffK code; see [Project].
func FixEff[A any](k Kind[EffK, A]) Eff[A] {
	return MapCont(effRep(k), fromErased[A])
}

func effRep[A any](k Kind[EffK, A]) Eff[Erased] {
	return Project[Eff[Erased]](k)
}

func effKind(m Eff[Erased]) Kind[EffK, Erased] {
	return Inject[EffK, Erased](m)
}

// Map implements Functor.
func (EffK) Map(fa Kind[EffK, Erased], f func(Erased) Erased) Kind[EffK, Erased] {
	return effKind(MapCont(effRep(fa), f))
}

// Pure implements Applicative.
func (EffK) Pure(a Erased) Kind[EffK, Erased] {
	return effKind(Return[Resumed](a))
}

// Ap implements Applicative: the function's effects run first.
func (EffK) Ap(ff, fa Kind[EffK, Erased]) Kind[EffK, Erased] {
	m := effRep(fa)
	return effKind(BindCont(effRep(ff), func(f Erased) Eff[Erased] {
		return MapCont(m, f.(func(Erased) Erased))
	}))
}

// FlatMap implements Monad.
func (EffK) FlatMap(fa Kind[EffK, Erased], f func(Erased) Kind[EffK, Erased]) Kind[EffK, Erased] {
	return effKind(BindCont(effRep(fa), func(a Erased) Eff[Erased] {
		return effRep(f(a))
	}))
}

// Effect lifts f into a Kleisli arrow over Eff.
func Effect[A, B any](f func(A) Eff[B]) Kleisli[EffK, A, B] {
	return KleisliOf(func(a A) Kind[EffK, B] {
		return EffKind(f(a))
	})
}

// RunEffect applies the effectful arrow k to a, producing the computation to run.
func RunEffect[A, B any](k Kind2[KleisliK[EffK], A, B], a A) Eff[B] {
	return FixEff(RunKleisli(k, a))
}
