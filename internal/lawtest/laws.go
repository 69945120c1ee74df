// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lawtest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/arrow"
)

// Observe runs a computation on an input and returns a comparable result.
// Observations must not contain functions.
type Observe[F, A, B any] func(k arrow.Kind2[F, A, B], a A) any

// Agree asserts that x and y produce equal observations on N sampled inputs.
func Agree[F, A, B any](t testing.TB, law string, obs Observe[F, A, B], gen Gen[A], x, y arrow.Kind2[F, A, B]) bool {
	t.Helper()
	r := NewRand()
	for range N {
		a := gen(r)
		if !assert.Equal(t, obs(x, a), obs(y, a), "%s (input %v)", law, a) {
			return false
		}
	}
	return true
}

// Equiv returns an equality on computations: equal observations on N sampled inputs.
func Equiv[F, A, B any](obs Observe[F, A, B], gen Gen[A]) func(x, y arrow.Kind2[F, A, B]) bool {
	return func(x, y arrow.Kind2[F, A, B]) bool {
		r := NewRand()
		for range N {
			a := gen(r)
			if !assert.ObjectsAreEqual(obs(x, a), obs(y, a)) {
				return false
			}
		}
		return true
	}
}

// Category checks left and right identity for f.
func Category[F arrow.Category[F], A, B any](t testing.TB, obs Observe[F, A, B], gen Gen[A], f arrow.Kind2[F, A, B]) {
	t.Helper()
	Agree(t, "left identity", obs, gen, arrow.Compose(arrow.Id[F, B](), f), f)
	Agree(t, "right identity", obs, gen, arrow.Compose(f, arrow.Id[F, A]()), f)
}

// Associativity checks that composing h, g, f groups either way, and that
// AndThen is Compose with its arguments flipped.
func Associativity[F arrow.Semigroupoid[F], A, B, C, D any](t testing.TB, obs Observe[F, A, D], gen Gen[A],
	f arrow.Kind2[F, C, D], g arrow.Kind2[F, B, C], h arrow.Kind2[F, A, B]) {
	t.Helper()
	want := arrow.Compose(f, arrow.Compose(g, h))
	Agree(t, "associativity", obs, gen, arrow.Compose(arrow.Compose(f, g), h), want)
	Agree(t, "andThen", obs, gen, arrow.AndThen(h, arrow.AndThen(g, f)), want)
}

// Profunctor checks the identity law and the Lmap/Rmap decomposition of Dimap.
func Profunctor[F arrow.Profunctor[F], A, B any](t testing.TB, obs Observe[F, A, B], gen Gen[A],
	fab arrow.Kind2[F, A, B], f func(A) A, g func(B) B) {
	t.Helper()
	id := func(a A) A { return a }
	idB := func(b B) B { return b }
	Agree(t, "dimap identity", obs, gen, arrow.Dimap(fab, id, idB), fab)
	Agree(t, "lmap then rmap", obs, gen, arrow.Rmap(arrow.Lmap(fab, f), g), arrow.Dimap(fab, f, g))
}

// DimapComposition checks Dimap(Dimap(fab, f1, g1), f2, g2) == Dimap(fab, f1∘f2, g2∘g1).
func DimapComposition[F arrow.Profunctor[F], A, B, C, D, E, G any](t testing.TB, obs Observe[F, E, G], gen Gen[E],
	fab arrow.Kind2[F, A, B], f1 func(C) A, g1 func(B) D, f2 func(E) C, g2 func(D) G) {
	t.Helper()
	nested := arrow.Dimap(arrow.Dimap(fab, f1, g1), f2, g2)
	fused := arrow.Dimap(fab, func(e E) A { return f1(f2(e)) }, func(b B) G { return g2(g1(b)) })
	Agree(t, "dimap composition", obs, gen, nested, fused)
}

// Strong checks that Second agrees with its derivation from First and Swap,
// and that First leaves the Snd slot alone.
func Strong[F arrow.Arrow[F], A, B, C any](t testing.TB, obs Observe[F, arrow.Pair[C, A], arrow.Pair[C, B]], gen Gen[arrow.Pair[C, A]],
	fab arrow.Kind2[F, A, B]) {
	t.Helper()
	Agree(t, "second", obs, gen, arrow.Second[F, A, B, C](fab), arrow.ArrowSecond[F, A, B, C](fab))
	swapped := arrow.AndThen(arrow.AndThen(arrow.Swap[F, C, A](), arrow.First[F, A, B, C](fab)), arrow.Swap[F, B, C]())
	Agree(t, "first under swap", obs, gen, arrow.Second[F, A, B, C](fab), swapped)
}

// Arrow checks that the Arrow derivations agree with the instance's primitives.
func Arrow[F arrow.Arrow[F], A, B any](t testing.TB, obs Observe[F, A, B], gen Gen[A],
	fab arrow.Kind2[F, A, B], pre func(A) A, post func(B) B) {
	t.Helper()
	Agree(t, "arrow dimap", obs, gen, arrow.ArrowDimap(fab, pre, post), arrow.Dimap(fab, pre, post))
	Agree(t, "lift composition", obs, gen,
		arrow.AndThen(arrow.Lift[F](pre), arrow.AndThen(arrow.Lift[F](pre), fab)),
		arrow.AndThen(arrow.Lift[F](func(a A) A { return pre(pre(a)) }), fab))
}

// Pointwise asserts that k observes to want(a) on N sampled inputs.
func Pointwise[F, A, B any](t testing.TB, law string, obs Observe[F, A, B], gen Gen[A],
	k arrow.Kind2[F, A, B], want func(A) any) bool {
	t.Helper()
	r := NewRand()
	for range N {
		a := gen(r)
		if !assert.Equal(t, want(a), obs(k, a), "%s (input %v)", law, a) {
			return false
		}
	}
	return true
}

// Monoid checks associativity and both identity laws of m with the given equality.
func Monoid[A any](t testing.TB, m arrow.Monoid[A], gen Gen[A], eq func(x, y A) bool) {
	t.Helper()
	r := NewRand()
	for range N {
		x, y, z := gen(r), gen(r), gen(r)
		if !assert.True(t, eq(m.Combine(m.Combine(x, y), z), m.Combine(x, m.Combine(y, z))), "associativity") ||
			!assert.True(t, eq(m.Combine(m.Empty(), x), x), "left identity") ||
			!assert.True(t, eq(m.Combine(x, m.Empty()), x), "right identity") {
			return
		}
	}
}

// Functor checks the identity and composition laws on sampled values.
func Functor[F arrow.Functor[F], A any](t testing.TB, obs func(arrow.Kind[F, A]) any, gen Gen[arrow.Kind[F, A]], f, g func(A) A) {
	t.Helper()
	r := NewRand()
	for range N {
		fa := gen(r)
		if !assert.Equal(t, obs(fa), obs(arrow.Map(fa, func(a A) A { return a })), "functor identity") ||
			!assert.Equal(t, obs(arrow.Map(arrow.Map(fa, f), g)), obs(arrow.Map(fa, func(a A) A { return g(f(a)) })), "functor composition") {
			return
		}
	}
}

// Monad checks the three monad laws and that [arrow.MonadAp] agrees with [arrow.Ap].
func Monad[F arrow.Monad[F], A any](t testing.TB, obs func(arrow.Kind[F, A]) any, genA Gen[A], genM Gen[arrow.Kind[F, A]],
	f, g func(A) arrow.Kind[F, A], h func(A) A) {
	t.Helper()
	r := NewRand()
	ff := arrow.Pure[F](h)
	for range N {
		a, m := genA(r), genM(r)
		left := arrow.FlatMap(arrow.Pure[F](a), f)
		right := arrow.FlatMap(m, arrow.Pure[F, A])
		nested := arrow.FlatMap(arrow.FlatMap(m, f), g)
		flat := arrow.FlatMap(m, func(x A) arrow.Kind[F, A] { return arrow.FlatMap(f(x), g) })
		if !assert.Equal(t, obs(f(a)), obs(left), "left identity") ||
			!assert.Equal(t, obs(m), obs(right), "right identity") ||
			!assert.Equal(t, obs(flat), obs(nested), "associativity") ||
			!assert.Equal(t, obs(arrow.Ap(ff, m)), obs(arrow.MonadAp(ff, m)), "ap consistency") {
			return
		}
	}
}

// Naturality checks Transform(nt, Map(fa, h)) == Map(Transform(nt, fa), h).
func Naturality[F arrow.Functor[F], G arrow.Functor[G], A, B any](t testing.TB, obs func(arrow.Kind[G, B]) any,
	gen Gen[arrow.Kind[F, A]], nt arrow.FunctionK[F, G], h func(A) B) {
	t.Helper()
	r := NewRand()
	for range N {
		fa := gen(r)
		if !assert.Equal(t, obs(arrow.Transform(nt, arrow.Map(fa, h))), obs(arrow.Map(arrow.Transform(nt, fa), h)), "naturality") {
			return
		}
	}
}
