// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/arrow"
	"code.hybscloud.com/arrow/internal/lawtest"
)

func eqComparable[A comparable](x, y A) bool { return x == y }

func TestMonoidLaws(t *testing.T) {
	t.Run("sum", func(t *testing.T) {
		lawtest.Monoid[int](t, arrow.SumMonoid[int]{}, lawtest.Int, eqComparable[int])
	})
	t.Run("product", func(t *testing.T) {
		lawtest.Monoid[int](t, arrow.ProductMonoid[int]{}, lawtest.Int, eqComparable[int])
	})
	t.Run("string", func(t *testing.T) {
		lawtest.Monoid[string](t, arrow.StringMonoid{}, lawtest.String, eqComparable[string])
	})
	t.Run("slice", func(t *testing.T) {
		gen := func(r *rand.Rand) []int { return lawtest.ListOf(lawtest.Int)(r).ToSlice() }
		lawtest.Monoid[[]int](t, arrow.SliceMonoid[int]{}, gen, func(x, y []int) bool { return slices.Equal(x, y) })
	})
	t.Run("option", func(t *testing.T) {
		m := arrow.OptionMonoid[string]{S: arrow.StringMonoid{}}
		lawtest.Monoid[arrow.Option[string]](t, m, lawtest.OptionOf(lawtest.String), eqComparable[arrow.Option[string]])
	})
	t.Run("list", func(t *testing.T) {
		eq := func(x, y arrow.List[int]) bool { return slices.Equal(x.ToSlice(), y.ToSlice()) }
		lawtest.Monoid[arrow.List[int]](t, arrow.ListMonoid[int]{}, lawtest.ListOf(lawtest.Int), eq)
	})
	t.Run("func", func(t *testing.T) {
		m := arrow.MonoidOf(0, func(x, y int) int { return max(x, y) })
		gen := func(r *rand.Rand) int { return r.IntN(1000) }
		lawtest.Monoid[int](t, m, gen, eqComparable[int])
	})
	t.Run("endo", func(t *testing.T) {
		gen := func(r *rand.Rand) arrow.Kind2[arrow.FnK, int, int] {
			a, b := r.IntN(7)-3, lawtest.Int(r)
			return arrow.Lift[arrow.FnK](func(x int) int { return a*x + b })
		}
		eq := lawtest.Equiv(runFn[int, int], lawtest.Int)
		lawtest.Monoid[arrow.Kind2[arrow.FnK, int, int]](t, arrow.EndoMonoid[arrow.FnK, int](), gen, eq)
	})
}

func TestCombineAll(t *testing.T) {
	assert.Equal(t, 10, arrow.CombineAll[int](arrow.SumMonoid[int]{}, 1, 2, 3, 4))
	assert.Equal(t, 24, arrow.CombineAll[int](arrow.ProductMonoid[int]{}, 1, 2, 3, 4))
	assert.Equal(t, "abc", arrow.CombineAll[string](arrow.StringMonoid{}, "a", "b", "c"))
	assert.Equal(t, 0, arrow.CombineAll[int](arrow.SumMonoid[int]{}))
	assert.InDelta(t, 7.5, arrow.CombineAll[float64](arrow.SumMonoid[float64]{}, 2.5, 5), 1e-9)
}

func TestSliceMonoidDoesNotAlias(t *testing.T) {
	m := arrow.SliceMonoid[string]{}
	x := make([]string, 1, 8)
	x[0] = "a"
	y := []string{"b"}

	xy := m.Combine(x, y)
	xz := m.Combine(x, []string{"c"})
	assert.Equal(t, []string{"a", "b"}, xy)
	assert.Equal(t, []string{"a", "c"}, xz)

	xy[0] = "mutated"
	assert.Equal(t, "a", x[0])
	assert.Equal(t, "b", y[0])
}

func TestEndoMonoidComposes(t *testing.T) {
	m := arrow.EndoMonoid[arrow.FnK, int]()
	f, g := arrow.Lift[arrow.FnK](inc), arrow.Lift[arrow.FnK](dbl)

	// Combine(x, y) runs y first.
	assert.Equal(t, 7, arrow.RunFn(m.Combine(f, g), 3))
	assert.Equal(t, 8, arrow.RunFn(m.Combine(g, f), 3))
	assert.Equal(t, arrow.RunFn(arrow.Compose(f, g), 3), arrow.RunFn(m.Combine(f, g), 3))

	// CombineAll folds from the left, so the last element runs first.
	assert.Equal(t, 7, arrow.RunFn(arrow.CombineAll[arrow.Kind2[arrow.FnK, int, int]](m, f, g), 3))
	assert.Equal(t, 3, arrow.RunFn(m.Empty(), 3))
}

func TestEndoMonoidKleisliOption(t *testing.T) {
	type K = arrow.KleisliK[arrow.OptionK]
	m := arrow.EndoMonoid[K, int]()
	half := arrow.KleisliOf(func(x int) arrow.Kind[arrow.OptionK, int] {
		if x%2 != 0 {
			return arrow.None[int]().Kind()
		}
		return arrow.Some(x / 2).Kind()
	}).Kind()
	f := arrow.Lift[K](inc)

	// half after inc: 3 -> 4 -> 2; inc after half: 3 is odd.
	assert.Equal(t, arrow.Some(2), arrow.FixOption(arrow.RunKleisli(m.Combine(half, f), 3)))
	assert.True(t, arrow.FixOption(arrow.RunKleisli(m.Combine(f, half), 3)).IsNone())

	gen := func(r *rand.Rand) arrow.Kind2[K, int, int] {
		a, b, d := r.IntN(7)-3, lawtest.Int(r), r.IntN(5)+2
		return arrow.KleisliOf(func(x int) arrow.Kind[arrow.OptionK, int] {
			if x%d == 0 {
				return arrow.None[int]().Kind()
			}
			return arrow.Some(a*x + b).Kind()
		}).Kind()
	}
	eq := lawtest.Equiv(runOption[int, int], lawtest.Int)
	lawtest.Monoid[arrow.Kind2[K, int, int]](t, m, gen, eq)
}
