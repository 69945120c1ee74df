// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/arrow"
)

func suffix(s string) func(string) string {
	return func(x string) string { return x + s }
}

func TestFanin(t *testing.T) {
	c := arrow.Fanin(arrow.Lift[arrow.FnK](suffix("L")), arrow.Lift[arrow.FnK](suffix("R")))
	assert.Equal(t, "aL", arrow.RunFn(c, arrow.Left[string, string]("a")))
	assert.Equal(t, "bR", arrow.RunFn(c, arrow.Right[string]("b")))
}

func TestChoosePreservesSide(t *testing.T) {
	c := arrow.Choose(arrow.Lift[arrow.FnK](strconv.Itoa), arrow.Lift[arrow.FnK](func(s string) int { return len(s) }))
	assert.Equal(t, arrow.Left[string, int]("7"), arrow.RunFn(c, arrow.Left[int, string](7)))
	assert.Equal(t, arrow.Right[string](3), arrow.RunFn(c, arrow.Right[int]("abc")))
}

func TestChooseLeftRight(t *testing.T) {
	l := arrow.ChooseLeft[arrow.FnK, int, int, string](arrow.Lift[arrow.FnK](inc))
	assert.Equal(t, arrow.Left[int, string](2), arrow.RunFn(l, arrow.Left[int, string](1)))
	assert.Equal(t, arrow.Right[int]("x"), arrow.RunFn(l, arrow.Right[int]("x")))

	r := arrow.ChooseRight[arrow.FnK, int, int, string](arrow.Lift[arrow.FnK](inc))
	assert.Equal(t, arrow.Right[string](2), arrow.RunFn(r, arrow.Right[string](1)))
	assert.Equal(t, arrow.Left[string, int]("x"), arrow.RunFn(r, arrow.Left[string, int]("x")))
}

func TestCodiagonal(t *testing.T) {
	c := arrow.Codiagonal[arrow.FnK, int]()
	assert.Equal(t, 1, arrow.RunFn(c, arrow.Left[int, int](1)))
	assert.Equal(t, 2, arrow.RunFn(c, arrow.Right[int](2)))
}

func TestFaninOverOption(t *testing.T) {
	positive := arrow.KleisliOf(func(x int) arrow.Kind[arrow.OptionK, int] {
		if x <= 0 {
			return arrow.None[int]().Kind()
		}
		return arrow.Some(x).Kind()
	}).Kind()
	length := arrow.Lift[arrow.KleisliK[arrow.OptionK]](func(s string) int { return len(s) })
	c := arrow.Fanin(positive, length)

	run := func(e arrow.Either[int, string]) arrow.Option[int] {
		return arrow.FixOption(arrow.RunKleisli(c, e))
	}
	assert.Equal(t, arrow.Some(4), run(arrow.Left[int, string](4)))
	assert.True(t, run(arrow.Left[int, string](-4)).IsNone())
	assert.Equal(t, arrow.Some(2), run(arrow.Right[int]("ab")))
}

func TestChooseOverList(t *testing.T) {
	both := arrow.KleisliOf(func(x int) arrow.Kind[arrow.ListK, int] { return arrow.ListOf(x, -x).Kind() }).Kind()
	c := arrow.ChooseLeft[arrow.KleisliK[arrow.ListK], int, int, string](both)

	got := arrow.FixList(arrow.RunKleisli(c, arrow.Left[int, string](3))).ToSlice()
	assert.Equal(t, []arrow.Either[int, string]{arrow.Left[int, string](3), arrow.Left[int, string](-3)}, got)

	got = arrow.FixList(arrow.RunKleisli(c, arrow.Right[int]("s"))).ToSlice()
	assert.Equal(t, []arrow.Either[int, string]{arrow.Right[int]("s")}, got)
}
