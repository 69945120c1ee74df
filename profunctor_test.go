// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/arrow"
)

func TestDimapLmapRmap(t *testing.T) {
	show := arrow.Lift[arrow.FnK](strconv.Itoa)
	length := func(s string) int { return len(s) }
	quote := func(s string) string { return strconv.Quote(s) }

	assert.Equal(t, `"3"`, arrow.RunFn(arrow.Dimap(show, length, quote), "abc"))
	assert.Equal(t, "3", arrow.RunFn(arrow.Lmap(show, length), "abc"))
	assert.Equal(t, `"42"`, arrow.RunFn(arrow.Rmap(show, quote), 42))
}

func TestDimapOverKleisli(t *testing.T) {
	words := arrow.KleisliOf(func(s string) arrow.Kind[arrow.ListK, string] {
		return arrow.ListOf(strings.Fields(s)...).Kind()
	}).Kind()
	lengths := arrow.Dimap(words, strings.TrimSpace, func(w string) int { return len(w) })
	assert.Equal(t, []int{2, 5}, arrow.FixList(arrow.RunKleisli(lengths, "  go arrow ")).ToSlice())
}

func TestFnApply(t *testing.T) {
	f := arrow.Func(strings.ToUpper)
	assert.Equal(t, "GO", f.Apply("go"))
	assert.Equal(t, "GO", arrow.FixFn(f.Kind()).Apply("go"))

	composed := arrow.FixFn(arrow.AndThen(f.Kind(), arrow.Lift[arrow.FnK](func(s string) int { return len(s) })))
	assert.Equal(t, 5, composed.Apply("arrow"))
}

func TestPairHelpers(t *testing.T) {
	p := arrow.MakePair(1, "a")
	x, y := p.Values()
	assert.Equal(t, 1, x)
	assert.Equal(t, "a", y)
	assert.Equal(t, arrow.MakePair("a", 1), arrow.SwapPair(p))
	assert.Equal(t, arrow.MakePair(7, 7), arrow.Dup(7))
}
