// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/arrow"
)

func TestReturnRun(t *testing.T) {
	require.Equal(t, 42, arrow.Run(arrow.Return[int](42)))
	require.Equal(t, "hello", arrow.Run(arrow.Return[string]("hello")))
}

func TestRunWith(t *testing.T) {
	m := arrow.Return[string, int](42)
	got := arrow.RunWith(m, func(x int) string {
		if x == 42 {
			return "value"
		}
		return "other"
	})
	require.Equal(t, "value", got)
}

func TestBindCont(t *testing.T) {
	n := arrow.BindCont(arrow.Return[int](5), func(x int) arrow.Cont[int, int] {
		return arrow.BindCont(arrow.Return[int](x+1), func(y int) arrow.Cont[int, int] {
			return arrow.Return[int](y * 2)
		})
	})
	require.Equal(t, 12, arrow.Run(n))
}

func TestBindContLeftIdentity(t *testing.T) {
	f := func(s string) arrow.Cont[string, string] {
		return arrow.Return[string](s + " world")
	}
	require.Equal(t, arrow.Run(f("hello")), arrow.Run(arrow.BindCont(arrow.Return[string]("hello"), f)))
}

func TestBindContAssociativityWithTypeChange(t *testing.T) {
	m := arrow.Return[string](42)
	f := func(x int) arrow.Cont[string, string] {
		return arrow.Return[string]("value")
	}
	g := func(s string) arrow.Cont[string, string] {
		return arrow.Return[string](s + "!")
	}

	left := arrow.Run(arrow.BindCont(arrow.BindCont(m, f), g))
	right := arrow.Run(arrow.BindCont(m, func(x int) arrow.Cont[string, string] {
		return arrow.BindCont(f(x), g)
	}))
	require.Equal(t, left, right)
}

func TestMapCont(t *testing.T) {
	m := arrow.MapCont(arrow.Return[int](20), func(x int) int { return x + 1 })
	require.Equal(t, 21, arrow.Run(m))
}

func TestThenCont(t *testing.T) {
	m := arrow.ThenCont(arrow.Return[string](1), arrow.Return[string]("second"))
	require.Equal(t, "second", arrow.Run(m))
}

func TestSuspend(t *testing.T) {
	m := arrow.Suspend(func(k func(int) int) int {
		return k(10) + k(20)
	})
	require.Equal(t, 32, arrow.RunWith(m, func(x int) int { return x + 1 }))
}
