// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/arrow"
)

type logs = []string

var logMonoid = arrow.SliceMonoid[string]{}

func TestWriterTell(t *testing.T) {
	comp := arrow.TellWriter(logs{"hello"}, arrow.TellWriter(logs{"world"}, arrow.Return[arrow.Resumed](42)))

	result, out := arrow.RunWriter[logs](logMonoid, comp)
	require.Equal(t, 42, result)
	require.Equal(t, logs{"hello", "world"}, out)
}

func TestWriterExec(t *testing.T) {
	comp := arrow.TellWriter(logs{"log1"}, arrow.TellWriter(logs{"log2"}, arrow.Return[arrow.Resumed]("result")))
	require.Len(t, arrow.ExecWriter[logs](logMonoid, comp), 2)
}

func TestWriterNoLogs(t *testing.T) {
	comp := arrow.Return[arrow.Resumed, int](42)

	result, out := arrow.RunWriter[logs](logMonoid, comp)
	require.Equal(t, 42, result)
	require.Empty(t, out)
}

func TestWriterSumMonoid(t *testing.T) {
	comp := arrow.TellWriter(1, arrow.TellWriter(2, arrow.TellWriter(3, arrow.Return[arrow.Resumed](6))))

	result, total := arrow.RunWriter[int](arrow.SumMonoid[int]{}, comp)
	require.Equal(t, 6, result)
	require.Equal(t, 6, total)
}

func TestWriterStringMonoid(t *testing.T) {
	comp := arrow.TellWriter("a", arrow.TellWriter("b", arrow.TellWriter("c", arrow.Return[arrow.Resumed](struct{}{}))))
	require.Equal(t, "abc", arrow.ExecWriter[string](arrow.StringMonoid{}, comp))
}

func TestWriterPerformTell(t *testing.T) {
	comp := arrow.ThenCont(arrow.Perform(arrow.Tell[string]{Value: "x"}),
		arrow.ThenCont(arrow.Perform(arrow.Tell[string]{Value: "y"}), arrow.Return[arrow.Resumed](0)))
	require.Equal(t, "xy", arrow.ExecWriter[string](arrow.StringMonoid{}, comp))
}

func TestListenWriter(t *testing.T) {
	inner := arrow.TellWriter(logs{"inner-log"}, arrow.Return[arrow.Resumed](42))

	comp := arrow.TellWriter(logs{"outer-before"},
		arrow.BindCont(
			arrow.ListenWriter[logs](inner),
			func(pair arrow.Pair[int, logs]) arrow.Eff[arrow.Pair[int, logs]] {
				return arrow.TellWriter(logs{"outer-after"}, arrow.Return[arrow.Resumed](pair))
			},
		),
	)

	result, out := arrow.RunWriter[logs](logMonoid, comp)
	require.Equal(t, 42, result.Fst)
	require.Equal(t, logs{"inner-log"}, result.Snd)
	require.Equal(t, logs{"outer-before", "inner-log", "outer-after"}, out)
}

func TestCensorWriter(t *testing.T) {
	inner := arrow.TellWriter(logs{"secret"}, arrow.TellWriter(logs{"password"}, arrow.Return[arrow.Resumed]("result")))

	redact := func(in logs) logs {
		out := make(logs, len(in))
		for i, s := range slices.All(in) {
			if s == "secret" || s == "password" {
				out[i] = "[REDACTED]"
			} else {
				out[i] = s
			}
		}
		return out
	}

	comp := arrow.TellWriter(logs{"before"},
		arrow.BindCont(
			arrow.CensorWriter(redact, inner),
			func(result string) arrow.Eff[string] {
				return arrow.TellWriter(logs{"after"}, arrow.Return[arrow.Resumed](result))
			},
		),
	)

	result, out := arrow.RunWriter[logs](logMonoid, comp)
	require.Equal(t, "result", result)
	require.Equal(t, logs{"before", "[REDACTED]", "[REDACTED]", "after"}, out)
}

func TestListenNested(t *testing.T) {
	innermost := arrow.TellWriter(1, arrow.Return[arrow.Resumed](true))
	middle := arrow.ListenWriter[int](innermost)

	outer := arrow.TellWriter(2,
		arrow.BindCont(
			middle,
			func(p arrow.Pair[bool, int]) arrow.Eff[arrow.Pair[bool, int]] {
				return arrow.TellWriter(3, arrow.Return[arrow.Resumed](p))
			},
		),
	)

	result, total := arrow.RunWriter[int](arrow.SumMonoid[int]{}, outer)
	require.True(t, result.Fst)
	require.Equal(t, 1, result.Snd)
	require.Equal(t, 6, total)
}
