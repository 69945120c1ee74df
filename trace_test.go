// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"code.hybscloud.com/arrow"
)

// trace is the recorded run of an effectful arrow: its input, its result,
// the number of steps that ran (State) and their log (Writer).
type trace struct {
	Name   string   `yaml:"name"`
	Input  []int    `yaml:"input"`
	Result []int    `yaml:"result"`
	State  int      `yaml:"state"`
	Log    []string `yaml:"log"`
}

// counted counts itself in the state, logs name+input and applies f.
func counted(name string, f func(int) int) arrow.Kind2[arrow.KleisliK[arrow.EffK], int, int] {
	return arrow.Effect(func(x int) arrow.Eff[int] {
		return arrow.ModifyState(func(s int) int { return s + 1 }, func(int) arrow.Eff[int] {
			return arrow.TellWriter(logs{name + strconv.Itoa(x)}, arrow.Return[arrow.Resumed](f(x)))
		})
	}).Kind()
}

func recordTrace[A, B any](name string, k arrow.Kind2[arrow.KleisliK[arrow.EffK], A, B], a A) trace {
	result, state, out := arrow.RunStateWriter[int, logs](0, logMonoid, arrow.RunEffect(k, a))
	return trace{Name: name, Input: flatten(a), Result: flatten(result), State: state, Log: out}
}

// flatten lists the ints held by an int, a Pair of ints or an Either of ints.
func flatten(v any) []int {
	switch x := v.(type) {
	case int:
		return []int{x}
	case arrow.Pair[int, int]:
		return []int{x.Fst, x.Snd}
	case arrow.Either[int, int]:
		return []int{arrow.MatchEither(x, func(n int) int { return n }, func(n int) int { return n })}
	}
	panic(fmt.Sprintf("flatten: unexpected %T", v))
}

func TestEffectTraces(t *testing.T) {
	f, g := counted("f", inc), counted("g", dbl)
	odd := func(x int) bool { return x%2 != 0 }

	traces := []trace{
		recordTrace("split", arrow.Split(f, g), arrow.MakePair(3, 4)),
		recordTrace("merge", arrow.Merge(f, g), 5),
		recordTrace("fanin", arrow.Fanin(f, g), arrow.Left[int, int](7)),
		recordTrace("branch", arrow.Branch(odd, g, f), 4),
	}

	gold := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, tr := range traces {
		t.Run(tr.Name, func(t *testing.T) {
			out, err := yaml.Marshal(tr)
			require.NoError(t, err)
			gold.Assert(t, tr.Name, out)
		})
	}
}
