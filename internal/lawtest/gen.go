// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lawtest checks the laws of arrow's contracts on sampled inputs.
//
// Computations are compared observationally: two computations are equal when
// an observer returns equal results for every sampled input. Samples come
// from a fixed-seed PCG source, so failures reproduce.
package lawtest

import (
	"math/rand/v2"

	"code.hybscloud.com/arrow"
)

// N is the number of samples drawn per law.
const N = 200

// NewRand returns the fixed-seed source every checker samples from.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 0))
}

// Gen produces a sample.
type Gen[A any] func(r *rand.Rand) A

// Int returns a random int in [-1000, 1000].
func Int(r *rand.Rand) int {
	return r.IntN(2001) - 1000
}

// String returns a random printable ASCII string of length [0, 8].
func String(r *rand.Rand) string {
	n := r.IntN(9)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(r.IntN(95) + 32)
	}
	return string(b)
}

// PairOf samples both slots independently.
func PairOf[A, B any](ga Gen[A], gb Gen[B]) Gen[arrow.Pair[A, B]] {
	return func(r *rand.Rand) arrow.Pair[A, B] {
		return arrow.MakePair(ga(r), gb(r))
	}
}

// EitherOf samples Left and Right with equal probability.
func EitherOf[A, B any](ga Gen[A], gb Gen[B]) Gen[arrow.Either[A, B]] {
	return func(r *rand.Rand) arrow.Either[A, B] {
		if r.IntN(2) == 0 {
			return arrow.Left[A, B](ga(r))
		}
		return arrow.Right[A](gb(r))
	}
}

// OptionOf samples None one time in four.
func OptionOf[A any](ga Gen[A]) Gen[arrow.Option[A]] {
	return func(r *rand.Rand) arrow.Option[A] {
		if r.IntN(4) == 0 {
			return arrow.None[A]()
		}
		return arrow.Some(ga(r))
	}
}

// ListOf samples lists of length [0, 5].
func ListOf[A any](ga Gen[A]) Gen[arrow.List[A]] {
	return func(r *rand.Rand) arrow.List[A] {
		xs := make([]A, r.IntN(6))
		for i := range xs {
			xs[i] = ga(r)
		}
		return arrow.ListOf(xs...)
	}
}

// Kinds adapts a generator of concrete values to a generator of handles.
func Kinds[F, A any, V interface{ Kind() arrow.Kind[F, A] }](gv Gen[V]) Gen[arrow.Kind[F, A]] {
	return func(r *rand.Rand) arrow.Kind[F, A] {
		return gv(r).Kind()
	}
}
