// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow

// Either holds exactly one of a Left value of type L or a Right value of type R.
// The zero Either is Left with the zero L.
type Either[L, R any] struct {
	isRight bool
	left    L
	right   R
}

// Left creates a Left value.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{isRight: false, left: l}
}

// Right creates a Right value.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{isRight: true, right: r}
}

// IsRight returns true if this is a Right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[L, R]) GetRight() (R, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero R
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[L, R]) GetLeft() (L, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero L
	return zero, false
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a function to the Right value.
func MapEither[L, R, T any](e Either[L, R], f func(R) T) Either[L, T] {
	if e.isRight {
		return Right[L](f(e.right))
	}
	return Left[L, T](e.left)
}

// FlatMapEither sequences two Either computations.
func FlatMapEither[L, R, T any](e Either[L, R], f func(R) Either[L, T]) Either[L, T] {
	if e.isRight {
		return f(e.right)
	}
	return Left[L, T](e.left)
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither[L, M, R any](e Either[L, R], f func(L) M) Either[M, R] {
	if e.isRight {
		return Right[M](e.right)
	}
	return Left[M, R](f(e.left))
}

// SwapEither exchanges the sides of e.
func SwapEither[L, R any](e Either[L, R]) Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

// eraseEither converts an Either[L, R] into the Either[Erased, Erased] that
// Choose primitives operate on. The populated side is preserved.
func eraseEither[L, R any](x Erased) Erased {
	e := fromErased[Either[L, R]](x)
	if e.isRight {
		return Right[Erased, Erased](e.right)
	}
	return Left[Erased, Erased](e.left)
}

// uneraseEither is the inverse of eraseEither.
func uneraseEither[L, R any](x Erased) Erased {
	e := fromErased[Either[Erased, Erased]](x)
	if e.isRight {
		return Right[L](fromErased[R](e.right))
	}
	return Left[L, R](fromErased[L](e.left))
}

// erasedLeft and erasedRight inject into Either[Erased, Erased].
func erasedLeft(x Erased) Erased  { return Left[Erased, Erased](x) }
func erasedRight(x Erased) Erased { return Right[Erased, Erased](x) }
