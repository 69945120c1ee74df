// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow

import (
	"errors"
	"fmt"
)

// Erased represents a value whose static type was dropped at a constructor
// boundary. Constructor primitives operate on Erased values; the typed
// free functions recover concrete types at the boundary.
type Erased = any

// ErrWrongKind is wrapped by the panic value raised when a [Kind] or [Kind2]
// handle does not hold the representation its constructor expects.
var ErrWrongKind = errors.New("arrow: wrong type applied")

// Kind is the unary constructor tagged F applied to A.
//
// A Kind has no operations. Its representation is produced by the code that
// owns F (through [Inject]) and read back only by that code (through
// [Project]). Generic code passes handles along unopened.
//
// Invariant: every Kind[F, _] in circulation was built by F's owner. Nothing
// else may call Inject with F. Under that invariant Project never fails.
type Kind[F, A any] struct {
	rep Erased
}

// Kind2 is the binary constructor tagged F applied to A and B.
// The same ownership invariant as [Kind] applies.
type Kind2[F, A, B any] struct {
	rep Erased
}

// Inject wraps the representation of an F-value as a Kind.
// Only the owner of F may call Inject.
func Inject[F, A any](rep Erased) Kind[F, A] {
	return Kind[F, A]{rep: rep}
}

// Inject2 wraps the representation of an F-computation as a Kind2.
// Only the owner of F may call Inject2.
func Inject2[F, A, B any](rep Erased) Kind2[F, A, B] {
	return Kind2[F, A, B]{rep: rep}
}

// Project returns the representation held by k as R.
// It panics with an error wrapping [ErrWrongKind] if k does not hold an R,
// which includes the zero Kind.
func Project[R, F, A any](k Kind[F, A]) R {
	r, ok := k.rep.(R)
	if !ok {
		wrongKind[F, R](k.rep)
	}
	return r
}

// Project2 is [Project] for binary constructors.
func Project2[R, F, A, B any](k Kind2[F, A, B]) R {
	r, ok := k.rep.(R)
	if !ok {
		wrongKind[F, R](k.rep)
	}
	return r
}

// wrongKind panics with a descriptive ErrWrongKind.
//
//go:noinline
func wrongKind[F, R any](got Erased) {
	var tag F
	var want R
	panic(fmt.Errorf("%w: %T expects %T, got %T", ErrWrongKind, tag, want, got))
}

// recast re-labels the phantom parameters of a handle. The representation is
// untouched; callers guarantee it computes values of the new types.
func recast[A2, B2, F, A, B any](k Kind2[F, A, B]) Kind2[F, A2, B2] {
	return Kind2[F, A2, B2]{rep: k.rep}
}

// recast1 is recast for unary handles.
func recast1[A2, F, A any](k Kind[F, A]) Kind[F, A2] {
	return Kind[F, A2]{rep: k.rep}
}

// erase2 forgets the phantom parameters of a binary handle.
func erase2[F, A, B any](k Kind2[F, A, B]) Kind2[F, Erased, Erased] {
	return Kind2[F, Erased, Erased]{rep: k.rep}
}

// erase forgets the phantom parameter of a unary handle.
func erase[F, A any](k Kind[F, A]) Kind[F, Erased] {
	return Kind[F, Erased]{rep: k.rep}
}

// fromErased recovers a value of type A.
// A nil Erased means the zero value, so pointer and interface types cannot
// distinguish "nil" from "zero".
func fromErased[A any](v Erased) A {
	if v == nil {
		var zero A
		return zero
	}
	return v.(A)
}

// toErased forgets the static type of a.
func toErased[A any](a A) Erased { return a }

// eraseFn adapts a typed function to the erased calling convention.
func eraseFn[A, B any](f func(A) B) func(Erased) Erased {
	return func(x Erased) Erased {
		return f(fromErased[A](x))
	}
}

// identity is the identity function.
func identity[A any](a A) A { return a }
