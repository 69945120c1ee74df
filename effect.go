// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow

import "sync"

// unhandledEffect panics with a descriptive message for unmatched operations.
// Extracted as a noinline function so that Dispatch methods remain inlineable.
//
//go:noinline
func unhandledEffect(handler string) {
	panic("arrow: unhandled effect in " + handler)
}

// Operation is the interface for effect operations in handler dispatch.
type Operation any

// Resumed is the interface for values flowing through effect suspension and resumption.
// Effectful computations use Cont[Resumed, A] as their continuation type.
type Resumed any

// Op is the F-bounded interface for effect operations.
// Each effect defines concrete types implementing Op with the appropriate
// result type parameter.
type Op[O Op[O, A], A any] interface {
	OpResult() A // phantom type marker for result
}

// Phantom is an embeddable zero-size type that provides the [Op] result marker.
//
// Example:
//
//	type Ask[E any] struct{ arrow.Phantom[E] }
//	// Ask[E] satisfies Op[Ask[E], E] via promoted OpResult() E
type Phantom[A any] struct{}

// OpResult implements the phantom type marker for [Op].
func (Phantom[A]) OpResult() A { panic("phantom") }

// Handler is the F-bounded interface for effect handlers.
//
// Dispatch returns (resumeValue, true) to continue the computation,
// or (finalResult, false) to short-circuit and return immediately.
type Handler[H Handler[H, R], R any] interface {
	Dispatch(op Operation) (Resumed, bool)
}

// handlerFunc wraps a dispatch function as a concrete Handler.
type handlerFunc[R any] struct {
	f func(op Operation) (Resumed, bool)
}

func (h *handlerFunc[R]) Dispatch(op Operation) (Resumed, bool) {
	return h.f(op)
}

// HandleFunc creates a handler from a dispatch function.
func HandleFunc[R any](f func(op Operation) (Resumed, bool)) *handlerFunc[R] {
	return &handlerFunc[R]{f: f}
}

// suspension is the value an effectful computation returns to its runner
// when it performs an operation: the operation plus a one-shot resumption.
// Markers are pooled; Resume releases the marker before continuing.
type suspension struct {
	op     Operation
	resume func(*suspension, Resumed) Resumed
	f      any
	k      any
}

var suspensionPool = sync.Pool{
	New: func() any { return new(suspension) },
}

func acquireSuspension(op Operation) *suspension {
	s := suspensionPool.Get().(*suspension)
	s.op = op
	return s
}

func releaseSuspension(s *suspension) {
	s.op = nil
	s.resume = nil
	s.f = nil
	s.k = nil
	suspensionPool.Put(s)
}

// Resume continues the suspended computation with v.
func (s *suspension) Resume(v Resumed) Resumed { return s.resume(s, v) }

// effectResume passes the handler's value to the continuation.
func effectResume[A any](s *suspension, v Resumed) Resumed {
	k := s.k.(func(A) Resumed)
	releaseSuspension(s)
	return k(fromErased[A](v))
}

// bindResume passes the handler's value to f, then runs the result with k.
func bindResume[A, B any](s *suspension, v Resumed) Resumed {
	f := s.f.(func(A) Eff[B])
	k := s.k.(func(B) Resumed)
	releaseSuspension(s)
	return f(fromErased[A](v))(k)
}

// thenResume discards the handler's value and runs the stored computation.
func thenResume[B any](s *suspension, _ Resumed) Resumed {
	next := s.f.(Eff[B])
	k := s.k.(func(B) Resumed)
	releaseSuspension(s)
	return next(k)
}

// mapResume projects the handler's value with f before continuing.
func mapResume[A, B any](s *suspension, v Resumed) Resumed {
	f := s.f.(func(A) B)
	k := s.k.(func(B) Resumed)
	releaseSuspension(s)
	return k(f(fromErased[A](v)))
}

// perform suspends on op; the handler's value is passed to k.
func perform[A any](op Operation, k func(A) Resumed) Resumed {
	s := acquireSuspension(op)
	s.k = k
	s.resume = effectResume[A]
	return s
}

// Perform triggers an effect operation and suspends the computation.
// The handler receives the operation via [Handler.Dispatch] and provides
// a resume value, or short-circuits with a final result.
func Perform[O Op[O, A], A any](op O) Eff[A] {
	return func(k func(A) Resumed) Resumed {
		return perform(op, k)
	}
}

// toResumed is the identity continuation for Handle.
// Named generic function produces a static function value per type
// instantiation, avoiding the heap allocation that anonymous closures incur.
func toResumed[A any](a A) Resumed { return a }

// Handle runs a computation with an F-bounded effect handler.
// The handler intercepts effect operations and determines how to resume.
//
// Example:
//
//	result := Handle(computation, HandleFunc[int](func(op Operation) (Resumed, bool) {
//	    switch op.(type) {
//	    case Ask[int]:
//	        return 42, true
//	    default:
//	        panic("unhandled effect")
//	    }
//	}))
func Handle[H Handler[H, R], R any](m Eff[R], h H) R {
	return handleDispatch[H, R](m(toResumed[R]), h)
}

// handleDispatch is the trampoline loop: resume suspensions until a final
// value appears or the handler short-circuits.
// A nil final value means the zero R.
func handleDispatch[H Handler[H, R], R any](result Resumed, h H) R {
	for {
		s, ok := result.(*suspension)
		if !ok {
			return fromErased[R](result)
		}
		v, resume := h.Dispatch(s.op)
		if !resume {
			releaseSuspension(s)
			return fromErased[R](v)
		}
		result = s.Resume(v)
	}
}
