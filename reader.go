// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow

// Reader effect: read-only access to an environment of type E.

// Ask reads the environment.
type Ask[E any] struct{}

func (Ask[E]) OpResult() E { panic("phantom") }

// DispatchReader handles Ask in Reader handler dispatch.
func (Ask[E]) DispatchReader(env *E) (Resumed, bool) {
	return *env, true
}

// readerDispatcher is implemented by Reader operations.
type readerDispatcher[E any] interface {
	DispatchReader(env *E) (Resumed, bool)
}

// AskReader fuses Ask + Bind: performs Ask, passes the environment to f.
func AskReader[E, B any](f func(E) Eff[B]) Eff[B] {
	return func(k func(B) Resumed) Resumed {
		s := acquireSuspension(Ask[E]{})
		s.f = f
		s.k = k
		s.resume = bindResume[E, B]
		return s
	}
}

// MapReader fuses Ask + Map: performs Ask, projects the environment with f.
func MapReader[E, A any](f func(E) A) Eff[A] {
	return func(k func(A) Resumed) Resumed {
		s := acquireSuspension(Ask[E]{})
		s.f = f
		s.k = k
		s.resume = mapResume[E, A]
		return s
	}
}

// readerHandler implements Handler for Reader effects.
type readerHandler[E, R any] struct {
	env *E
}

// Dispatch implements Handler.
func (h *readerHandler[E, R]) Dispatch(op Operation) (Resumed, bool) {
	if rop, ok := op.(readerDispatcher[E]); ok {
		return rop.DispatchReader(h.env)
	}
	unhandledEffect("ReaderHandler")
	return nil, false
}

// RunReader runs a computation with the given environment.
func RunReader[E, A any](env E, m Eff[A]) A {
	return Handle(m, &readerHandler[E, A]{env: &env})
}
