// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow

// State effect: a value of type S threaded through a computation.

// Get reads the state.
type Get[S any] struct{}

func (Get[S]) OpResult() S { panic("phantom") }

// DispatchState handles Get in State handler dispatch.
func (Get[S]) DispatchState(state *S) (Resumed, bool) {
	return *state, true
}

// Put replaces the state.
type Put[S any] struct{ Value S }

func (Put[S]) OpResult() struct{} { panic("phantom") }

// DispatchState handles Put in State handler dispatch.
func (o Put[S]) DispatchState(state *S) (Resumed, bool) {
	*state = o.Value
	return struct{}{}, true
}

// Modify applies F to the state and returns the new state.
type Modify[S any] struct{ F func(S) S }

func (Modify[S]) OpResult() S { panic("phantom") }

// DispatchState handles Modify in State handler dispatch.
func (o Modify[S]) DispatchState(state *S) (Resumed, bool) {
	*state = o.F(*state)
	return *state, true
}

// GetState fuses Get + Bind: performs Get, passes state to f.
func GetState[S, B any](f func(S) Eff[B]) Eff[B] {
	return func(k func(B) Resumed) Resumed {
		s := acquireSuspension(Get[S]{})
		s.f = f
		s.k = k
		s.resume = bindResume[S, B]
		return s
	}
}

// PutState fuses Put + Then: performs Put, then runs next.
func PutState[S, B any](v S, next Eff[B]) Eff[B] {
	return func(k func(B) Resumed) Resumed {
		s := acquireSuspension(Put[S]{Value: v})
		s.f = next
		s.k = k
		s.resume = thenResume[B]
		return s
	}
}

// ModifyState fuses Modify + Bind: performs Modify, passes the new state to then.
func ModifyState[S, B any](f func(S) S, then func(S) Eff[B]) Eff[B] {
	return func(k func(B) Resumed) Resumed {
		s := acquireSuspension(Modify[S]{F: f})
		s.f = then
		s.k = k
		s.resume = bindResume[S, B]
		return s
	}
}

// stateDispatcher is implemented by State operations.
type stateDispatcher[S any] interface {
	DispatchState(state *S) (Resumed, bool)
}

// stateHandler implements Handler for State effects.
type stateHandler[S, R any] struct {
	state *S
}

// Dispatch implements Handler.
func (h *stateHandler[S, R]) Dispatch(op Operation) (Resumed, bool) {
	if sop, ok := op.(stateDispatcher[S]); ok {
		return sop.DispatchState(h.state)
	}
	unhandledEffect("StateHandler")
	return nil, false
}

// RunState runs a stateful computation and returns both the result and final state.
func RunState[S, A any](initial S, m Eff[A]) (A, S) {
	state := initial
	result := Handle(m, &stateHandler[S, A]{state: &state})
	return result, state
}

// EvalState runs a stateful computation and returns only the result.
func EvalState[S, A any](initial S, m Eff[A]) A {
	result, _ := RunState(initial, m)
	return result
}

// ExecState runs a stateful computation and returns only the final state.
func ExecState[S, A any](initial S, m Eff[A]) S {
	_, state := RunState(initial, m)
	return state
}
