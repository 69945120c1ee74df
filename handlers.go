// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow

// Composed handlers for computations that use several effect families.
// One handler dispatches every family, so runners do not nest. Operations
// are tried family by family in the order the runner's name lists them.
//
// Listen, Censor and Catch run their bodies with a single-family handler,
// so those bodies may only perform effects of their own family.

// stateReaderHandler handles State and Reader effects.
type stateReaderHandler[S, E, R any] struct {
	state *S
	env   *E
}

// Dispatch implements Handler.
func (h *stateReaderHandler[S, E, R]) Dispatch(op Operation) (Resumed, bool) {
	if sop, ok := op.(stateDispatcher[S]); ok {
		return sop.DispatchState(h.state)
	}
	if rop, ok := op.(readerDispatcher[E]); ok {
		return rop.DispatchReader(h.env)
	}
	unhandledEffect("StateReaderHandler")
	return nil, false
}

// RunStateReader runs a computation with State and Reader effects.
// Returns the result and the final state.
func RunStateReader[S, E, A any](initial S, env E, m Eff[A]) (A, S) {
	state := initial
	result := Handle(m, &stateReaderHandler[S, E, A]{state: &state, env: &env})
	return result, state
}

// stateWriterHandler handles State and Writer effects.
type stateWriterHandler[S, W, R any] struct {
	state *S
	ctx   *WriterContext[W]
}

// Dispatch implements Handler.
func (h *stateWriterHandler[S, W, R]) Dispatch(op Operation) (Resumed, bool) {
	if sop, ok := op.(stateDispatcher[S]); ok {
		return sop.DispatchState(h.state)
	}
	if wop, ok := op.(writerDispatcher[W]); ok {
		return wop.DispatchWriter(h.ctx)
	}
	unhandledEffect("StateWriterHandler")
	return nil, false
}

// RunStateWriter runs a computation with State and Writer effects.
// Returns the result, the final state and the output accumulated with w.
func RunStateWriter[S, W, A any](initial S, w Monoid[W], m Eff[A]) (A, S, W) {
	state := initial
	ctx := &WriterContext[W]{Monoid: w, Output: w.Empty()}
	result := Handle(m, &stateWriterHandler[S, W, A]{state: &state, ctx: ctx})
	return result, state, ctx.Output
}

// stateErrorHandler handles State and Error effects.
type stateErrorHandler[S, E, A any] struct {
	state *S
	ctx   *ErrorContext[E]
}

// Dispatch implements Handler. A recorded error short-circuits with Left.
func (h *stateErrorHandler[S, E, A]) Dispatch(op Operation) (Resumed, bool) {
	if sop, ok := op.(stateDispatcher[S]); ok {
		return sop.DispatchState(h.state)
	}
	if eop, ok := op.(errorDispatcher[E]); ok {
		v, _ := eop.DispatchError(h.ctx)
		if h.ctx.HasErr {
			return Left[E, A](h.ctx.Err), false
		}
		return v, true
	}
	unhandledEffect("StateErrorHandler")
	return nil, false
}

// RunStateError runs a computation with State and Error effects.
// The final state is returned even when an error was thrown: it is the
// state at the point of the throw.
func RunStateError[S, E, A any](initial S, m Eff[A]) (Either[E, A], S) {
	state := initial
	var ctx ErrorContext[E]
	h := &stateErrorHandler[S, E, A]{state: &state, ctx: &ctx}
	either := handleDispatch[*stateErrorHandler[S, E, A], Either[E, A]](m(rightCont[E, A]), h)
	return either, state
}

// EvalStateError runs a State+Error computation and returns only the result.
func EvalStateError[S, E, A any](initial S, m Eff[A]) Either[E, A] {
	result, _ := RunStateError[S, E](initial, m)
	return result
}

// ExecStateError runs a State+Error computation and returns only the final state.
func ExecStateError[S, E, A any](initial S, m Eff[A]) S {
	_, state := RunStateError[S, E](initial, m)
	return state
}

// readerStateErrorHandler handles Reader, State and Error effects.
type readerStateErrorHandler[Env, S, Err, A any] struct {
	env   *Env
	state *S
	ctx   *ErrorContext[Err]
}

// Dispatch implements Handler.
func (h *readerStateErrorHandler[Env, S, Err, A]) Dispatch(op Operation) (Resumed, bool) {
	if rop, ok := op.(readerDispatcher[Env]); ok {
		return rop.DispatchReader(h.env)
	}
	if sop, ok := op.(stateDispatcher[S]); ok {
		return sop.DispatchState(h.state)
	}
	if eop, ok := op.(errorDispatcher[Err]); ok {
		v, _ := eop.DispatchError(h.ctx)
		if h.ctx.HasErr {
			return Left[Err, A](h.ctx.Err), false
		}
		return v, true
	}
	unhandledEffect("ReaderStateErrorHandler")
	return nil, false
}

// RunReaderStateError runs a computation with Reader, State and Error effects.
func RunReaderStateError[Env, S, Err, A any](env Env, initial S, m Eff[A]) (Either[Err, A], S) {
	state := initial
	var ctx ErrorContext[Err]
	h := &readerStateErrorHandler[Env, S, Err, A]{env: &env, state: &state, ctx: &ctx}
	either := handleDispatch[*readerStateErrorHandler[Env, S, Err, A], Either[Err, A]](m(rightCont[Err, A]), h)
	return either, state
}
