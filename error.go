// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow

// Error effect: exception-like short-circuit with an error of type E.

// ErrorContext holds the state needed for Error effect dispatch.
type ErrorContext[E any] struct {
	Err    E
	HasErr bool
}

// errorDispatcher is implemented by Error operations.
type errorDispatcher[E any] interface {
	DispatchError(ctx *ErrorContext[E]) (Resumed, bool)
}

// Throw aborts the computation with Err.
type Throw[E any] struct{ Err E }

func (Throw[E]) OpResult() Resumed { panic("phantom") }

// DispatchError handles Throw in Error handler dispatch.
// It records the error; the handler then short-circuits.
func (o Throw[E]) DispatchError(ctx *ErrorContext[E]) (Resumed, bool) {
	ctx.Err = o.Err
	ctx.HasErr = true
	return struct{}{}, true
}

// Catch runs Body, recovering from a thrown error with Handler.
// Body and Handler may only perform Error effects.
type Catch[E, A any] struct {
	Body    Eff[A]
	Handler func(E) Eff[A]
}

func (Catch[E, A]) OpResult() A { panic("phantom") }

// DispatchError handles Catch in Error handler dispatch.
func (o Catch[E, A]) DispatchError(ctx *ErrorContext[E]) (Resumed, bool) {
	body := RunError[E](o.Body)
	if v, ok := body.GetRight(); ok {
		return v, true
	}
	e, _ := body.GetLeft()
	recovered := RunError[E](o.Handler(e))
	if v, ok := recovered.GetRight(); ok {
		return v, true
	}
	ctx.Err, _ = recovered.GetLeft()
	ctx.HasErr = true
	return struct{}{}, true
}

// ThrowError performs Throw. The continuation is never called.
func ThrowError[E, A any](err E) Eff[A] {
	return func(k func(A) Resumed) Resumed {
		return perform(Throw[E]{Err: err}, k)
	}
}

// CatchError wraps a computation with an error handler.
func CatchError[E, A any](body Eff[A], handler func(E) Eff[A]) Eff[A] {
	return Perform(Catch[E, A]{Body: body, Handler: handler})
}

// errorHandler implements Handler for Error effects.
type errorHandler[E, A any] struct {
	ctx *ErrorContext[E]
}

// Dispatch implements Handler. A recorded error short-circuits with Left.
func (h *errorHandler[E, A]) Dispatch(op Operation) (Resumed, bool) {
	if eop, ok := op.(errorDispatcher[E]); ok {
		v, _ := eop.DispatchError(h.ctx)
		if h.ctx.HasErr {
			return Left[E, A](h.ctx.Err), false
		}
		return v, true
	}
	unhandledEffect("ErrorHandler")
	return nil, false
}

// rightCont is the final continuation for error runners.
// Named generic function produces a static funcval per type instantiation.
func rightCont[E, A any](a A) Resumed { return Right[E, A](a) }

// RunError runs an error-capable computation and returns Right with its
// result, or Left with the first error thrown.
func RunError[E, A any](m Eff[A]) Either[E, A] {
	var ctx ErrorContext[E]
	return handleDispatch[*errorHandler[E, A], Either[E, A]](m(rightCont[E, A]), &errorHandler[E, A]{ctx: &ctx})
}
