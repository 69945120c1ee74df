// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow

// Writer effect: output of type W accumulated with a Monoid.

// WriterContext holds the state needed for Writer effect dispatch.
type WriterContext[W any] struct {
	Monoid Monoid[W]
	Output W
}

// writerDispatcher is implemented by Writer operations.
type writerDispatcher[W any] interface {
	DispatchWriter(ctx *WriterContext[W]) (Resumed, bool)
}

// Tell appends Value to the output.
type Tell[W any] struct{ Value W }

func (Tell[W]) OpResult() struct{} { panic("phantom") }

// DispatchWriter handles Tell in Writer handler dispatch.
func (o Tell[W]) DispatchWriter(ctx *WriterContext[W]) (Resumed, bool) {
	ctx.Output = ctx.Monoid.Combine(ctx.Output, o.Value)
	return struct{}{}, true
}

// Listen runs Body and returns its result together with the output it wrote.
// The output is also kept in the enclosing context.
type Listen[W, A any] struct{ Body Eff[A] }

func (Listen[W, A]) OpResult() Pair[A, W] { panic("phantom") }

// DispatchWriter handles Listen in Writer handler dispatch.
// The body runs against a fresh context starting at Empty, so its output
// is known exactly; it is then combined into the enclosing output.
func (o Listen[W, A]) DispatchWriter(ctx *WriterContext[W]) (Resumed, bool) {
	result, written := RunWriter(ctx.Monoid, o.Body)
	ctx.Output = ctx.Monoid.Combine(ctx.Output, written)
	return Pair[A, W]{Fst: result, Snd: written}, true
}

// Censor runs Body and replaces its output with F applied to it.
type Censor[W, A any] struct {
	F    func(W) W
	Body Eff[A]
}

func (Censor[W, A]) OpResult() A { panic("phantom") }

// DispatchWriter handles Censor in Writer handler dispatch.
func (o Censor[W, A]) DispatchWriter(ctx *WriterContext[W]) (Resumed, bool) {
	result, written := RunWriter(ctx.Monoid, o.Body)
	ctx.Output = ctx.Monoid.Combine(ctx.Output, o.F(written))
	return result, true
}

// TellWriter fuses Tell + Then: performs Tell, then runs next.
func TellWriter[W, B any](w W, next Eff[B]) Eff[B] {
	return func(k func(B) Resumed) Resumed {
		s := acquireSuspension(Tell[W]{Value: w})
		s.f = next
		s.k = k
		s.resume = thenResume[B]
		return s
	}
}

// ListenWriter runs a computation and returns its output alongside the result.
func ListenWriter[W, A any](body Eff[A]) Eff[Pair[A, W]] {
	return Perform(Listen[W, A]{Body: body})
}

// CensorWriter runs a computation and modifies its output.
func CensorWriter[W, A any](f func(W) W, body Eff[A]) Eff[A] {
	return Perform(Censor[W, A]{F: f, Body: body})
}

// writerHandler implements Handler for Writer effects.
type writerHandler[W, R any] struct {
	ctx *WriterContext[W]
}

// Dispatch implements Handler.
func (h *writerHandler[W, R]) Dispatch(op Operation) (Resumed, bool) {
	if wop, ok := op.(writerDispatcher[W]); ok {
		return wop.DispatchWriter(h.ctx)
	}
	unhandledEffect("WriterHandler")
	return nil, false
}

// RunWriter runs a writer computation and returns both result and output.
func RunWriter[W, A any](w Monoid[W], m Eff[A]) (A, W) {
	ctx := &WriterContext[W]{Monoid: w, Output: w.Empty()}
	result := Handle(m, &writerHandler[W, A]{ctx: ctx})
	return result, ctx.Output
}

// ExecWriter runs a writer computation and returns only the output.
func ExecWriter[W, A any](w Monoid[W], m Eff[A]) W {
	_, output := RunWriter(w, m)
	return output
}
