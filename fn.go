// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow

// FnK tags plain functions as a binary computation constructor.
// Its zero value carries the primitives; it holds no data.
type FnK struct{}

var (
	_ ArrowChoice[FnK]  = FnK{}
	_ StrongSecond[FnK] = FnK{}
)

// Fn is a function from A to B viewed as a computation.
type Fn[A, B any] struct {
	run func(Erased) Erased
}

// Func wraps f as an Fn.
func Func[A, B any](f func(A) B) Fn[A, B] {
	return Fn[A, B]{run: eraseFn(f)}
}

// Apply runs f on a.
func (f Fn[A, B]) Apply(a A) B {
	return fromErased[B](f.run(a))
}

// Kind returns f as a handle of the FnK constructor.
func (f Fn[A, B]) Kind() Kind2[FnK, A, B] {
	return Inject2[FnK, A, B](f.run)
}

// FixFn recovers the Fn held by k.
// k must have been produced by FnK code; see [Project2].
func FixFn[A, B any](k Kind2[FnK, A, B]) Fn[A, B] {
	return Fn[A, B]{run: fnRep(k)}
}

// RunFn applies the function held by k to a.
func RunFn[A, B any](k Kind2[FnK, A, B], a A) B {
	return FixFn(k).Apply(a)
}

func fnRep[A, B any](k Kind2[FnK, A, B]) func(Erased) Erased {
	return Project2[func(Erased) Erased](k)
}

func fnKind(run func(Erased) Erased) Kind2[FnK, Erased, Erased] {
	return Inject2[FnK, Erased, Erased](run)
}

// Compose implements Semigroupoid.
func (FnK) Compose(f, g Kind2[FnK, Erased, Erased]) Kind2[FnK, Erased, Erased] {
	fr, gr := fnRep(f), fnRep(g)
	return fnKind(func(x Erased) Erased {
		return fr(gr(x))
	})
}

// Id implements Category.
func (FnK) Id() Kind2[FnK, Erased, Erased] {
	return fnKind(identity[Erased])
}

// Lift implements Arrow.
func (FnK) Lift(f func(Erased) Erased) Kind2[FnK, Erased, Erased] {
	return fnKind(f)
}

// Dimap implements Profunctor directly, independent of Lift and Compose.
func (FnK) Dimap(fab Kind2[FnK, Erased, Erased], f, g func(Erased) Erased) Kind2[FnK, Erased, Erased] {
	r := fnRep(fab)
	return fnKind(func(x Erased) Erased {
		return g(r(f(x)))
	})
}

// First implements Strong.
func (FnK) First(fab Kind2[FnK, Erased, Erased]) Kind2[FnK, Erased, Erased] {
	r := fnRep(fab)
	return fnKind(func(x Erased) Erased {
		p := x.(Pair[Erased, Erased])
		return Pair[Erased, Erased]{Fst: r(p.Fst), Snd: p.Snd}
	})
}

// Second implements StrongSecond.
func (FnK) Second(fab Kind2[FnK, Erased, Erased]) Kind2[FnK, Erased, Erased] {
	r := fnRep(fab)
	return fnKind(func(x Erased) Erased {
		p := x.(Pair[Erased, Erased])
		return Pair[Erased, Erased]{Fst: p.Fst, Snd: r(p.Snd)}
	})
}

// Choose implements Choice.
func (FnK) Choose(f, g Kind2[FnK, Erased, Erased]) Kind2[FnK, Erased, Erased] {
	fr, gr := fnRep(f), fnRep(g)
	return fnKind(func(x Erased) Erased {
		e := x.(Either[Erased, Erased])
		if l, ok := e.GetLeft(); ok {
			return Left[Erased, Erased](fr(l))
		}
		r, _ := e.GetRight()
		return Right[Erased, Erased](gr(r))
	})
}
