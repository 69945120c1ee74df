// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow

// OptionK tags the optional-value constructor.
type OptionK struct{}

var _ Monad[OptionK] = OptionK{}

// Option holds either one value of type A or nothing.
// The zero Option is None.
type Option[A any] struct {
	value A
	ok    bool
}

// Some creates a present Option.
func Some[A any](a A) Option[A] {
	return Option[A]{value: a, ok: true}
}

// None creates an absent Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.ok
}

// IsSome reports whether o holds a value.
func (o Option[A]) IsSome() bool { return o.ok }

// IsNone reports whether o is empty.
func (o Option[A]) IsNone() bool { return !o.ok }

// GetOrElse returns the value, or def if o is None.
func (o Option[A]) GetOrElse(def A) A {
	if o.ok {
		return o.value
	}
	return def
}

// Kind returns o as a handle of the OptionK constructor.
func (o Option[A]) Kind() Kind[OptionK, A] {
	return Inject[OptionK, A](Option[Erased]{value: o.value, ok: o.ok})
}

// FixOption recovers the Option held by k.
// k must have been produced by OptionK code; see [Project].
func FixOption[A any](k Kind[OptionK, A]) Option[A] {
	r := optionRep(k)
	return Option[A]{value: fromErased[A](r.value), ok: r.ok}
}

// MapOption applies f to the value of o, if any.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.ok {
		return Some(f(o.value))
	}
	return None[B]()
}

// FlatMapOption sequences o with f.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.ok {
		return f(o.value)
	}
	return None[B]()
}

func optionRep[A any](k Kind[OptionK, A]) Option[Erased] {
	return Project[Option[Erased]](k)
}

func optionKind(o Option[Erased]) Kind[OptionK, Erased] {
	return Inject[OptionK, Erased](o)
}

// Map implements Functor.
func (OptionK) Map(fa Kind[OptionK, Erased], f func(Erased) Erased) Kind[OptionK, Erased] {
	return optionKind(MapOption(optionRep(fa), f))
}

// Pure implements Applicative.
func (OptionK) Pure(a Erased) Kind[OptionK, Erased] {
	return optionKind(Some(a))
}

// Ap implements Applicative.
func (OptionK) Ap(ff, fa Kind[OptionK, Erased]) Kind[OptionK, Erased] {
	f, okF := optionRep(ff).Get()
	a, okA := optionRep(fa).Get()
	if !okF || !okA {
		return optionKind(None[Erased]())
	}
	return optionKind(Some(f.(func(Erased) Erased)(a)))
}

// FlatMap implements Monad.
func (OptionK) FlatMap(fa Kind[OptionK, Erased], f func(Erased) Kind[OptionK, Erased]) Kind[OptionK, Erased] {
	a, ok := optionRep(fa).Get()
	if !ok {
		return optionKind(None[Erased]())
	}
	return f(a)
}
