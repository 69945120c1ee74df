// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow

// Pair holds two values. Both slots are significant and ordered.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// MakePair creates a Pair.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// Values returns both slots.
func (p Pair[A, B]) Values() (A, B) {
	return p.Fst, p.Snd
}

// SwapPair exchanges the slots of p.
func SwapPair[A, B any](p Pair[A, B]) Pair[B, A] {
	return Pair[B, A]{Fst: p.Snd, Snd: p.Fst}
}

// Dup places a in both slots.
func Dup[A any](a A) Pair[A, A] {
	return Pair[A, A]{Fst: a, Snd: a}
}

// erasePair converts a Pair[A, B] into the Pair[Erased, Erased] that
// constructor primitives (First, Second) operate on.
func erasePair[A, B any](x Erased) Erased {
	p := fromErased[Pair[A, B]](x)
	return Pair[Erased, Erased]{Fst: p.Fst, Snd: p.Snd}
}

// unerasePair is the inverse of erasePair.
func unerasePair[A, B any](x Erased) Erased {
	p := fromErased[Pair[Erased, Erased]](x)
	return Pair[A, B]{Fst: fromErased[A](p.Fst), Snd: fromErased[B](p.Snd)}
}
