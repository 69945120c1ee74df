// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow

import "iter"

// ListK tags the immutable singly-linked sequence constructor.
type ListK struct{}

var _ Monad[ListK] = ListK{}

// cell is one link of a List. Cells are shared between lists and never mutated.
// Heads are stored erased so a List converts to and from its Kind for free.
type cell struct {
	head Erased
	tail *cell
	size int
}

// List is an immutable singly-linked sequence.
// The zero List is empty.
type List[A any] struct {
	top *cell
}

// Nil returns the empty list.
func Nil[A any]() List[A] {
	return List[A]{}
}

// ListOf returns the list of xs in order.
func ListOf[A any](xs ...A) List[A] {
	l := Nil[A]()
	for i := len(xs) - 1; i >= 0; i-- {
		l = l.Prepend(xs[i])
	}
	return l
}

// Prepend returns a list with a in front of l. l is not modified.
func (l List[A]) Prepend(a A) List[A] {
	return List[A]{top: &cell{head: a, tail: l.top, size: l.Len() + 1}}
}

// IsEmpty reports whether l has no elements.
func (l List[A]) IsEmpty() bool { return l.top == nil }

// Len returns the number of elements.
func (l List[A]) Len() int {
	if l.top == nil {
		return 0
	}
	return l.top.size
}

// Head returns the first element.
// Panics if l is empty.
func (l List[A]) Head() A {
	if l.top == nil {
		panic("arrow: head of empty list")
	}
	return fromErased[A](l.top.head)
}

// HeadOption returns the first element, or None if l is empty.
func (l List[A]) HeadOption() Option[A] {
	if l.top == nil {
		return None[A]()
	}
	return Some(fromErased[A](l.top.head))
}

// Tail returns l without its first element.
// Panics if l is empty.
func (l List[A]) Tail() List[A] {
	if l.top == nil {
		panic("arrow: tail of empty list")
	}
	return List[A]{top: l.top.tail}
}

// Reverse returns the elements of l in reverse order.
func (l List[A]) Reverse() List[A] {
	var top *cell
	for c := l.top; c != nil; c = c.tail {
		size := 1
		if top != nil {
			size = top.size + 1
		}
		top = &cell{head: c.head, tail: top, size: size}
	}
	return List[A]{top: top}
}

// All returns an iterator over the elements of l in order.
func (l List[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for c := l.top; c != nil; c = c.tail {
			if !yield(fromErased[A](c.head)) {
				return
			}
		}
	}
}

// ToSlice returns the elements of l in a new slice.
func (l List[A]) ToSlice() []A {
	out := make([]A, 0, l.Len())
	for a := range l.All() {
		out = append(out, a)
	}
	return out
}

// Kind returns l as a handle of the ListK constructor.
func (l List[A]) Kind() Kind[ListK, A] {
	return Inject[ListK, A](l.top)
}

// FixList recovers the List held by k.
// k must have been produced by ListK code; see [Project].
func FixList[A any](k Kind[ListK, A]) List[A] {
	return List[A]{top: Project[*cell](k)}
}

// Concat returns the elements of x followed by those of y.
// The cells of y are shared, not copied.
func Concat[A any](x, y List[A]) List[A] {
	return List[A]{top: concatCells(x.top, y.top)}
}

// MapList applies f to every element.
func MapList[A, B any](l List[A], f func(A) B) List[B] {
	return List[B]{top: mapCells(l.top, eraseFn(f))}
}

// FlatMapList applies f to every element and concatenates the results.
func FlatMapList[A, B any](l List[A], f func(A) List[B]) List[B] {
	return List[B]{top: flatMapCells(l.top, func(x Erased) *cell {
		return f(fromErased[A](x)).top
	})}
}

// FoldLeft folds l from the left: f(...f(f(z, x0), x1)..., xn).
func FoldLeft[A, B any](l List[A], z B, f func(B, A) B) B {
	acc := z
	for a := range l.All() {
		acc = f(acc, a)
	}
	return acc
}

// FoldRight folds l from the right: f(x0, f(x1, ...f(xn, z))).
func FoldRight[A, B any](l List[A], z B, f func(A, B) B) B {
	acc := z
	xs := l.ToSlice()
	for i := len(xs) - 1; i >= 0; i-- {
		acc = f(xs[i], acc)
	}
	return acc
}

// fromHeads builds cells holding heads in order, ending in tail.
func fromHeads(heads []Erased, tail *cell) *cell {
	top := tail
	size := 0
	if tail != nil {
		size = tail.size
	}
	for i := len(heads) - 1; i >= 0; i-- {
		size++
		top = &cell{head: heads[i], tail: top, size: size}
	}
	return top
}

func heads(c *cell) []Erased {
	if c == nil {
		return nil
	}
	out := make([]Erased, 0, c.size)
	for ; c != nil; c = c.tail {
		out = append(out, c.head)
	}
	return out
}

func concatCells(x, y *cell) *cell {
	if x == nil {
		return y
	}
	if y == nil {
		return x
	}
	return fromHeads(heads(x), y)
}

func mapCells(c *cell, f func(Erased) Erased) *cell {
	hs := heads(c)
	for i, h := range hs {
		hs[i] = f(h)
	}
	return fromHeads(hs, nil)
}

func flatMapCells(c *cell, f func(Erased) *cell) *cell {
	var out []Erased
	for ; c != nil; c = c.tail {
		out = append(out, heads(f(c.head))...)
	}
	return fromHeads(out, nil)
}

func listRep[A any](k Kind[ListK, A]) *cell {
	return Project[*cell](k)
}

func listKind(c *cell) Kind[ListK, Erased] {
	return Inject[ListK, Erased](c)
}

// Map implements Functor.
func (ListK) Map(fa Kind[ListK, Erased], f func(Erased) Erased) Kind[ListK, Erased] {
	return listKind(mapCells(listRep(fa), f))
}

// Pure implements Applicative.
func (ListK) Pure(a Erased) Kind[ListK, Erased] {
	return listKind(&cell{head: a, size: 1})
}

// Ap implements Applicative: every function applied to every value,
// functions in the outer loop.
func (ListK) Ap(ff, fa Kind[ListK, Erased]) Kind[ListK, Erased] {
	as := listRep(fa)
	return listKind(flatMapCells(listRep(ff), func(f Erased) *cell {
		return mapCells(as, f.(func(Erased) Erased))
	}))
}

// FlatMap implements Monad.
func (ListK) FlatMap(fa Kind[ListK, Erased], f func(Erased) Kind[ListK, Erased]) Kind[ListK, Erased] {
	return listKind(flatMapCells(listRep(fa), func(x Erased) *cell {
		return listRep(f(x))
	}))
}
