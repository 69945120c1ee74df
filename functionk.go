// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package arrow

// FunctionK is a natural transformation from the constructor tagged F to the
// constructor tagged G. It must commute with mapping:
//
//	Transform(nt, Map(fa, h)) == Map(Transform(nt, fa), h)
//
// The transformation works on representations whose element type is erased,
// so it cannot inspect elements; naturality holds as long as it does not
// reorder or duplicate them inconsistently with Map.
type FunctionK[F, G any] struct {
	run func(Kind[F, Erased]) Kind[G, Erased]
	id  bool
}

// NewFunctionK wraps run as a natural transformation.
func NewFunctionK[F, G any](run func(Kind[F, Erased]) Kind[G, Erased]) FunctionK[F, G] {
	if run == nil {
		panic("arrow: nil natural transformation")
	}
	return FunctionK[F, G]{run: run}
}

// IdK returns the identity transformation on F. It is a no-op value:
// ComposeK and AndThenK drop it.
func IdK[F any]() FunctionK[F, F] {
	return FunctionK[F, F]{id: true}
}

// IsId reports whether nt is the identity transformation.
// The zero FunctionK is not.
func (nt FunctionK[F, G]) IsId() bool { return nt.id }

// apply runs nt on an erased handle. It panics if nt is the zero value.
func (nt FunctionK[F, G]) apply(fa Kind[F, Erased]) Kind[G, Erased] {
	switch {
	case nt.id:
		// Only IdK sets id, and IdK has F == G.
		return Kind[G, Erased]{rep: fa.rep}
	case nt.run == nil:
		panic("arrow: zero FunctionK applied")
	}
	return nt.run(fa)
}

// Transform applies nt to fa.
// It panics if nt was neither built by NewFunctionK nor IdK.
func Transform[F, G, A any](nt FunctionK[F, G], fa Kind[F, A]) Kind[G, A] {
	return recast1[A](nt.apply(erase(fa)))
}

// ComposeK returns the transformation applying g, then f.
func ComposeK[F, G, H any](f FunctionK[G, H], g FunctionK[F, G]) FunctionK[F, H] {
	switch {
	case f.id && g.id:
		return FunctionK[F, H]{id: true}
	case g.id:
		// g is IdK, so F and G tag the same constructor.
		return FunctionK[F, H]{run: func(fa Kind[F, Erased]) Kind[H, Erased] {
			return f.apply(Kind[G, Erased]{rep: fa.rep})
		}}
	case f.id:
		// f is IdK, so G and H tag the same constructor.
		return FunctionK[F, H]{run: func(fa Kind[F, Erased]) Kind[H, Erased] {
			return Kind[H, Erased]{rep: g.apply(fa).rep}
		}}
	}
	return FunctionK[F, H]{run: func(fa Kind[F, Erased]) Kind[H, Erased] {
		return f.apply(g.apply(fa))
	}}
}

// AndThenK returns the transformation applying f, then g.
func AndThenK[F, G, H any](f FunctionK[F, G], g FunctionK[G, H]) FunctionK[F, H] {
	return ComposeK(g, f)
}

// OptionToList maps Some(a) to [a] and None to [].
func OptionToList() FunctionK[OptionK, ListK] {
	return NewFunctionK(func(fa Kind[OptionK, Erased]) Kind[ListK, Erased] {
		a, ok := optionRep(fa).Get()
		if !ok {
			return listKind(nil)
		}
		return listKind(&cell{head: a, size: 1})
	})
}

// ListHeadOption maps a list to its first element, or None if it is empty.
func ListHeadOption() FunctionK[ListK, OptionK] {
	return NewFunctionK(func(fa Kind[ListK, Erased]) Kind[OptionK, Erased] {
		return List[Erased]{top: listRep(fa)}.HeadOption().Kind()
	})
}
