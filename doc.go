// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package arrow provides law-governed capability contracts (monoid,
// functor/monad, category, profunctor, strong, choice, arrow) that generic
// code is written against once and instantiated for concrete constructors.
//
// # Constructor Tags
//
// Go has no type-constructor polymorphism. A constructor is therefore named
// by a tag type (an empty struct such as [FnK] or [OptionK]) and a value of
// the constructor applied to types by an opaque handle:
//
//   - [Kind]: Kind[F, A] is F applied to A
//   - [Kind2]: Kind2[F, A, B] is F applied to A and B
//
// Handles carry no operations. Each constructor converts its own values to
// and from handles through one boundary pair (for example [Option.Kind] and
// [FixOption]); only that code calls [Inject] and [Project]. A handle that
// does not hold the expected representation panics with [ErrWrongKind].
//
// Contracts are interfaces satisfied by tags. Tag methods work on type-erased
// values ([Erased]); the typed free functions below are the public surface
// and are written once for every tag. Generic code uses the tag's zero value
// as an F-bounded dictionary:
//
//	func Compose[F Semigroupoid[F], A, B, C any](f Kind2[F, B, C], g Kind2[F, A, B]) Kind2[F, A, C]
//
// # Contracts
//
// Value algebra:
//
//   - [Semigroup], [Monoid]: Combine and Empty
//   - [CombineAll]: fold with a Monoid
//   - [SumMonoid], [ProductMonoid], [StringMonoid], [SliceMonoid],
//     [OptionMonoid], [ListMonoid], [MonoidOf]
//
// Unary constructors:
//
//   - [Functor]: [Map]
//   - [Applicative]: [Pure], [Ap], derived [Map2]
//   - [Monad]: [FlatMap], derived [Flatten] and [MonadAp]
//   - [FunctionK]: natural transformations, [Transform], [IdK], [ComposeK], [AndThenK]
//
// Binary constructors, with their primitives and derivations:
//
//   - [Semigroupoid]: [Compose], derived [AndThen]
//   - [Category]: [Id], derived [EndoMonoid]
//   - [Profunctor]: [Dimap], derived [Lmap] and [Rmap]
//   - [Strong]: [First]; [Second] from the optional [StrongSecond] primitive
//     or derived from First
//   - [Choice]: [Choose], derived [ChooseLeft], [ChooseRight], [Fanin], [Codiagonal]
//   - [Arrow]: [Lift], derived [ArrowId], [ArrowDimap], [Swap], [ArrowSecond],
//     [Split], [Merge]
//   - [ArrowChoice]: derived [Branch]
//
// Every derivation is expressed through primitives only, so the laws of the
// primitives carry over: for every lawful instance
//
//	Second(f)   == Compose(Swap, Compose(First(f), Swap))
//	Split(f, g) == AndThen(First(f), Second(g))
//	Merge(f, g) == AndThen(Lift(Dup), Split(f, g))
//	Fanin(f, g) == Rmap(Choose(f, g), fold)
//
// Split, Merge and Choose run the left computation before the right one.
// For effectful instances this is the order in which effects happen.
//
// # Instances
//
//   - [FnK]: plain functions ([Fn], [Func], [RunFn])
//   - [KleisliK]: A → M[B] for any Monad M ([Kleisli], [KleisliOf], [RunKleisli])
//   - [OptionK]: [Option], [Some], [None]
//   - [ListK]: immutable [List], [Nil], [ListOf]
//   - [EffK]: effectful computations [Eff] ([EffKind], [FixEff], [Effect])
//
// # Effects
//
// [Eff] is a continuation-passing computation whose operations are
// interpreted by a [Handler]:
//
//   - [Cont], [Return], [Suspend], [BindCont], [MapCont], [ThenCont], [Run], [RunWith]
//   - [Op], [Phantom], [Perform], [Handle], [HandleFunc]
//   - State: [Get], [Put], [Modify], [GetState], [PutState], [ModifyState],
//     [RunState], [EvalState], [ExecState]
//   - Writer over a Monoid: [Tell], [Listen], [Censor], [TellWriter],
//     [ListenWriter], [CensorWriter], [RunWriter], [ExecWriter]
//   - Reader: [Ask], [AskReader], [MapReader], [RunReader]
//   - Error: [Throw], [Catch], [ThrowError], [CatchError], [RunError]
//   - Composed runners: [RunStateReader], [RunStateWriter], [RunStateError],
//     [EvalStateError], [ExecStateError], [RunReaderStateError]
//
// # Example
//
//	inc := arrow.Lift[arrow.FnK](func(x int) int { return x + 1 })
//	dbl := arrow.Lift[arrow.FnK](func(x int) int { return x * 2 })
//	arrow.RunFn(arrow.AndThen(inc, dbl), 3)                       // 8
//	arrow.RunFn(arrow.Split(inc, dbl), arrow.MakePair(3, 4))      // {4 8}
//
// All values are immutable and all combinators are pure; computations may
// be shared between goroutines freely.
package arrow
