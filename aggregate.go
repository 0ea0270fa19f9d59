package parsercombinator

import "strings"

// Sequencer combines the two child values of a Sequence into one result
// value. Provided instances cover tupling and discarding a unit-typed side.
type Sequencer[A, B, R any] interface {
	Combine(a A, b B) R
}

// anySequencer is the type-erased form stored on Flat chain links.
type anySequencer interface {
	combine(a, b any) any
}

type sequencerAdapter[A, B, R any] struct{ s Sequencer[A, B, R] }

func (a sequencerAdapter[A, B, R]) combine(x, y any) any {
	return a.s.Combine(x.(A), y.(B))
}

// Pair is the value produced by TupleSequencer.
type Pair[A, B any] struct {
	First  A
	Second B
}

// TupleSequencer keeps both child values, paired.
type TupleSequencer[A, B any] struct{}

func (TupleSequencer[A, B]) Combine(a A, b B) Pair[A, B] { return Pair[A, B]{a, b} }

// DropLeftSequencer discards the left child's value.
type DropLeftSequencer[A, B any] struct{}

func (DropLeftSequencer[A, B]) Combine(_ A, b B) B { return b }

// DropRightSequencer discards the right child's value.
type DropRightSequencer[A, B any] struct{}

func (DropRightSequencer[A, B]) Combine(a A, _ B) A { return a }

// Repeater manages the mutable accumulator a Repeat node folds values into.
// Initial is invoked fresh for every Repeat.ParseRec call: the accumulator
// must not be reused across parses.
type Repeater[T, R any] interface {
	Initial() any
	Accumulate(acc any, v T)
	Result(acc any) R
}

type anyRepeater interface {
	initial() any
	accumulate(acc any, v any)
	result(acc any) any
}

type repeaterAdapter[T, R any] struct{ r Repeater[T, R] }

func (a repeaterAdapter[T, R]) initial() any { return a.r.Initial() }
func (a repeaterAdapter[T, R]) accumulate(acc any, v any) {
	a.r.Accumulate(acc, v.(T))
}
func (a repeaterAdapter[T, R]) result(acc any) any { return a.r.Result(acc) }

// SliceRepeater appends every repeated value to a slice.
type SliceRepeater[T any] struct{}

func (SliceRepeater[T]) Initial() any { return new([]T) }
func (SliceRepeater[T]) Accumulate(acc any, v T) {
	p := acc.(*[]T)
	*p = append(*p, v)
}
func (SliceRepeater[T]) Result(acc any) []T { return *acc.(*[]T) }

// StringRepeater concatenates repeated string values.
type StringRepeater struct{}

func (StringRepeater) Initial() any { return new(strings.Builder) }
func (StringRepeater) Accumulate(acc any, v string) {
	acc.(*strings.Builder).WriteString(v)
}
func (StringRepeater) Result(acc any) string { return acc.(*strings.Builder).String() }

// Optioner wraps a present-or-absent child value into the Optional node's
// result type.
type Optioner[T, R any] interface {
	Some(v T) R
	None() R
}

type anyOptioner interface {
	some(v any) any
	none() any
}

type optionerAdapter[T, R any] struct{ o Optioner[T, R] }

func (a optionerAdapter[T, R]) some(v any) any { return a.o.Some(v.(T)) }
func (a optionerAdapter[T, R]) none() any      { return a.o.None() }

// Option is a simple present-or-absent container.
type Option[T any] struct {
	Value T
	Ok    bool
}

// OptionWrapper implements Optioner[T, Option[T]].
type OptionWrapper[T any] struct{}

func (OptionWrapper[T]) Some(v T) Option[T] { return Option[T]{Value: v, Ok: true} }
func (OptionWrapper[T]) None() Option[T]    { return Option[T]{} }
