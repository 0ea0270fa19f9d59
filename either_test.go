package parsercombinator

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

// Testable property 4: ordered-choice priority.
func TestEitherPriorityFirstSuccessWins(t *testing.T) {
	p := Either(Literal("a"), Literal("ab"))
	res := ParseString(p, "ab")
	s := res.(*Success)
	assert.Equal(t, "a", s.Value)
	assert.Equal(t, 1, s.Index)
}

// Testable property 5 & boundary scenario 2: a cut failure on the left arm
// aborts the whole choice.
func TestEitherCutAbortsChoice(t *testing.T) {
	p := Either(
		Then[string, string, Pair[string, string]](
			Literal("foo"), Literal("bar"), true, TupleSequencer[string, string]{},
		),
		Literal("baz"),
	)
	res := ParseString(p, "foobaX")
	f := res.(*Failure)
	assert.Equal(t, 3, f.Index)
	assert.True(t, f.Cut)
}

// Boundary scenario 3: without cut, Either backtracks to the next alternative.
func TestEitherBacktracksWithoutCut(t *testing.T) {
	p := Either(
		ThenTuple[string, string](Literal("foo"), Literal("bar"), false),
		Literal("baz"),
	)
	res := ParseString(p, "baz")
	s := res.(*Success)
	assert.Equal(t, 3, s.Index)
	assert.Equal(t, "baz", s.Value)
}

func TestEitherAllFailWithoutCut(t *testing.T) {
	p := Either(Literal("foo"), Literal("bar"))
	res := ParseString(p, "qux")
	f := res.(*Failure)
	assert.Equal(t, 0, f.Index)
	assert.False(t, f.Cut)
}

func TestEitherFlattensNestedChoices(t *testing.T) {
	inner := Either(Literal("a"), Literal("b"))
	outer := Either(inner, Literal("c"))
	e := outer.(*eitherParser)
	assert.Equal(t, 3, len(e.alts))
}
