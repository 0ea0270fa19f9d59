package parsercombinator

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestThenTupleCombinesBothValues(t *testing.T) {
	p := ThenTuple[string, string](Literal("foo"), Literal("bar"), false)
	res := ParseString(p, "foobar")
	s := res.(*Success)
	assert.Equal(t, 6, s.Index)
	pair := s.Value.(Pair[string, string])
	assert.Equal(t, "foo", pair.First)
	assert.Equal(t, "bar", pair.Second)
}

func TestThenDiscardRightKeepsLeftValue(t *testing.T) {
	p := ThenDiscardRight[string, string](Literal("foo"), Literal("bar"), false)
	res := ParseString(p, "foobar")
	s := res.(*Success)
	assert.Equal(t, "foo", s.Value)
	assert.Equal(t, 6, s.Index)
}

func TestThenDiscardLeftKeepsRightValue(t *testing.T) {
	p := ThenDiscardLeft[string, string](Literal("foo"), Literal("bar"), false)
	res := ParseString(p, "foobar")
	s := res.(*Success)
	assert.Equal(t, "bar", s.Value)
}

func TestThenPropagatesFirstFailureCut(t *testing.T) {
	p := ThenTuple[string, string](Literal("nope"), Literal("bar"), false)
	res := ParseString(p, "foobar")
	f := res.(*Failure)
	assert.Equal(t, 0, f.Index)
	assert.False(t, f.Cut)
}

func TestThenSecondFailureORsCutFlags(t *testing.T) {
	// "foo" ~! "bar" against "foobaz": first link succeeds, second link
	// (cut=true) fails -> resulting failure must carry cut=true.
	p := Then[string, string, Pair[string, string]](
		Literal("foo"), Literal("bar"), true, TupleSequencer[string, string]{},
	)
	res := ParseString(p, "foobaz")
	f := res.(*Failure)
	assert.Equal(t, 3, f.Index)
	assert.True(t, f.Cut)
}

// Testable property 3 (idempotence of flattening): the chain Then collapses
// into one Flat node and the same three parsers left nested produce
// identical results for every input and start position.
func TestFlatteningIdempotence(t *testing.T) {
	digit := CharsWhile(NewCharPredicate("digit", isDigit), 1)
	plus := Literal("+")

	grouping1 := Then[Pair[string, string], string, Pair[string, string]](
		Then[string, string, Pair[string, string]](digit, plus, false, TupleSequencer[string, string]{}),
		digit, false, dropLeftPairSequencer{},
	)

	fs, ok := grouping1.(*flatSequence)
	assert.True(t, ok)
	assert.Equal(t, 2, len(fs.links))

	// The same chain left nested: a Flat node whose head is the
	// (digit ~ plus) Flat node.
	nested := &flatSequence{
		head: Then[string, string, Pair[string, string]](digit, plus, false, TupleSequencer[string, string]{}),
		links: []chainLink{{
			p:       digit,
			combine: sequencerAdapter[Pair[string, string], string, Pair[string, string]]{dropLeftPairSequencer{}},
		}},
	}

	for _, input := range []string{"1+2", "12+34", "9+9", "x"} {
		r1 := Parse(grouping1, input, 0, false)
		switch r1.(type) {
		case *Success:
			s := r1.(*Success)
			assert.True(t, s.Index > 0)
		case *Failure:
			// Failures are compared against the nested form below.
		}
		for start := 0; start <= len(input); start++ {
			assert.Equal[any](t, Parse(nested, input, start, false), Parse(grouping1, input, start, false))
		}
	}
}

// dropLeftPairSequencer replaces the accumulated pair with ("merged", b),
// b being the freshly parsed value; the tests use it to chain a third
// parser onto a Pair-valued sequence.
type dropLeftPairSequencer struct{}

func (dropLeftPairSequencer) Combine(_ Pair[string, string], b string) Pair[string, string] {
	return Pair[string, string]{First: "merged", Second: b}
}

func TestSequenceHeadFailurePropagatesAsIs(t *testing.T) {
	p := ThenTuple[Char, Char](CharLiteral('a'), CharLiteral('b'), false)
	res := Parse(p, "xy", 0, false)
	f := res.(*Failure)
	assert.Equal(t, 0, f.Index)
}
