package parsercombinator

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestPassAlwaysSucceedsWithoutConsuming(t *testing.T) {
	res := ParseString(Pass(), "anything")
	s := res.(*Success)
	assert.Equal(t, 0, s.Index)
	assert.False(t, s.Cut)
}

func TestFailAlwaysFails(t *testing.T) {
	res := ParseString(Fail(), "anything")
	f := res.(*Failure)
	assert.Equal(t, 0, f.Index)
	assert.False(t, f.Cut)
}

func TestAnyChar(t *testing.T) {
	res := ParseString(AnyChar(), "a")
	s := res.(*Success)
	assert.Equal(t, 1, s.Index)
	assert.Equal[any](t, Char('a'), s.Value)

	res = ParseString(AnyChar(), "")
	_, ok := res.(*Failure)
	assert.True(t, ok)
}

func TestStartAndEnd(t *testing.T) {
	_, ok := Parse(Start(), "abc", 0, false).(*Success)
	assert.True(t, ok)
	_, ok = Parse(Start(), "abc", 1, false).(*Failure)
	assert.True(t, ok)

	_, ok = Parse(End(), "abc", 3, false).(*Success)
	assert.True(t, ok)
	_, ok = Parse(End(), "abc", 1, false).(*Failure)
	assert.True(t, ok)
}

func TestCharLiteral(t *testing.T) {
	res := ParseString(CharLiteral('x'), "xyz")
	s := res.(*Success)
	assert.Equal(t, 1, s.Index)
	assert.Equal[any](t, Char('x'), s.Value)

	_, ok := ParseString(CharLiteral('x'), "yz").(*Failure)
	assert.True(t, ok)
}

func TestLiteral(t *testing.T) {
	res := ParseString(Literal("foo"), "foobar")
	s := res.(*Success)
	assert.Equal(t, 3, s.Index)
	assert.Equal(t, "foo", s.Value)

	_, ok := ParseString(Literal("foo"), "fo").(*Failure)
	assert.True(t, ok)
	_, ok = ParseString(Literal("foo"), "bar").(*Failure)
	assert.True(t, ok)
}
