package parsercombinator

import "fmt"

type unit struct{}

// passParser always succeeds consuming nothing.
type passParser struct{}

// Pass succeeds at index consuming nothing.
func Pass() Parser { return passParser{} }

func (passParser) ParseRec(ctx *ParseContext, index int) Result {
	return ctx.succeed(unit{}, index, false)
}
func (passParser) MapChildren(Walker) Parser { return passParser{} }
func (passParser) String() string            { return "Pass" }

// failParser always fails, cut=false.
type failParser struct{}

// Fail fails at index, cut=false.
func Fail() Parser { return failParser{} }

func (p failParser) ParseRec(ctx *ParseContext, index int) Result {
	return ctx.fail(index, p, false)
}
func (failParser) MapChildren(Walker) Parser { return failParser{} }
func (failParser) String() string            { return "Fail" }

// anyCharParser consumes exactly one code unit, failing at end of input.
type anyCharParser struct{}

// AnyChar fails if index >= len(input), else succeeds consuming one char.
func AnyChar() Parser { return anyCharParser{} }

func (p anyCharParser) ParseRec(ctx *ParseContext, index int) Result {
	if index >= len(ctx.Input) {
		return ctx.fail(index, p, false)
	}
	return ctx.succeed(ctx.Input[index], index+1, false)
}
func (anyCharParser) MapChildren(Walker) Parser { return anyCharParser{} }
func (anyCharParser) String() string            { return "AnyChar" }

// startParser succeeds only at index 0, zero consumption.
type startParser struct{}

// Start succeeds iff index == 0.
func Start() Parser { return startParser{} }

func (p startParser) ParseRec(ctx *ParseContext, index int) Result {
	if index != 0 {
		return ctx.fail(index, p, false)
	}
	return ctx.succeed(unit{}, index, false)
}
func (startParser) MapChildren(Walker) Parser { return startParser{} }
func (startParser) String() string            { return "Start" }

// endParser succeeds only at end of input, zero consumption.
type endParser struct{}

// End succeeds iff index == len(input).
func End() Parser { return endParser{} }

func (p endParser) ParseRec(ctx *ParseContext, index int) Result {
	if index != len(ctx.Input) {
		return ctx.fail(index, p, false)
	}
	return ctx.succeed(unit{}, index, false)
}
func (endParser) MapChildren(Walker) Parser { return endParser{} }
func (endParser) String() string            { return "End" }

// charLiteralParser matches a single specific code unit.
type charLiteralParser struct {
	c Char
}

// CharLiteral succeeds consuming one code unit iff input[index] == c.
func CharLiteral(c Char) Parser { return charLiteralParser{c: c} }

func (p charLiteralParser) ParseRec(ctx *ParseContext, index int) Result {
	if index >= len(ctx.Input) || ctx.Input[index] != p.c {
		return ctx.fail(index, p, false)
	}
	return ctx.succeed(p.c, index+1, false)
}
func (p charLiteralParser) MapChildren(Walker) Parser { return p }
func (p charLiteralParser) String() string            { return fmt.Sprintf("CharLiteral(%s)", literalize(string(p.c))) }

// literalParser matches a fixed string by code-unit equality.
type literalParser struct {
	s []Char
}

// Literal succeeds consuming len(s) code units iff input[index:index+len(s)] == s.
func Literal(s string) Parser { return literalParser{s: []Char(s)} }

func (p literalParser) ParseRec(ctx *ParseContext, index int) Result {
	end := index + len(p.s)
	if end > len(ctx.Input) {
		return ctx.fail(index, p, false)
	}
	for i, c := range p.s {
		if ctx.Input[index+i] != c {
			return ctx.fail(index, p, false)
		}
	}
	return ctx.succeed(string(p.s), end, false)
}
func (p literalParser) MapChildren(Walker) Parser { return p }
func (p literalParser) String() string            { return fmt.Sprintf("Literal(%s)", literalize(string(p.s))) }
