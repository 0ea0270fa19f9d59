package parsercombinator

import (
	"fmt"
	"io"
)

// capturingParser replaces its child's value with the substring it consumed.
type capturingParser struct {
	p Parser
}

// Capturing runs p; on success, replaces the value with the substring
// input[index:p.success.index); preserves cut.
func Capturing(p Parser) Parser { return capturingParser{p: p} }

func (c capturingParser) ParseRec(ctx *ParseContext, index int) Result {
	res := c.p.ParseRec(ctx, index)
	s, ok := res.(*Success)
	if !ok {
		return res
	}
	idx, cut := s.Index, s.Cut
	return ctx.succeed(ctx.sliceString(index, idx), idx, cut)
}
func (c capturingParser) MapChildren(w Walker) Parser { return capturingParser{p: w(c.p)} }
func (c capturingParser) String() string              { return fmt.Sprintf("Capturing(%s)", c.p) }

// mapParser transforms a successful child value through a pure function.
type mapParser struct {
	p    Parser
	f    func(any) any
	desc string
}

// Map transforms p's success value via f; failures propagate unchanged.
func Map[A, B any](p Parser, f func(A) B) Parser {
	return mapParser{
		p:    p,
		f:    func(v any) any { return f(v.(A)) },
		desc: fmt.Sprintf("Map(%s)", p),
	}
}

func (m mapParser) ParseRec(ctx *ParseContext, index int) Result {
	res := m.p.ParseRec(ctx, index)
	s, ok := res.(*Success)
	if !ok {
		return res
	}
	value, idx, cut := m.f(s.Value), s.Index, s.Cut
	return ctx.succeed(value, idx, cut)
}
func (m mapParser) MapChildren(w Walker) Parser {
	return mapParser{p: w(m.p), f: m.f, desc: m.desc}
}
func (m mapParser) String() string { return m.desc }

// optionalParser makes its child's failure (without cut) succeed with a
// "none" value instead.
type optionalParser struct {
	p   Parser
	opt anyOptioner
}

// Optional applies p. If p succeeds, wraps its value via opt.Some, keeping
// the new index and cut. If p fails with cut=true, the failure propagates.
// Otherwise succeeds at the original index with opt.None, cut=false.
func Optional[T, R any](p Parser, opt Optioner[T, R]) Parser {
	return optionalParser{p: p, opt: optionerAdapter[T, R]{opt}}
}

func (o optionalParser) ParseRec(ctx *ParseContext, index int) Result {
	res := o.p.ParseRec(ctx, index)
	switch r := res.(type) {
	case *Success:
		value, idx, cut := r.Value, r.Index, r.Cut
		return ctx.succeed(o.opt.some(value), idx, cut)
	case *Failure:
		if r.Cut {
			return r
		}
		return ctx.succeed(o.opt.none(), index, false)
	}
	panic("unreachable")
}
func (o optionalParser) MapChildren(w Walker) Parser { return optionalParser{p: w(o.p), opt: o.opt} }
func (o optionalParser) String() string              { return fmt.Sprintf("Optional(%s)", o.p) }

// lookaheadParser is a zero-width positive assertion.
type lookaheadParser struct {
	p Parser
}

// Lookahead succeeds at the original index (zero consumption, cut=false)
// iff p succeeds; failures propagate unchanged.
func Lookahead(p Parser) Parser { return lookaheadParser{p: p} }

func (l lookaheadParser) ParseRec(ctx *ParseContext, index int) Result {
	res := l.p.ParseRec(ctx, index)
	s, ok := res.(*Success)
	if !ok {
		return res
	}
	return ctx.succeed(s.Value, index, false)
}
func (l lookaheadParser) MapChildren(w Walker) Parser { return lookaheadParser{p: w(l.p)} }
func (l lookaheadParser) String() string              { return fmt.Sprintf("&%s", l.p) }

// notParser is a zero-width negative assertion. It never propagates cut.
type notParser struct {
	p Parser
}

// Not succeeds at the original index (cut=false) iff p fails; fails at
// p's success index (cut=false) iff p succeeds.
func Not(p Parser) Parser { return notParser{p: p} }

func (n notParser) ParseRec(ctx *ParseContext, index int) Result {
	res := n.p.ParseRec(ctx, index)
	if s, ok := res.(*Success); ok {
		idx := s.Index
		return ctx.fail(idx, n, false)
	}
	return ctx.succeed(unit{}, index, false)
}
func (n notParser) MapChildren(w Walker) Parser { return notParser{p: w(n.p)} }
func (n notParser) String() string              { return fmt.Sprintf("!%s", n.p) }

// loggedParser prints enter/exit trace lines around its child, without
// altering parse semantics.
type loggedParser struct {
	p    Parser
	msg  string
	sink io.Writer
}

// Logged prints "indent+msg:index" before recursing into p with logDepth+1,
// then "indent-msg:index:result" after. It never changes the parse result.
func Logged(p Parser, msg string, sink io.Writer) Parser {
	return loggedParser{p: p, msg: msg, sink: sink}
}

func (l loggedParser) ParseRec(ctx *ParseContext, index int) Result {
	indent := indentOf(ctx.logDepth)
	fmt.Fprintf(l.sink, "%s+%s:%d\n", indent, l.msg, index)
	ctx.logDepth++
	res := l.p.ParseRec(ctx, index)
	ctx.logDepth--
	fmt.Fprintf(l.sink, "%s-%s:%d:%s\n", indent, l.msg, index, describeResult(res))
	return res
}
func (l loggedParser) MapChildren(w Walker) Parser {
	return loggedParser{p: w(l.p), msg: l.msg, sink: l.sink}
}
func (l loggedParser) String() string { return fmt.Sprintf("Logged(%s)", l.msg) }

func indentOf(depth int) string {
	b := make([]byte, depth)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func describeResult(res Result) string {
	switch r := res.(type) {
	case *Success:
		return fmt.Sprintf("Success(index=%d,cut=%v)", r.Index, r.Cut)
	case *Failure:
		return fmt.Sprintf("Failure(index=%d,cut=%v)", r.Index, r.Cut)
	}
	return "?"
}
