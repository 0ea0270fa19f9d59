package parsercombinator

import "sync"

// ruleParser is a named, lazily-bound parser node. Its body thunk is
// evaluated once, on first use, which is what makes self- and mutually-
// recursive grammars possible: a grammar author declares a variable,
// builds a Rule whose thunk closes over that variable, and only assigns
// the variable afterwards. The thunk is never invoked during construction.
type ruleParser struct {
	name  string
	thunk func() Parser

	once sync.Once
	body Parser
}

// Rule returns a node named name whose body is produced by thunk on first
// use and memoized thereafter. On failure, when tracing is enabled, it
// prepends a frame (index-at-entry, this rule) to the failure's stack.
func Rule(name string, thunk func() Parser) Parser {
	return &ruleParser{name: name, thunk: thunk}
}

func (r *ruleParser) resolve() Parser {
	r.once.Do(func() { r.body = r.thunk() })
	return r.body
}

func (r *ruleParser) ParseRec(ctx *ParseContext, index int) Result {
	res := r.resolve().ParseRec(ctx, index)
	if f, ok := res.(*Failure); ok && ctx.Trace {
		f.Stack = append([]Frame{{Index: index, Parser: r}}, f.Stack...)
	}
	return res
}

func (r *ruleParser) MapChildren(w Walker) Parser {
	return &ruleParser{name: r.name, thunk: func() Parser { return w(r.resolve()) }}
}

func (r *ruleParser) String() string { return r.name }
