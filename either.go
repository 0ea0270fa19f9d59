package parsercombinator

import "strings"

// eitherParser tries its alternatives left to right, first success wins.
// An alternative failing with cut=true aborts the whole choice immediately.
type eitherParser struct {
	alts []Parser
}

// Either tries parsers in order. The first success is returned. An
// alternative that fails with cut=true aborts the whole choice (no further
// alternatives tried). If all alternatives fail without cut, Either fails
// at the original index with its own parser reference. Nested Eithers are
// flattened into a single alternative list at construction time.
func Either(parsers ...Parser) Parser {
	var flat []Parser
	for _, p := range parsers {
		if e, ok := p.(*eitherParser); ok {
			flat = append(flat, e.alts...)
		} else {
			flat = append(flat, p)
		}
	}
	return &eitherParser{alts: flat}
}

func (e *eitherParser) ParseRec(ctx *ParseContext, index int) Result {
	for _, p := range e.alts {
		res := p.ParseRec(ctx, index)
		switch r := res.(type) {
		case *Success:
			return r
		case *Failure:
			if r.Cut {
				return r
			}
		}
	}
	return ctx.fail(index, e, false)
}

func (e *eitherParser) MapChildren(w Walker) Parser {
	alts := make([]Parser, len(e.alts))
	for i, a := range e.alts {
		alts[i] = w(a)
	}
	return &eitherParser{alts: alts}
}

func (e *eitherParser) String() string {
	parts := make([]string, len(e.alts))
	for i, a := range e.alts {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, " | ") + ")"
}
