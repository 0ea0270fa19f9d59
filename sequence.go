package parsercombinator

import "strings"

// chainLink is one type-erased step of a flattened sequence: run p, then
// combine the accumulated value with p's value via combine. cut marks
// whether crossing this link commits the enclosing choice/repeat.
type chainLink struct {
	p       Parser
	cut     bool
	combine anySequencer
}

// flatSequence is the flattened representation of a left-spine of Sequence
// nodes: a head parser plus an ordered vector of chain links, executed
// iteratively instead of through nested recursive calls.
type flatSequence struct {
	head  Parser
	links []chainLink
}

// Then builds a Sequence(p1, p2, cut, s) node per spec.md §4.4. If p1 is
// itself a flattened sequence, the new link is appended to its chain
// in-place of nesting a new node (construction-time flattening).
func Then[A, B, R any](p1, p2 Parser, cut bool, s Sequencer[A, B, R]) Parser {
	link := chainLink{p: p2, cut: cut, combine: sequencerAdapter[A, B, R]{s}}
	if fs, ok := p1.(*flatSequence); ok {
		links := make([]chainLink, len(fs.links)+1)
		copy(links, fs.links)
		links[len(fs.links)] = link
		return &flatSequence{head: fs.head, links: links}
	}
	return &flatSequence{head: p1, links: []chainLink{link}}
}

// ThenTuple is Then with TupleSequencer, keeping both values.
func ThenTuple[A, B any](p1, p2 Parser, cut bool) Parser {
	return Then[A, B, Pair[A, B]](p1, p2, cut, TupleSequencer[A, B]{})
}

// ThenDiscardRight is Then with DropRightSequencer, keeping only p1's value.
func ThenDiscardRight[A, B any](p1, p2 Parser, cut bool) Parser {
	return Then[A, B, A](p1, p2, cut, DropRightSequencer[A, B]{})
}

// ThenDiscardLeft is Then with DropLeftSequencer, keeping only p2's value.
func ThenDiscardLeft[A, B any](p1, p2 Parser, cut bool) Parser {
	return Then[A, B, B](p1, p2, cut, DropLeftSequencer[A, B]{})
}

func (fs *flatSequence) ParseRec(ctx *ParseContext, index int) Result {
	res := fs.head.ParseRec(ctx, index)
	s, ok := res.(*Success)
	if !ok {
		return res
	}
	acc, idx, cutAcc := s.Value, s.Index, s.Cut

	for _, link := range fs.links {
		linkIdx := idx
		r := link.p.ParseRec(ctx, idx)
		switch sr := r.(type) {
		case *Success:
			v, newIdx, cut := sr.Value, sr.Index, sr.Cut
			acc = link.combine.combine(acc, v)
			idx = newIdx
			cutAcc = cutAcc || cut || link.cut
		case *Failure:
			finalCut := link.cut || sr.Cut || cutAcc
			sr.Cut = finalCut
			if finalCut && ctx.Trace {
				sr.Stack = append([]Frame{{Index: linkIdx, Parser: fs}}, sr.Stack...)
			}
			return sr
		}
	}
	return ctx.succeed(acc, idx, cutAcc)
}

func (fs *flatSequence) MapChildren(w Walker) Parser {
	links := make([]chainLink, len(fs.links))
	for i, l := range fs.links {
		links[i] = chainLink{p: w(l.p), cut: l.cut, combine: l.combine}
	}
	return &flatSequence{head: w(fs.head), links: links}
}

func (fs *flatSequence) String() string {
	var b strings.Builder
	b.WriteString(fs.head.String())
	for _, l := range fs.links {
		if l.cut {
			b.WriteString(" ~! ")
		} else {
			b.WriteString(" ~ ")
		}
		b.WriteString(l.p.String())
	}
	return b.String()
}
