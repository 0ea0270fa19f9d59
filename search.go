package parsercombinator

import "iter"

// Find scans increasing start positions in input, starting from from,
// until parser matches. It reports the matched Success, the index it
// started at, and whether a match was found at all.
func Find(p Parser, input string, from int) (match *Success, start int, found bool) {
	runes := []Char(input)
	ctx := newParseContext(runes, false)
	for i := from; i <= len(runes); i++ {
		res := p.ParseRec(ctx, i)
		if s, ok := res.(*Success); ok {
			return &Success{Value: s.Value, Index: s.Index, Cut: s.Cut}, i, true
		}
	}
	return nil, 0, false
}

// Span is one piece produced by Split: the text before a separator match,
// and the index just past that match (MatchEnd < 0 when this is the
// trailing, separator-less tail).
type Span struct {
	Before    string
	MatchEnd  int
}

// Split repeatedly finds sep in input, returning the text preceding each
// match (and a final trailing span with MatchEnd == -1 for whatever text
// follows the last separator, mirroring the teacher's Split/SplitN shape
// of "pieces between separators, plus a leftover tail"). pos/start/
// match.Index are all code-unit offsets (Find walks []Char, not bytes), so
// slicing is done against []Char(input) and converted back to string only
// at the end, the same discipline sliceString uses for ctx.Input.
func Split(sep Parser, input string) []Span {
	runes := []Char(input)
	var result []Span
	pos := 0
	for pos <= len(runes) {
		match, start, found := Find(sep, input, pos)
		if !found {
			result = append(result, Span{Before: string(runes[pos:]), MatchEnd: -1})
			break
		}
		result = append(result, Span{Before: string(runes[pos:start]), MatchEnd: match.Index})
		if match.Index == start {
			// Zero-width separator: advance by one to guarantee progress.
			pos = start + 1
		} else {
			pos = match.Index
		}
	}
	return result
}

// FindIter yields each non-overlapping (before, matchEnd) pair as sep is
// found repeatedly in input, stopping early if yield returns false.
func FindIter(sep Parser, input string) iter.Seq2[string, int] {
	return func(yield func(before string, matchEnd int) bool) {
		for _, span := range Split(sep, input) {
			if !yield(span.Before, span.MatchEnd) {
				return
			}
		}
	}
}
