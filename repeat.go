package parsercombinator

import "fmt"

// repeatParser repeats its child parser, optionally separated by a
// delimiter, folding each match into a fresh Repeater accumulator.
type repeatParser struct {
	p         Parser
	min       int
	delimiter Parser
	repeater  anyRepeater
}

// Repeat runs p repeatedly, separated by delimiter (Pass if nil, i.e. no
// separator), folding matches via rep. Succeeds once count >= min and
// either the delimiter or the element fails without cut; a cut failure
// anywhere in the loop aborts with cut=true. See spec.md §4.6 for the full
// state machine this implements.
func Repeat[T, R any](p Parser, min int, delimiter Parser, rep Repeater[T, R]) Parser {
	if delimiter == nil {
		delimiter = passSingleton
	}
	return &repeatParser{p: p, min: min, delimiter: delimiter, repeater: repeaterAdapter[T, R]{rep}}
}

// Rep0 repeats p zero or more times with no delimiter, collecting into a slice.
func Rep0[T any](p Parser) Parser {
	return Repeat[T, []T](p, 0, nil, SliceRepeater[T]{})
}

// Rep1 repeats p one or more times with no delimiter, collecting into a slice.
func Rep1[T any](p Parser) Parser {
	return Repeat[T, []T](p, 1, nil, SliceRepeater[T]{})
}

var passSingleton = passParser{}

func (rp *repeatParser) ParseRec(ctx *ParseContext, index int) Result {
	acc := rp.repeater.initial()
	idx := index
	cutAcc := false
	count := 0

	del := Parser(passSingleton)
	for {
		delRes := del.ParseRec(ctx, idx)
		switch dr := delRes.(type) {
		case *Failure:
			if dr.Cut {
				dr.Cut = true
				return dr
			}
			if count >= rp.min {
				return ctx.succeed(rp.repeater.result(acc), idx, cutAcc)
			}
			dr.Cut = cutAcc
			return dr
		case *Success:
			delIdx, delCut := dr.Index, dr.Cut

			pRes := rp.p.ParseRec(ctx, delIdx)
			switch pr := pRes.(type) {
			case *Failure:
				if pr.Cut || delCut {
					pr.Cut = true
					return pr
				}
				if count >= rp.min {
					return ctx.succeed(rp.repeater.result(acc), idx, cutAcc || delCut)
				}
				pr.Cut = cutAcc || delCut
				return pr
			case *Success:
				val, newIdx, sCut := pr.Value, pr.Index, pr.Cut
				rp.repeater.accumulate(acc, val)
				idx = newIdx
				cutAcc = cutAcc || delCut || sCut
				count++
				del = rp.delimiter
			}
		}
	}
}

func (rp *repeatParser) MapChildren(w Walker) Parser {
	return &repeatParser{p: w(rp.p), min: rp.min, delimiter: w(rp.delimiter), repeater: rp.repeater}
}

func (rp *repeatParser) String() string {
	return fmt.Sprintf("Repeat(%s, min=%d, delim=%s)", rp.p, rp.min, rp.delimiter)
}
