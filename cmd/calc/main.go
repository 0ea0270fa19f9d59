// Command calc is a small arithmetic evaluator built entirely on top of the
// engine's own public combinators. The grammar mirrors the teacher's
// examples/interpreter demo (factor/term/expr, left-associative * / + -)
// and its examples/lazy_basic self-reference idiom for the recursive
// "expr" rule, reached here through "factor" calling back into "expr" for
// parenthesized sub-expressions.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	pc "github.com/krux02/fastparse"
)

var cli struct {
	Expr    string `arg:"" help:"Arithmetic expression to evaluate, e.g. '2 + 3 * (4 - 1)'."`
	Verbose bool   `short:"v" help:"Log the evaluated value at info level."`
	Trace   bool   `short:"t" help:"On a parse error, print the full verbose trace."`
}

var ws = pc.CharsWhile(pc.CharIn(" \t"), 0)

// lexeme skips leading whitespace, keeping only p's value.
func lexeme[T any](p pc.Parser) pc.Parser {
	return pc.ThenDiscardLeft[string, T](ws, p, false)
}

func number() pc.Parser {
	digit := pc.NewCharPredicate("digit", func(c pc.Char) bool { return c >= '0' && c <= '9' })
	digits := pc.CharsWhile(digit, 1)
	return pc.Map[string, int](digits, func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	})
}

// opOperand is one ("+"|"-"|"*"|"/", operand) step in a left-associative
// binary chain, folded by foldDivParser once the whole chain has parsed.
type opOperand struct {
	Op      string
	Operand int
}

// foldDivParser runs a "operand (op ~ operand)*" chain and folds it left to
// right into a single int. Unlike the rest of the grammar this can't be a
// plain Map: a "/" step by a zero operand has to report failure rather than
// crash, mirroring the teacher's ParseTerm fold
// (examples/interpreter/simple_calculator.go) returning
// fmt.Errorf("division by zero") instead of letting it panic. Map has no
// way to fail, so this wraps the chain in a small hand-rolled Parser that
// can turn a bad fold into a Failure instead.
type foldDivParser struct {
	chain pc.Parser
}

func (f foldDivParser) ParseRec(ctx *pc.ParseContext, index int) pc.Result {
	res := f.chain.ParseRec(ctx, index)
	s, ok := res.(*pc.Success)
	if !ok {
		return res
	}
	pair, idx, cut := s.Value.(pc.Pair[int, []opOperand]), s.Index, s.Cut

	result := pair.First
	for _, step := range pair.Second {
		switch step.Op {
		case "+":
			result += step.Operand
		case "-":
			result -= step.Operand
		case "*":
			result *= step.Operand
		case "/":
			if step.Operand == 0 {
				return &pc.Failure{Input: ctx.Input, Index: index, Parser: f, Cut: true}
			}
			result /= step.Operand
		}
	}
	return &pc.Success{Value: result, Index: idx, Cut: cut}
}

func (f foldDivParser) MapChildren(w pc.Walker) pc.Parser {
	return foldDivParser{chain: w(f.chain)}
}

func (f foldDivParser) String() string { return "division by zero" }

// binaryChain builds "operand (op ~ operand)*", folded left to right. This
// is the engine's realization of the teacher's ParseTerm/ParseExpression
// pc.Trans(pc.Seq(...), fold) shape, generalized from token slices to this
// engine's index-addressed nodes.
func binaryChain(operand pc.Parser, opParser pc.Parser) pc.Parser {
	step := pc.ThenTuple[string, int](lexeme[string](pc.Capturing(opParser)), operand, false)
	asOpOperand := pc.Map[pc.Pair[string, int], opOperand](step, func(p pc.Pair[string, int]) opOperand {
		return opOperand{Op: p.First, Operand: p.Second}
	})
	steps := pc.Repeat[opOperand, []opOperand](asOpOperand, 0, nil, pc.SliceRepeater[opOperand]{})
	chain := pc.ThenTuple[int, []opOperand](operand, steps, false)
	return foldDivParser{chain: chain}
}

// buildGrammar wires factor/term/expr into one recursive grammar, using the
// teacher's "declare var, close over it, assign after" idiom to let factor
// recurse back into expr for parenthesized sub-expressions.
func buildGrammar() pc.Parser {
	var expr pc.Parser

	factor := pc.Rule("factor", func() pc.Parser {
		paren := pc.ThenDiscardRight[int, string](
			pc.ThenDiscardLeft[string, int](lexeme[string](pc.Literal("(")), expr, true),
			lexeme[string](pc.Literal(")")),
			true,
		)
		return pc.Either(lexeme[int](number()), paren)
	})

	term := pc.Rule("term", func() pc.Parser {
		return binaryChain(factor, pc.Either(pc.Literal("*"), pc.Literal("/")))
	})

	expr = pc.Rule("expr", func() pc.Parser {
		return binaryChain(term, pc.Either(pc.Literal("+"), pc.Literal("-")))
	})

	trailingWS := pc.ThenDiscardRight[int, string](expr, ws, false)
	return pc.ThenDiscardRight[int, any](trailingWS, pc.End(), false)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kctx := kong.Parse(&cli,
		kong.Name("calc"),
		kong.Description("Evaluate an arithmetic expression using the fastparse combinator engine."),
	)

	if cli.Trace {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Debug().Str("expr", cli.Expr).Msg("evaluating")

	res := pc.ParseString(buildGrammar(), cli.Expr)
	value, ok := pc.As[int](res)
	if !ok {
		f := res.(*pc.Failure)
		if cli.Trace {
			fmt.Fprintln(os.Stderr, pc.RenderVerboseTrace(f))
		}
		err := errors.WithStack(errors.Errorf("parse error: %s", pc.RenderTrace(f)))
		log.Error().Err(err).Str("expr", cli.Expr).Msg("parse failed")
		kctx.FatalIfErrorf(err)
		return
	}

	if cli.Verbose {
		log.Info().Int("value", value).Str("expr", cli.Expr).Msg("evaluated")
	}
	fmt.Println(value)
}
