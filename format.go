package parsercombinator

import (
	"fmt"
	"strconv"
	"strings"
)

// literalize escapes s into a printable, double-quoted form using
// conventional Go-ish escapes.
func literalize(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			if strconv.IsPrint(r) {
				b.WriteRune(r)
			} else {
				fmt.Fprintf(&b, `\u%04x`, r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

func failureFrames(f *Failure) []Frame {
	frames := make([]Frame, 0, len(f.Stack)+1)
	frames = append(frames, f.Stack...)
	frames = append(frames, Frame{Index: f.Index, Parser: f.Parser})
	return frames
}

func snippet(input []Char, from int, n int) string {
	end := from + n
	if end > len(input) {
		end = len(input)
	}
	if from > end {
		from = end
	}
	return string(input[from:end])
}

// RenderTrace renders a failure's narrative stack as
// "p1:i1 / p2:i2 / ... ...'trailing input'".
func RenderTrace(f *Failure) string {
	frames := failureFrames(f)
	parts := make([]string, len(frames))
	for i, fr := range frames {
		parts[i] = fmt.Sprintf("%s:%d", fr.Parser, fr.Index)
	}
	return strings.Join(parts, " / ") + " ..." + literalize(snippet(f.Input, f.Index, 10))
}

// RenderVerboseTrace renders one line per frame:
// "index\t...snippet\tparser".
func RenderVerboseTrace(f *Failure) string {
	frames := failureFrames(f)
	lines := make([]string, len(frames))
	for i, fr := range frames {
		lines[i] = fmt.Sprintf("%d\t...%s\t%s", fr.Index, literalize(snippet(f.Input, fr.Index, 5)), fr.Parser)
	}
	return strings.Join(lines, "\n")
}
