package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/turingtoy/pkg/machine"
)

// WriteTrace prints a run's trace as an aligned table, one executed
// step per line, with the head position marked inside the tape
// snapshot. Colors are only applied when the output profile supports
// them (termenv degrades to plain text on pipes).
func WriteTrace(w io.Writer, result *machine.Result) {
	p := termenv.ColorProfile()

	plain := func(s string) string { return s }
	dim, state, head := plain, plain, plain
	if p != termenv.Ascii {
		dim = func(s string) string { return termenv.String(s).Faint().String() }
		state = func(s string) string {
			return termenv.String(s).Foreground(p.Color("#818cf8")).String()
		}
		head = func(s string) string {
			return termenv.String(s).Foreground(p.Color("#f472b6")).Bold().String()
		}
	}

	for i, e := range result.Trace {
		fmt.Fprintf(w, "%s %s %s %s\n",
			dim(fmt.Sprintf("%4d", i)),
			state(fmt.Sprintf("%-12s", string(e.State))),
			markHead(e.Tape, e.Position, head),
			dim(e.Instruction.String()),
		)
	}

	fmt.Fprintf(w, "\n%s %s (%d steps)\n",
		dim("halt:"),
		verdict(result, p),
		result.Steps,
	)
}

// markHead brackets the cell under the head: "11[+]1 ".
func markHead(tape string, pos int, highlight func(string) string) string {
	runes := []rune(tape)
	if pos < 0 || pos >= len(runes) {
		return tape
	}
	var b strings.Builder
	b.WriteString(string(runes[:pos]))
	b.WriteString(highlight("[" + string(runes[pos]) + "]"))
	b.WriteString(string(runes[pos+1:]))
	return b.String()
}

func verdict(result *machine.Result, p termenv.Profile) string {
	switch result.Halt {
	case machine.HaltAccepted:
		return termenv.String(string(result.Halt)).Foreground(p.Color("#34d399")).String()
	case machine.HaltStuck:
		return termenv.String(string(result.Halt)).Foreground(p.Color("#fbbf24")).String()
	default:
		return termenv.String(string(result.Halt)).Foreground(p.Color("#fb7185")).String()
	}
}
