package tui

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/aretw0/turingtoy/pkg/machine"
)

func TestMarkHead(t *testing.T) {
	plain := func(s string) string { return s }

	assert.Equal(t, "11[+]1 ", markHead("11+1 ", 2, plain))
	assert.Equal(t, "[1]011", markHead("1011", 0, plain))
	assert.Equal(t, "101[1]", markHead("1011", 3, plain))

	// Out-of-range positions leave the tape untouched.
	assert.Equal(t, "1011", markHead("1011", -1, plain))
	assert.Equal(t, "1011", markHead("1011", 4, plain))
}

func TestMarkHead_MultibyteTape(t *testing.T) {
	plain := func(s string) string { return s }
	assert.Equal(t, "à[ß]à", markHead("àßà", 1, plain))
}

func TestWriteTrace(t *testing.T) {
	result := &machine.Result{
		Output:   "1100",
		Accepted: true,
		Halt:     machine.HaltAccepted,
		Steps:    2,
		Trace: machine.Trace{
			{State: "right", Symbol: "1", Position: 0, Tape: "1011",
				Instruction: machine.Move{Direction: machine.Right}},
			{State: "inc", Symbol: "1", Position: 3, Tape: "1011 ",
				Instruction: machine.Write{Symbol: '0', HasSymbol: true, Direction: machine.Left, Next: "inc"}},
		},
	}

	var buf bytes.Buffer
	WriteTrace(&buf, result)
	out := buf.String()

	// Without a TTY the color profile is Ascii and the output must be
	// free of ANSI escapes, so piped traces stay grep-able.
	if termenv.ColorProfile() == termenv.Ascii {
		assert.NotContains(t, out, "\x1b[")
	}

	assert.Contains(t, out, "right")
	assert.Contains(t, out, "inc")
	assert.Contains(t, out, "[1]011")
	assert.Contains(t, out, "move R")
	assert.Contains(t, out, "accepted")
	assert.Contains(t, out, "(2 steps)")
}

func TestReport(t *testing.T) {
	result := &machine.Result{
		Output:   "100",
		Accepted: true,
		Halt:     machine.HaltAccepted,
		Steps:    19,
	}

	report := Report("11+1", result)

	assert.Contains(t, report, "11+1")
	assert.Contains(t, report, "100")
	assert.Contains(t, report, "accepted")
}
