package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/turingtoy/pkg/machine"
)

// Report builds a markdown summary of a run, suitable for glamour
// rendering in the CLI or for dropping into an issue verbatim.
func Report(input string, result *machine.Result) string {
	var b strings.Builder

	b.WriteString("# Run report\n\n")
	fmt.Fprintf(&b, "- **Input**: `%s`\n", input)
	fmt.Fprintf(&b, "- **Output**: `%s`\n", result.Output)
	fmt.Fprintf(&b, "- **Accepted**: %t\n", result.Accepted)
	fmt.Fprintf(&b, "- **Halt cause**: %s\n", result.Halt)
	fmt.Fprintf(&b, "- **Steps**: %d\n", result.Steps)

	if len(result.Trace) > 0 {
		b.WriteString("\n## Trace\n\n")
		b.WriteString("| Step | State | Position | Tape | Instruction |\n")
		b.WriteString("|-----:|-------|---------:|------|-------------|\n")
		for i, e := range result.Trace {
			fmt.Fprintf(&b, "| %d | %s | %d | `%s` | %s |\n",
				i, string(e.State), e.Position, e.Tape, e.Instruction)
		}
	}

	return b.String()
}
