/*
Package turingtoy is a deterministic Turing machine simulator: it loads
a declarative machine description (blank symbol, start state, final
states and a transition table), validates it, and executes it on a
one-dimensional tape that grows lazily in both directions.

# Concept

A machine description is data, not code. The loader turns it into an
immutable Program up front; malformed descriptions fail with typed
validation errors before a single step runs. The engine then interprets
the program over an input string and reports a complete outcome: the
final tape contents (outer blanks stripped), a per-step execution
trace, and whether the machine halted in an accepting state.

# Usage

	package main

	import (
		"fmt"
		"log"
		"os"

		"github.com/aretw0/turingtoy"
		"github.com/aretw0/turingtoy/pkg/machine"
	)

	func main() {
		desc, err := os.ReadFile("increment.yaml")
		if err != nil {
			log.Fatal(err)
		}

		result, err := turingtoy.Run(desc, "1011", machine.StepLimit(1000))
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(result.Output)   // "1100"
		fmt.Println(result.Accepted) // true
	}

Programs are immutable and safe to share across concurrent runs; the
tape and trace of a run are exclusively its own.

# Halting

A run halts for exactly one of three distinguishable reasons, reported
in Result.Halt: the machine reached a final state (accepted), no
transition existed for the current state and symbol (stuck), or the
step budget ran out (budget-exhausted). The budget is explicit:
machine.NoLimit opts into unbounded execution.
*/
package turingtoy
