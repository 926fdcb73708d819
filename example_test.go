package turingtoy_test

import (
	"fmt"
	"log"

	"github.com/aretw0/turingtoy"
	"github.com/aretw0/turingtoy/pkg/machine"
)

// Example runs a binary increment machine on "1011".
func Example() {
	description := []byte(`
blank: ' '
start_state: right
final_states: [done]
table:
  right:
    '1': R
    '0': R
    ' ': {L: inc}
  inc:
    '1': {write: '0', L: inc}
    '0': {write: '1', R: done}
    ' ': {write: '1', R: done}
  done: {}
`)

	result, err := turingtoy.Run(description, "1011", machine.NoLimit)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Output)
	fmt.Println(result.Accepted)
	// Output:
	// 1100
	// true
}

// ExampleSimulator_Run loads a program once and reuses it.
func ExampleSimulator_Run() {
	description := []byte(`
blank: ' '
start_state: skip
final_states: [halt]
table:
  skip:
    'a': R
    ' ': {L: halt}
  halt: {}
`)

	sim := turingtoy.New()
	program, err := sim.Load(description)
	if err != nil {
		log.Fatal(err)
	}

	for _, input := range []string{"a", "aaa", "ab"} {
		result, err := sim.Run(program, input, machine.StepLimit(100))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s: %s\n", input, result.Halt)
	}
	// Output:
	// a: accepted
	// aaa: accepted
	// ab: stuck
}
