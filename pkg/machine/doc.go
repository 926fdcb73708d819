/*
Package machine defines the domain model of the Turing machine simulator:
symbols, states, the two-variant instruction set, raw definitions,
validated programs, execution results and the typed validation errors.

The package holds data only. Parsing lives in internal/compiler,
validation in internal/validator and execution in internal/runtime; the
root turingtoy package ties them together.
*/
package machine
