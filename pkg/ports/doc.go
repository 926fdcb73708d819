/*
Package ports defines the driven ports (interfaces) for the turingtoy
adapters.

The simulator core needs no ports of its own: it is a pure function
from (program, input, limit) to a result. The interfaces here decouple
the transport adapters (HTTP, MCP, CLI) from storage backends.
*/
package ports
