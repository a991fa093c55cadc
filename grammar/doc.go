// Package grammar turns a line of calculator input into tokens and brings
// the tokens into postfix order. The lexer is a hand-written state scanner;
// the interior of array literals is handled by a small lexmachine scanner.
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'apl360.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("apl360.grammar")
}
