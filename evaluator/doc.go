// Package evaluator drives the expression pipeline: index substitution,
// lexing, postfix conversion and stack evaluation against the variable
// environment.
package evaluator

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'apl360.eval'.
func tracer() tracing.Trace {
	return tracing.Select("apl360.eval")
}
