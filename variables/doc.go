// Package variables implements the session-scoped variable environment.
// Identifiers are case-sensitive; bindings are created and overwritten by
// assignment only and live for the duration of the session.
package variables

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'apl360.vars'.
func tracer() tracing.Trace {
	return tracing.Select("apl360.vars")
}
