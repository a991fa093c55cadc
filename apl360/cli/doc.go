// Package cli implements the apl360 command line interface.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'apl360.cli'
func tracer() tracing.Trace {
	return tracing.Select("apl360.cli")
}
