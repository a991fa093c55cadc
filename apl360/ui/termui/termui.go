// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
package termui

import (
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'apl360.cli'.
func trace() tracing.Trace {
	return tracing.Select("apl360.cli")
}
