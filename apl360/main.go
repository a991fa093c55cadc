// Command apl360 is an interactive calculator for a small APL-derived
// expression language.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
package main

import (
	"github.com/calcwerk/apl360/apl360/cli"
)

func main() {
	cli.Execute()
}
