// Package apl360 implements the core of a small APL-derived calculator
// language: scalar and vector values, broadcasting primitives, and the
// error model shared by the lexing/parsing/evaluation pipeline.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
package apl360

import (
	"io"
	"os"

	"github.com/knadh/koanf"
)

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// Tracefile is the file we write our log output to, if not nil.
var Tracefile io.WriteCloser

// Exit exits the application. It gracefully shuts down all resources.
func Exit(errcode int) {
	if Tracefile != nil {
		Tracefile.Close()
	}
	os.Exit(errcode)
}
