// Package serial provides the kernel's text output capability.
//
// All observable results leave the system through a Console. The kernel
// assumes writes are synchronous and always succeed; no buffering, flow
// control, or error return is modeled.
package serial

import (
	"fmt"
	"io"
)

// Console is a byte-oriented text sink with two primitives: a line write
// that appends the terminator, and a token write that does not.
type Console interface {
	Println(line string)
	Print(token string)
}

// Port adapts an io.Writer to the Console capability. On a hosted runtime
// stdout stands in for the serial line. Device errors are discarded; the
// contract has no failure path.
type Port struct {
	w io.Writer
}

// NewPort wraps the given byte device.
func NewPort(w io.Writer) *Port {
	return &Port{w: w}
}

// Println writes the line followed by a terminator.
func (p *Port) Println(line string) {
	fmt.Fprintln(p.w, line)
}

// Print writes the token with no terminator.
func (p *Port) Print(token string) {
	fmt.Fprint(p.w, token)
}
