// Package alloc enforces the kernel's no-dynamic-memory constraint.
//
// The kernel image links exactly one Allocator, the Guard, and the Guard
// refuses every request: the whole point of the fixed-dimension tensor and
// layer types is that nothing on the compute path ever needs it.
package alloc

import "fmt"

// Allocator is the process dynamic-memory capability.
type Allocator interface {
	Alloc(size int) []byte
	Free(buf []byte)
}

// Guard is a non-functional allocator. Any acquire or release writes one
// diagnostic through the injected reporter and moves the process to its
// terminal halted state; control never returns to the caller.
type Guard struct {
	report func(string)
	halt   func()
	halted bool
}

// NewGuard builds the guard with an injected fault reporter and halt.
// The kernel wires these to the serial console and boot.Halt; tests may
// substitute recorders to observe the fault without parking the process.
func NewGuard(report func(string), halt func()) *Guard {
	return &Guard{report: report, halt: halt}
}

// Alloc never allocates. It halts the process.
func (g *Guard) Alloc(size int) []byte {
	g.fault(fmt.Sprintf("alloc: no allocator available (requested %d bytes)", size))
	return nil
}

// Free never frees. It halts the process.
func (g *Guard) Free(_ []byte) {
	g.fault("alloc: no allocator available (release)")
}

// Halted reports whether an allocation attempt has occurred. The guard has
// two states: idle and halted; there is no way back.
func (g *Guard) Halted() bool { return g.halted }

func (g *Guard) fault(msg string) {
	g.halted = true
	g.report(msg)
	g.halt()
	// A real halt parks forever. If a test-injected halt returns, the
	// panic below still guarantees no value ever reaches the caller.
	panic(msg)
}
