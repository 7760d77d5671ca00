// Package boot models the platform handoff: the descriptor passed by the
// loader, the single top-level fault boundary, and the terminal halt.
package boot

import (
	"fmt"
	"time"

	"clarity_kernel/serial"
)

// MemoryRegion describes one physical memory range from the loader's map.
type MemoryRegion struct {
	Start  uint64
	Size   uint64
	Usable bool
}

// Info is the environment descriptor received at handoff. The inference
// pipeline carries it as an opaque token and never reads it.
type Info struct {
	MemoryRegions []MemoryRegion
}

// HaltFunc parks the processor. It is a package variable so hosted tests
// and tooling can observe the terminal state without parking themselves;
// the kernel image never replaces it. Single-threaded access only.
var HaltFunc = park

// park idles forever. It sleeps rather than blocking on an empty select:
// when the last goroutine blocks on a select with no cases the runtime
// reports a fatal deadlock, which would be observable work after the halt.
func park() {
	for {
		time.Sleep(time.Hour)
	}
}

// Halt enters the permanent idle state. It never returns on a real image.
func Halt() {
	HaltFunc()
}

// Run transfers control to entry under the single top-level fault
// boundary. If an invariant violation escapes, the boundary formats
// exactly one diagnostic line to the console and halts permanently.
// There is no retry and no supervision; nothing runs after the handler.
func Run(info *Info, console serial.Console, entry func(*Info)) {
	defer func() {
		if r := recover(); r != nil {
			console.Println(fmt.Sprintf("[PANIC] %v", r))
			Halt()
		}
	}()
	entry(info)
}
