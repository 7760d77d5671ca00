// kernel: the freestanding inference image, hosted. Wires the serial port
// to stdout, builds the boot descriptor, and hands control to the driver.
package main

import (
	"flag"
	"os"

	"clarity_kernel/boot"
	"clarity_kernel/kernel"
	"clarity_kernel/serial"
)

var flagOnce = flag.Bool("once", false, "exit once the pipeline completes instead of idling forever")

func main() {
	flag.Parse()

	if *flagOnce {
		// Hosted convenience for scripts and CI: the halted state becomes a
		// clean exit. No further observable work occurs either way.
		boot.HaltFunc = func() { os.Exit(0) }
	}

	console := serial.NewPort(os.Stdout)

	// Synthetic memory map standing in for the loader's handoff
	// descriptor. The pipeline never reads it.
	info := &boot.Info{
		MemoryRegions: []boot.MemoryRegion{
			{Start: 0x0000_0000, Size: 0x0009_fc00, Usable: true},
			{Start: 0x0009_fc00, Size: 0x0000_0400, Usable: false},
			{Start: 0x0010_0000, Size: 0x07ee_0000, Usable: true},
		},
	}

	boot.Run(info, console, func(i *boot.Info) {
		kernel.Main(i, console)
	})
}
