// Package kernel is the inference driver: it runs the built-in two-layer
// network exactly once over literal data and then parks the processor.
package kernel

import (
	"clarity_kernel/alloc"
	"clarity_kernel/boot"
	"clarity_kernel/nn"
	"clarity_kernel/serial"
	"clarity_kernel/tensor"
)

// allocator is the process allocation capability slot, the hosted
// stand-in for a global-allocator binding. Main installs the guard here;
// the pipeline itself never calls it.
var allocator alloc.Allocator

// Allocator returns the installed allocation capability. It is the one
// seam through which any dynamic-memory request would have to go, and the
// guard behind it halts on first use.
func Allocator() alloc.Allocator { return allocator }

// BuiltinLayers returns the two dense layers of the built-in model,
// constructed from literal weights fixed at build time.
func BuiltinLayers() (nn.DenseLayer, nn.DenseLayer) {
	layer1 := nn.NewDense(
		tensor.NewMatrix(
			tensor.NewVector(0.1, 0.2),
			tensor.NewVector(0.3, 0.4),
			tensor.NewVector(0.5, 0.6),
		),
		tensor.NewVector(0.1, 0.2, 0.3),
	)
	layer2 := nn.NewDense(
		tensor.NewMatrix(tensor.NewVector(0.7, 0.8, 0.9)),
		tensor.NewVector(0.4),
	)
	return layer1, layer2
}

// BuiltinInput returns the literal sample input.
func BuiltinInput() tensor.Vector {
	return tensor.NewVector(1.0, 2.0)
}

// Main runs the full observable behavior of the system, once: bind the
// allocation guard, forward the input through both layers with a ReLU in
// between, print every stage, then idle forever. There is no caller to
// return to above the boot handoff.
func Main(_ *boot.Info, console serial.Console) {
	allocator = alloc.NewGuard(console.Println, boot.Halt)

	console.Println("Hello from ClarityOS Kernel!")

	layer1, layer2 := BuiltinLayers()
	input := BuiltinInput()
	serial.PrintVector(console, input, "Input")

	out1 := layer1.Forward(input)
	serial.PrintVector(console, out1, "Layer 1 Output (before ReLU)")
	nn.ReLU(&out1)
	serial.PrintVector(console, out1, "Layer 1 Output (after ReLU)")

	final := layer2.Forward(out1)
	serial.PrintVector(console, final, "Final Output")

	console.Println("LLM test complete.")

	boot.Halt()
}
