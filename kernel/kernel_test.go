package kernel

import (
	"bytes"
	"testing"

	"clarity_kernel/boot"
	"clarity_kernel/serial"

	"github.com/stretchr/testify/require"
)

func TestMainTranscript(t *testing.T) {
	prev := boot.HaltFunc
	halts := 0
	boot.HaltFunc = func() { halts++ }
	t.Cleanup(func() { boot.HaltFunc = prev })

	var buf bytes.Buffer
	Main(&boot.Info{}, serial.NewPort(&buf))

	want := "Hello from ClarityOS Kernel!\n" +
		"Input:\n" +
		"[ 1 2 ]\n" +
		"Layer 1 Output (before ReLU):\n" +
		"[ 0 1 2 ]\n" +
		"Layer 1 Output (after ReLU):\n" +
		"[ 0 1 2 ]\n" +
		"Final Output:\n" +
		"[ 3 ]\n" +
		"LLM test complete.\n"
	require.Equal(t, want, buf.String())
	require.Equal(t, 1, halts, "the driver ends in the halted state")
}

func TestInstalledAllocatorRefuses(t *testing.T) {
	prev := boot.HaltFunc
	boot.HaltFunc = func() {}
	t.Cleanup(func() { boot.HaltFunc = prev })

	var buf bytes.Buffer
	Main(&boot.Info{}, serial.NewPort(&buf))

	g := Allocator()
	require.NotNil(t, g, "the driver installs the allocation capability")

	returned := func() (r bool) {
		defer func() { recover() }()
		g.Alloc(16)
		return true
	}()
	require.False(t, returned, "Alloc returned a value to the caller")
	require.Contains(t, buf.String(), "no allocator available")
}

func TestBuiltinModelDimensions(t *testing.T) {
	layer1, layer2 := BuiltinLayers()
	require.Equal(t, 2, layer1.InDim())
	require.Equal(t, 3, layer1.OutDim())
	require.Equal(t, 3, layer2.InDim())
	require.Equal(t, 1, layer2.OutDim())
	require.Equal(t, 2, BuiltinInput().Len())
}

func TestBuiltinModelValues(t *testing.T) {
	layer1, layer2 := BuiltinLayers()

	hidden := layer1.Forward(BuiltinInput())
	require.InDelta(t, 0.6, hidden.At(0), 1e-12)
	require.InDelta(t, 1.3, hidden.At(1), 1e-12)
	require.InDelta(t, 2.0, hidden.At(2), 1e-12)

	final := layer2.Forward(hidden)
	require.InDelta(t, 3.66, final.At(0), 1e-12)
}
