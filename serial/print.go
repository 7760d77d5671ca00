package serial

import (
	"fmt"

	"clarity_kernel/tensor"
)

// PrintVector emits a labeled vector as two lines:
//
//	<name>:
//	[ v0 v1 ... ]
//
// Each element is truncated toward zero to an integer before display; the
// output device has no real-number formatting.
func PrintVector(c Console, v tensor.Vector, name string) {
	c.Println(name + ":")
	c.Print("[ ")
	for i := 0; i < v.Len(); i++ {
		c.Print(fmt.Sprintf("%d ", int64(v.At(i))))
	}
	c.Println("]")
}
