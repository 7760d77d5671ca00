package nn

import "clarity_kernel/tensor"

// ReLU clamps every negative element of v to zero, in place. Works for any
// fixed length, allocates nothing, and is idempotent.
func ReLU(v *tensor.Vector) {
	v.Map(func(x float64) float64 {
		if x < 0 {
			return 0
		}
		return x
	})
}
