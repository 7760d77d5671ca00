package nn

import (
	"testing"

	"clarity_kernel/tensor"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestForwardComputesAffine(t *testing.T) {
	layer := NewDense(
		tensor.NewMatrix(
			tensor.NewVector(0.1, 0.2),
			tensor.NewVector(0.3, 0.4),
			tensor.NewVector(0.5, 0.6),
		),
		tensor.NewVector(0.1, 0.2, 0.3),
	)
	require.Equal(t, 2, layer.InDim())
	require.Equal(t, 3, layer.OutDim())

	y := layer.Forward(tensor.NewVector(1.0, 2.0))
	require.Equal(t, 3, y.Len())
	require.InDelta(t, 0.6, y.At(0), 1e-12)
	require.InDelta(t, 1.3, y.At(1), 1e-12)
	require.InDelta(t, 2.0, y.At(2), 1e-12)
}

func TestForwardMatchesGonum(t *testing.T) {
	weights := tensor.NewMatrix(
		tensor.NewVector(-0.7, 1.3, 0.25),
		tensor.NewVector(2.0, -0.1, 0.9),
	)
	bias := tensor.NewVector(0.05, -1.5)
	input := tensor.NewVector(0.4, -2.2, 1.1)
	layer := NewDense(weights, bias)

	got := layer.Forward(input)

	w := mat.NewDense(2, 3, []float64{-0.7, 1.3, 0.25, 2.0, -0.1, 0.9})
	x := mat.NewVecDense(3, []float64{0.4, -2.2, 1.1})
	want := mat.NewVecDense(2, nil)
	want.MulVec(w, x)
	want.AddVec(want, mat.NewVecDense(2, []float64{0.05, -1.5}))

	for i := 0; i < got.Len(); i++ {
		require.InDelta(t, want.AtVec(i), got.At(i), 1e-12, "index %d", i)
	}
}

func TestNewDenseDimensionMismatch(t *testing.T) {
	weights := tensor.NewMatrix(
		tensor.NewVector(1, 2),
		tensor.NewVector(3, 4),
	)
	require.Panics(t, func() {
		NewDense(weights, tensor.NewVector(1, 2, 3))
	})
}

func TestTwoLayerPipeline(t *testing.T) {
	layer1 := NewDense(
		tensor.NewMatrix(
			tensor.NewVector(0.1, 0.2),
			tensor.NewVector(0.3, 0.4),
			tensor.NewVector(0.5, 0.6),
		),
		tensor.NewVector(0.1, 0.2, 0.3),
	)
	layer2 := NewDense(
		tensor.NewMatrix(tensor.NewVector(0.7, 0.8, 0.9)),
		tensor.NewVector(0.4),
	)

	hidden := layer1.Forward(tensor.NewVector(1.0, 2.0))
	ReLU(&hidden)
	final := layer2.Forward(hidden)

	require.Equal(t, 1, final.Len())
	require.InDelta(t, 3.66, final.At(0), 1e-12)
}
