// modelcheck: host-side verifier for the built-in model. Recomputes the
// forward pass with gonum as an independent oracle, compares every stage,
// and prints the truncated display values the kernel will emit.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"clarity_kernel/kernel"
	"clarity_kernel/nn"
	"clarity_kernel/tensor"
	"clarity_kernel/utils"

	"gonum.org/v1/gonum/mat"
)

var verbose = flag.Bool("verbose", true, "verbose output")

const tolerance = 1e-12

func main() {
	flag.Parse()
	utils.Verbose = *verbose

	layer1, layer2 := kernel.BuiltinLayers()
	input := kernel.BuiltinInput()

	if err := checkPipeline(layer1, layer2, input); err != nil {
		fmt.Fprintf(os.Stderr, "Pipeline check failed: %v\n", err)
		os.Exit(1)
	}
	utils.Logf("Pipeline matches the gonum reference within %g", tolerance)
}

// checkPipeline runs the forward pass twice, once with the fixed-dimension
// types and once with gonum, and compares stage by stage.
func checkPipeline(layer1, layer2 nn.DenseLayer, input tensor.Vector) error {
	pre1 := layer1.Forward(input)
	post1 := layer1.Forward(input)
	nn.ReLU(&post1)
	final := layer2.Forward(post1)

	refPre1 := refForward(layer1, toVecDense(input))
	refPost1 := refReLU(refPre1)
	refFinal := refForward(layer2, refPost1)

	stages := []struct {
		name string
		got  tensor.Vector
		want *mat.VecDense
	}{
		{"Layer 1 Output (before ReLU)", pre1, refPre1},
		{"Layer 1 Output (after ReLU)", post1, refPost1},
		{"Final Output", final, refFinal},
	}
	for _, s := range stages {
		if diff := maxDiff(s.got, s.want); diff > tolerance {
			return fmt.Errorf("%s drifts from reference by %e", s.name, diff)
		}
		utils.Logf("%s: %s (displayed %s)", s.name, fullPrecision(s.got), truncated(s.got))
	}
	return nil
}

func toVecDense(v tensor.Vector) *mat.VecDense {
	data := make([]float64, v.Len())
	for i := range data {
		data[i] = v.At(i)
	}
	return mat.NewVecDense(len(data), data)
}

func toDense(m tensor.Matrix) *mat.Dense {
	data := make([]float64, m.Rows()*m.Cols())
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			data[r*m.Cols()+c] = m.At(r, c)
		}
	}
	return mat.NewDense(m.Rows(), m.Cols(), data)
}

// refForward computes Wx + b with gonum.
func refForward(l nn.DenseLayer, x *mat.VecDense) *mat.VecDense {
	y := mat.NewVecDense(l.OutDim(), nil)
	y.MulVec(toDense(l.Weights()), x)
	y.AddVec(y, toVecDense(l.Bias()))
	return y
}

func refReLU(v *mat.VecDense) *mat.VecDense {
	out := mat.NewVecDense(v.Len(), nil)
	for i := 0; i < v.Len(); i++ {
		out.SetVec(i, math.Max(0, v.AtVec(i)))
	}
	return out
}

func maxDiff(got tensor.Vector, want *mat.VecDense) float64 {
	diff := 0.0
	for i := 0; i < got.Len(); i++ {
		diff = math.Max(diff, math.Abs(got.At(i)-want.AtVec(i)))
	}
	return diff
}

func fullPrecision(v tensor.Vector) string {
	s := "["
	for i := 0; i < v.Len(); i++ {
		s += fmt.Sprintf(" %g", v.At(i))
	}
	return s + " ]"
}

func truncated(v tensor.Vector) string {
	s := "["
	for i := 0; i < v.Len(); i++ {
		s += fmt.Sprintf(" %d", int64(v.At(i)))
	}
	return s + " ]"
}
