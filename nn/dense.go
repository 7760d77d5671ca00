package nn

import (
	"fmt"

	"clarity_kernel/tensor"
)

// DenseLayer is a fully-connected layer computing y = Wx + b. Weights are
// OUT×IN, bias has length OUT; both are fixed at construction and never
// mutated. There is no error path on Forward: every dimension rule is
// asserted exactly once, here.
type DenseLayer struct {
	weights tensor.Matrix
	bias    tensor.Vector
}

// NewDense builds a layer from a weight matrix and a bias vector. The
// weight row count must equal the bias length; a violation is fatal at
// construction so Forward can never fail.
func NewDense(weights tensor.Matrix, bias tensor.Vector) DenseLayer {
	if weights.Rows() != bias.Len() {
		panic(fmt.Sprintf("nn: weight rows %d do not match bias length %d", weights.Rows(), bias.Len()))
	}
	return DenseLayer{weights: weights, bias: bias}
}

// Weights returns the weight matrix.
func (l DenseLayer) Weights() tensor.Matrix { return l.weights }

// Bias returns the bias vector.
func (l DenseLayer) Bias() tensor.Vector { return l.bias }

// InDim returns the expected input length.
func (l DenseLayer) InDim() int { return l.weights.Cols() }

// OutDim returns the output length.
func (l DenseLayer) OutDim() int { return l.weights.Rows() }

// Forward computes weights·x + bias. Pure; no side effects.
func (l DenseLayer) Forward(x tensor.Vector) tensor.Vector {
	return l.weights.MulVec(x).Add(l.bias)
}
