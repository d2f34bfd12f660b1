package graph

import "math"

// Relu computes max(x, 0).
func (g *Graph) Relu(x *Tensor) *Tensor {
	return g.op("relu", "reLUWithTensor:name:", x)
}

// ReluGradient back-propagates gradient through Relu(source).
func (g *Graph) ReluGradient(gradient, source *Tensor) *Tensor {
	return g.op("relu_grad", "reLUGradientWithIncomingGradient:sourceTensor:name:", gradient, source)
}

// LeakyRelu computes x for x >= 0 and alpha*x otherwise.
func (g *Graph) LeakyRelu(x *Tensor, alpha float64) *Tensor {
	return g.op("leaky_relu", "leakyReLUWithTensor:alpha:name:", x, alpha)
}

// LeakyReluTensor is LeakyRelu with alpha given as a tensor.
func (g *Graph) LeakyReluTensor(x, alpha *Tensor) *Tensor {
	return g.op("leaky_relu", "leakyReLUWithTensor:alphaTensor:name:", x, alpha)
}

// LeakyReluGradient back-propagates gradient through LeakyReluTensor(source, alpha).
func (g *Graph) LeakyReluGradient(gradient, source, alpha *Tensor) *Tensor {
	return g.op("leaky_relu_grad", "leakyReLUGradientWithIncomingGradient:sourceTensor:alphaTensor:name:", gradient, source, alpha)
}

// Sigmoid computes 1/(1+e^-x).
func (g *Graph) Sigmoid(x *Tensor) *Tensor {
	return g.op("sigmoid", "sigmoidWithTensor:name:", x)
}

// SigmoidGradient back-propagates gradient through Sigmoid(source).
func (g *Graph) SigmoidGradient(gradient, source *Tensor) *Tensor {
	return g.op("sigmoid_grad", "sigmoidGradientWithIncomingGradient:sourceTensor:name:", gradient, source)
}

// Softmax normalizes x along axis.
func (g *Graph) Softmax(x *Tensor, axis int) *Tensor {
	return g.op("softmax", "softMaxWithTensor:axis:name:", x, axis)
}

// SoftmaxGradient back-propagates gradient through Softmax(source, axis).
func (g *Graph) SoftmaxGradient(gradient, source *Tensor, axis int) *Tensor {
	return g.op("softmax_grad", "softMaxGradientWithIncomingGradient:sourceTensor:axis:name:", gradient, source, axis)
}

// The helpers below are compositions of the primitive ops. Scalars take the
// data type of the tensor they are combined with.

// scalarLike returns a scalar constant of x's data type.
func (g *Graph) scalarLike(x *Tensor, v float64) *Tensor {
	if x == nil {
		return nil
	}
	return g.Scalar(v, x.DataType())
}

// AddScalar computes x + v.
func (g *Graph) AddScalar(x *Tensor, v float64) *Tensor {
	return g.Add(x, g.scalarLike(x, v))
}

// SubScalar computes x - v.
func (g *Graph) SubScalar(x *Tensor, v float64) *Tensor {
	return g.Sub(x, g.scalarLike(x, v))
}

// MulScalar computes x * v.
func (g *Graph) MulScalar(x *Tensor, v float64) *Tensor {
	return g.Mul(x, g.scalarLike(x, v))
}

// DivScalar computes x / v.
func (g *Graph) DivScalar(x *Tensor, v float64) *Tensor {
	return g.Div(x, g.scalarLike(x, v))
}

// PowScalar computes x^v. A negative x yields NaN, also for integral v.
func (g *Graph) PowScalar(x *Tensor, v float64) *Tensor {
	return g.Pow(x, g.scalarLike(x, v))
}

// Clip limits x to [lo, hi].
func (g *Graph) Clip(x *Tensor, lo, hi float64) *Tensor {
	return g.Clamp(x, g.scalarLike(x, lo), g.scalarLike(x, hi))
}

// Silu computes x * sigmoid(x).
func (g *Graph) Silu(x *Tensor) *Tensor {
	return g.Mul(x, g.Sigmoid(x))
}

// Gelu uses the tanh approximation
// 0.5 * x * (1 + tanh(sqrt(2/pi) * (x + 0.044715 * x^3))).
// x^3 is computed as square(x) * x, since Pow of a negative base is NaN.
func (g *Graph) Gelu(x *Tensor) *Tensor {
	cube := g.MulScalar(g.Mul(g.Square(x), x), 0.044715)
	inner := g.MulScalar(g.Add(x, cube), math.Sqrt(2/math.Pi))
	return g.Mul(g.MulScalar(x, 0.5), g.AddScalar(g.Tanh(inner), 1))
}
