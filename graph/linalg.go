package graph

// MatMul multiplies the innermost matrices of x [..., M, K] and y [..., K, N],
// broadcasting the batch axes.
func (g *Graph) MatMul(x, y *Tensor) *Tensor {
	return g.op("matmul", "matrixMultiplicationWithPrimaryTensor:secondaryTensor:name:", x, y)
}

// MatMulTranspose is MatMul with either operand's innermost matrix
// transposed first.
func (g *Graph) MatMulTranspose(x, y *Tensor, transposeX, transposeY bool) *Tensor {
	if x == nil || y == nil {
		return nil
	}
	if transposeX {
		x = g.SwapAxes(x, x.Shape().Rank()-2, x.Shape().Rank()-1)
	}
	if transposeY {
		y = g.SwapAxes(y, y.Shape().Rank()-2, y.Shape().Rank()-1)
	}
	return g.MatMul(x, y)
}

// InnerProduct contracts the last axis of x with the last axis of y.
func (g *Graph) InnerProduct(x, y *Tensor) *Tensor {
	return g.Sum(g.Mul(x, y), -1)
}

// OuterProduct of two vectors: out[i, j] = x[i] * y[j].
func (g *Graph) OuterProduct(x, y *Tensor) *Tensor {
	return g.Mul(g.ExpandDims(x, -1), g.ExpandDims(y, 0))
}

// MatrixInverse inverts the innermost square matrices of x.
func (g *Graph) MatrixInverse(x *Tensor) *Tensor {
	return g.op("inverse", "inverseOfTensor:name:", x)
}

// Attention computes softmax(scale * q @ k^T) @ v.
func (g *Graph) Attention(query, key, value *Tensor, scale float64) *Tensor {
	return g.op("attention", "scaledDotProductAttentionWithQueryTensor:keyTensor:valueTensor:scale:name:",
		query, key, value, scale)
}

// AttentionMasked is Attention with mask added to the scores before the
// softmax.
func (g *Graph) AttentionMasked(query, key, value, mask *Tensor, scale float64) *Tensor {
	return g.op("attention", "scaledDotProductAttentionWithQueryTensor:keyTensor:valueTensor:maskTensor:scale:name:",
		query, key, value, mask, scale)
}
