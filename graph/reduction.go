package graph

// Reductions keep the reduced axes with size 1.

// Sum adds up the elements along axis.
func (g *Graph) Sum(x *Tensor, axis int) *Tensor {
	return g.op("sum", "reductionSumWithTensor:axis:name:", x, axis)
}

// SumAxes is Sum over several axes.
func (g *Graph) SumAxes(x *Tensor, axes ...int) *Tensor {
	return g.op("sum", "reductionSumWithTensor:axes:name:", x, axes)
}

// Product multiplies the elements along axis.
func (g *Graph) Product(x *Tensor, axis int) *Tensor {
	return g.op("product", "reductionProductWithTensor:axis:name:", x, axis)
}

// ProductAxes is Product over several axes.
func (g *Graph) ProductAxes(x *Tensor, axes ...int) *Tensor {
	return g.op("product", "reductionProductWithTensor:axes:name:", x, axes)
}

// ReduceMax takes the largest element along axis.
func (g *Graph) ReduceMax(x *Tensor, axis int) *Tensor {
	return g.op("reduce_max", "reductionMaximumWithTensor:axis:name:", x, axis)
}

// ReduceMaxAxes is ReduceMax over several axes.
func (g *Graph) ReduceMaxAxes(x *Tensor, axes ...int) *Tensor {
	return g.op("reduce_max", "reductionMaximumWithTensor:axes:name:", x, axes)
}

// ReduceMin takes the smallest element along axis.
func (g *Graph) ReduceMin(x *Tensor, axis int) *Tensor {
	return g.op("reduce_min", "reductionMinimumWithTensor:axis:name:", x, axis)
}

// ReduceMinAxes is ReduceMin over several axes.
func (g *Graph) ReduceMinAxes(x *Tensor, axes ...int) *Tensor {
	return g.op("reduce_min", "reductionMinimumWithTensor:axes:name:", x, axes)
}

// ReduceMaxNaN is ReduceMax returning NaN if any element is NaN along axis.
func (g *Graph) ReduceMaxNaN(x *Tensor, axis int) *Tensor {
	return g.op("reduce_max_nan", "reductionMaximumPropagateNaNWithTensor:axis:name:", x, axis)
}

// ReduceMaxNaNAxes is ReduceMaxNaN over several axes.
func (g *Graph) ReduceMaxNaNAxes(x *Tensor, axes ...int) *Tensor {
	return g.op("reduce_max_nan", "reductionMaximumPropagateNaNWithTensor:axes:name:", x, axes)
}

// ReduceMinNaN is ReduceMin returning NaN if any element is NaN along axis.
func (g *Graph) ReduceMinNaN(x *Tensor, axis int) *Tensor {
	return g.op("reduce_min_nan", "reductionMinimumPropagateNaNWithTensor:axis:name:", x, axis)
}

// ReduceMinNaNAxes is ReduceMinNaN over several axes.
func (g *Graph) ReduceMinNaNAxes(x *Tensor, axes ...int) *Tensor {
	return g.op("reduce_min_nan", "reductionMinimumPropagateNaNWithTensor:axes:name:", x, axes)
}

// ReduceAnd is the logical AND of the elements along axis.
func (g *Graph) ReduceAnd(x *Tensor, axis int) *Tensor {
	return g.op("reduce_and", "reductionAndWithTensor:axis:name:", x, axis)
}

// ReduceAndAxes is ReduceAnd over several axes.
func (g *Graph) ReduceAndAxes(x *Tensor, axes ...int) *Tensor {
	return g.op("reduce_and", "reductionAndWithTensor:axes:name:", x, axes)
}

// ReduceOr is the logical OR of the elements along axis.
func (g *Graph) ReduceOr(x *Tensor, axis int) *Tensor {
	return g.op("reduce_or", "reductionOrWithTensor:axis:name:", x, axis)
}

// ReduceOrAxes is ReduceOr over several axes.
func (g *Graph) ReduceOrAxes(x *Tensor, axes ...int) *Tensor {
	return g.op("reduce_or", "reductionOrWithTensor:axes:name:", x, axes)
}

// ReduceXor is the logical XOR of the elements along axis.
func (g *Graph) ReduceXor(x *Tensor, axis int) *Tensor {
	return g.op("reduce_xor", "reductionXorWithTensor:axis:name:", x, axis)
}

// ReduceXorAxes is ReduceXor over several axes.
func (g *Graph) ReduceXorAxes(x *Tensor, axes ...int) *Tensor {
	return g.op("reduce_xor", "reductionXorWithTensor:axes:name:", x, axes)
}

// ArgMax returns the index of the largest element along axis.
func (g *Graph) ArgMax(x *Tensor, axis int) *Tensor {
	return g.op("argmax", "reductionArgMaximumWithTensor:axis:name:", x, axis)
}

// ArgMin returns the index of the smallest element along axis.
func (g *Graph) ArgMin(x *Tensor, axis int) *Tensor {
	return g.op("argmin", "reductionArgMinimumWithTensor:axis:name:", x, axis)
}

// Mean averages x over axes.
func (g *Graph) Mean(x *Tensor, axes ...int) *Tensor {
	return g.op("mean", "meanOfTensor:axes:name:", x, axes)
}

// Variance computes the population variance of x over axes.
func (g *Graph) Variance(x *Tensor, axes ...int) *Tensor {
	return g.op("variance", "varianceOfTensor:axes:name:", x, axes)
}

// VarianceWithMean is Variance reusing an already computed mean.
func (g *Graph) VarianceWithMean(x, mean *Tensor, axes ...int) *Tensor {
	return g.op("variance", "varianceOfTensor:meanTensor:axes:name:", x, mean, axes)
}

// Cumulative ops scan along one axis. With exclusive the element itself is
// left out of its own result; with reverse the scan runs from the end.

// CumSum computes the running sum of x along axis.
func (g *Graph) CumSum(x *Tensor, axis int, exclusive, reverse bool) *Tensor {
	return g.op("cumsum", "cumulativeSumWithTensor:axis:exclusive:reverse:name:", x, axis, exclusive, reverse)
}

// CumSumAxisTensor is CumSum with the axis given as a scalar tensor.
func (g *Graph) CumSumAxisTensor(x, axis *Tensor, exclusive, reverse bool) *Tensor {
	return g.op("cumsum", "cumulativeSumWithTensor:axisTensor:exclusive:reverse:name:", x, axis, exclusive, reverse)
}

// CumProduct computes the running product of x along axis.
func (g *Graph) CumProduct(x *Tensor, axis int, exclusive, reverse bool) *Tensor {
	return g.op("cumprod", "cumulativeProductWithTensor:axis:exclusive:reverse:name:", x, axis, exclusive, reverse)
}

// CumProductAxisTensor is CumProduct with the axis given as a scalar tensor.
func (g *Graph) CumProductAxisTensor(x, axis *Tensor, exclusive, reverse bool) *Tensor {
	return g.op("cumprod", "cumulativeProductWithTensor:axisTensor:exclusive:reverse:name:", x, axis, exclusive, reverse)
}

// CumMin computes the running minimum of x along axis.
func (g *Graph) CumMin(x *Tensor, axis int, exclusive, reverse bool) *Tensor {
	return g.op("cummin", "cumulativeMinimumWithTensor:axis:exclusive:reverse:name:", x, axis, exclusive, reverse)
}

// CumMinAxisTensor is CumMin with the axis given as a scalar tensor.
func (g *Graph) CumMinAxisTensor(x, axis *Tensor, exclusive, reverse bool) *Tensor {
	return g.op("cummin", "cumulativeMinimumWithTensor:axisTensor:exclusive:reverse:name:", x, axis, exclusive, reverse)
}

// CumMax computes the running maximum of x along axis.
func (g *Graph) CumMax(x *Tensor, axis int, exclusive, reverse bool) *Tensor {
	return g.op("cummax", "cumulativeMaximumWithTensor:axis:exclusive:reverse:name:", x, axis, exclusive, reverse)
}

// CumMaxAxisTensor is CumMax with the axis given as a scalar tensor.
func (g *Graph) CumMaxAxisTensor(x, axis *Tensor, exclusive, reverse bool) *Tensor {
	return g.op("cummax", "cumulativeMaximumWithTensor:axisTensor:exclusive:reverse:name:", x, axis, exclusive, reverse)
}
