package graph

// Sort sorts x along axis.
func (g *Graph) Sort(x *Tensor, axis int, descending bool) *Tensor {
	return g.op("sort", "sortWithTensor:axis:descending:name:", x, axis, descending)
}

// SortAxisTensor is Sort with the axis given as a scalar tensor.
func (g *Graph) SortAxisTensor(x, axis *Tensor, descending bool) *Tensor {
	return g.op("sort", "sortWithTensor:axisTensor:descending:name:", x, axis, descending)
}

// ArgSort returns the Int32 indices that sort x along axis.
func (g *Graph) ArgSort(x *Tensor, axis int, descending bool) *Tensor {
	return g.op("argsort", "argSortWithTensor:axis:descending:name:", x, axis, descending)
}

// ArgSortAxisTensor is ArgSort with the axis given as a scalar tensor.
func (g *Graph) ArgSortAxisTensor(x, axis *Tensor, descending bool) *Tensor {
	return g.op("argsort", "argSortWithTensor:axisTensor:descending:name:", x, axis, descending)
}

// TopK returns the k largest values of the last axis and their indices.
func (g *Graph) TopK(x *Tensor, k int) (values, indices *Tensor) {
	return pair(g.ops("topk", "topKWithSourceTensor:k:name:", x, k))
}

// TopKAxis is TopK along axis.
func (g *Graph) TopKAxis(x *Tensor, axis, k int) (values, indices *Tensor) {
	return pair(g.ops("topk", "topKWithSourceTensor:axis:k:name:", x, axis, k))
}

// TopKTensor is TopK with k given as a scalar tensor.
func (g *Graph) TopKTensor(x, k *Tensor) (values, indices *Tensor) {
	return pair(g.ops("topk", "topKWithSourceTensor:kTensor:name:", x, k))
}

// BottomKAxis returns the k smallest values along axis and their indices.
func (g *Graph) BottomKAxis(x *Tensor, axis, k int) (values, indices *Tensor) {
	return pair(g.ops("bottomk", "bottomKWithSourceTensor:axis:k:name:", x, axis, k))
}

// TopKGradient scatters gradient (of TopK's values) back to source's shape.
func (g *Graph) TopKGradient(gradient, source *Tensor, k int) *Tensor {
	return g.op("topk_grad", "topKWithGradientTensor:source:k:name:", gradient, source, k)
}

// TopKAxisGradient is TopKGradient for TopKAxis.
func (g *Graph) TopKAxisGradient(gradient, source *Tensor, axis, k int) *Tensor {
	return g.op("topk_grad", "topKWithGradientTensor:source:axis:k:name:", gradient, source, axis, k)
}

// BottomKAxisGradient scatters gradient of BottomKAxis's values back to
// source's shape.
func (g *Graph) BottomKAxisGradient(gradient, source *Tensor, axis, k int) *Tensor {
	return g.op("bottomk_grad", "bottomKWithGradientTensor:source:axis:k:name:", gradient, source, axis, k)
}

// Gather takes slices of x along axis at indices. The first batchDims axes
// of x and indices are batch axes.
func (g *Graph) Gather(x, indices *Tensor, axis, batchDims int) *Tensor {
	return g.op("gather", "gatherWithUpdatesTensor:indicesTensor:axis:batchDimensions:name:", x, indices, axis, batchDims)
}

// GatherND gathers slices of x addressed by the last axis of indices.
func (g *Graph) GatherND(x, indices *Tensor, batchDims int) *Tensor {
	return g.op("gather_nd", "gatherNDWithUpdatesTensor:indicesTensor:batchDimensions:name:", x, indices, batchDims)
}

// GatherAlongAxis picks x[..., indices[...], ...] along axis; indices has
// the rank of x.
func (g *Graph) GatherAlongAxis(axis int, x, indices *Tensor) *Tensor {
	return g.op("gather_along_axis", "gatherAlongAxis:withUpdatesTensor:indicesTensor:name:", axis, x, indices)
}

// GatherAlongAxisTensor is GatherAlongAxis with the axis given as a tensor.
func (g *Graph) GatherAlongAxisTensor(axis, x, indices *Tensor) *Tensor {
	return g.op("gather_along_axis", "gatherAlongAxisTensor:withUpdatesTensor:indicesTensor:name:", axis, x, indices)
}

// Scatter writes updates into a zero tensor of the given shape at indices
// along axis, combining with mode.
func (g *Graph) Scatter(updates, indices *Tensor, shape Shape, axis int, mode ScatterMode) *Tensor {
	return g.op("scatter", "scatterWithUpdatesTensor:indicesTensor:shape:axis:mode:name:", updates, indices, shape, axis, mode)
}

// ScatterInto is Scatter starting from data instead of zeros.
func (g *Graph) ScatterInto(data, updates, indices *Tensor, axis int, mode ScatterMode) *Tensor {
	return g.op("scatter", "scatterWithDataTensor:updatesTensor:indicesTensor:axis:mode:name:", data, updates, indices, axis, mode)
}

// ScatterND is the inverse of GatherND.
func (g *Graph) ScatterND(updates, indices *Tensor, shape Shape, batchDims int, mode ScatterMode) *Tensor {
	return g.op("scatter_nd", "scatterNDWithUpdatesTensor:indicesTensor:shape:batchDimensions:mode:name:", updates, indices, shape, batchDims, mode)
}

// ScatterNDInto is ScatterND writing into a copy of data instead of zeros.
func (g *Graph) ScatterNDInto(data, updates, indices *Tensor, batchDims int, mode ScatterMode) *Tensor {
	return g.op("scatter_nd", "scatterNDWithDataTensor:updatesTensor:indicesTensor:batchDimensions:mode:name:", data, updates, indices, batchDims, mode)
}

// ScatterAlongAxis is the inverse of GatherAlongAxis.
func (g *Graph) ScatterAlongAxis(axis int, updates, indices *Tensor, shape Shape, mode ScatterMode) *Tensor {
	return g.op("scatter_along_axis", "scatterAlongAxis:withUpdatesTensor:indicesTensor:shape:mode:name:", axis, updates, indices, shape, mode)
}

// ScatterAlongAxisInto is ScatterAlongAxis writing into a copy of data.
func (g *Graph) ScatterAlongAxisInto(axis int, data, updates, indices *Tensor, mode ScatterMode) *Tensor {
	return g.op("scatter_along_axis", "scatterAlongAxis:withDataTensor:updatesTensor:indicesTensor:mode:name:", axis, data, updates, indices, mode)
}

// OneHot expands integer indices into one-hot vectors of length depth along
// a new axis.
func (g *Graph) OneHot(indices *Tensor, depth, axis int, dtype DataType, on, off float64) *Tensor {
	return g.op("one_hot", "oneHotWithIndicesTensor:depth:axis:dataType:onValue:offValue:name:", indices, depth, axis, dtype, on, off)
}

// OneHotLast is OneHot along a new innermost axis with on=1 and off=0.
func (g *Graph) OneHotLast(indices *Tensor, depth int, dtype DataType) *Tensor {
	return g.op("one_hot", "oneHotWithIndicesTensor:depth:dataType:name:", indices, depth, dtype)
}

// NonZeroIndices returns the coordinates of the non-zero elements of x as a
// [count, rank] Int32 tensor.
func (g *Graph) NonZeroIndices(x *Tensor) *Tensor {
	return g.op("non_zero", "nonZeroIndicesOfTensor:name:", x)
}

// NMS configures NonMaximumSuppression.
type NMS struct {
	IOUThreshold   float64
	ScoreThreshold float64
	// PerClass suppresses only boxes of the same class.
	PerClass       bool
	CoordinateMode BoxCoordinateMode
}

// NonMaximumSuppression selects boxes [batch, boxes, 4] by descending
// score [batch, boxes, classes], dropping boxes overlapping a selected one.
func (g *Graph) NonMaximumSuppression(boxes, scores *Tensor, cfg NMS) *Tensor {
	return g.op("nms", "nonMaximumSuppressionWithBoxesTensor:scoresTensor:IOUThreshold:scoreThreshold:perClassSuppression:coordinateMode:name:",
		boxes, scores, cfg.IOUThreshold, cfg.ScoreThreshold, cfg.PerClass, cfg.CoordinateMode)
}

// NonMaximumSuppressionClasses is NonMaximumSuppression with one score per
// box and explicit class indices.
func (g *Graph) NonMaximumSuppressionClasses(boxes, scores, classIndices *Tensor, cfg NMS) *Tensor {
	return g.op("nms", "nonMaximumSuppressionWithBoxesTensor:scoresTensor:classIndicesTensor:IOUThreshold:scoreThreshold:perClassSuppression:coordinateMode:name:",
		boxes, scores, classIndices, cfg.IOUThreshold, cfg.ScoreThreshold, cfg.PerClass, cfg.CoordinateMode)
}
