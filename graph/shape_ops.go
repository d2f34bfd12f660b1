package graph

// Reshape changes the shape of x, keeping its elements in order. One
// dimension may be Dynamic and is then inferred.
func (g *Graph) Reshape(x *Tensor, shape Shape) *Tensor {
	return g.op("reshape", "reshapeTensor:withShape:name:", x, shape)
}

// ReshapeTensor is Reshape with the shape given as a rank-1 integer tensor.
func (g *Graph) ReshapeTensor(x, shape *Tensor) *Tensor {
	return g.op("reshape", "reshapeTensor:withShapeTensor:name:", x, shape)
}

// Transpose permutes the axes of x: output axis i is input axis perm[i].
func (g *Graph) Transpose(x *Tensor, perm ...int) *Tensor {
	return g.op("transpose", "transposeTensor:permutation:name:", x, perm)
}

// SwapAxes exchanges two axes of x.
func (g *Graph) SwapAxes(x *Tensor, axis1, axis2 int) *Tensor {
	return g.op("transpose", "transposeTensor:dimension:withDimension:name:", x, axis1, axis2)
}

// Broadcast expands x to shape using numpy broadcasting rules.
func (g *Graph) Broadcast(x *Tensor, shape Shape) *Tensor {
	return g.op("broadcast", "broadcastTensor:toShape:name:", x, shape)
}

// BroadcastTensor is Broadcast with the shape given as a tensor.
func (g *Graph) BroadcastTensor(x, shape *Tensor) *Tensor {
	return g.op("broadcast", "broadcastTensor:toShapeTensor:name:", x, shape)
}

// Cast converts x to dtype.
func (g *Graph) Cast(x *Tensor, dtype DataType) *Tensor {
	return g.op("cast", "castTensor:toType:name:", x, dtype)
}

// Concat joins tensors along axis.
func (g *Graph) Concat(axis int, tensors ...*Tensor) *Tensor {
	return g.op("concat", "concatTensors:dimension:name:", tensors, axis)
}

// Stack joins same-shaped tensors along a new axis.
func (g *Graph) Stack(axis int, tensors ...*Tensor) *Tensor {
	return g.op("stack", "stackTensors:axis:name:", tensors, axis)
}

// Split cuts x into n equal parts along axis.
func (g *Graph) Split(x *Tensor, n, axis int) []*Tensor {
	return g.ops("split", "splitTensor:numSplits:axis:name:", x, n, axis)
}

// SplitSizes cuts x into parts of the given sizes along axis.
func (g *Graph) SplitSizes(x *Tensor, sizes []int, axis int) []*Tensor {
	return g.ops("split", "splitTensor:splitSizes:axis:name:", x, sizes, axis)
}

// Slice takes length elements of axis starting at start.
func (g *Graph) Slice(x *Tensor, axis, start, length int) *Tensor {
	return g.op("slice", "sliceTensor:dimension:start:length:name:", x, axis, start, length)
}

// StridedSlice slices every axis with [starts[i], ends[i]) and strides[i].
func (g *Graph) StridedSlice(x *Tensor, starts, ends, strides []int) *Tensor {
	return g.op("strided_slice", "sliceTensor:starts:ends:strides:name:", x, starts, ends, strides)
}

// SliceMasks configures StridedSliceMasked: bit i of StartMask (EndMask)
// ignores starts[i] (ends[i]) and takes the full range, bit i of
// SqueezeMask removes axis i from the result.
type SliceMasks struct {
	StartMask, EndMask, SqueezeMask uint32
}

// StridedSliceMasked is StridedSlice with begin, end and squeeze masks.
func (g *Graph) StridedSliceMasked(x *Tensor, starts, ends, strides []int, masks SliceMasks) *Tensor {
	return g.op("strided_slice", "sliceTensor:starts:ends:strides:startMask:endMask:squeezeMask:name:",
		x, starts, ends, strides, masks.StartMask, masks.EndMask, masks.SqueezeMask)
}

// Squeeze removes axes of size 1; with no axes every such axis is removed.
func (g *Graph) Squeeze(x *Tensor, axes ...int) *Tensor {
	if len(axes) == 0 {
		return g.op("squeeze", "squeezeTensor:name:", x)
	}
	return g.op("squeeze", "squeezeTensor:axes:name:", x, axes)
}

// ExpandDims inserts axes of size 1.
func (g *Graph) ExpandDims(x *Tensor, axes ...int) *Tensor {
	return g.op("expand_dims", "expandDimsOfTensor:axes:name:", x, axes)
}

// Flatten2D reshapes x to 2D, collapsing the axes before axis and from axis
// on.
func (g *Graph) Flatten2D(x *Tensor, axis int) *Tensor {
	return g.op("flatten", "flatten2DTensor:axis:name:", x, axis)
}

// Tile repeats x multiples[i] times along axis i.
func (g *Graph) Tile(x *Tensor, multiples ...int) *Tensor {
	return g.op("tile", "tileTensor:withMultiplier:name:", x, multiples)
}

// Pad adds left[i] and right[i] elements around axis i. constant is used by
// PaddingModeConstant.
func (g *Graph) Pad(x *Tensor, mode PaddingMode, left, right []int, constant float64) *Tensor {
	return g.op("pad", "padTensor:withPaddingMode:leftPadding:rightPadding:constantValue:name:",
		x, mode, left, right, constant)
}

// Reverse flips x along axes; with no axes every axis is flipped.
func (g *Graph) Reverse(x *Tensor, axes ...int) *Tensor {
	if len(axes) == 0 {
		return g.op("reverse", "reverseTensor:name:", x)
	}
	return g.op("reverse", "reverseTensor:axes:name:", x, axes)
}

// ShapeOf returns the shape of x as a rank-1 Int32 tensor.
func (g *Graph) ShapeOf(x *Tensor) *Tensor {
	return g.op("shape_of", "shapeOfTensor:name:", x)
}

// SpaceToDepth moves blockSize x blockSize spatial blocks into the depth
// axis.
func (g *Graph) SpaceToDepth(x *Tensor, widthAxis, heightAxis, depthAxis, blockSize int, pixelShuffle bool) *Tensor {
	return g.op("space_to_depth", "spaceToDepth2DTensor:widthAxis:heightAxis:depthAxis:blockSize:usePixelShuffleOrder:name:",
		x, widthAxis, heightAxis, depthAxis, blockSize, pixelShuffle)
}

// DepthToSpace is the inverse of SpaceToDepth.
func (g *Graph) DepthToSpace(x *Tensor, widthAxis, heightAxis, depthAxis, blockSize int, pixelShuffle bool) *Tensor {
	return g.op("depth_to_space", "depthToSpace2DTensor:widthAxis:heightAxis:depthAxis:blockSize:usePixelShuffleOrder:name:",
		x, widthAxis, heightAxis, depthAxis, blockSize, pixelShuffle)
}

// CoordinateAlongAxis returns a tensor of the given shape holding at every
// position its coordinate along axis (an iota).
func (g *Graph) CoordinateAlongAxis(axis int, shape Shape) *Tensor {
	return g.op("coordinate", "coordinateAlongAxis:withShape:name:", axis, shape)
}

// BandPart keeps numLower sub-diagonals and numUpper super-diagonals of the
// innermost matrices of x and zeroes the rest. Negative counts keep the
// whole triangle.
func (g *Graph) BandPart(x *Tensor, numLower, numUpper int) *Tensor {
	return g.op("band_part", "bandPartWithTensor:numLower:numUpper:name:", x, numLower, numUpper)
}

// BandPartTensor is BandPart with the counts given as scalar tensors.
func (g *Graph) BandPartTensor(x, numLower, numUpper *Tensor) *Tensor {
	return g.op("band_part", "bandPartWithTensor:numLowerTensor:numUpperTensor:name:", x, numLower, numUpper)
}
