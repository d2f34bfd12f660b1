package graph

// ResizeOptions are the sampling options shared by the resize ops.
type ResizeOptions struct {
	// CenterResult aligns pixel centers instead of corners.
	CenterResult bool
	AlignCorners bool
	Layout       TensorNamedDataLayout
}

// Resize resamples the spatial axes of x (per opts.Layout) to size
// (height, width).
func (g *Graph) Resize(x *Tensor, size []int, mode ResizeMode, opts ResizeOptions) *Tensor {
	return g.op("resize", "resizeTensor:size:mode:centerResult:alignCorners:layout:name:",
		x, size, mode, opts.CenterResult, opts.AlignCorners, opts.Layout)
}

// ResizeSizeTensor is Resize with the size given as a rank-1 tensor.
func (g *Graph) ResizeSizeTensor(x, size *Tensor, mode ResizeMode, opts ResizeOptions) *Tensor {
	return g.op("resize", "resizeTensor:sizeTensor:mode:centerResult:alignCorners:layout:name:",
		x, size, mode, opts.CenterResult, opts.AlignCorners, opts.Layout)
}

// ResizeNearest is nearest-neighbor resizing with an explicit rounding mode.
func (g *Graph) ResizeNearest(x, size *Tensor, rounding NearestRoundingMode, opts ResizeOptions) *Tensor {
	return g.op("resize_nearest", "resizeNearestWithTensor:sizeTensor:nearestRoundingMode:centerResult:alignCorners:layout:name:",
		x, size, rounding, opts.CenterResult, opts.AlignCorners, opts.Layout)
}

// ResizeBilinear is bilinear resizing to the size given as a rank-1 tensor.
func (g *Graph) ResizeBilinear(x, size *Tensor, opts ResizeOptions) *Tensor {
	return g.op("resize_bilinear", "resizeBilinearWithTensor:sizeTensor:centerResult:alignCorners:layout:name:",
		x, size, opts.CenterResult, opts.AlignCorners, opts.Layout)
}

// ResizeScaleOffset resizes with an explicit [scaleY, scaleX, offsetY,
// offsetX] tensor.
func (g *Graph) ResizeScaleOffset(x, size, scaleOffset *Tensor, mode ResizeMode, layout TensorNamedDataLayout) *Tensor {
	return g.op("resize", "resizeTensor:sizeTensor:scaleOffsetTensor:mode:layout:name:",
		x, size, scaleOffset, mode, layout)
}

// ResizeGradient back-propagates gradient through a resize of input.
func (g *Graph) ResizeGradient(gradient, input *Tensor, mode ResizeMode, opts ResizeOptions) *Tensor {
	return g.op("resize_grad", "resizeWithGradientTensor:input:mode:centerResult:alignCorners:layout:name:",
		gradient, input, mode, opts.CenterResult, opts.AlignCorners, opts.Layout)
}

// SampleGridOptions configures SampleGrid.
type SampleGridOptions struct {
	Layout TensorNamedDataLayout
	// Normalize maps coordinates from [-1, 1] to the input extent.
	Normalize bool
	// Relative adds each coordinate to the output position.
	Relative     bool
	AlignCorners bool
	Padding      PaddingMode
	// Constant fills samples outside the input with PaddingModeConstant.
	Constant float64
}

// SampleGrid samples source at the (x, y) positions of coordinates.
func (g *Graph) SampleGrid(source, coordinates *Tensor, mode ResizeMode, opts SampleGridOptions) *Tensor {
	return g.op("sample_grid", "sampleGridWithSourceTensor:coordinateTensor:layout:normalizeCoordinates:relativeCoordinates:alignCorners:paddingMode:samplingMode:constantValue:name:",
		source, coordinates, opts.Layout, opts.Normalize, opts.Relative, opts.AlignCorners, opts.Padding, mode, opts.Constant)
}

// SampleGridNearest is SampleGrid with nearest sampling and an explicit
// rounding mode.
func (g *Graph) SampleGridNearest(source, coordinates *Tensor, rounding NearestRoundingMode, opts SampleGridOptions) *Tensor {
	return g.op("sample_grid", "sampleGridWithSourceTensor:coordinateTensor:layout:normalizeCoordinates:relativeCoordinates:alignCorners:paddingMode:nearestRoundingMode:constantValue:name:",
		source, coordinates, opts.Layout, opts.Normalize, opts.Relative, opts.AlignCorners, opts.Padding, rounding, opts.Constant)
}
