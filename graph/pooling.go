package graph

import "github.com/gomlx/go-mpsgraph/internal/bridge"

// Pooling2DDescriptor configures 2D pooling windows. Zero strides and
// dilations mean 1.
type Pooling2DDescriptor struct {
	KernelWidth, KernelHeight int
	StrideX, StrideY          int
	DilationX, DilationY      int
	PaddingLeft, PaddingRight int
	PaddingTop, PaddingBottom int
	PaddingStyle              PaddingStyle
	DataLayout                TensorNamedDataLayout
	// ReturnIndices selects the index encoding of the ReturnIndices ops.
	ReturnIndices     PoolingReturnIndices
	ReturnIndicesType DataType
	CeilMode          bool
	// IncludeZeroPad counts padding elements in average pooling.
	IncludeZeroPad bool
}

func (d *Pooling2DDescriptor) build() (*bridge.Object, error) {
	if d == nil {
		d = &Pooling2DDescriptor{}
	}
	n := newNative("MPSGraphPooling2DOpDescriptor")
	n.setUint("setKernelWidth:", uint64(atLeast1(d.KernelWidth)))
	n.setUint("setKernelHeight:", uint64(atLeast1(d.KernelHeight)))
	n.setUint("setStrideInX:", uint64(atLeast1(d.StrideX)))
	n.setUint("setStrideInY:", uint64(atLeast1(d.StrideY)))
	n.setUint("setDilationRateInX:", uint64(atLeast1(d.DilationX)))
	n.setUint("setDilationRateInY:", uint64(atLeast1(d.DilationY)))
	n.setUint("setPaddingLeft:", uint64(d.PaddingLeft))
	n.setUint("setPaddingRight:", uint64(d.PaddingRight))
	n.setUint("setPaddingTop:", uint64(d.PaddingTop))
	n.setUint("setPaddingBottom:", uint64(d.PaddingBottom))
	n.setUint("setPaddingStyle:", d.PaddingStyle.enumValue())
	n.setUint("setDataLayout:", d.DataLayout.enumValue())
	n.setUint("setReturnIndicesMode:", d.ReturnIndices.enumValue())
	if d.ReturnIndicesType != Invalid {
		n.setUint("setReturnIndicesDataType:", uint64(d.ReturnIndicesType))
	}
	n.setBool("setCeilMode:", d.CeilMode)
	n.setBool("setIncludeZeroPadToAverage:", d.IncludeZeroPad)
	return n.done()
}

// Pooling4DDescriptor configures pooling over the 4 innermost axes. Each
// slice has 4 entries (PaddingValues 8); empty strides and dilations mean
// ones, empty padding means zeros.
type Pooling4DDescriptor struct {
	KernelSizes       []int
	Strides           []int
	DilationRates     []int
	PaddingValues     []int
	PaddingStyle      PaddingStyle
	ReturnIndices     PoolingReturnIndices
	ReturnIndicesType DataType
	CeilMode          bool
	IncludeZeroPad    bool
}

func (d *Pooling4DDescriptor) build() (*bridge.Object, error) {
	if d == nil {
		d = &Pooling4DDescriptor{}
	}
	n := newNative("MPSGraphPooling4DOpDescriptor")
	n.setInts("setKernelSizes:", onesIfEmpty(d.KernelSizes, 4))
	n.setInts("setStrides:", onesIfEmpty(d.Strides, 4))
	n.setInts("setDilationRates:", onesIfEmpty(d.DilationRates, 4))
	padding := d.PaddingValues
	if len(padding) == 0 {
		padding = make([]int, 8)
	}
	n.setInts("setPaddingValues:", padding)
	n.setUint("setPaddingStyle:", d.PaddingStyle.enumValue())
	n.setUint("setReturnIndicesMode:", d.ReturnIndices.enumValue())
	if d.ReturnIndicesType != Invalid {
		n.setUint("setReturnIndicesDataType:", uint64(d.ReturnIndicesType))
	}
	n.setBool("setCeilMode:", d.CeilMode)
	n.setBool("setIncludeZeroPadToAverage:", d.IncludeZeroPad)
	return n.done()
}

// MaxPool2D takes the maximum of each window.
func (g *Graph) MaxPool2D(source *Tensor, desc *Pooling2DDescriptor) *Tensor {
	return g.op("max_pool2d", "maxPooling2DWithSourceTensor:descriptor:name:", source, desc)
}

// MaxPool2DReturnIndices is MaxPool2D also returning the position of each
// maximum, encoded as desc.ReturnIndices says.
func (g *Graph) MaxPool2DReturnIndices(source *Tensor, desc *Pooling2DDescriptor) (values, indices *Tensor) {
	return pair(g.ops("max_pool2d", "maxPooling2DReturnIndicesWithSourceTensor:descriptor:name:", source, desc))
}

// MaxPool2DGradient back-propagates gradient through MaxPool2D(source, desc).
func (g *Graph) MaxPool2DGradient(gradient, source *Tensor, desc *Pooling2DDescriptor) *Tensor {
	return g.op("max_pool2d_grad", "maxPooling2DGradientWithGradientTensor:sourceTensor:descriptor:name:", gradient, source, desc)
}

// MaxPool2DIndicesGradient computes the MaxPool2D gradient from the indices
// returned by MaxPool2DReturnIndices.
func (g *Graph) MaxPool2DIndicesGradient(gradient, indices *Tensor, sourceShape Shape, desc *Pooling2DDescriptor) *Tensor {
	return g.op("max_pool2d_grad", "maxPooling2DGradientWithGradientTensor:indicesTensor:outputShape:descriptor:name:",
		gradient, indices, sourceShape, desc)
}

// AvgPool2D averages each window.
func (g *Graph) AvgPool2D(source *Tensor, desc *Pooling2DDescriptor) *Tensor {
	return g.op("avg_pool2d", "avgPooling2DWithSourceTensor:descriptor:name:", source, desc)
}

// AvgPool2DGradient back-propagates gradient through AvgPool2D(source, desc).
func (g *Graph) AvgPool2DGradient(gradient, source *Tensor, desc *Pooling2DDescriptor) *Tensor {
	return g.op("avg_pool2d_grad", "avgPooling2DGradientWithGradientTensor:sourceTensor:descriptor:name:", gradient, source, desc)
}

// L2NormPool2D computes the L2 norm of each window.
func (g *Graph) L2NormPool2D(source *Tensor, desc *Pooling2DDescriptor) *Tensor {
	return g.op("l2_pool2d", "L2NormPooling2DWithSourceTensor:descriptor:name:", source, desc)
}

// L2NormPool2DGradient back-propagates gradient through L2NormPool2D.
func (g *Graph) L2NormPool2DGradient(gradient, source *Tensor, desc *Pooling2DDescriptor) *Tensor {
	return g.op("l2_pool2d_grad", "L2NormPooling2DGradientWithGradientTensor:sourceTensor:descriptor:name:", gradient, source, desc)
}

// MaxPool4D takes the maximum of each window over all four dimensions.
func (g *Graph) MaxPool4D(source *Tensor, desc *Pooling4DDescriptor) *Tensor {
	return g.op("max_pool4d", "maxPooling4DWithSourceTensor:descriptor:name:", source, desc)
}

// MaxPool4DReturnIndices is MaxPool4D also returning the position of each
// maximum.
func (g *Graph) MaxPool4DReturnIndices(source *Tensor, desc *Pooling4DDescriptor) (values, indices *Tensor) {
	return pair(g.ops("max_pool4d", "maxPooling4DReturnIndicesWithSourceTensor:descriptor:name:", source, desc))
}

// MaxPool4DGradient back-propagates gradient through MaxPool4D(source, desc).
func (g *Graph) MaxPool4DGradient(gradient, source *Tensor, desc *Pooling4DDescriptor) *Tensor {
	return g.op("max_pool4d_grad", "maxPooling4DGradientWithGradientTensor:sourceTensor:descriptor:name:", gradient, source, desc)
}

// MaxPool4DIndicesGradient computes the MaxPool4D gradient from the indices
// returned by MaxPool4DReturnIndices.
func (g *Graph) MaxPool4DIndicesGradient(gradient, indices *Tensor, sourceShape Shape, desc *Pooling4DDescriptor) *Tensor {
	return g.op("max_pool4d_grad", "maxPooling4DGradientWithGradientTensor:indicesTensor:outputShape:descriptor:name:",
		gradient, indices, sourceShape, desc)
}

// AvgPool4D averages each four-dimensional window.
func (g *Graph) AvgPool4D(source *Tensor, desc *Pooling4DDescriptor) *Tensor {
	return g.op("avg_pool4d", "avgPooling4DWithSourceTensor:descriptor:name:", source, desc)
}

// AvgPool4DGradient back-propagates gradient through AvgPool4D(source, desc).
func (g *Graph) AvgPool4DGradient(gradient, source *Tensor, desc *Pooling4DDescriptor) *Tensor {
	return g.op("avg_pool4d_grad", "avgPooling4DGradientWithGradientTensor:sourceTensor:descriptor:name:", gradient, source, desc)
}

// L2NormPool4D computes the L2 norm of each four-dimensional window.
func (g *Graph) L2NormPool4D(source *Tensor, desc *Pooling4DDescriptor) *Tensor {
	return g.op("l2_pool4d", "L2NormPooling4DWithSourceTensor:descriptor:name:", source, desc)
}

// L2NormPool4DGradient back-propagates gradient through L2NormPool4D.
func (g *Graph) L2NormPool4DGradient(gradient, source *Tensor, desc *Pooling4DDescriptor) *Tensor {
	return g.op("l2_pool4d_grad", "L2NormPooling4DGradientWithGradientTensor:sourceTensor:descriptor:name:", gradient, source, desc)
}
