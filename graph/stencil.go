package graph

import "github.com/gomlx/go-mpsgraph/internal/bridge"

// StencilDescriptor configures a 4D stencil: a sliding window over the 4
// innermost axes reduced with ReductionMode after multiplying by weights.
// Offsets, Strides and DilationRates have 4 entries, ExplicitPadding 8;
// empty strides and dilations mean ones.
type StencilDescriptor struct {
	ReductionMode   ReductionMode
	Offsets         []int
	Strides         []int
	DilationRates   []int
	ExplicitPadding []int
	BoundaryMode    PaddingMode
	PaddingStyle    PaddingStyle
	PaddingConstant float64
}

func (d *StencilDescriptor) build() (*bridge.Object, error) {
	if d == nil {
		d = &StencilDescriptor{}
	}
	n := newNative("MPSGraphStencilOpDescriptor")
	n.setUint("setReductionMode:", d.ReductionMode.enumValue())
	n.setInts("setOffsets:", d.Offsets)
	n.setInts("setStrides:", onesIfEmpty(d.Strides, 4))
	n.setInts("setDilationRates:", onesIfEmpty(d.DilationRates, 4))
	n.setInts("setExplicitPadding:", d.ExplicitPadding)
	n.set("setBoundaryMode:", bridge.Int(int64(d.BoundaryMode)))
	n.setUint("setPaddingStyle:", d.PaddingStyle.enumValue())
	n.setFloat("setPaddingConstant:", d.PaddingConstant)
	return n.done()
}

// Stencil applies weights as a sliding window over source.
func (g *Graph) Stencil(source, weights *Tensor, desc *StencilDescriptor) *Tensor {
	return g.op("stencil", "stencilWithSourceTensor:weightsTensor:descriptor:name:", source, weights, desc)
}

// ImToColDescriptor configures ImToCol and ColToIm.
type ImToColDescriptor struct {
	KernelWidth, KernelHeight int
	StrideX, StrideY          int
	DilationX, DilationY      int
	PaddingLeft, PaddingRight int
	PaddingTop, PaddingBottom int
	DataLayout                TensorNamedDataLayout
}

func (d *ImToColDescriptor) build() (*bridge.Object, error) {
	if d == nil {
		d = &ImToColDescriptor{}
	}
	n := newNative("MPSGraphImToColOpDescriptor")
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
	n.setUint("setDataLayout:", d.DataLayout.enumValue())
	return n.done()
}

// ImToCol unrolls each kernel window of source into a column.
func (g *Graph) ImToCol(source *Tensor, desc *ImToColDescriptor) *Tensor {
	return g.op("im2col", "imToColWithSourceTensor:descriptor:name:", source, desc)
}

// ColToIm folds columns back into an image of outputShape, summing overlaps.
func (g *Graph) ColToIm(source *Tensor, outputShape Shape, desc *ImToColDescriptor) *Tensor {
	return g.op("col2im", "colToImWithSourceTensor:outputShape:descriptor:name:", source, outputShape, desc)
}
