package graph

import "github.com/gomlx/go-mpsgraph/internal/bridge"

// Convolution2DDescriptor configures 2D convolutions and transposed
// convolutions. Zero strides, dilations and groups mean 1; a nil
// descriptor is all defaults (NCHW data, OIHW weights, explicit zero
// padding).
type Convolution2DDescriptor struct {
	StrideX, StrideY          int
	DilationX, DilationY      int
	Groups                    int
	PaddingLeft, PaddingRight int
	PaddingTop, PaddingBottom int
	PaddingStyle              PaddingStyle
	DataLayout                TensorNamedDataLayout
	// WeightsLayout defaults to OIHW; its zero value is not a weights layout.
	WeightsLayout TensorNamedDataLayout
}

func weightsLayout(l, fallback TensorNamedDataLayout) TensorNamedDataLayout {
	if l == LayoutNCHW {
		return fallback
	}
	return l
}

func (d *Convolution2DDescriptor) build() (*bridge.Object, error) {
	if d == nil {
		d = &Convolution2DDescriptor{}
	}
	n := newNative("MPSGraphConvolution2DOpDescriptor")
	n.setUint("setStrideInX:", uint64(atLeast1(d.StrideX)))
	n.setUint("setStrideInY:", uint64(atLeast1(d.StrideY)))
	n.setUint("setDilationRateInX:", uint64(atLeast1(d.DilationX)))
	n.setUint("setDilationRateInY:", uint64(atLeast1(d.DilationY)))
	n.setUint("setGroups:", uint64(atLeast1(d.Groups)))
	n.setUint("setPaddingLeft:", uint64(d.PaddingLeft))
	n.setUint("setPaddingRight:", uint64(d.PaddingRight))
	n.setUint("setPaddingTop:", uint64(d.PaddingTop))
	n.setUint("setPaddingBottom:", uint64(d.PaddingBottom))
	n.setUint("setPaddingStyle:", d.PaddingStyle.enumValue())
	n.setUint("setDataLayout:", d.DataLayout.enumValue())
	n.setUint("setWeightsLayout:", weightsLayout(d.WeightsLayout, LayoutOIHW).enumValue())
	return n.done()
}

// Convolution3DDescriptor is the 3D version of Convolution2DDescriptor.
// Data defaults to NCDHW and weights to OIDHW.
type Convolution3DDescriptor struct {
	StrideX, StrideY, StrideZ       int
	DilationX, DilationY, DilationZ int
	Groups                          int
	PaddingLeft, PaddingRight       int
	PaddingTop, PaddingBottom       int
	PaddingFront, PaddingBack       int
	PaddingStyle                    PaddingStyle
	DataLayout                      TensorNamedDataLayout
	WeightsLayout                   TensorNamedDataLayout
}

func (d *Convolution3DDescriptor) build() (*bridge.Object, error) {
	if d == nil {
		d = &Convolution3DDescriptor{}
	}
	n := newNative("MPSGraphConvolution3DOpDescriptor")
	n.setUint("setStrideInX:", uint64(atLeast1(d.StrideX)))
	n.setUint("setStrideInY:", uint64(atLeast1(d.StrideY)))
	n.setUint("setStrideInZ:", uint64(atLeast1(d.StrideZ)))
	n.setUint("setDilationRateInX:", uint64(atLeast1(d.DilationX)))
	n.setUint("setDilationRateInY:", uint64(atLeast1(d.DilationY)))
	n.setUint("setDilationRateInZ:", uint64(atLeast1(d.DilationZ)))
	n.setUint("setGroups:", uint64(atLeast1(d.Groups)))
	n.setUint("setPaddingLeft:", uint64(d.PaddingLeft))
	n.setUint("setPaddingRight:", uint64(d.PaddingRight))
	n.setUint("setPaddingTop:", uint64(d.PaddingTop))
	n.setUint("setPaddingBottom:", uint64(d.PaddingBottom))
	n.setUint("setPaddingFront:", uint64(d.PaddingFront))
	n.setUint("setPaddingBack:", uint64(d.PaddingBack))
	n.setUint("setPaddingStyle:", d.PaddingStyle.enumValue())
	dataLayout := d.DataLayout
	if dataLayout == LayoutNCHW {
		dataLayout = LayoutNCDHW
	}
	n.setUint("setDataLayout:", dataLayout.enumValue())
	n.setUint("setWeightsLayout:", weightsLayout(d.WeightsLayout, LayoutOIDHW).enumValue())
	return n.done()
}

// DepthwiseConvolution2DDescriptor configures 2D depthwise convolutions.
// Weights default to OIHW.
type DepthwiseConvolution2DDescriptor struct {
	StrideX, StrideY          int
	DilationX, DilationY      int
	PaddingLeft, PaddingRight int
	PaddingTop, PaddingBottom int
	PaddingStyle              PaddingStyle
	DataLayout                TensorNamedDataLayout
	WeightsLayout             TensorNamedDataLayout
}

func (d *DepthwiseConvolution2DDescriptor) build() (*bridge.Object, error) {
	if d == nil {
		d = &DepthwiseConvolution2DDescriptor{}
	}
	n := newNative("MPSGraphDepthwiseConvolution2DOpDescriptor")
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
	n.setUint("setWeightsLayout:", weightsLayout(d.WeightsLayout, LayoutOIHW).enumValue())
	return n.done()
}

// DepthwiseConvolution3DDescriptor configures 3D depthwise convolutions.
// Strides and DilationRates have 3 entries, PaddingValues 6 (before and
// after for each spatial axis); empty means ones and zeros respectively.
type DepthwiseConvolution3DDescriptor struct {
	Strides       []int
	DilationRates []int
	PaddingValues []int
	PaddingStyle  PaddingStyle
	// ChannelAxis is the channel axis of the source, negative from the end.
	// Zero means -4 (NCDHW).
	ChannelAxis int
}

func (d *DepthwiseConvolution3DDescriptor) build() (*bridge.Object, error) {
	if d == nil {
		d = &DepthwiseConvolution3DDescriptor{}
	}
	n := newNative("MPSGraphDepthwiseConvolution3DOpDescriptor")
	n.setInts("setStrides:", onesIfEmpty(d.Strides, 3))
	n.setInts("setDilationRates:", onesIfEmpty(d.DilationRates, 3))
	padding := d.PaddingValues
	if len(padding) == 0 {
		padding = make([]int, 6)
	}
	n.setInts("setPaddingValues:", padding)
	n.setUint("setPaddingStyle:", d.PaddingStyle.enumValue())
	channelAxis := d.ChannelAxis
	if channelAxis == 0 {
		channelAxis = -4
	}
	n.setInt("setChannelDimensionIndex:", channelAxis)
	return n.done()
}

// Conv2D convolves source with weights.
func (g *Graph) Conv2D(source, weights *Tensor, desc *Convolution2DDescriptor) *Tensor {
	return g.op("conv2d", "convolution2DWithSourceTensor:weightsTensor:descriptor:name:", source, weights, desc)
}

// Conv2DDataGradient computes the gradient of Conv2D with respect to its
// source, whose shape is sourceShape.
func (g *Graph) Conv2DDataGradient(gradient, weights *Tensor, sourceShape Shape, desc *Convolution2DDescriptor) *Tensor {
	return g.op("conv2d_data_grad", "convolution2DDataGradientWithIncomingGradientTensor:weightsTensor:outputShape:forwardConvolutionDescriptor:name:",
		gradient, weights, sourceShape, desc)
}

// Conv2DWeightsGradient computes the gradient of Conv2D with respect to its
// weights, whose shape is weightsShape.
func (g *Graph) Conv2DWeightsGradient(gradient, source *Tensor, weightsShape Shape, desc *Convolution2DDescriptor) *Tensor {
	return g.op("conv2d_weights_grad", "convolution2DWeightsGradientWithIncomingGradientTensor:sourceTensor:outputShape:forwardConvolutionDescriptor:name:",
		gradient, source, weightsShape, desc)
}

// Conv3D convolves source with weights over three spatial dimensions.
func (g *Graph) Conv3D(source, weights *Tensor, desc *Convolution3DDescriptor) *Tensor {
	return g.op("conv3d", "convolution3DWithSourceTensor:weightsTensor:descriptor:name:", source, weights, desc)
}

// Conv3DDataGradient computes the gradient of Conv3D with respect to its
// source, whose shape is sourceShape.
func (g *Graph) Conv3DDataGradient(gradient, weights *Tensor, sourceShape Shape, desc *Convolution3DDescriptor) *Tensor {
	return g.op("conv3d_data_grad", "convolution3DDataGradientWithIncomingGradientTensor:weightsTensor:outputShape:forwardConvolutionDescriptor:name:",
		gradient, weights, sourceShape, desc)
}

// Conv3DWeightsGradient computes the gradient of Conv3D with respect to its
// weights, whose shape is weightsShape.
func (g *Graph) Conv3DWeightsGradient(gradient, source *Tensor, weightsShape Shape, desc *Convolution3DDescriptor) *Tensor {
	return g.op("conv3d_weights_grad", "convolution3DWeightsGradientWithIncomingGradientTensor:sourceTensor:outputShape:forwardConvolutionDescriptor:name:",
		gradient, source, weightsShape, desc)
}

// ConvTranspose2D is the transposed (fractionally strided) convolution
// producing a tensor of outputShape.
func (g *Graph) ConvTranspose2D(source, weights *Tensor, outputShape Shape, desc *Convolution2DDescriptor) *Tensor {
	return g.op("conv_transpose2d", "convolutionTranspose2DWithSourceTensor:weightsTensor:outputShape:descriptor:name:",
		source, weights, outputShape, desc)
}

// ConvTranspose2DShapeTensor is ConvTranspose2D with the output shape given
// as a tensor.
func (g *Graph) ConvTranspose2DShapeTensor(source, weights, outputShape *Tensor, desc *Convolution2DDescriptor) *Tensor {
	return g.op("conv_transpose2d", "convolutionTranspose2DWithSourceTensor:weightsTensor:outputShapeTensor:descriptor:name:",
		source, weights, outputShape, desc)
}

// ConvTranspose2DDataGradient computes the gradient of ConvTranspose2D with
// respect to its source.
func (g *Graph) ConvTranspose2DDataGradient(gradient, weights *Tensor, sourceShape Shape, desc *Convolution2DDescriptor) *Tensor {
	return g.op("conv_transpose2d_data_grad", "convolutionTranspose2DDataGradientWithIncomingGradientTensor:weightsTensor:outputShape:forwardConvolutionDescriptor:name:",
		gradient, weights, sourceShape, desc)
}

// ConvTranspose2DWeightsGradient computes the gradient of ConvTranspose2D
// with respect to its weights.
func (g *Graph) ConvTranspose2DWeightsGradient(gradient, source *Tensor, weightsShape Shape, desc *Convolution2DDescriptor) *Tensor {
	return g.op("conv_transpose2d_weights_grad", "convolutionTranspose2DWeightsGradientWithIncomingGradientTensor:sourceTensor:outputShape:forwardConvolutionDescriptor:name:",
		gradient, source, weightsShape, desc)
}

// DepthwiseConv2D convolves each channel of source with its own filter.
func (g *Graph) DepthwiseConv2D(source, weights *Tensor, desc *DepthwiseConvolution2DDescriptor) *Tensor {
	return g.op("depthwise_conv2d", "depthwiseConvolution2DWithSourceTensor:weightsTensor:descriptor:name:", source, weights, desc)
}

// DepthwiseConv2DDataGradient computes the gradient of DepthwiseConv2D with
// respect to its source.
func (g *Graph) DepthwiseConv2DDataGradient(gradient, weights *Tensor, sourceShape Shape, desc *DepthwiseConvolution2DDescriptor) *Tensor {
	return g.op("depthwise_conv2d_data_grad", "depthwiseConvolution2DDataGradientWithIncomingGradientTensor:weightsTensor:outputShape:descriptor:name:",
		gradient, weights, sourceShape, desc)
}

// DepthwiseConv2DWeightsGradient computes the gradient of DepthwiseConv2D
// with respect to its weights.
func (g *Graph) DepthwiseConv2DWeightsGradient(gradient, source *Tensor, weightsShape Shape, desc *DepthwiseConvolution2DDescriptor) *Tensor {
	return g.op("depthwise_conv2d_weights_grad", "depthwiseConvolution2DWeightsGradientWithIncomingGradientTensor:sourceTensor:outputShape:descriptor:name:",
		gradient, source, weightsShape, desc)
}

// DepthwiseConv3D is DepthwiseConv2D over three spatial dimensions.
func (g *Graph) DepthwiseConv3D(source, weights *Tensor, desc *DepthwiseConvolution3DDescriptor) *Tensor {
	return g.op("depthwise_conv3d", "depthwiseConvolution3DWithSourceTensor:weightsTensor:descriptor:name:", source, weights, desc)
}

// DepthwiseConv3DDataGradient computes the gradient of DepthwiseConv3D with
// respect to its source.
func (g *Graph) DepthwiseConv3DDataGradient(gradient, weights *Tensor, sourceShape Shape, desc *DepthwiseConvolution3DDescriptor) *Tensor {
	return g.op("depthwise_conv3d_data_grad", "depthwiseConvolution3DDataGradientWithIncomingGradientTensor:weightsTensor:outputShape:descriptor:name:",
		gradient, weights, sourceShape, desc)
}

// DepthwiseConv3DWeightsGradient computes the gradient of DepthwiseConv3D
// with respect to its weights.
func (g *Graph) DepthwiseConv3DWeightsGradient(gradient, source *Tensor, weightsShape Shape, desc *DepthwiseConvolution3DDescriptor) *Tensor {
	return g.op("depthwise_conv3d_weights_grad", "depthwiseConvolution3DWeightsGradientWithIncomingGradientTensor:sourceTensor:outputShape:descriptor:name:",
		gradient, source, weightsShape, desc)
}
