package graph

// SoftmaxCrossEntropy computes the cross entropy between softmax(source)
// and labels along axis, reduced as reduction says.
func (g *Graph) SoftmaxCrossEntropy(source, labels *Tensor, axis int, reduction LossReduction) *Tensor {
	return g.op("softmax_xent", "softMaxCrossEntropyWithSourceTensor:labelsTensor:axis:reductionType:name:",
		source, labels, axis, reduction)
}

// SoftmaxCrossEntropyGradient computes the gradient of SoftmaxCrossEntropy
// with respect to source.
func (g *Graph) SoftmaxCrossEntropyGradient(gradient, source, labels *Tensor, axis int, reduction LossReduction) *Tensor {
	return g.op("softmax_xent_grad", "softMaxCrossEntropyGradientWithIncomingGradientTensor:sourceTensor:labelsTensor:axis:reductionType:name:",
		gradient, source, labels, axis, reduction)
}

// Quantize computes round(x/scale + zeroPoint) as dtype.
func (g *Graph) Quantize(x *Tensor, scale, zeroPoint float64, dtype DataType) *Tensor {
	return g.op("quantize", "quantizeTensor:scale:zeroPoint:dataType:name:", x, scale, zeroPoint, dtype)
}

// Dequantize computes (x - zeroPoint) * scale as dtype.
func (g *Graph) Dequantize(x *Tensor, scale, zeroPoint float64, dtype DataType) *Tensor {
	return g.op("dequantize", "dequantizeTensor:scale:zeroPoint:dataType:name:", x, scale, zeroPoint, dtype)
}

// QuantizeAxis quantizes with a per-channel scale along axis.
func (g *Graph) QuantizeAxis(x, scale *Tensor, zeroPoint float64, dtype DataType, axis int) *Tensor {
	return g.op("quantize", "quantizeTensor:scaleTensor:zeroPoint:dataType:axis:name:", x, scale, zeroPoint, dtype, axis)
}

// DequantizeAxis is the inverse of QuantizeAxis.
func (g *Graph) DequantizeAxis(x, scale *Tensor, zeroPoint float64, dtype DataType, axis int) *Tensor {
	return g.op("dequantize", "dequantizeTensor:scaleTensor:zeroPoint:dataType:axis:name:", x, scale, zeroPoint, dtype, axis)
}

// QuantizeAxisTensors takes both scale and zero point as per-channel tensors.
func (g *Graph) QuantizeAxisTensors(x, scale, zeroPoint *Tensor, dtype DataType, axis int) *Tensor {
	return g.op("quantize", "quantizeTensor:scaleTensor:zeroPointTensor:dataType:axis:name:", x, scale, zeroPoint, dtype, axis)
}

// DequantizeAxisTensors is the inverse of QuantizeAxisTensors.
func (g *Graph) DequantizeAxisTensors(x, scale, zeroPoint *Tensor, dtype DataType, axis int) *Tensor {
	return g.op("dequantize", "dequantizeTensor:scaleTensor:zeroPointTensor:dataType:axis:name:", x, scale, zeroPoint, dtype, axis)
}

// DequantizeLUT maps the integer elements of x through the lookup table lut.
func (g *Graph) DequantizeLUT(x, lut *Tensor) *Tensor {
	return g.op("dequantize_lut", "dequantizeTensor:LUTTensor:name:", x, lut)
}

// DequantizeLUTAxis is DequantizeLUT with vector entries along axis.
func (g *Graph) DequantizeLUTAxis(x, lut *Tensor, axis int) *Tensor {
	return g.op("dequantize_lut", "dequantizeTensor:LUTTensor:axis:name:", x, lut, axis)
}
