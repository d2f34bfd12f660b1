package graph

import "github.com/gomlx/go-mpsgraph/internal/bridge"

// FFTDescriptor configures the Fourier transforms.
type FFTDescriptor struct {
	Inverse bool
	Scaling FFTScaling
	// RoundToOddHermitean makes HermiteanToReal produce an odd-sized last
	// axis: 2*(n-1)+1 instead of 2*(n-1).
	RoundToOddHermitean bool
}

func (d *FFTDescriptor) build() (*bridge.Object, error) {
	if d == nil {
		d = &FFTDescriptor{}
	}
	n := newNativeWith("MPSGraphFFTDescriptor", "descriptor")
	n.setBool("setInverse:", d.Inverse)
	n.setUint("setScalingMode:", d.Scaling.enumValue())
	n.setBool("setRoundToOddHermitean:", d.RoundToOddHermitean)
	return n.done()
}

// FFT computes the complex Fourier transform of x over axes.
func (g *Graph) FFT(x *Tensor, axes []int, desc *FFTDescriptor) *Tensor {
	return g.op("fft", "fastFourierTransformWithTensor:axes:descriptor:name:", x, axes, desc)
}

// FFTAxesTensor is FFT with the axes given as a tensor.
func (g *Graph) FFTAxesTensor(x, axes *Tensor, desc *FFTDescriptor) *Tensor {
	return g.op("fft", "fastFourierTransformWithTensor:axesTensor:descriptor:name:", x, axes, desc)
}

// RealToHermiteanFFT transforms a real tensor, keeping only the n/2+1
// non-redundant outputs of the last transformed axis.
func (g *Graph) RealToHermiteanFFT(x *Tensor, axes []int, desc *FFTDescriptor) *Tensor {
	return g.op("rfft", "realToHermiteanFFTWithTensor:axes:descriptor:name:", x, axes, desc)
}

// RealToHermiteanFFTAxesTensor is RealToHermiteanFFT with the axes given as a
// tensor.
func (g *Graph) RealToHermiteanFFTAxesTensor(x, axes *Tensor, desc *FFTDescriptor) *Tensor {
	return g.op("rfft", "realToHermiteanFFTWithTensor:axesTensor:descriptor:name:", x, axes, desc)
}

// HermiteanToRealFFT is the inverse of RealToHermiteanFFT.
func (g *Graph) HermiteanToRealFFT(x *Tensor, axes []int, desc *FFTDescriptor) *Tensor {
	return g.op("irfft", "HermiteanToRealFFTWithTensor:axes:descriptor:name:", x, axes, desc)
}

// HermiteanToRealFFTAxesTensor is HermiteanToRealFFT with the axes given as a
// tensor.
func (g *Graph) HermiteanToRealFFTAxesTensor(x, axes *Tensor, desc *FFTDescriptor) *Tensor {
	return g.op("irfft", "HermiteanToRealFFTWithTensor:axesTensor:descriptor:name:", x, axes, desc)
}
