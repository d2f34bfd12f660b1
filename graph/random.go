package graph

import (
	"github.com/gomlx/go-mpsgraph/internal/bridge"
	"github.com/pkg/errors"
)

// RandomDescriptor configures random tensors. For float types Min/Max bound
// uniform samples and Mean/StdDev parametrize normal ones; integer types
// use MinInteger/MaxInteger. Truncated normal samples fall in [Min, Max].
type RandomDescriptor struct {
	Distribution RandomDistribution
	// DataType defaults to Float32.
	DataType               DataType
	Min, Max               float64
	MinInteger, MaxInteger int64
	Mean                   float64
	// StdDev defaults to 1.
	StdDev   float64
	Sampling NormalSampling
}

// UniformDescriptor returns a descriptor for uniform values in [lo, hi).
func UniformDescriptor(dtype DataType, lo, hi float64) *RandomDescriptor {
	return &RandomDescriptor{Distribution: DistributionUniform, DataType: dtype, Min: lo, Max: hi}
}

// NormalDescriptor returns a descriptor for normal values.
func NormalDescriptor(dtype DataType, mean, stdDev float64) *RandomDescriptor {
	return &RandomDescriptor{Distribution: DistributionNormal, DataType: dtype, Mean: mean, StdDev: stdDev}
}

func (d *RandomDescriptor) build() (*bridge.Object, error) {
	if d == nil {
		d = &RandomDescriptor{}
	}
	dtype := d.DataType
	if dtype == Invalid {
		dtype = Float32
	}
	if dtype.IsComplex() || dtype == Bool {
		return nil, errors.Errorf("random values of type %s are not supported", dtype)
	}
	n := newNativeWith("MPSGraphRandomOpDescriptor", "descriptorWithDistribution:dataType:",
		bridge.Uint(d.Distribution.enumValue()), bridge.Uint(uint64(dtype)))
	if dtype.IsFloat() {
		if d.Min != 0 || d.Max != 0 {
			n.setFloat("setMin:", d.Min)
			n.setFloat("setMax:", d.Max)
		}
		n.setFloat("setMean:", d.Mean)
		stdDev := d.StdDev
		if stdDev == 0 {
			stdDev = 1
		}
		n.setFloat("setStandardDeviation:", stdDev)
		n.setUint("setSamplingMethod:", d.Sampling.enumValue())
	} else if d.MinInteger != 0 || d.MaxInteger != 0 {
		n.set("setMinInteger:", bridge.Int(d.MinInteger))
		n.set("setMaxInteger:", bridge.Int(d.MaxInteger))
	}
	return n.done()
}

// Random returns a random tensor of the given shape. Each run draws new
// values.
func (g *Graph) Random(shape Shape, desc *RandomDescriptor) *Tensor {
	return g.op("random", "randomTensorWithShape:descriptor:name:", shape, desc)
}

// RandomSeeded is Random with a fixed seed.
func (g *Graph) RandomSeeded(shape Shape, desc *RandomDescriptor, seed int) *Tensor {
	return g.op("random", "randomTensorWithShape:descriptor:seed:name:", shape, desc, seed)
}

// RandomWithState draws from a Philox state tensor, returning the values and
// the advanced state to chain into the next draw.
func (g *Graph) RandomWithState(shape Shape, desc *RandomDescriptor, state *Tensor) (values, newState *Tensor) {
	return pair(g.ops("random", "randomTensorWithShape:descriptor:stateTensor:name:", shape, desc, state))
}

// PhiloxState creates a Philox state tensor from a seed.
func (g *Graph) PhiloxState(seed int) *Tensor {
	return g.op("philox_state", "randomPhiloxStateTensorWithSeed:name:", seed)
}

// PhiloxStateCounter creates a Philox state tensor from explicit counter and
// key values.
func (g *Graph) PhiloxStateCounter(counterLow, counterHigh, key uint64) *Tensor {
	return g.op("philox_state", "randomPhiloxStateTensorWithCounterLow:counterHigh:key:name:", counterLow, counterHigh, key)
}

// RandomUniform returns Float32 values uniform in [0, 1).
func (g *Graph) RandomUniform(shape Shape) *Tensor {
	return g.op("random_uniform", "randomUniformTensorWithShape:name:", shape)
}

// RandomUniformSeeded is RandomUniform with a fixed seed.
func (g *Graph) RandomUniformSeeded(shape Shape, seed int) *Tensor {
	return g.op("random_uniform", "randomUniformTensorWithShape:seed:name:", shape, seed)
}

// RandomUniformWithState draws from a Philox state tensor and returns the
// advanced state along with the values.
func (g *Graph) RandomUniformWithState(shape Shape, state *Tensor) (values, newState *Tensor) {
	return pair(g.ops("random_uniform", "randomUniformTensorWithShape:stateTensor:name:", shape, state))
}

// Dropout zeroes elements with probability rate and scales the rest by
// 1/(1-rate).
func (g *Graph) Dropout(x *Tensor, rate float64) *Tensor {
	return g.op("dropout", "dropoutTensor:rate:name:", x, rate)
}

// DropoutTensor is Dropout with the rate given as a scalar tensor.
func (g *Graph) DropoutTensor(x, rate *Tensor) *Tensor {
	return g.op("dropout", "dropoutTensor:rateTensor:name:", x, rate)
}
