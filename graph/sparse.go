package graph

import (
	"github.com/gomlx/go-mpsgraph/internal/bridge"
	"github.com/pkg/errors"
)

// SparseDescriptor describes a sparse tensor encoding.
type SparseDescriptor struct {
	Storage SparseStorage
	// DataType of the values; defaults to Float32.
	DataType DataType
}

func (d *SparseDescriptor) build() (*bridge.Object, error) {
	if d == nil {
		d = &SparseDescriptor{}
	}
	dtype := d.DataType
	if dtype == Invalid {
		dtype = Float32
	}
	n := newNativeWith("MPSGraphCreateSparseOpDescriptor", "descriptorWithStorageType:dataType:",
		bridge.Uint(d.Storage.enumValue()), bridge.Uint(uint64(dtype)))
	return n.done()
}

// Sparse creates a dense tensor of the given shape from sparse components.
// For COO the components are (values, rowIndices, columnIndices); for CSC
// and CSR (values, indices, pointers).
func (g *Graph) Sparse(desc *SparseDescriptor, components []*Tensor, shape Shape) *Tensor {
	if len(components) != 3 {
		g.setErr(errors.Errorf("Sparse: want 3 component tensors, got %d", len(components)))
		return nil
	}
	return g.op("sparse", "sparseTensorWithDescriptor:tensors:shape:name:", desc, components, shape)
}
