package graph

import (
	"fmt"

	"github.com/gomlx/go-mpsgraph/internal/bridge"
	"github.com/pkg/errors"
)

// Tensor is a symbolic MPSGraphTensor. It is owned by its graph and
// released by Graph.Close.
type Tensor struct {
	obj   *bridge.Object
	graph *Graph
}

// Graph returns the graph the tensor belongs to, nil for tensors of an
// Executable loaded from a package.
func (t *Tensor) Graph() *Graph {
	if t == nil {
		return nil
	}
	return t.graph
}

// Object returns the underlying MPSGraphTensor reference.
func (t *Tensor) Object() *bridge.Object {
	if t == nil {
		return nil
	}
	return t.obj
}

// Shape returns the static shape inferred by MPSGraph, nil when the rank is
// unknown.
func (t *Tensor) Shape() Shape {
	if t == nil {
		return nil
	}
	arr, err := bridge.Send(t.obj, "shape")
	if err != nil || arr == nil {
		return nil
	}
	defer arr.Release()
	return Shape(bridge.ArrayInt64s(arr))
}

// DataType returns the element type of the tensor.
func (t *Tensor) DataType() DataType {
	if t == nil {
		return Invalid
	}
	dt, err := bridge.SendUint(t.obj, "dataType")
	if err != nil {
		return Invalid
	}
	return DataType(dt)
}

// Operation returns the operation that produced the tensor.
func (t *Tensor) Operation() *Operation {
	if t == nil {
		return nil
	}
	op, err := bridge.Send(t.obj, "operation")
	if err != nil || op == nil {
		return nil
	}
	return &Operation{obj: op, graph: t.graph}
}

// Name returns the name of the producing operation.
func (t *Tensor) Name() string {
	op := t.Operation()
	if op == nil {
		return ""
	}
	defer op.Release()
	return op.Name()
}

// String implements fmt.Stringer.
func (t *Tensor) String() string {
	if t == nil {
		return "Tensor(nil)"
	}
	return fmt.Sprintf("Tensor(%q, %s, %s)", t.Name(), t.DataType(), t.Shape())
}

// Operation is an MPSGraphOperation. Operations are returned as fresh
// references: Release them when done, or let the garbage collector do it.
type Operation struct {
	obj   *bridge.Object
	graph *Graph
}

// Object returns the underlying MPSGraphOperation reference.
func (op *Operation) Object() *bridge.Object {
	if op == nil {
		return nil
	}
	return op.obj
}

// Release drops the reference to the operation.
func (op *Operation) Release() {
	if op != nil {
		op.obj.Release()
	}
}

// Name of the operation.
func (op *Operation) Name() string {
	if op == nil {
		return ""
	}
	name, err := bridge.Send(op.obj, "name")
	if err != nil {
		return ""
	}
	defer name.Release()
	return bridge.GoString(name)
}

func (op *Operation) tensors(selector string) []*Tensor {
	if op == nil {
		return nil
	}
	arr, err := bridge.Send(op.obj, selector)
	if err != nil || arr == nil {
		return nil
	}
	if op.graph != nil {
		return op.graph.tensorArray(arr)
	}
	defer arr.Release()
	objs := bridge.ArrayObjects(arr)
	tensors := make([]*Tensor, len(objs))
	for i, o := range objs {
		tensors[i] = &Tensor{obj: o}
	}
	return tensors
}

// Inputs returns the input tensors of the operation.
func (op *Operation) Inputs() []*Tensor { return op.tensors("inputTensors") }

// Outputs returns the output tensors of the operation.
func (op *Operation) Outputs() []*Tensor { return op.tensors("outputTensors") }

// ControlDependencies returns the operations that must run before op.
func (op *Operation) ControlDependencies() []*Operation {
	if op == nil {
		return nil
	}
	arr, err := bridge.Send(op.obj, "controlDependencies")
	if err != nil || arr == nil {
		return nil
	}
	defer arr.Release()
	objs := bridge.ArrayObjects(arr)
	ops := make([]*Operation, len(objs))
	for i, o := range objs {
		ops[i] = &Operation{obj: o, graph: op.graph}
	}
	return ops
}

// String implements fmt.Stringer.
func (op *Operation) String() string {
	if op == nil {
		return "Operation(nil)"
	}
	return fmt.Sprintf("Operation(%q)", op.Name())
}

// ShapedType is an MPSGraphShapedType: a shape and a data type, used to
// declare the inputs of a compiled graph.
type ShapedType struct {
	obj *bridge.Object
}

// NewShapedType creates an MPSGraphShapedType. A nil shape is unranked.
func NewShapedType(shape Shape, dtype DataType) (*ShapedType, error) {
	shapeArg := bridge.Nil()
	if shape != nil {
		arr := bridge.Int64Array(shape)
		defer arr.Release()
		shapeArg = bridge.Obj(arr)
	}
	obj, err := bridge.New("MPSGraphShapedType", "initWithShape:dataType:", shapeArg, bridge.Uint(uint64(dtype)))
	if err != nil {
		return nil, errors.Wrapf(err, "creating shaped type %s %s", dtype, shape)
	}
	return &ShapedType{obj: obj}, nil
}

// Object returns the underlying MPSGraphShapedType reference.
func (st *ShapedType) Object() *bridge.Object {
	if st == nil {
		return nil
	}
	return st.obj
}

// Shape of the type, nil if unranked.
func (st *ShapedType) Shape() Shape {
	if st == nil {
		return nil
	}
	arr, err := bridge.Send(st.obj, "shape")
	if err != nil || arr == nil {
		return nil
	}
	defer arr.Release()
	return Shape(bridge.ArrayInt64s(arr))
}

// DataType of the type.
func (st *ShapedType) DataType() DataType {
	if st == nil {
		return Invalid
	}
	dt, err := bridge.SendUint(st.obj, "dataType")
	if err != nil {
		return Invalid
	}
	return DataType(dt)
}

// Rank is the number of dimensions, -1 when unranked.
func (st *ShapedType) Rank() int {
	s := st.Shape()
	if s == nil {
		return -1
	}
	return len(s)
}

// Close releases the native object.
func (st *ShapedType) Close() {
	if st != nil {
		st.obj.Release()
	}
}

// String implements fmt.Stringer.
func (st *ShapedType) String() string {
	if st == nil {
		return "ShapedType(nil)"
	}
	return fmt.Sprintf("ShapedType(%s, %s)", st.DataType(), st.Shape())
}
