package graph

import (
	"github.com/gomlx/go-mpsgraph/internal/bridge"
	"github.com/gomlx/go-mpsgraph/types"
	"github.com/pkg/errors"
)

// Placeholder adds an input tensor to be fed at run time. A nil shape makes
// the placeholder unranked; Dynamic dimensions are allowed.
func (g *Graph) Placeholder(name string, dtype DataType, shape Shape) *Tensor {
	if name == "" {
		name = g.genName("placeholder")
	} else {
		name = g.scoped(name)
	}
	obj, ok := g.send("placeholderWithShape:dataType:name:", name, []any{shape, dtype})
	if !ok {
		return nil
	}
	return g.tensor(obj)
}

// checkData verifies that data holds exactly one value per element.
func checkData(data []byte, shape Shape, dtype DataType) error {
	if !dtype.Valid() {
		return errors.Errorf("invalid data type %s", dtype)
	}
	if !shape.IsStatic() {
		return errors.Errorf("constant shape %s must be static", shape)
	}
	if dtype.BitSize() < 8 {
		return nil
	}
	if want := shape.Size() * int64(dtype.Size()); int64(len(data)) != want {
		return errors.Errorf("%d bytes given for a %s%s tensor of %d bytes", len(data), dtype, shape, want)
	}
	return nil
}

// Constant adds a constant with the given raw little-endian data.
func (g *Graph) Constant(data []byte, shape Shape, dtype DataType) *Tensor {
	if shape == nil {
		shape = Shape{}
	}
	if err := checkData(data, shape, dtype); err != nil {
		g.setErr(errors.WithMessage(err, "Constant"))
		return nil
	}
	nsData := bridge.Data(data)
	defer nsData.Release()
	return g.opNoName("constantWithData:shape:dataType:", nsData, shape, dtype)
}

// Const adds a constant from a flat Go slice. With no dims the slice must
// hold a single value and the constant is a scalar.
func Const[T types.Supported](g *Graph, flat []T, dims ...int64) *Tensor {
	return g.Constant(types.Bytes(flat), types.Make(dims...), types.DataTypeOf[T]())
}

// checkScalar rejects values an integer dtype cannot hold exactly.
func checkScalar(value float64, dtype DataType) error {
	if dtype.IsInteger() && !types.IsIntegral(value) {
		return errors.Errorf("%g is not representable as %s", value, dtype)
	}
	return nil
}

// Scalar adds a rank-0 constant. For integer types value must be integral.
func (g *Graph) Scalar(value float64, dtype DataType) *Tensor {
	if err := checkScalar(value, dtype); err != nil {
		g.setErr(errors.WithMessage(err, "Scalar"))
		return nil
	}
	return g.opNoName("constantWithScalar:dataType:", value, dtype)
}

// Fill adds a constant of the given shape with every element set to value.
// For integer types value must be integral.
func (g *Graph) Fill(value float64, shape Shape, dtype DataType) *Tensor {
	if err := checkScalar(value, dtype); err != nil {
		g.setErr(errors.WithMessage(err, "Fill"))
		return nil
	}
	return g.opNoName("constantWithScalar:shape:dataType:", value, shape, dtype)
}

// Zeros is Fill with 0.
func (g *Graph) Zeros(shape Shape, dtype DataType) *Tensor {
	return g.Fill(0, shape, dtype)
}

// Ones is Fill with 1.
func (g *Graph) Ones(shape Shape, dtype DataType) *Tensor {
	return g.Fill(1, shape, dtype)
}

// ConstantComplex adds a complex scalar constant. dtype must be a complex
// type.
func (g *Graph) ConstantComplex(re, im float64, dtype DataType) *Tensor {
	if !dtype.IsComplex() {
		g.setErr(errors.Errorf("ConstantComplex: %s is not a complex type", dtype))
		return nil
	}
	return g.opNoName("constantWithRealPart:imaginaryPart:dataType:", re, im, dtype)
}

// FillComplex is ConstantComplex broadcast to shape.
func (g *Graph) FillComplex(re, im float64, shape Shape, dtype DataType) *Tensor {
	if !dtype.IsComplex() {
		g.setErr(errors.Errorf("FillComplex: %s is not a complex type", dtype))
		return nil
	}
	return g.opNoName("constantWithRealPart:imaginaryPart:shape:dataType:", re, im, shape, dtype)
}

// Variable adds a variable initialized with data. Variables keep their
// value across runs and are updated with Assign.
func (g *Graph) Variable(name string, data []byte, shape Shape, dtype DataType) *Tensor {
	if shape == nil {
		shape = Shape{}
	}
	if err := checkData(data, shape, dtype); err != nil {
		g.setErr(errors.WithMessagef(err, "Variable %q", name))
		return nil
	}
	if name == "" {
		name = g.genName("variable")
	} else {
		name = g.scoped(name)
	}
	nsData := bridge.Data(data)
	defer nsData.Release()
	obj, ok := g.send("variableWithData:shape:dataType:name:", name, []any{nsData, shape, dtype})
	if !ok {
		return nil
	}
	return g.tensor(obj)
}

// VariableFrom adds a variable initialized with the value of a constant
// tensor.
func (g *Graph) VariableFrom(t *Tensor) *Tensor {
	return g.op("variable", "variableFromTensorWithTensor:name:", t)
}

// Read returns the current value of a variable.
func (g *Graph) Read(variable *Tensor) *Tensor {
	return g.op("read", "readVariable:name:", variable)
}

// Assign returns the operation that stores value into variable. Pass it as
// a target operation when running the graph.
func (g *Graph) Assign(variable, value *Tensor) *Operation {
	return g.operation("assign", "assignVariable:withValueOfTensor:name:", variable, value)
}
