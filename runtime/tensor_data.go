package runtime

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/go-mpsgraph/internal/bridge"
	"github.com/gomlx/go-mpsgraph/types"
	"github.com/pkg/errors"
)

// TensorData is an MPSGraphTensorData: the concrete value of a tensor, fed
// to or returned by a graph execution.
type TensorData struct {
	obj *bridge.Object
}

// NewTensorData copies data, the little-endian values of a tensor of the
// given shape and type, into a new tensor data on dev.
func NewTensorData(dev *Device, data []byte, shape types.Shape, dtype types.DataType) (*TensorData, error) {
	if dev == nil {
		return nil, errors.New("NewTensorData: nil device")
	}
	if !dtype.Valid() {
		return nil, errors.Errorf("NewTensorData: invalid data type %s", dtype)
	}
	if !shape.IsStatic() {
		return nil, errors.Errorf("NewTensorData: shape %s must be static", shape)
	}
	if dtype.BitSize() >= 8 {
		if want := shape.Size() * int64(dtype.Size()); int64(len(data)) != want {
			return nil, errors.Errorf("NewTensorData: %d bytes given for a %s%s tensor of %d bytes",
				len(data), dtype, shape, want)
		}
	}
	nsData := bridge.Data(data)
	defer nsData.Release()
	dims := bridge.Int64Array(shape)
	defer dims.Release()
	obj, err := bridge.New("MPSGraphTensorData", "initWithDevice:data:shape:dataType:",
		bridge.Obj(dev.graph), bridge.Obj(nsData), bridge.Obj(dims), bridge.Uint(uint64(dtype)))
	if err != nil {
		return nil, errors.WithMessagef(err, "creating %s%s tensor data", dtype, shape)
	}
	return &TensorData{obj: obj}, nil
}

// FromFlat creates a tensor data from a flat Go slice in row-major order.
// With no dims the slice must hold one value and the result is a scalar.
func FromFlat[T types.Supported](dev *Device, flat []T, dims ...int64) (*TensorData, error) {
	return NewTensorData(dev, types.Bytes(flat), types.Make(dims...), types.DataTypeOf[T]())
}

// FromScalar creates a scalar tensor data.
func FromScalar[T types.Supported](dev *Device, value T) (*TensorData, error) {
	return FromFlat(dev, []T{value})
}

// TensorDataFromObject wraps an owned MPSGraphTensorData reference.
func TensorDataFromObject(obj *bridge.Object) *TensorData {
	if obj == nil {
		return nil
	}
	return &TensorData{obj: obj}
}

// Object returns the MPSGraphTensorData reference.
func (td *TensorData) Object() *bridge.Object {
	if td == nil {
		return nil
	}
	return td.obj
}

// Shape returns the shape of the data.
func (td *TensorData) Shape() types.Shape {
	if td == nil {
		return nil
	}
	arr, err := bridge.Send(td.obj, "shape")
	if err != nil || arr == nil {
		return nil
	}
	defer arr.Release()
	return types.Shape(bridge.ArrayInt64s(arr))
}

// DataType returns the element type of the data.
func (td *TensorData) DataType() types.DataType {
	if td == nil {
		return types.Invalid
	}
	dt, err := bridge.SendUint(td.obj, "dataType")
	if err != nil {
		return types.Invalid
	}
	return types.DataType(dt)
}

// NumBytes returns the size of the packed data.
func (td *TensorData) NumBytes() int64 {
	return numBytes(td.Shape(), td.DataType())
}

func numBytes(shape types.Shape, dtype types.DataType) int64 {
	return (shape.Size()*int64(dtype.BitSize()) + 7) / 8
}

// Bytes copies the data back to the CPU, synchronizing with the device.
func (td *TensorData) Bytes() ([]byte, error) {
	if td == nil {
		return nil, errors.New("Bytes on nil TensorData")
	}
	shape, dtype := td.Shape(), td.DataType()
	if !dtype.Valid() {
		return nil, errors.Errorf("tensor data has invalid data type %s", dtype)
	}
	nd, err := bridge.Send(td.obj, "mpsndarray")
	if err != nil {
		return nil, errors.WithMessage(err, "reading tensor data")
	}
	if nd == nil {
		return nil, errors.New("mpsndarray returned nil")
	}
	defer nd.Release()
	b := make([]byte, numBytes(shape, dtype))
	if err := bridge.ReadNDArray(nd, b); err != nil {
		return nil, errors.WithMessagef(err, "reading %s%s tensor data", dtype, shape)
	}
	return b, nil
}

// ToFlat copies the data back as a flat Go slice. T must match the data
// type exactly.
func ToFlat[T types.Supported](td *TensorData) ([]T, error) {
	want := types.DataTypeOf[T]()
	if got := td.DataType(); got != want {
		return nil, errors.Errorf("ToFlat: tensor data is %s, not %s", got, want)
	}
	b, err := td.Bytes()
	if err != nil {
		return nil, err
	}
	return types.Flat[T](b)
}

// Float64s copies the data back converted to float64, for any real type.
func (td *TensorData) Float64s() ([]float64, error) {
	b, err := td.Bytes()
	if err != nil {
		return nil, err
	}
	return types.DecodeFloat64s(b, td.DataType())
}

// Close releases the tensor data.
func (td *TensorData) Close() {
	if td != nil {
		td.obj.Release()
	}
}

// String implements fmt.Stringer.
func (td *TensorData) String() string {
	if td == nil || !td.obj.Valid() {
		return "TensorData(nil)"
	}
	shape, dtype := td.Shape(), td.DataType()
	return fmt.Sprintf("TensorData(%s%s, %s)", dtype, shape, humanize.IBytes(uint64(numBytes(shape, dtype))))
}
