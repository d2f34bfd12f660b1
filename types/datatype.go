// Package types holds the value types shared by the graph and runtime
// packages: MPSDataType and tensor shapes, plus conversions between Go flat
// slices and the raw bytes MPSGraph consumes.
package types

import (
	"fmt"

	"github.com/gomlx/gomlx/pkg/core/dtypes"
)

// DataType mirrors MPSDataType. Values use Apple's encoding: the low 16 bits
// are the bit width, the high bits flag float, signed, complex and
// alternate encodings.
type DataType uint32

const (
	floatBit             = 0x10000000
	complexBit           = 0x01000000
	signedBit            = 0x20000000
	alternateEncodingBit = 0x80000000
	bitsMask             = 0x0000FFFF
)

// MPSDataType values.
const (
	Invalid        DataType = 0
	Float32        DataType = floatBit | 32
	Float16        DataType = floatBit | 16
	BFloat16       DataType = alternateEncodingBit | Float16
	ComplexFloat32 DataType = floatBit | complexBit | 64
	ComplexFloat16 DataType = floatBit | complexBit | 32
	Int4           DataType = signedBit | 4
	Int8           DataType = signedBit | 8
	Int16          DataType = signedBit | 16
	Int32          DataType = signedBit | 32
	Int64          DataType = signedBit | 64
	UInt4          DataType = 4
	UInt8          DataType = 8
	UInt16         DataType = 16
	UInt32         DataType = 32
	UInt64         DataType = 64
	Bool           DataType = alternateEncodingBit | UInt8
)

var dataTypeNames = map[DataType]string{
	Invalid:        "Invalid",
	Float32:        "Float32",
	Float16:        "Float16",
	BFloat16:       "BFloat16",
	ComplexFloat32: "ComplexFloat32",
	ComplexFloat16: "ComplexFloat16",
	Int4:           "Int4",
	Int8:           "Int8",
	Int16:          "Int16",
	Int32:          "Int32",
	Int64:          "Int64",
	UInt4:          "UInt4",
	UInt8:          "UInt8",
	UInt16:         "UInt16",
	UInt32:         "UInt32",
	UInt64:         "UInt64",
	Bool:           "Bool",
}

// String implements fmt.Stringer.
func (dt DataType) String() string {
	if name, ok := dataTypeNames[dt]; ok {
		return name
	}
	return fmt.Sprintf("DataType(0x%08x)", uint32(dt))
}

// Valid reports whether dt is one of the known MPSDataType values.
func (dt DataType) Valid() bool {
	_, ok := dataTypeNames[dt]
	return ok && dt != Invalid
}

// BitSize is the number of bits of one element (both parts for complex types).
func (dt DataType) BitSize() int {
	return int(uint32(dt) & bitsMask)
}

// Size is the number of bytes of one element. Sub-byte types (Int4, UInt4)
// report 1, their packed storage is handled by the framework.
func (dt DataType) Size() int {
	bits := dt.BitSize()
	if bits == 0 {
		return 0
	}
	return (bits + 7) / 8
}

// IsFloat reports whether dt is a floating point type, complex included.
func (dt DataType) IsFloat() bool { return uint32(dt)&floatBit != 0 }

// IsComplex reports whether dt is a complex type.
func (dt DataType) IsComplex() bool { return uint32(dt)&complexBit != 0 }

// IsSigned reports whether dt is a signed integer type.
func (dt DataType) IsSigned() bool { return uint32(dt)&signedBit != 0 }

// IsInteger reports whether dt is an integer type (Bool excluded).
func (dt DataType) IsInteger() bool {
	return !dt.IsFloat() && dt != Bool && dt != Invalid
}

var toDType = map[DataType]dtypes.DType{
	Float32:        dtypes.Float32,
	Float16:        dtypes.Float16,
	BFloat16:       dtypes.BFloat16,
	ComplexFloat32: dtypes.Complex64,
	Int8:           dtypes.Int8,
	Int16:          dtypes.Int16,
	Int32:          dtypes.Int32,
	Int64:          dtypes.Int64,
	UInt8:          dtypes.Uint8,
	UInt16:         dtypes.Uint16,
	UInt32:         dtypes.Uint32,
	UInt64:         dtypes.Uint64,
	Bool:           dtypes.Bool,
}

// DType converts to the GoMLX dtype, or dtypes.InvalidDType when GoMLX has
// no equivalent (Int4, UInt4, ComplexFloat16).
func (dt DataType) DType() dtypes.DType {
	if d, ok := toDType[dt]; ok {
		return d
	}
	return dtypes.InvalidDType
}

// FromDType converts a GoMLX dtype. Types MPSGraph does not support
// (Float64, Complex128) map to Invalid.
func FromDType(d dtypes.DType) DataType {
	for dt, other := range toDType {
		if other == d {
			return dt
		}
	}
	return Invalid
}
