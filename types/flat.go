package types

import (
	"math"
	"unsafe"

	"github.com/gomlx/gomlx/pkg/core/dtypes/bfloat16"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// Supported lists the Go element types that map directly onto an MPSDataType.
type Supported interface {
	bool | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 |
		float32 | float16.Float16 | bfloat16.BFloat16 | complex64
}

// DataTypeOf returns the MPSDataType of the Go type T.
func DataTypeOf[T Supported]() DataType {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Bool
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return UInt8
	case uint16:
		return UInt16
	case uint32:
		return UInt32
	case uint64:
		return UInt64
	case float32:
		return Float32
	case float16.Float16:
		return Float16
	case bfloat16.BFloat16:
		return BFloat16
	case complex64:
		return ComplexFloat32
	}
	return Invalid
}

// Bytes returns a copy of flat as raw little-endian bytes.
func Bytes[T Supported](flat []T) []byte {
	if len(flat) == 0 {
		return []byte{}
	}
	n := len(flat) * int(unsafe.Sizeof(flat[0]))
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(&flat[0])), n))
	return out
}

// Flat reinterprets raw bytes as a freshly allocated []T.
func Flat[T Supported](b []byte) ([]T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if len(b)%size != 0 {
		return nil, errors.Errorf("%d bytes is not a multiple of the %s element size %d",
			len(b), DataTypeOf[T](), size)
	}
	flat := make([]T, len(b)/size)
	if len(flat) > 0 {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&flat[0])), len(b)), b)
	}
	return flat, nil
}

// EncodeFloat64s converts values to the raw encoding of dt. It is used for
// constants given as plain numbers.
func EncodeFloat64s(values []float64, dt DataType) ([]byte, error) {
	switch dt {
	case Float32:
		return Bytes(convert(values, func(v float64) float32 { return float32(v) })), nil
	case Float16:
		return Bytes(convert(values, func(v float64) float16.Float16 { return float16.Fromfloat32(float32(v)) })), nil
	case BFloat16:
		return Bytes(convert(values, func(v float64) bfloat16.BFloat16 { return bfloat16.FromFloat32(float32(v)) })), nil
	case Int8:
		return Bytes(convert(values, func(v float64) int8 { return int8(v) })), nil
	case Int16:
		return Bytes(convert(values, func(v float64) int16 { return int16(v) })), nil
	case Int32:
		return Bytes(convert(values, func(v float64) int32 { return int32(v) })), nil
	case Int64:
		return Bytes(convert(values, func(v float64) int64 { return int64(v) })), nil
	case UInt8:
		return Bytes(convert(values, func(v float64) uint8 { return uint8(v) })), nil
	case UInt16:
		return Bytes(convert(values, func(v float64) uint16 { return uint16(v) })), nil
	case UInt32:
		return Bytes(convert(values, func(v float64) uint32 { return uint32(v) })), nil
	case UInt64:
		return Bytes(convert(values, func(v float64) uint64 { return uint64(v) })), nil
	case Bool:
		return Bytes(convert(values, func(v float64) bool { return v != 0 })), nil
	case ComplexFloat32:
		return Bytes(convert(values, func(v float64) complex64 { return complex(float32(v), 0) })), nil
	}
	return nil, errors.Errorf("cannot encode numbers as %s", dt)
}

// DecodeFloat64s converts raw data of type dt to float64 values. Complex
// values keep their real part.
func DecodeFloat64s(b []byte, dt DataType) ([]float64, error) {
	switch dt {
	case Float32:
		return decode[float32](b, func(v float32) float64 { return float64(v) })
	case Float16:
		return decode[float16.Float16](b, func(v float16.Float16) float64 { return float64(v.Float32()) })
	case BFloat16:
		return decode[bfloat16.BFloat16](b, func(v bfloat16.BFloat16) float64 { return float64(v.Float32()) })
	case Int8:
		return decode[int8](b, func(v int8) float64 { return float64(v) })
	case Int16:
		return decode[int16](b, func(v int16) float64 { return float64(v) })
	case Int32:
		return decode[int32](b, func(v int32) float64 { return float64(v) })
	case Int64:
		return decode[int64](b, func(v int64) float64 { return float64(v) })
	case UInt8:
		return decode[uint8](b, func(v uint8) float64 { return float64(v) })
	case UInt16:
		return decode[uint16](b, func(v uint16) float64 { return float64(v) })
	case UInt32:
		return decode[uint32](b, func(v uint32) float64 { return float64(v) })
	case UInt64:
		return decode[uint64](b, func(v uint64) float64 { return float64(v) })
	case Bool:
		return decode[bool](b, func(v bool) float64 {
			if v {
				return 1
			}
			return 0
		})
	case ComplexFloat32:
		return decode[complex64](b, func(v complex64) float64 { return float64(real(v)) })
	}
	return nil, errors.Errorf("cannot decode %s as numbers", dt)
}

func convert[T any](values []float64, fn func(float64) T) []T {
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = fn(v)
	}
	return out
}

func decode[T Supported](b []byte, fn func(T) float64) ([]float64, error) {
	flat, err := Flat[T](b)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(flat))
	for i, v := range flat {
		out[i] = fn(v)
	}
	return out, nil
}

// IsIntegral reports whether v has no fractional part, the condition for
// passing a scalar to integer-typed constants without loss.
func IsIntegral(v float64) bool {
	return v == math.Trunc(v) && !math.IsInf(v, 0)
}
