package types

import (
	"math"
	"testing"

	"github.com/gomlx/gomlx/pkg/core/dtypes"
	"github.com/gomlx/gomlx/pkg/core/dtypes/bfloat16"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestDataTypeEncoding(t *testing.T) {
	// Values are part of the MPSDataType ABI.
	assert.Equal(t, DataType(0x10000020), Float32)
	assert.Equal(t, DataType(0x10000010), Float16)
	assert.Equal(t, DataType(0x90000010), BFloat16)
	assert.Equal(t, DataType(0x11000040), ComplexFloat32)
	assert.Equal(t, DataType(0x20000020), Int32)
	assert.Equal(t, DataType(8), UInt8)
	assert.Equal(t, DataType(0x80000008), Bool)
}

func TestDataTypeProperties(t *testing.T) {
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 2, BFloat16.Size())
	assert.Equal(t, 8, ComplexFloat32.Size())
	assert.Equal(t, 1, Int4.Size())
	assert.Equal(t, 4, Int4.BitSize())
	assert.Equal(t, 1, Bool.Size())

	assert.True(t, Float16.IsFloat())
	assert.True(t, ComplexFloat16.IsFloat())
	assert.True(t, ComplexFloat16.IsComplex())
	assert.False(t, Float32.IsComplex())
	assert.True(t, Int8.IsSigned())
	assert.False(t, UInt8.IsSigned())
	assert.True(t, UInt64.IsInteger())
	assert.False(t, Bool.IsInteger())
	assert.False(t, BFloat16.IsInteger())

	assert.True(t, Int16.Valid())
	assert.False(t, Invalid.Valid())
	assert.False(t, DataType(0x1234).Valid())
	assert.Equal(t, "BFloat16", BFloat16.String())
	assert.Equal(t, "DataType(0x00001234)", DataType(0x1234).String())
}

func TestDTypeConversion(t *testing.T) {
	for _, dt := range []DataType{Float32, Float16, BFloat16, Int8, Int64, UInt32, Bool, ComplexFloat32} {
		assert.Equal(t, dt, FromDType(dt.DType()), dt.String())
	}
	assert.Equal(t, dtypes.Int32, Int32.DType())
	assert.Equal(t, dtypes.InvalidDType, Int4.DType())
	assert.Equal(t, Invalid, FromDType(dtypes.Float64))
}

func TestShape(t *testing.T) {
	s := Make(2, Dynamic, 3)
	assert.Equal(t, 3, s.Rank())
	assert.False(t, s.IsStatic())
	assert.Equal(t, int64(-1), s.Size())
	assert.Equal(t, "(2, ?, 3)", s.String())

	static := Make(2, 3)
	assert.True(t, static.IsStatic())
	assert.Equal(t, int64(6), static.Size())

	scalar := Make()
	assert.NotNil(t, scalar)
	assert.Equal(t, int64(1), scalar.Size())
	assert.Equal(t, "()", scalar.String())

	var unranked Shape
	assert.Equal(t, "(unranked)", unranked.String())
	assert.False(t, unranked.IsStatic())
	assert.False(t, unranked.Equal(scalar))
	assert.True(t, static.Equal(Shape{2, 3}))

	clone := static.Clone()
	clone[0] = 7
	assert.Equal(t, int64(2), static[0])
	assert.Nil(t, unranked.Clone())
}

func TestFlatRoundTrip(t *testing.T) {
	assert.Equal(t, Float32, DataTypeOf[float32]())
	assert.Equal(t, Float16, DataTypeOf[float16.Float16]())
	assert.Equal(t, BFloat16, DataTypeOf[bfloat16.BFloat16]())
	assert.Equal(t, Bool, DataTypeOf[bool]())
	assert.Equal(t, ComplexFloat32, DataTypeOf[complex64]())

	ints := []int32{1, -2, 3}
	b := Bytes(ints)
	assert.Equal(t, []byte{1, 0, 0, 0, 0xfe, 0xff, 0xff, 0xff, 3, 0, 0, 0}, b)
	assert.Equal(t, ints, must.M1(Flat[int32](b)))

	_, err := Flat[int32](b[:5])
	require.ErrorContains(t, err, "not a multiple")
	assert.Equal(t, []byte{}, Bytes([]float32(nil)))
}

func TestEncodeDecodeFloat64s(t *testing.T) {
	values := []float64{0, 1.5, -2}
	for _, dt := range []DataType{Float32, Float16, BFloat16, ComplexFloat32} {
		b := must.M1(EncodeFloat64s(values, dt))
		assert.Len(t, b, len(values)*dt.Size(), dt.String())
		assert.Equal(t, values, must.M1(DecodeFloat64s(b, dt)), dt.String())
	}
	b := must.M1(EncodeFloat64s([]float64{3, -1}, Int8))
	assert.Equal(t, []byte{3, 0xff}, b)
	b = must.M1(EncodeFloat64s([]float64{0, 2}, Bool))
	assert.Equal(t, []float64{0, 1}, must.M1(DecodeFloat64s(b, Bool)))

	_, err := EncodeFloat64s(values, Int4)
	require.Error(t, err)
	_, err = DecodeFloat64s(nil, ComplexFloat16)
	require.Error(t, err)

	assert.True(t, IsIntegral(3))
	assert.False(t, IsIntegral(0.5))
	assert.False(t, IsIntegral(math.Inf(1)))
}
