package runtime

import (
	"testing"

	"github.com/gomlx/go-mpsgraph/internal/bridge"
	"github.com/gomlx/go-mpsgraph/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandBufferStatusString(t *testing.T) {
	assert.Equal(t, "Completed", StatusCompleted.String())
	assert.Equal(t, "Error", StatusError.String())
	assert.Equal(t, "CommandBufferStatus(9)", CommandBufferStatus(9).String())
}

func TestNumBytes(t *testing.T) {
	assert.Equal(t, int64(24), numBytes(types.Shape{2, 3}, types.Float32))
	assert.Equal(t, int64(2), numBytes(types.Shape{3}, types.Int4))
	assert.Equal(t, int64(8), numBytes(types.Shape{}, types.ComplexFloat32))
	assert.Equal(t, int64(0), numBytes(types.Shape{0, 5}, types.Int64))
}

func TestNewTensorDataValidation(t *testing.T) {
	_, err := NewTensorData(nil, nil, types.Shape{1}, types.Float32)
	require.Error(t, err)

	dev := &Device{}
	_, err = NewTensorData(dev, make([]byte, 4), types.Shape{1}, types.Invalid)
	require.ErrorContains(t, err, "invalid data type")
	_, err = NewTensorData(dev, make([]byte, 4), types.Shape{types.Dynamic}, types.Float32)
	require.ErrorContains(t, err, "must be static")
	_, err = NewTensorData(dev, make([]byte, 6), types.Shape{2}, types.Float32)
	require.ErrorContains(t, err, "6 bytes")
}

func TestNilTensorData(t *testing.T) {
	var td *TensorData
	assert.Nil(t, td.Shape())
	assert.Equal(t, types.Invalid, td.DataType())
	assert.Equal(t, "TensorData(nil)", td.String())
	_, err := td.Bytes()
	require.Error(t, err)
	td.Close()
	assert.Nil(t, TensorDataFromObject(nil))
}

func TestUnavailable(t *testing.T) {
	if bridge.Available() {
		t.Skip("Metal is available")
	}
	_, err := NewDevice()
	require.ErrorIs(t, err, ErrUnavailable)
}
