//go:build darwin && cgo

package runtime

import (
	"testing"
	"time"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/gomlx/go-mpsgraph/types"
)

func TestDefaultDevice(t *testing.T) {
	dev := must.M1(DefaultDevice())
	assert.NotEmpty(t, dev.Name())
	assert.Same(t, dev, must.M1(DefaultDevice()))
	assert.Greater(t, dev.RecommendedMaxWorkingSetSize(), uint64(0))
	dev.Close()
	assert.True(t, dev.Object().Valid(), "closing the default device is a no-op")
}

func TestTensorDataRoundTrip(t *testing.T) {
	dev := must.M1(DefaultDevice())

	td, err := FromFlat(dev, []float32{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	defer td.Close()
	assert.Equal(t, types.Shape{2, 3}, td.Shape())
	assert.Equal(t, types.Float32, td.DataType())
	assert.Equal(t, int64(24), td.NumBytes())
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, must.M1(ToFlat[float32](td)))
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, must.M1(td.Float64s()))

	_, err = ToFlat[int32](td)
	require.ErrorContains(t, err, "not Int32")

	half := must.M1(FromFlat(dev, []float16.Float16{float16.Fromfloat32(0.5), float16.Fromfloat32(-2)}, 2))
	defer half.Close()
	assert.Equal(t, types.Float16, half.DataType())
	assert.Equal(t, []float64{0.5, -2}, must.M1(half.Float64s()))

	scalar := must.M1(FromScalar(dev, int64(7)))
	defer scalar.Close()
	assert.Equal(t, types.Shape{}, scalar.Shape())
	assert.Equal(t, []int64{7}, must.M1(ToFlat[int64](scalar)))
}

func TestCommandBufferLifecycle(t *testing.T) {
	dev := must.M1(DefaultDevice())
	queue := must.M1(dev.NewCommandQueue())
	defer queue.Close()

	cb := must.M1(queue.NewCommandBuffer())
	defer cb.Close()
	require.NoError(t, cb.SetLabel("test"))
	assert.Equal(t, "test", cb.Label())
	assert.Equal(t, StatusNotEnqueued, cb.Status())
	root := must.M1(cb.RootCommandBuffer())
	root.Release()

	require.NoError(t, cb.Commit())
	require.NoError(t, cb.WaitUntilCompleted())
	assert.Equal(t, StatusCompleted, cb.Status())
	assert.NoError(t, cb.Err())
	assert.GreaterOrEqual(t, must.M1(cb.GPUTime()), time.Duration(0))
}

func TestSharedEvent(t *testing.T) {
	dev := must.M1(DefaultDevice())
	event := must.M1(dev.NewSharedEvent())
	defer event.Close()
	assert.Equal(t, uint64(0), must.M1(event.SignaledValue()))
	require.NoError(t, event.Signal(3))
	assert.Equal(t, uint64(3), must.M1(event.SignaledValue()))
}
