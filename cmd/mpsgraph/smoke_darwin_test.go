//go:build darwin && cgo

package main

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/go-mpsgraph/graph"
	"github.com/gomlx/go-mpsgraph/runtime"
	"github.com/gomlx/go-mpsgraph/weights"
)

func TestSmokeGraphIsFinite(t *testing.T) {
	const size = 8
	path := filepath.Join(t.TempDir(), "smoke"+weights.Ext)
	require.NoError(t, smokeWeights(path, size))
	f := must.M1(weights.Read(path))

	g := must.M1(graph.New())
	defer g.Close()
	x, y, mean := buildSmoke(g, f, size)
	require.NoError(t, g.Err())

	// Negative inputs give negative pre-activations to the gelu.
	input := make([]float32, 2*size)
	for i := range input {
		input[i] = float32(i) - size
	}
	dev := must.M1(runtime.DefaultDevice())
	xData := must.M1(runtime.FromFlat(dev, input, 2, size))
	defer xData.Close()
	results := must.M1(g.RunOnDevice(dev, map[*graph.Tensor]*runtime.TensorData{x: xData}, []*graph.Tensor{y, mean}))
	defer results.Close()

	values := must.M1(runtime.ToFlat[float32](results[y]))
	require.Len(t, values, 2*size)
	for i, v := range values {
		assert.False(t, math.IsNaN(float64(v)), "output %d is NaN", i)
	}
	assert.False(t, math.IsNaN(float64(must.M1(runtime.ToFlat[float32](results[mean]))[0])))
}
