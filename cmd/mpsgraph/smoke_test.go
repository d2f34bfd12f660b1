package main

import (
	"path/filepath"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/go-mpsgraph/types"
	"github.com/gomlx/go-mpsgraph/weights"
)

func TestSmokeWeights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smoke"+weights.Ext)
	require.NoError(t, smokeWeights(path, 4))
	f := must.M1(weights.Read(path))
	assert.Equal(t, []string{"dense/bias", "dense/kernel"}, f.Names())
	assert.Equal(t, types.Shape{4, 4}, f.Lookup("dense/kernel").Shape)
	bias := must.M1(weights.Flat[float32](f, "dense/bias"))
	assert.InDeltaSlice(t, []float32{0, 0.01, 0.02, 0.03}, bias, 1e-6)
}

func TestInspectWeights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smoke"+weights.Ext)
	require.NoError(t, smokeWeights(path, 2))
	require.NoError(t, inspect(path))
	require.Error(t, inspect(filepath.Join(t.TempDir(), "missing"+weights.Ext)))
}
