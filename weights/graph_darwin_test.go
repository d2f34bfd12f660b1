//go:build darwin && cgo

package weights

import (
	"path/filepath"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/go-mpsgraph/graph"
	"github.com/gomlx/go-mpsgraph/runtime"
)

func TestConstantsVariablesAndSave(t *testing.T) {
	dir := t.TempDir()
	w := must.M1(NewWriter(filepath.Join(dir, "in"+Ext)))
	require.NoError(t, AddFlat(w, "w", []float32{1, 2, 3, 4}, 2, 2))
	require.NoError(t, AddFlat(w, "b", []float32{10, 20}, 2))
	require.NoError(t, w.Close())
	f := must.M1(Read(filepath.Join(dir, "in"+Ext)))

	g := must.M1(graph.New())
	defer g.Close()
	consts := Constants(g, f)
	vars := Variables(g, f)
	y := g.Add(g.MatMul(consts["w"], g.Reshape(g.Read(vars["b"]), graph.Shape{2, 1})), g.Scalar(1, graph.Float32))
	require.NoError(t, g.Err())
	assert.Equal(t, "b", vars["b"].Name())

	results := must.M1(g.Run(nil, []*graph.Tensor{y}))
	defer results.Close()
	assert.Equal(t, []float32{51, 111}, must.M1(runtime.ToFlat[float32](results[y])))

	out := filepath.Join(dir, "out"+Ext)
	id := must.M1(Save(out, map[string]*runtime.TensorData{"y": results[y]}))
	saved := must.M1(Read(out))
	assert.Equal(t, id, saved.ID)
	assert.Equal(t, graph.Shape{2, 1}, saved.Lookup("y").Shape)
	assert.Equal(t, []float32{51, 111}, must.M1(Flat[float32](saved, "y")))

	dev := must.M1(runtime.DefaultDevice())
	td := must.M1(saved.Lookup("y").TensorData(dev))
	defer td.Close()
	assert.Equal(t, graph.Float32, td.DataType())
}
