//go:build darwin && cgo

package graph

import (
	"math"
	"testing"
	"time"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/go-mpsgraph/runtime"
	"github.com/gomlx/go-mpsgraph/types"
)

func newGraph(t *testing.T) *Graph {
	t.Helper()
	g := must.M1(New())
	t.Cleanup(g.Close)
	return g
}

func device(t *testing.T) *runtime.Device {
	t.Helper()
	return must.M1(runtime.DefaultDevice())
}

func data[T types.Supported](t *testing.T, flat []T, dims ...int64) *runtime.TensorData {
	t.Helper()
	td := must.M1(runtime.FromFlat(device(t), flat, dims...))
	t.Cleanup(td.Close)
	return td
}

// run executes the graph and returns the float32 values of target.
func run(t *testing.T, g *Graph, feeds map[*Tensor]*runtime.TensorData, target *Tensor) []float32 {
	t.Helper()
	require.NoError(t, g.Err())
	results, err := g.Run(feeds, []*Tensor{target})
	require.NoError(t, err)
	defer results.Close()
	require.Contains(t, results, target)
	return must.M1(runtime.ToFlat[float32](results[target]))
}

func TestArithmetic(t *testing.T) {
	g := newGraph(t)
	x := g.Placeholder("x", Float32, Shape{2, 3})
	y := g.Relu(g.AddScalar(x, 1))
	assert.Equal(t, Shape{2, 3}, y.Shape())
	assert.Equal(t, Float32, y.DataType())
	assert.Equal(t, "x", x.Name())

	got := run(t, g, map[*Tensor]*runtime.TensorData{x: data(t, []float32{-3, -1, 0, 1, 2, 3}, 2, 3)}, y)
	assert.Equal(t, []float32{0, 0, 1, 2, 3, 4}, got)
}

func TestInterning(t *testing.T) {
	g := newGraph(t)
	x := g.Placeholder("x", Float32, Shape{2})
	y := g.Neg(x)
	inputs := y.Operation().Inputs()
	require.Len(t, inputs, 1)
	assert.Same(t, x, inputs[0])
}

func TestConstantsAndReductions(t *testing.T) {
	g := newGraph(t)
	c := Const(g, []float32{1, 2, 3, 4}, 2, 2)
	assert.Equal(t, []float32{4, 6}, run(t, g, nil, g.Sum(c, 0)))
	assert.Equal(t, []float32{2.5}, run(t, g, nil, g.Reshape(g.Mean(c, 0, 1), Shape{1})))
	assert.Equal(t, []float32{7, 10, 15, 22}, run(t, g, nil, g.MatMul(c, c)))
	assert.Equal(t, []float32{1, 3, 6, 10}, run(t, g, nil, g.CumSum(g.Reshape(c, Shape{4}), 0, false, false)))
}

func TestShapedType(t *testing.T) {
	st := must.M1(NewShapedType(Shape{2, Dynamic}, Float16))
	defer st.Close()
	assert.Equal(t, Shape{2, Dynamic}, st.Shape())
	assert.Equal(t, Float16, st.DataType())
	assert.Equal(t, 2, st.Rank())

	unranked := must.M1(NewShapedType(nil, Int32))
	defer unranked.Close()
	assert.Nil(t, unranked.Shape())
	assert.Equal(t, -1, unranked.Rank())
}

func TestIf(t *testing.T) {
	for _, pred := range []bool{true, false} {
		g := newGraph(t)
		x := Const(g, []float32{2})
		out := g.If(Const(g, []bool{pred}),
			func() []*Tensor { return []*Tensor{g.Mul(x, x)} },
			func() []*Tensor { return []*Tensor{g.Neg(x)} })
		require.Len(t, out, 1)
		want := float32(-2)
		if pred {
			want = 4
		}
		assert.Equal(t, []float32{want}, run(t, g, nil, out[0]))
	}
}

func TestForLoop(t *testing.T) {
	g := newGraph(t)
	sum := Const(g, []float32{0})
	out := g.ForN(Const(g, []int32{5}), []*Tensor{sum}, func(index *Tensor, args []*Tensor) []*Tensor {
		return []*Tensor{g.Add(args[0], g.Cast(index, Float32))}
	})
	require.Len(t, out, 1)
	// 0 + 1 + 2 + 3 + 4
	assert.Equal(t, []float32{10}, run(t, g, nil, out[0]))

	stepped := g.For(Const(g, []int32{0}), Const(g, []int32{10}), Const(g, []int32{3}),
		[]*Tensor{Const(g, []float32{0})},
		func(index *Tensor, args []*Tensor) []*Tensor {
			return []*Tensor{g.AddScalar(args[0], 1)}
		})
	require.Len(t, stepped, 1)
	assert.Equal(t, []float32{4}, run(t, g, nil, stepped[0]))
}

func TestWhile(t *testing.T) {
	g := newGraph(t)
	limit := Const(g, []float32{100})
	out := g.While([]*Tensor{Const(g, []float32{1})},
		func(state []*Tensor) (*Tensor, []*Tensor) {
			return g.Less(state[0], limit), state
		},
		func(results []*Tensor) []*Tensor {
			return []*Tensor{g.MulScalar(results[0], 2)}
		})
	require.Len(t, out, 1)
	assert.Equal(t, []float32{128}, run(t, g, nil, out[0]))
}

func TestClosurePanicBecomesError(t *testing.T) {
	g := newGraph(t)
	out := g.If(Const(g, []bool{true}),
		func() []*Tensor { panic("boom") },
		func() []*Tensor { return nil })
	assert.Nil(t, out)
	require.ErrorContains(t, g.Err(), "boom")
}

func TestClosureFailureBecomesError(t *testing.T) {
	g := newGraph(t)
	out := g.If(Const(g, []bool{true}),
		func() []*Tensor { return []*Tensor{g.Scalar(0.5, Int32)} },
		func() []*Tensor { return []*Tensor{g.Scalar(1, Int32)} })
	assert.Nil(t, out)
	require.ErrorContains(t, g.Err(), "not representable as Int32")

	g = newGraph(t)
	loop := g.ForN(Const(g, []int32{3}), []*Tensor{Const(g, []float32{0})},
		func(index *Tensor, args []*Tensor) []*Tensor {
			return []*Tensor{nil}
		})
	assert.Nil(t, loop)
	require.ErrorContains(t, g.Err(), "returned nil for result 0")
	_, err := g.Run(nil, []*Tensor{Const(g, []float32{1})})
	require.ErrorContains(t, err, "graph has errors")
}

func TestCompositeActivations(t *testing.T) {
	inputs := []float32{-2, -1, -0.5, 0, 0.5, 1, 2}
	gelu := func(x float64) float64 {
		return 0.5 * x * (1 + math.Tanh(math.Sqrt(2/math.Pi)*(x+0.044715*x*x*x)))
	}
	testCases := []struct {
		name string
		op   func(g *Graph, x *Tensor) *Tensor
		want func(x float64) float64
	}{
		{"Silu", (*Graph).Silu, func(x float64) float64 { return x / (1 + math.Exp(-x)) }},
		{"Gelu", (*Graph).Gelu, gelu},
		{"Clip", func(g *Graph, x *Tensor) *Tensor { return g.Clip(x, -1, 0.5) },
			func(x float64) float64 { return math.Max(-1, math.Min(0.5, x)) }},
		{"AddScalar", func(g *Graph, x *Tensor) *Tensor { return g.AddScalar(x, 0.5) },
			func(x float64) float64 { return x + 0.5 }},
		{"SubScalar", func(g *Graph, x *Tensor) *Tensor { return g.SubScalar(x, 3) },
			func(x float64) float64 { return x - 3 }},
		{"MulScalar", func(g *Graph, x *Tensor) *Tensor { return g.MulScalar(x, -2) },
			func(x float64) float64 { return -2 * x }},
		{"DivScalar", func(g *Graph, x *Tensor) *Tensor { return g.DivScalar(x, 4) },
			func(x float64) float64 { return x / 4 }},
		// Pow of a negative base is NaN, hence the Abs.
		{"PowScalar", func(g *Graph, x *Tensor) *Tensor { return g.PowScalar(g.Abs(x), 2) },
			func(x float64) float64 { return x * x }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := newGraph(t)
			x := g.Placeholder("x", Float32, Shape{int64(len(inputs))})
			y := tc.op(g, x)
			got := run(t, g, map[*Tensor]*runtime.TensorData{x: data(t, inputs, int64(len(inputs)))}, y)
			require.Len(t, got, len(inputs))
			for i, v := range inputs {
				assert.False(t, math.IsNaN(float64(got[i])), "%s(%g) is NaN", tc.name, v)
				assert.InDelta(t, tc.want(float64(v)), float64(got[i]), 1e-4, "%s(%g)", tc.name, v)
			}
		})
	}
}

func TestHammingDistance(t *testing.T) {
	g := newGraph(t)
	x := Const(g, []uint32{0b1011, 0}, 1, 2)
	y := Const(g, []uint32{0b0001, 0b111}, 1, 2)
	d := g.HammingDistance(x, y, UInt32)
	require.NoError(t, g.Err())
	results := must.M1(g.Run(nil, []*Tensor{d}))
	defer results.Close()
	// 2 bits differ in the first element, 3 in the second.
	assert.Equal(t, []uint32{5}, must.M1(runtime.ToFlat[uint32](results[d])))
}

func TestGradients(t *testing.T) {
	g := newGraph(t)
	x := g.Placeholder("x", Float32, Shape{3})
	loss := g.SumAxes(g.Square(x), 0)
	grads := g.Gradients(loss, []*Tensor{x})
	require.NoError(t, g.Err())
	require.Contains(t, grads, x)
	got := run(t, g, map[*Tensor]*runtime.TensorData{x: data(t, []float32{1, -2, 3}, 3)}, grads[x])
	assert.Equal(t, []float32{2, -4, 6}, got)
}

func TestVariableAssign(t *testing.T) {
	g := newGraph(t)
	v := g.VariableFrom(Const(g, []float32{1, 2}, 2))
	assign := g.Assign(v, g.MulScalar(g.Read(v), 3))
	require.NoError(t, g.Err())

	results := must.M1(g.Run(nil, nil, assign))
	results.Close()
	assert.Equal(t, []float32{3, 6}, run(t, g, nil, g.Read(v)))
}

func TestRunAsyncAndEncode(t *testing.T) {
	g := newGraph(t)
	x := g.Placeholder("x", Int32, Shape{3})
	y := g.Mul(x, x)
	require.NoError(t, g.Err())
	feeds := map[*Tensor]*runtime.TensorData{x: data(t, []int32{1, 2, 3}, 3)}

	queue := must.M1(device(t).NewCommandQueue())
	defer queue.Close()
	done := must.M1(g.RunAsync(queue, feeds, []*Tensor{y}, nil))
	select {
	case res := <-done:
		require.NoError(t, res.Err)
		defer res.Results.Close()
		assert.Equal(t, []int32{1, 4, 9}, must.M1(runtime.ToFlat[int32](res.Results[y])))
	case <-time.After(10 * time.Second):
		t.Fatal("RunAsync did not complete")
	}

	cb := must.M1(queue.NewCommandBuffer())
	defer cb.Close()
	results := must.M1(g.Encode(cb, feeds, []*Tensor{y}, nil))
	defer results.Close()
	require.NoError(t, cb.Commit())
	require.NoError(t, cb.WaitUntilCompleted())
	assert.Equal(t, []int32{1, 4, 9}, must.M1(runtime.ToFlat[int32](results[y])))
}

func TestCompileSerializeLoad(t *testing.T) {
	g := newGraph(t)
	dev := device(t)
	x := g.Placeholder("x", Float32, Shape{4})
	y := g.Sigmoid(g.Neg(g.Neg(x)))
	st := must.M1(NewShapedType(Shape{4}, Float32))
	defer st.Close()

	exec, err := g.Compile(dev, map[*Tensor]*ShapedType{x: st}, []*Tensor{y}, DefaultCompilationDescriptor())
	require.NoError(t, err)
	defer exec.Close()
	require.Len(t, exec.FeedTensors(), 1)
	assert.Same(t, x, exec.FeedTensors()[0])
	assert.Same(t, y, exec.TargetTensors()[0])

	queue := must.M1(dev.NewCommandQueue())
	defer queue.Close()
	in := []*runtime.TensorData{data(t, []float32{0, 0, 0, 0}, 4)}
	out := must.M1(exec.Run(queue, in, nil))
	require.Len(t, out, 1)
	assert.Equal(t, []float32{0.5, 0.5, 0.5, 0.5}, must.M1(runtime.ToFlat[float32](out[0])))
	out[0].Close()

	_, err = exec.Run(queue, nil, nil)
	require.ErrorContains(t, err, "0 inputs given")

	outTypes := must.M1(exec.OutputTypes(dev, []*ShapedType{st}, nil))
	require.Len(t, outTypes, 1)
	assert.Equal(t, Shape{4}, outTypes[0].Shape())
	outTypes[0].Close()

	path := must.M1(exec.SerializeToDir(t.TempDir(), nil))
	loaded := must.M1(LoadPackage(path, nil))
	defer loaded.Close()
	require.Len(t, loaded.FeedTensors(), 1)
	assert.Nil(t, loaded.FeedTensors()[0].Graph())
	require.NoError(t, loaded.Specialize(dev, []*ShapedType{st}, nil))
	out = must.M1(loaded.Run(queue, in, &ExecutableExecutionDescriptor{WaitUntilCompleted: true}))
	assert.Equal(t, []float32{0.5, 0.5, 0.5, 0.5}, must.M1(runtime.ToFlat[float32](out[0])))
	out[0].Close()
}

func TestRunRejectsBrokenGraph(t *testing.T) {
	g := newGraph(t)
	x := g.Placeholder("x", Float32, Shape{2})
	assert.Nil(t, g.Sparse(nil, []*Tensor{x}, Shape{2}))
	require.Error(t, g.Err())
	_, err := g.Run(nil, []*Tensor{x})
	require.ErrorContains(t, err, "graph has errors")
}
