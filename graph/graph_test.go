package graph

import (
	"testing"

	"github.com/gomlx/go-mpsgraph/internal/bridge"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenNameScopes(t *testing.T) {
	g := &Graph{}
	assert.Equal(t, "add_0", g.genName("add"))
	g.Scope("layer", func() {
		assert.Equal(t, "layer/mul_1", g.genName("mul"))
		g.Scope("inner", func() {
			assert.Equal(t, "layer/inner/x", g.scoped("x"))
		})
	})
	assert.Equal(t, "sub_2", g.genName("sub"))

	scoped := &Graph{}
	WithNameScope("model")(scoped)
	WithNameScope("")(scoped)
	assert.Equal(t, "model/relu_0", scoped.genName("relu"))
}

func TestFirstErrorWins(t *testing.T) {
	g := &Graph{}
	require.NoError(t, g.Err())
	g.setErr(errors.New("first"))
	g.setErr(errors.New("second"))
	assert.EqualError(t, g.Err(), "first")
}

func TestNilInputsSkipOps(t *testing.T) {
	g := &Graph{}
	assert.Nil(t, g.Add(nil, nil))
	assert.Nil(t, g.Relu(nil))
	assert.Nil(t, g.Concat(0, nil, nil))
	assert.Nil(t, g.If(nil, nil, nil))
	require.NoError(t, g.Err(), "nil inputs must not record errors")
}

func TestForeignTensorFails(t *testing.T) {
	g, other := &Graph{}, &Graph{}
	foreign := &Tensor{graph: other}
	assert.Nil(t, g.Neg(foreign))
	require.ErrorContains(t, g.Err(), "another graph")
}

func TestCallMarshaling(t *testing.T) {
	c := &call{}
	defer c.release()
	assert.Equal(t, bridge.Int(3), c.arg(3))
	assert.Equal(t, bridge.Int(-1), c.arg(int32(-1)))
	assert.Equal(t, bridge.Uint(7), c.arg(uint32(7)))
	assert.Equal(t, bridge.Float(0.5), c.arg(float32(0.5)))
	assert.Equal(t, bridge.Bool(true), c.arg(true))
	assert.Equal(t, bridge.Uint(uint64(Float32)), c.arg(Float32))
	assert.Equal(t, bridge.Uint(2), c.arg(PaddingSame))
	assert.Equal(t, bridge.Nil(), c.arg(nil))
	assert.Equal(t, bridge.Nil(), c.arg(Shape(nil)))
	assert.Equal(t, bridge.Nil(), c.arg(opt(nil)))
	require.NoError(t, c.err)

	c.arg(struct{}{})
	require.ErrorContains(t, c.err, "cannot marshal")
}

func TestCheckRun(t *testing.T) {
	g := &Graph{}
	require.ErrorContains(t, g.checkRun("Run", []*Tensor{nil}), "target 0 is nil")
	g.setErr(errors.New("bad op"))
	require.ErrorContains(t, g.checkRun("Run", nil), "bad op")
	assert.Nil(t, targetOps(nil))
}

func TestNilDescriptors(t *testing.T) {
	obj, err := (*CompilationDescriptor)(nil).build()
	require.NoError(t, err)
	assert.Nil(t, obj)
	assert.Equal(t, OptimizationLevel1, DefaultCompilationDescriptor().OptimizationLevel)
	assert.Equal(t, RNNActivationSigmoid, DefaultLSTMDescriptor().ForgetGateActivation)
	assert.Equal(t, RNNActivationTanh, DefaultGRUDescriptor().OutputGateActivation)
}

func TestDescriptorHelpers(t *testing.T) {
	assert.Equal(t, 1, atLeast1(0))
	assert.Equal(t, 3, atLeast1(3))
	assert.Equal(t, []int{1, 1, 1}, onesIfEmpty(nil, 3))
	assert.Equal(t, []int{2, 2}, onesIfEmpty([]int{2, 2}, 3))
}

func TestUnavailable(t *testing.T) {
	if bridge.Available() {
		t.Skip("MPSGraph is available")
	}
	_, err := New()
	require.ErrorIs(t, err, ErrUnavailable)
	_, err = NewShapedType(Shape{2}, Float32)
	require.Error(t, err)
}

func TestVerboseFromEnv(t *testing.T) {
	t.Setenv(VerboseEnv, "1")
	assert.True(t, verboseFromEnv())
	t.Setenv(VerboseEnv, "false")
	assert.False(t, verboseFromEnv())
	t.Setenv(VerboseEnv, "")
	assert.False(t, verboseFromEnv())
}

func TestScalarValidation(t *testing.T) {
	require.NoError(t, checkScalar(3, Int32))
	require.NoError(t, checkScalar(200, UInt8))
	require.NoError(t, checkScalar(0.5, Float16))
	require.ErrorContains(t, checkScalar(0.5, Int32), "not representable as Int32")

	g := &Graph{}
	assert.Nil(t, g.Scalar(0.25, Int64))
	require.ErrorContains(t, g.Err(), "Scalar")

	g = &Graph{}
	assert.Nil(t, g.Fill(1.5, Shape{2}, UInt16))
	require.ErrorContains(t, g.Err(), "Fill")
}

func TestHammingDistanceResultType(t *testing.T) {
	g := &Graph{}
	assert.Nil(t, g.HammingDistance(nil, nil, Float32))
	require.ErrorContains(t, g.Err(), "not an integer type")
}

func TestFailedBlockScopeDropsResults(t *testing.T) {
	g := &Graph{}
	s := g.newBlockScope("If")
	out := []*Tensor{{graph: g}}
	assert.Equal(t, out, s.results(out))

	g.setErr(errors.New("op inside the closure failed"))
	s.fail(errors.New("closure returned nil for result 0"))
	assert.Nil(t, s.results(out))
	require.ErrorContains(t, g.Err(), "op inside the closure failed")
}
