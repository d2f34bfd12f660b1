// Package graph builds and runs MetalPerformanceShadersGraph (MPSGraph)
// programs.
//
// A Graph is created with New, tensors are added with Placeholder, Constant
// and the op methods, and the graph is either run directly (Run, RunAsync,
// Encode) or compiled into an Executable.
//
// Example:
//
//	g, err := graph.New()
//	if err != nil { ... }
//	defer g.Close()
//	x := g.Placeholder("x", graph.Float32, graph.Shape{2, 3})
//	y := g.Relu(g.Add(x, g.Scalar(1, graph.Float32)))
//	if err := g.Err(); err != nil { ... }
//	results, err := g.Run(map[*graph.Tensor]*runtime.TensorData{x: data}, []*graph.Tensor{y})
//
// Op methods never return errors: the first failure is recorded in the graph
// and returned by Err, and the failing op returns nil. Ops given a nil input
// return nil without recording anything new, so a chain of ops only reports
// its root cause.
//
// A Graph is not safe for concurrent construction.
package graph

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gomlx/go-mpsgraph/internal/bridge"
	"github.com/gomlx/go-mpsgraph/types"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ErrUnavailable is returned when MPSGraph cannot be used on this platform.
var ErrUnavailable = bridge.ErrUnavailable

// DataType mirrors MPSDataType.
type DataType = types.DataType

// Shape is a list of dimensions; Dynamic (-1) marks an unknown dimension.
type Shape = types.Shape

// Data type constants.
const (
	Invalid        = types.Invalid
	Float32        = types.Float32
	Float16        = types.Float16
	BFloat16       = types.BFloat16
	ComplexFloat32 = types.ComplexFloat32
	ComplexFloat16 = types.ComplexFloat16
	Int4           = types.Int4
	Int8           = types.Int8
	Int16          = types.Int16
	Int32          = types.Int32
	Int64          = types.Int64
	UInt4          = types.UInt4
	UInt8          = types.UInt8
	UInt16         = types.UInt16
	UInt32         = types.UInt32
	UInt64         = types.UInt64
	Bool           = types.Bool
)

// Dynamic marks a dimension only known at run time.
const Dynamic = types.Dynamic

// Options mirrors MPSGraphOptions.
type Options uint64

const (
	OptionsNone               Options = 0
	OptionsSynchronizeResults Options = 1
	OptionsVerbose            Options = 2
	OptionsDefault                    = OptionsSynchronizeResults
)

// VerboseEnv is the environment variable that, when set to a non-empty value
// other than "0" or "false", adds OptionsVerbose to new graphs.
const VerboseEnv = "MPSGRAPH_VERBOSE"

// Graph is an MPSGraph under construction.
type Graph struct {
	obj     *bridge.Object
	options Options
	err     error
	nextID  int
	scope   []string

	// mu guards tensors, which are also interned from completion handlers.
	mu      sync.Mutex
	tensors map[uintptr]*Tensor
}

// Option configures a Graph created by New.
type Option func(*Graph)

// WithOptions sets the MPSGraphOptions of the graph.
func WithOptions(options Options) Option {
	return func(g *Graph) { g.options = options }
}

// WithNameScope prefixes the names of every tensor the graph generates.
func WithNameScope(scope string) Option {
	return func(g *Graph) {
		if scope != "" {
			g.scope = append(g.scope, scope)
		}
	}
}

// New creates an empty graph.
func New(opts ...Option) (*Graph, error) {
	if !bridge.Available() {
		return nil, ErrUnavailable
	}
	g := &Graph{
		options: OptionsDefault,
		tensors: make(map[uintptr]*Tensor),
	}
	for _, opt := range opts {
		opt(g)
	}
	if verboseFromEnv() {
		g.options |= OptionsVerbose
	}
	obj, err := bridge.New("MPSGraph", "init")
	if err != nil {
		return nil, errors.Wrap(err, "creating MPSGraph")
	}
	g.obj = obj
	if err := g.SetOptions(g.options); err != nil {
		obj.Release()
		return nil, err
	}
	klog.V(1).Infof("graph: created MPSGraph with options %d", g.options)
	return g, nil
}

func verboseFromEnv() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(VerboseEnv)))
	return v != "" && v != "0" && v != "false"
}

// SetOptions changes the MPSGraphOptions of the graph.
func (g *Graph) SetOptions(options Options) error {
	if err := bridge.SendVoid(g.obj, "setOptions:", bridge.Uint(uint64(options))); err != nil {
		return errors.Wrap(err, "setting graph options")
	}
	g.options = options
	return nil
}

// Options returns the MPSGraphOptions of the graph.
func (g *Graph) Options() Options {
	return g.options
}

// Err returns the first error encountered while building the graph, if any.
func (g *Graph) Err() error {
	return g.err
}

// setErr records the first error encountered.
func (g *Graph) setErr(err error) {
	if g.err == nil {
		g.err = err
		klog.V(2).Infof("graph: %v", err)
	}
}

// genName generates a unique, scoped name for a generated tensor.
func (g *Graph) genName(prefix string) string {
	name := fmt.Sprintf("%s_%d", prefix, g.nextID)
	g.nextID++
	return g.scoped(name)
}

func (g *Graph) scoped(name string) string {
	if len(g.scope) == 0 {
		return name
	}
	return strings.Join(g.scope, "/") + "/" + name
}

// Scope runs fn with name added to the scope of every name generated inside.
func (g *Graph) Scope(name string, fn func()) {
	g.scope = append(g.scope, name)
	defer func() { g.scope = g.scope[:len(g.scope)-1] }()
	fn()
}

// Close releases the graph and every tensor it handed out. Tensors of a
// closed graph must not be used.
func (g *Graph) Close() {
	if g == nil {
		return
	}
	g.mu.Lock()
	for key, t := range g.tensors {
		t.obj.Release()
		delete(g.tensors, key)
	}
	g.mu.Unlock()
	g.obj.Release()
}

// Object returns the underlying MPSGraph reference.
func (g *Graph) Object() *bridge.Object {
	return g.obj
}

// String implements fmt.Stringer.
func (g *Graph) String() string {
	if g == nil || !g.obj.Valid() {
		return "Graph(closed)"
	}
	g.mu.Lock()
	n := len(g.tensors)
	g.mu.Unlock()
	return fmt.Sprintf("Graph(%d tensors)", n)
}

// tensor interns an owned MPSGraphTensor reference, so that the same native
// tensor always maps to the same *Tensor.
func (g *Graph) tensor(obj *bridge.Object) *Tensor {
	if !obj.Valid() {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if t, ok := g.tensors[obj.Key()]; ok {
		obj.Release()
		return t
	}
	t := &Tensor{obj: obj, graph: g}
	g.tensors[obj.Key()] = t
	return t
}

// tensorArray interns every tensor of an NSArray and releases the array.
func (g *Graph) tensorArray(arr *bridge.Object) []*Tensor {
	defer arr.Release()
	objs := bridge.ArrayObjects(arr)
	tensors := make([]*Tensor, len(objs))
	for i, o := range objs {
		tensors[i] = g.tensor(o)
	}
	return tensors
}
