package graph

import (
	"time"

	"github.com/gomlx/go-mpsgraph/internal/bridge"
	"github.com/gomlx/go-mpsgraph/runtime"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Results maps target tensors to their computed values. The caller owns the
// TensorData values.
type Results map[*Tensor]*runtime.TensorData

// Close releases every value.
func (r Results) Close() {
	for _, td := range r {
		td.Close()
	}
}

// AsyncResult is delivered once an asynchronous run completes.
type AsyncResult struct {
	Results Results
	Err     error
}

// checkRun verifies the graph can be executed with the given targets.
func (g *Graph) checkRun(what string, targets []*Tensor) error {
	if g.err != nil {
		return errors.WithMessagef(g.err, "%s: graph has errors", what)
	}
	for i, t := range targets {
		if t == nil {
			return errors.Errorf("%s: target %d is nil", what, i)
		}
	}
	return nil
}

// targetOps returns nil for an empty list, which MPSGraph takes as no
// target operations.
func targetOps(ops []*Operation) any {
	if len(ops) == 0 {
		return nil
	}
	return ops
}

// results converts an owned NSDictionary of tensor data.
func (g *Graph) results(dict *bridge.Object) Results {
	defer dict.Release()
	keys, values := bridge.DictionaryEntries(dict)
	r := make(Results, len(keys))
	for i, k := range keys {
		r[g.tensor(k)] = runtime.TensorDataFromObject(values[i])
	}
	return r
}

// Run executes the graph synchronously on the default Metal device, computing
// targets and running ops for their side effects (e.g. Assign).
func (g *Graph) Run(feeds map[*Tensor]*runtime.TensorData, targets []*Tensor, ops ...*Operation) (Results, error) {
	if err := g.checkRun("Run", targets); err != nil {
		return nil, err
	}
	start := time.Now()
	dict, err := invoke(g, g.obj, "runWithFeeds:targetTensors:targetOperations:", feeds, targets, targetOps(ops))
	if err != nil {
		return nil, errors.WithMessage(err, "Run")
	}
	klog.V(1).Infof("graph: ran %d targets in %s", len(targets), time.Since(start))
	return g.results(dict), nil
}

// RunOnDevice executes the graph synchronously on dev, with a command queue
// created for the run.
func (g *Graph) RunOnDevice(dev *runtime.Device, feeds map[*Tensor]*runtime.TensorData, targets []*Tensor, ops ...*Operation) (Results, error) {
	if dev == nil {
		return nil, errors.New("RunOnDevice: nil device")
	}
	queue, err := dev.NewCommandQueue()
	if err != nil {
		return nil, err
	}
	defer queue.Close()
	return g.RunWithCommandQueue(queue, feeds, targets, ops...)
}

// RunWithCommandQueue executes the graph synchronously on queue.
func (g *Graph) RunWithCommandQueue(queue *runtime.CommandQueue, feeds map[*Tensor]*runtime.TensorData, targets []*Tensor, ops ...*Operation) (Results, error) {
	if queue == nil {
		return nil, errors.New("RunWithCommandQueue: nil queue")
	}
	if err := g.checkRun("RunWithCommandQueue", targets); err != nil {
		return nil, err
	}
	start := time.Now()
	dict, err := invoke(g, g.obj, "runWithMTLCommandQueue:feeds:targetTensors:targetOperations:",
		queue, feeds, targets, targetOps(ops))
	if err != nil {
		return nil, errors.WithMessage(err, "RunWithCommandQueue")
	}
	klog.V(1).Infof("graph: ran %d targets in %s", len(targets), time.Since(start))
	return g.results(dict), nil
}

// RunAsync schedules the graph on queue and returns at once. The returned
// channel receives exactly one AsyncResult when the run completes.
func (g *Graph) RunAsync(queue *runtime.CommandQueue, feeds map[*Tensor]*runtime.TensorData, targets []*Tensor, desc *ExecutionDescriptor) (<-chan AsyncResult, error) {
	if queue == nil {
		return nil, errors.New("RunAsync: nil queue")
	}
	if err := g.checkRun("RunAsync", targets); err != nil {
		return nil, err
	}
	done := make(chan AsyncResult, 1)
	var handler *bridge.Block
	handler, err := bridge.NewBlock(bridge.BlockCompletionDict, func(args []*bridge.Object) *bridge.Object {
		defer func() { go handler.Close() }()
		res := AsyncResult{Results: g.results(args[0])}
		if args[1] != nil {
			res.Err = errors.Errorf("RunAsync: %s", bridge.ErrorMessage(args[1]))
			args[1].Release()
		}
		done <- res
		return nil
	})
	if err != nil {
		return nil, err
	}
	execDesc, err := desc.buildWith(handler.Object)
	if err != nil {
		handler.Close()
		return nil, errors.WithMessage(err, "RunAsync")
	}
	defer execDesc.Release()
	dict, err := invoke(g, g.obj, "runAsyncWithMTLCommandQueue:feeds:targetTensors:targetOperations:executionDescriptor:",
		queue, feeds, targets, nil, execDesc)
	if err != nil {
		handler.Close()
		return nil, errors.WithMessage(err, "RunAsync")
	}
	// The same tensor data is handed to the completion handler.
	dict.Release()
	return done, nil
}

// Encode encodes the graph into cmdBuffer and returns the results, valid
// once the command buffer completed.
func (g *Graph) Encode(cmdBuffer *runtime.CommandBuffer, feeds map[*Tensor]*runtime.TensorData, targets []*Tensor, desc *ExecutionDescriptor) (Results, error) {
	if cmdBuffer == nil {
		return nil, errors.New("Encode: nil command buffer")
	}
	if err := g.checkRun("Encode", targets); err != nil {
		return nil, err
	}
	dict, err := invoke(g, g.obj, "encodeToCommandBuffer:feeds:targetTensors:targetOperations:executionDescriptor:",
		cmdBuffer, feeds, targets, nil, desc)
	if err != nil {
		return nil, errors.WithMessage(err, "Encode")
	}
	return g.results(dict), nil
}

// Compile compiles the graph for dev into an Executable taking feeds, in a
// fixed order reported by Executable.FeedTensors, and producing targets.
func (g *Graph) Compile(dev *runtime.Device, feeds map[*Tensor]*ShapedType, targets []*Tensor, desc *CompilationDescriptor) (*Executable, error) {
	if dev == nil {
		return nil, errors.New("Compile: nil device")
	}
	if err := g.checkRun("Compile", targets); err != nil {
		return nil, err
	}
	start := time.Now()
	obj, err := invoke(g, g.obj, "compileWithDevice:feeds:targetTensors:targetOperations:compilationDescriptor:",
		dev, feeds, targets, nil, desc)
	if err != nil {
		return nil, errors.WithMessage(err, "Compile")
	}
	if obj == nil {
		return nil, errors.New("Compile: compileWithDevice returned nil")
	}
	klog.V(1).Infof("graph: compiled %d feeds / %d targets in %s", len(feeds), len(targets), time.Since(start))
	return newExecutable(obj, g), nil
}
