package graph

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gomlx/go-mpsgraph/internal/bridge"
	"github.com/gomlx/go-mpsgraph/runtime"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// PackageExt is the extension of serialized executables.
const PackageExt = ".mpsgraphpackage"

// Executable is a compiled MPSGraphExecutable. Runs of one Executable are
// serialized.
type Executable struct {
	mu  sync.Mutex
	obj *bridge.Object
	// graph is nil for executables loaded from a package, whose tensors are
	// owned by the Executable.
	graph   *Graph
	feeds   []*Tensor
	targets []*Tensor
}

func newExecutable(obj *bridge.Object, g *Graph) *Executable {
	e := &Executable{obj: obj, graph: g}
	e.feeds = e.tensorList("feedTensors")
	e.targets = e.tensorList("targetTensors")
	return e
}

func (e *Executable) tensorList(selector string) []*Tensor {
	arr, err := bridge.Send(e.obj, selector)
	if err != nil || arr == nil {
		return nil
	}
	if e.graph != nil {
		return e.graph.tensorArray(arr)
	}
	defer arr.Release()
	objs := bridge.ArrayObjects(arr)
	ts := make([]*Tensor, len(objs))
	for i, o := range objs {
		ts[i] = &Tensor{obj: o}
	}
	return ts
}

// LoadPackage loads an executable serialized with Serialize.
func LoadPackage(path string, desc *CompilationDescriptor) (*Executable, error) {
	if !bridge.Available() {
		return nil, ErrUnavailable
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrap(err, "LoadPackage")
	}
	url := bridge.FileURL(path)
	defer url.Release()
	descObj, err := desc.build()
	if err != nil {
		return nil, errors.WithMessage(err, "LoadPackage")
	}
	defer descObj.Release()
	obj, err := bridge.New("MPSGraphExecutable", "initWithMPSGraphPackageAtURL:compilationDescriptor:",
		bridge.Obj(url), bridge.Obj(descObj))
	if err != nil {
		return nil, errors.WithMessagef(err, "LoadPackage(%q)", path)
	}
	klog.V(1).Infof("graph: loaded executable from %s", path)
	return newExecutable(obj, nil), nil
}

// FeedTensors returns the inputs of the executable, in the order Run takes
// them.
func (e *Executable) FeedTensors() []*Tensor {
	return e.feeds
}

// TargetTensors returns the outputs of the executable, in the order Run
// returns them.
func (e *Executable) TargetTensors() []*Tensor {
	return e.targets
}

// Object returns the underlying MPSGraphExecutable reference.
func (e *Executable) Object() *bridge.Object {
	return e.obj
}

func (e *Executable) check(what string, inputs []*runtime.TensorData) error {
	if !e.obj.Valid() {
		return errors.Errorf("%s: executable is closed", what)
	}
	if len(inputs) != len(e.feeds) {
		return errors.Errorf("%s: %d inputs given, executable takes %d", what, len(inputs), len(e.feeds))
	}
	return nil
}

func dataArray(arr *bridge.Object) []*runtime.TensorData {
	defer arr.Release()
	objs := bridge.ArrayObjects(arr)
	out := make([]*runtime.TensorData, len(objs))
	for i, o := range objs {
		out[i] = runtime.TensorDataFromObject(o)
	}
	return out
}

// Run executes synchronously on queue and returns one value per target
// tensor.
func (e *Executable) Run(queue *runtime.CommandQueue, inputs []*runtime.TensorData, desc *ExecutableExecutionDescriptor) ([]*runtime.TensorData, error) {
	if queue == nil {
		return nil, errors.New("Executable.Run: nil queue")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check("Executable.Run", inputs); err != nil {
		return nil, err
	}
	start := time.Now()
	arr, err := invoke(e.graph, e.obj, "runWithMTLCommandQueue:inputsArray:resultsArray:executionDescriptor:",
		queue, inputs, nil, desc)
	if err != nil {
		return nil, errors.WithMessage(err, "Executable.Run")
	}
	klog.V(2).Infof("graph: executable ran in %s", time.Since(start))
	return dataArray(arr), nil
}

// ExecutableResult is delivered once an asynchronous executable run
// completes.
type ExecutableResult struct {
	Results []*runtime.TensorData
	Err     error
}

// RunAsync schedules the executable on queue. The channel receives exactly
// one ExecutableResult when the run completes.
func (e *Executable) RunAsync(queue *runtime.CommandQueue, inputs []*runtime.TensorData, desc *ExecutableExecutionDescriptor) (<-chan ExecutableResult, error) {
	if queue == nil {
		return nil, errors.New("Executable.RunAsync: nil queue")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check("Executable.RunAsync", inputs); err != nil {
		return nil, err
	}
	done := make(chan ExecutableResult, 1)
	var handler *bridge.Block
	handler, err := bridge.NewBlock(bridge.BlockCompletionArray, func(args []*bridge.Object) *bridge.Object {
		defer func() { go handler.Close() }()
		var res ExecutableResult
		if args[0] != nil {
			res.Results = dataArray(args[0])
		}
		if args[1] != nil {
			res.Err = errors.Errorf("Executable.RunAsync: %s", bridge.ErrorMessage(args[1]))
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
		return nil, errors.WithMessage(err, "Executable.RunAsync")
	}
	defer execDesc.Release()
	arr, err := invoke(e.graph, e.obj, "runAsyncWithMTLCommandQueue:inputsArray:resultsArray:executionDescriptor:",
		queue, inputs, nil, execDesc)
	if err != nil {
		handler.Close()
		return nil, errors.WithMessage(err, "Executable.RunAsync")
	}
	arr.Release()
	return done, nil
}

// Encode encodes the executable into cmdBuffer. The results are valid once
// the command buffer completed.
func (e *Executable) Encode(cmdBuffer *runtime.CommandBuffer, inputs []*runtime.TensorData, desc *ExecutableExecutionDescriptor) ([]*runtime.TensorData, error) {
	if cmdBuffer == nil {
		return nil, errors.New("Executable.Encode: nil command buffer")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check("Executable.Encode", inputs); err != nil {
		return nil, err
	}
	arr, err := invoke(e.graph, e.obj, "encodeToCommandBuffer:inputsArray:resultsArray:executionDescriptor:",
		cmdBuffer, inputs, nil, desc)
	if err != nil {
		return nil, errors.WithMessage(err, "Executable.Encode")
	}
	return dataArray(arr), nil
}

// Specialize compiles the executable ahead of time for the given input
// types, instead of on first run.
func (e *Executable) Specialize(dev *runtime.Device, inputTypes []*ShapedType, desc *CompilationDescriptor) error {
	if dev == nil {
		return errors.New("Specialize: nil device")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	_, err := invoke(e.graph, e.obj, "specializeWithDevice:inputTypes:compilationDescriptor:", dev, inputTypes, desc)
	return errors.WithMessage(err, "Specialize")
}

// OutputTypes returns the types of the targets for the given input types.
func (e *Executable) OutputTypes(dev *runtime.Device, inputTypes []*ShapedType, desc *CompilationDescriptor) ([]*ShapedType, error) {
	if dev == nil {
		return nil, errors.New("OutputTypes: nil device")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	arr, err := invoke(e.graph, e.obj, "getOutputTypesWithDevice:inputTypes:compilationDescriptor:", dev, inputTypes, desc)
	if err != nil {
		return nil, errors.WithMessage(err, "OutputTypes")
	}
	if arr == nil {
		return nil, errors.New("OutputTypes: no types returned")
	}
	defer arr.Release()
	objs := bridge.ArrayObjects(arr)
	out := make([]*ShapedType, len(objs))
	for i, o := range objs {
		out[i] = &ShapedType{obj: o}
	}
	return out, nil
}

// Serialize writes the executable as an MPSGraph package at path, which
// should end in PackageExt.
func (e *Executable) Serialize(path string, desc *SerializationDescriptor) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.obj.Valid() {
		return errors.New("Serialize: executable is closed")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "Serialize")
	}
	url := bridge.FileURL(path)
	defer url.Release()
	if _, err := invoke(e.graph, e.obj, "serializeToMPSGraphPackageAtURL:descriptor:", bridge.Obj(url), desc); err != nil {
		return errors.WithMessagef(err, "Serialize(%q)", path)
	}
	klog.V(1).Infof("graph: serialized executable to %s", path)
	return nil
}

// SerializeToDir writes the executable to a uniquely named package inside
// dir and returns its path.
func (e *Executable) SerializeToDir(dir string, desc *SerializationDescriptor) (string, error) {
	path := filepath.Join(dir, "executable-"+uuid.NewString()+PackageExt)
	if err := e.Serialize(path, desc); err != nil {
		return "", err
	}
	return path, nil
}

// Close releases the executable. Tensors of a loaded executable are
// released with it; those of a compiled one belong to their graph.
func (e *Executable) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.graph == nil {
		for _, t := range append(e.feeds, e.targets...) {
			t.obj.Release()
		}
	}
	e.feeds, e.targets = nil, nil
	e.obj.Release()
	return nil
}
