package graph

import (
	"github.com/gomlx/go-mpsgraph/internal/bridge"
	"github.com/gomlx/go-mpsgraph/runtime"
	"github.com/pkg/errors"
)

// CompilationDescriptor configures Compile, LoadPackage and Specialize. A
// nil descriptor leaves every setting to MPSGraph.
type CompilationDescriptor struct {
	// OptimizationLevel defaults to OptimizationLevel0 in the zero value;
	// MPSGraph itself defaults to OptimizationLevel1, as does
	// DefaultCompilationDescriptor.
	OptimizationLevel   Optimization
	OptimizationProfile OptimizationProfile
	// WaitForCompilationCompletion makes Compile block until the Metal
	// kernels are built instead of compiling them lazily on first run.
	WaitForCompilationCompletion bool
	// DisableTypeInference skips shape and type inference at compile time.
	DisableTypeInference bool
	// Callables resolve the symbols used by Graph.Call.
	Callables map[string]*Executable
}

// DefaultCompilationDescriptor returns the settings MPSGraph uses by
// default.
func DefaultCompilationDescriptor() *CompilationDescriptor {
	return &CompilationDescriptor{OptimizationLevel: OptimizationLevel1}
}

func (d *CompilationDescriptor) build() (*bridge.Object, error) {
	if d == nil {
		return nil, nil
	}
	n := newNative("MPSGraphCompilationDescriptor")
	n.setUint("setOptimizationLevel:", d.OptimizationLevel.enumValue())
	n.setUint("setOptimizationProfile:", d.OptimizationProfile.enumValue())
	n.setBool("setWaitForCompilationCompletion:", d.WaitForCompilationCompletion)
	if d.DisableTypeInference {
		n.set("disableTypeInference")
	}
	if len(d.Callables) > 0 {
		keys := make([]*bridge.Object, 0, len(d.Callables))
		values := make([]*bridge.Object, 0, len(d.Callables))
		for symbol, e := range d.Callables {
			if e == nil || !e.obj.Valid() {
				n.obj.Release()
				return nil, errors.Errorf("callable %q is nil or closed", symbol)
			}
			keys = append(keys, bridge.String(symbol))
			values = append(values, e.obj)
		}
		dict, err := bridge.Dictionary(keys, values)
		for _, k := range keys {
			k.Release()
		}
		if err != nil {
			n.obj.Release()
			return nil, errors.WithMessage(err, "callables")
		}
		n.set("setCallables:", bridge.Obj(dict))
		dict.Release()
	}
	return n.done()
}

// EventWait makes an execution wait until Event reaches Value.
type EventWait struct {
	Event *runtime.SharedEvent
	Value uint64
}

// EventSignal makes an execution set Event to Value once it reaches Stage.
type EventSignal struct {
	Event *runtime.SharedEvent
	Stage ExecutionStage
	Value uint64
}

// ExecutionDescriptor configures RunAsync and Encode of a Graph.
type ExecutionDescriptor struct {
	// WaitUntilCompleted makes RunAsync block until the results are ready.
	WaitUntilCompleted bool
	Waits              []EventWait
	Signals            []EventSignal
	// Compilation is used when the graph is compiled for this execution.
	Compilation *CompilationDescriptor
}

func (d *ExecutionDescriptor) build() (*bridge.Object, error) {
	return d.buildWith(nil)
}

// buildWith builds the descriptor with an optional completion handler block.
func (d *ExecutionDescriptor) buildWith(completion *bridge.Object) (*bridge.Object, error) {
	if d == nil {
		d = &ExecutionDescriptor{}
	}
	n := newNative("MPSGraphExecutionDescriptor")
	n.setBool("setWaitUntilCompleted:", d.WaitUntilCompleted)
	if completion != nil {
		n.set("setCompletionHandler:", bridge.Obj(completion))
	}
	setEvents(n, d.Waits, d.Signals)
	if d.Compilation != nil && n.err == nil {
		compilation, err := d.Compilation.build()
		if err != nil {
			n.obj.Release()
			return nil, err
		}
		n.set("setCompilationDescriptor:", bridge.Obj(compilation))
		compilation.Release()
	}
	return n.done()
}

// ExecutableExecutionDescriptor configures the runs of an Executable.
type ExecutableExecutionDescriptor struct {
	WaitUntilCompleted bool
	Waits              []EventWait
	Signals            []EventSignal
}

func (d *ExecutableExecutionDescriptor) build() (*bridge.Object, error) {
	return d.buildWith(nil)
}

func (d *ExecutableExecutionDescriptor) buildWith(completion *bridge.Object) (*bridge.Object, error) {
	if d == nil {
		d = &ExecutableExecutionDescriptor{}
	}
	n := newNative("MPSGraphExecutableExecutionDescriptor")
	n.setBool("setWaitUntilCompleted:", d.WaitUntilCompleted)
	if completion != nil {
		n.set("setCompletionHandler:", bridge.Obj(completion))
	}
	setEvents(n, d.Waits, d.Signals)
	return n.done()
}

func setEvents(n *nativeBuilder, waits []EventWait, signals []EventSignal) {
	for i, w := range waits {
		if w.Event == nil {
			n.err = errors.Errorf("wait %d has a nil event", i)
			return
		}
		n.set("waitForEvent:value:", bridge.Obj(w.Event.Object()), bridge.Uint(w.Value))
	}
	for i, s := range signals {
		if s.Event == nil {
			n.err = errors.Errorf("signal %d has a nil event", i)
			return
		}
		n.set("signalEvent:atExecutionEvent:value:", bridge.Obj(s.Event.Object()), bridge.Uint(s.Stage.enumValue()), bridge.Uint(s.Value))
	}
}

// SerializationDescriptor configures Executable.Serialize.
type SerializationDescriptor struct {
	// Append adds the executable to an existing package.
	Append             bool
	DeploymentPlatform DeploymentPlatform
	// MinimumDeploymentTarget is an OS version such as "14.0"; empty keeps
	// the MPSGraph default.
	MinimumDeploymentTarget string
}

func (d *SerializationDescriptor) build() (*bridge.Object, error) {
	if d == nil {
		d = &SerializationDescriptor{}
	}
	n := newNative("MPSGraphExecutableSerializationDescriptor")
	n.setBool("setAppend:", d.Append)
	n.setUint("setDeploymentPlatform:", d.DeploymentPlatform.enumValue())
	if d.MinimumDeploymentTarget != "" {
		target := bridge.String(d.MinimumDeploymentTarget)
		n.set("setMinimumDeploymentTarget:", bridge.Obj(target))
		target.Release()
	}
	return n.done()
}
