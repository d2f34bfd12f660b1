// Package runtime provides the Metal side of MPSGraph execution: devices,
// command queues, command buffers, shared events and tensor data.
//
// Example usage:
//
//	dev, err := runtime.DefaultDevice()
//	if err != nil { ... }
//	defer dev.Close()
//
//	// Upload a 2x3 float32 tensor
//	data, err := runtime.FromFlat(dev, []float32{1, 2, 3, 4, 5, 6}, 2, 3)
//	if err != nil { ... }
//	defer data.Close()
//
//	// Run a graph on it, then read the results back
//	results, err := g.RunOnDevice(dev, map[*graph.Tensor]*runtime.TensorData{x: data}, []*graph.Tensor{y})
//	values, err := runtime.ToFlat[float32](results[y])
//
// On platforms without Metal every constructor returns ErrUnavailable.
package runtime

import (
	"fmt"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/go-mpsgraph/internal/bridge"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ErrUnavailable is returned when Metal or MPSGraph cannot be used.
var ErrUnavailable = bridge.ErrUnavailable

// Device is a Metal device together with its MPSGraphDevice.
type Device struct {
	mtl   *bridge.Object
	graph *bridge.Object
}

var (
	defaultDeviceOnce sync.Once
	defaultDevice     *Device
	defaultDeviceErr  error
)

// DefaultDevice returns the system default Metal device. The device is
// created once and shared: Close on it is a no-op.
func DefaultDevice() (*Device, error) {
	defaultDeviceOnce.Do(func() {
		defaultDevice, defaultDeviceErr = NewDevice()
	})
	return defaultDevice, defaultDeviceErr
}

// NewDevice creates a new reference to the system default Metal device,
// owned by the caller.
func NewDevice() (*Device, error) {
	if !bridge.Available() {
		return nil, ErrUnavailable
	}
	mtl, err := bridge.DefaultDevice()
	if err != nil {
		return nil, err
	}
	return DeviceFromMetal(mtl)
}

// DeviceFromMetal wraps an MTLDevice, taking ownership of the reference.
func DeviceFromMetal(mtl *bridge.Object) (*Device, error) {
	graphDev, err := bridge.SendClass("MPSGraphDevice", "deviceWithMTLDevice:", bridge.Obj(mtl))
	if err != nil {
		mtl.Release()
		return nil, errors.WithMessage(err, "creating MPSGraphDevice")
	}
	if graphDev == nil {
		mtl.Release()
		return nil, errors.New("deviceWithMTLDevice: returned nil")
	}
	d := &Device{mtl: mtl, graph: graphDev}
	klog.V(1).Infof("runtime: using Metal device %q", d.Name())
	return d, nil
}

// Name returns the Metal device name, e.g. "Apple M2".
func (d *Device) Name() string {
	if d == nil {
		return ""
	}
	name, err := bridge.Send(d.mtl, "name")
	if err != nil || name == nil {
		return ""
	}
	defer name.Release()
	return bridge.GoString(name)
}

// RecommendedMaxWorkingSetSize is the memory, in bytes, the device can use
// without affecting performance.
func (d *Device) RecommendedMaxWorkingSetSize() uint64 {
	v, err := bridge.SendUint(d.mtl, "recommendedMaxWorkingSetSize")
	if err != nil {
		return 0
	}
	return v
}

// HasUnifiedMemory reports whether the device shares memory with the CPU.
func (d *Device) HasUnifiedMemory() bool {
	v, err := bridge.SendBool(d.mtl, "hasUnifiedMemory")
	return err == nil && v
}

// Metal returns the MTLDevice reference.
func (d *Device) Metal() *bridge.Object {
	return d.mtl
}

// Object returns the MPSGraphDevice reference.
func (d *Device) Object() *bridge.Object {
	return d.graph
}

// NewCommandQueue creates a command queue on the device.
func (d *Device) NewCommandQueue() (*CommandQueue, error) {
	q, err := bridge.Send(d.mtl, "newCommandQueue")
	if err != nil {
		return nil, errors.WithMessage(err, "creating command queue")
	}
	if q == nil {
		return nil, errors.New("newCommandQueue returned nil")
	}
	return &CommandQueue{obj: q, device: d}, nil
}

// NewSharedEvent creates an MTLSharedEvent, used to order executions
// through ExecutionDescriptor wait and signal events.
func (d *Device) NewSharedEvent() (*SharedEvent, error) {
	e, err := bridge.Send(d.mtl, "newSharedEvent")
	if err != nil {
		return nil, errors.WithMessage(err, "creating shared event")
	}
	if e == nil {
		return nil, errors.New("newSharedEvent returned nil")
	}
	return &SharedEvent{obj: e}, nil
}

// Close releases the device, unless it is the shared DefaultDevice.
func (d *Device) Close() {
	if d == nil || d == defaultDevice {
		return
	}
	d.graph.Release()
	d.mtl.Release()
}

// String implements fmt.Stringer.
func (d *Device) String() string {
	if d == nil {
		return "Device(nil)"
	}
	return fmt.Sprintf("Device(%q, working set %s)", d.Name(), humanize.IBytes(d.RecommendedMaxWorkingSetSize()))
}

// CommandQueue is an MTLCommandQueue.
type CommandQueue struct {
	obj    *bridge.Object
	device *Device
}

// Device returns the device the queue was created on.
func (q *CommandQueue) Device() *Device {
	return q.device
}

// Object returns the MTLCommandQueue reference.
func (q *CommandQueue) Object() *bridge.Object {
	return q.obj
}

// NewCommandBuffer creates an MPSCommandBuffer on the queue.
func (q *CommandQueue) NewCommandBuffer() (*CommandBuffer, error) {
	cb, err := bridge.SendClass("MPSCommandBuffer", "commandBufferFromCommandQueue:", bridge.Obj(q.obj))
	if err != nil {
		return nil, errors.WithMessage(err, "creating command buffer")
	}
	if cb == nil {
		return nil, errors.New("commandBufferFromCommandQueue: returned nil")
	}
	return &CommandBuffer{obj: cb}, nil
}

// Close releases the queue.
func (q *CommandQueue) Close() {
	if q != nil {
		q.obj.Release()
	}
}
