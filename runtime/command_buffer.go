package runtime

import (
	"fmt"
	"time"

	"github.com/gomlx/go-mpsgraph/internal/bridge"
	"github.com/pkg/errors"
)

// CommandBufferStatus mirrors MTLCommandBufferStatus.
type CommandBufferStatus uint64

const (
	StatusNotEnqueued CommandBufferStatus = iota
	StatusEnqueued
	StatusCommitted
	StatusScheduled
	StatusCompleted
	StatusError
)

var statusNames = [...]string{"NotEnqueued", "Enqueued", "Committed", "Scheduled", "Completed", "Error"}

// String implements fmt.Stringer.
func (s CommandBufferStatus) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("CommandBufferStatus(%d)", uint64(s))
}

// CommandBuffer is an MPSCommandBuffer. Graphs and executables encode into
// it; nothing runs until Commit.
type CommandBuffer struct {
	obj *bridge.Object
}

// Object returns the MPSCommandBuffer reference.
func (cb *CommandBuffer) Object() *bridge.Object {
	return cb.obj
}

// Commit submits the encoded work.
func (cb *CommandBuffer) Commit() error {
	return errors.WithMessage(bridge.SendVoid(cb.obj, "commit"), "commit")
}

// CommitAndContinue submits the work encoded so far and keeps the buffer
// open for more encoding.
func (cb *CommandBuffer) CommitAndContinue() error {
	return errors.WithMessage(bridge.SendVoid(cb.obj, "commitAndContinue"), "commitAndContinue")
}

// WaitUntilCompleted blocks until the committed work finished and returns
// the command buffer error, if any.
func (cb *CommandBuffer) WaitUntilCompleted() error {
	if err := bridge.SendVoid(cb.obj, "waitUntilCompleted"); err != nil {
		return errors.WithMessage(err, "waitUntilCompleted")
	}
	return cb.Err()
}

// GPUTime returns how long the GPU spent executing the buffer. It is only
// meaningful once the buffer completed.
func (cb *CommandBuffer) GPUTime() (time.Duration, error) {
	start, err := bridge.SendFloat(cb.obj, "GPUStartTime")
	if err != nil {
		return 0, errors.WithMessage(err, "GPUStartTime")
	}
	end, err := bridge.SendFloat(cb.obj, "GPUEndTime")
	if err != nil {
		return 0, errors.WithMessage(err, "GPUEndTime")
	}
	return time.Duration((end - start) * float64(time.Second)), nil
}

// Status returns the execution status of the buffer.
func (cb *CommandBuffer) Status() CommandBufferStatus {
	s, err := bridge.SendUint(cb.obj, "status")
	if err != nil {
		return StatusError
	}
	return CommandBufferStatus(s)
}

// Err returns the error Metal reported for the buffer, nil if none.
func (cb *CommandBuffer) Err() error {
	nsErr, err := bridge.Send(cb.obj, "error")
	if err != nil {
		return err
	}
	if nsErr == nil {
		return nil
	}
	defer nsErr.Release()
	return errors.Errorf("command buffer failed: %s", bridge.ErrorMessage(nsErr))
}

// Label returns the debug label of the buffer.
func (cb *CommandBuffer) Label() string {
	label, err := bridge.Send(cb.obj, "label")
	if err != nil || label == nil {
		return ""
	}
	defer label.Release()
	return bridge.GoString(label)
}

// SetLabel sets the debug label shown by Metal tools.
func (cb *CommandBuffer) SetLabel(label string) error {
	s := bridge.String(label)
	defer s.Release()
	return errors.WithMessage(bridge.SendVoid(cb.obj, "setLabel:", bridge.Obj(s)), "setLabel")
}

// RootCommandBuffer returns the MTLCommandBuffer currently backing the
// buffer; it changes after CommitAndContinue.
func (cb *CommandBuffer) RootCommandBuffer() (*bridge.Object, error) {
	root, err := bridge.Send(cb.obj, "rootCommandBuffer")
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, errors.New("rootCommandBuffer returned nil")
	}
	return root, nil
}

// Close releases the buffer.
func (cb *CommandBuffer) Close() {
	if cb != nil {
		cb.obj.Release()
	}
}

// SharedEvent is an MTLSharedEvent: a monotonically increasing counter
// that executions wait on and signal.
type SharedEvent struct {
	obj *bridge.Object
}

// Object returns the MTLSharedEvent reference.
func (e *SharedEvent) Object() *bridge.Object {
	return e.obj
}

// SignaledValue returns the current value of the event.
func (e *SharedEvent) SignaledValue() (uint64, error) {
	return bridge.SendUint(e.obj, "signaledValue")
}

// Signal sets the value of the event from the CPU.
func (e *SharedEvent) Signal(value uint64) error {
	return errors.WithMessage(bridge.SendVoid(e.obj, "setSignaledValue:", bridge.Uint(value)), "setSignaledValue")
}

// Close releases the event.
func (e *SharedEvent) Close() {
	if e != nil {
		e.obj.Release()
	}
}
