package graph

import (
	"github.com/gomlx/go-mpsgraph/internal/bridge"
	"github.com/pkg/errors"
)

// Descriptors are plain Go structs. Each op call turns its descriptor into
// a fresh Objective-C descriptor object, used for that call only, so a
// descriptor value can be reused and shared freely.

// nativeBuilder creates an Objective-C descriptor and applies setters to it,
// keeping the first failure.
type nativeBuilder struct {
	class string
	obj   *bridge.Object
	err   error
}

// newNative creates an instance of class with +new.
func newNative(class string) *nativeBuilder {
	obj, err := bridge.SendClass(class, "new")
	if err == nil && obj == nil {
		err = errors.Errorf("[%s new] returned nil", class)
	}
	return &nativeBuilder{class: class, obj: obj, err: err}
}

// newNativeWith creates an instance with a class factory method.
func newNativeWith(class, selector string, args ...bridge.Arg) *nativeBuilder {
	obj, err := bridge.SendClass(class, selector, args...)
	if err == nil && obj == nil {
		err = errors.Errorf("[%s %s] returned nil", class, selector)
	}
	return &nativeBuilder{class: class, obj: obj, err: err}
}

func (n *nativeBuilder) set(selector string, args ...bridge.Arg) {
	if n.err != nil {
		return
	}
	n.err = bridge.SendVoid(n.obj, selector, args...)
}

func (n *nativeBuilder) setInt(selector string, v int) {
	n.set(selector, bridge.Int(int64(v)))
}

func (n *nativeBuilder) setUint(selector string, v uint64) {
	n.set(selector, bridge.Uint(v))
}

func (n *nativeBuilder) setFloat(selector string, v float64) {
	n.set(selector, bridge.Float(v))
}

func (n *nativeBuilder) setBool(selector string, v bool) {
	n.set(selector, bridge.Bool(v))
}

func (n *nativeBuilder) setInts(selector string, values []int) {
	if values == nil {
		return
	}
	vs := make([]int64, len(values))
	for i, v := range values {
		vs[i] = int64(v)
	}
	arr := bridge.Int64Array(vs)
	defer arr.Release()
	n.set(selector, bridge.Obj(arr))
}

// done returns the built descriptor, or releases it on failure.
func (n *nativeBuilder) done() (*bridge.Object, error) {
	if n.err != nil {
		n.obj.Release()
		return nil, errors.WithMessagef(n.err, "building %s", n.class)
	}
	return n.obj, nil
}

// atLeast1 maps the zero value of strides, dilations and groups to 1.
func atLeast1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

func onesIfEmpty(values []int, n int) []int {
	if len(values) > 0 {
		return values
	}
	ones := make([]int, n)
	for i := range ones {
		ones[i] = 1
	}
	return ones
}
