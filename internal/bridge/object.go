// Package bridge provides low-level cgo bindings to MetalPerformanceShadersGraph.
//
// The Objective-C side (bridge.m) exposes a single generic message send built
// on NSInvocation: Go code names a selector and passes typed arguments, and
// the bridge converts each argument to the exact type the method signature
// declares. Every object that crosses into Go is owned (+1) and wrapped in
// an Object, which releases it on Release or when garbage collected.
//
// On platforms without Metal (anything but darwin with cgo) every entry point
// returns ErrUnavailable.
package bridge

import (
	"runtime"
	"unsafe"

	"github.com/pkg/errors"
)

// ErrUnavailable is returned when MPSGraph cannot be used on this platform
// or build (non-darwin, or cgo disabled).
var ErrUnavailable = errors.New("MetalPerformanceShadersGraph is not available on this platform")

// Object is an owned reference to an Objective-C object.
//
// Objects are not safe for concurrent Release.
type Object struct {
	ptr     unsafe.Pointer
	cleanup runtime.Cleanup
}

// wrap takes ownership of an already retained pointer.
func wrap(ptr unsafe.Pointer) *Object {
	if ptr == nil {
		return nil
	}
	o := &Object{ptr: ptr}
	o.cleanup = runtime.AddCleanup(o, releasePointer, ptr)
	return o
}

// Release gives up the reference. It is safe to call more than once.
func (o *Object) Release() {
	if o == nil || o.ptr == nil {
		return
	}
	o.cleanup.Stop()
	releasePointer(o.ptr)
	o.ptr = nil
}

// Valid reports whether o holds a live reference.
func (o *Object) Valid() bool {
	return o != nil && o.ptr != nil
}

// Key returns the object address, usable to compare objects or as a map key.
func (o *Object) Key() uintptr {
	if o == nil {
		return 0
	}
	return uintptr(o.ptr)
}

// Same reports whether o and other reference the same Objective-C object.
func (o *Object) Same(other *Object) bool {
	return o.Key() == other.Key()
}

// Retain returns a new, independently owned reference to the same object.
func (o *Object) Retain() *Object {
	if !o.Valid() {
		return nil
	}
	retainPointer(o.ptr)
	return wrap(o.ptr)
}

// String returns the object's description.
func (o *Object) String() string {
	if !o.Valid() {
		return "<nil>"
	}
	return describe(o.ptr)
}

// ClassName returns the Objective-C class name of the object.
func (o *Object) ClassName() string {
	if !o.Valid() {
		return "nil"
	}
	return className(o.ptr)
}

type argKind int

const (
	argObject argKind = iota
	argInt
	argUint
	argDouble
	argBool
)

// Arg is one message argument. Numeric arguments are converted to the
// parameter type of the method signature (NSInteger, NSUInteger, enums,
// float, double, BOOL), so Int(3) works equally for an NSUInteger parameter.
type Arg struct {
	kind argKind
	obj  *Object
	i    int64
	u    uint64
	d    float64
}

// Obj passes an object (nil passes Objective-C nil).
func Obj(o *Object) Arg { return Arg{kind: argObject, obj: o} }

// Nil passes Objective-C nil.
func Nil() Arg { return Arg{kind: argObject} }

// Int passes a signed integer.
func Int(v int64) Arg { return Arg{kind: argInt, i: v} }

// Uint passes an unsigned integer.
func Uint(v uint64) Arg { return Arg{kind: argUint, u: v} }

// Float passes a floating point value (float or double parameters).
func Float(v float64) Arg { return Arg{kind: argDouble, d: v} }

// Bool passes a BOOL.
func Bool(v bool) Arg {
	if v {
		return Arg{kind: argBool, i: 1}
	}
	return Arg{kind: argBool}
}

// BlockKind selects the Objective-C block signature created by NewBlock.
type BlockKind int

const (
	// BlockTensors is NSArray<MPSGraphTensor*>* (^)(void): if/else branches and
	// control dependencies.
	BlockTensors BlockKind = iota
	// BlockWhileBefore is MPSGraphTensor* (^)(NSArray*, NSMutableArray*).
	BlockWhileBefore
	// BlockTensorsIn is NSArray* (^)(NSArray*): while loop bodies.
	BlockTensorsIn
	// BlockForBody is NSArray* (^)(MPSGraphTensor*, NSArray*).
	BlockForBody
	// BlockCompletionDict is void (^)(NSDictionary*, NSError*).
	BlockCompletionDict
	// BlockCompletionArray is void (^)(NSArray*, NSError*).
	BlockCompletionArray
)

// BlockFunc is the Go side of a block. Arguments are retained for Go (nil
// for Objective-C nil arguments). The returned object is retained once more
// and handed over to Objective-C; the function keeps its own reference.
type BlockFunc func(args []*Object) *Object
