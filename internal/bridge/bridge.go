//go:build darwin && cgo

package bridge

/*
#cgo CFLAGS: -x objective-c -fno-objc-arc
#cgo LDFLAGS: -framework Foundation -framework Metal -framework MetalPerformanceShaders -framework MetalPerformanceShadersGraph
#include "bridge.h"
#include <stdlib.h>
*/
import "C"
import (
	"runtime"
	"sync"
	"unsafe"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Available reports whether MPSGraph can be used in this build.
func Available() bool {
	return HasClass("MPSGraph")
}

var (
	classNamesMu sync.Mutex
	classNames   = map[string]*C.char{}
)

// cstr returns a permanently allocated C string for class names, which are
// looked up repeatedly.
func cstr(s string) *C.char {
	classNamesMu.Lock()
	defer classNamesMu.Unlock()
	if p, ok := classNames[s]; ok {
		return p
	}
	p := C.CString(s)
	classNames[s] = p
	return p
}

func releasePointer(p unsafe.Pointer) {
	C.mpsg_release(C.MPSGObject(p))
}

func retainPointer(p unsafe.Pointer) {
	C.mpsg_retain(C.MPSGObject(p))
}

func describe(p unsafe.Pointer) string {
	return takeCString(C.mpsg_description(C.MPSGObject(p)))
}

func className(p unsafe.Pointer) string {
	return takeCString(C.mpsg_class_name(C.MPSGObject(p)))
}

// takeCString converts and frees a malloc'ed C string.
func takeCString(s *C.char) string {
	if s == nil {
		return ""
	}
	defer C.free(unsafe.Pointer(s))
	return C.GoString(s)
}

func toCArgs(args []Arg) []C.MPSGArg {
	cargs := make([]C.MPSGArg, len(args))
	for i, a := range args {
		cargs[i].kind = C.int(a.kind)
		switch a.kind {
		case argObject:
			if a.obj.Valid() {
				cargs[i].object = C.MPSGObject(a.obj.ptr)
			}
		case argInt, argBool:
			cargs[i].i = C.int64_t(a.i)
		case argUint:
			cargs[i].u = C.uint64_t(a.u)
		case argDouble:
			cargs[i].d = C.double(a.d)
		}
	}
	return cargs
}

func send(target unsafe.Pointer, selector string, args []Arg) (C.MPSGValue, error) {
	var out C.MPSGValue
	cSel := C.CString(selector)
	defer C.free(unsafe.Pointer(cSel))
	cargs := toCArgs(args)
	var argsPtr *C.MPSGArg
	if len(cargs) > 0 {
		argsPtr = &cargs[0]
	}
	var cErr *C.char
	ok := C.mpsg_send(C.MPSGObject(target), cSel, argsPtr, C.int(len(cargs)), &out, &cErr)
	runtime.KeepAlive(args)
	if !ok {
		return out, errors.New(takeCString(cErr))
	}
	if klog.V(3).Enabled() {
		klog.Infof("bridge: sent %s (%d args)", selector, len(args))
	}
	return out, nil
}

func objectValue(out C.MPSGValue, selector string) (*Object, error) {
	switch out.kind {
	case C.MPSG_VALUE_OBJECT:
		return wrap(unsafe.Pointer(out.object)), nil
	case C.MPSG_VALUE_VOID:
		return nil, nil
	default:
		return nil, errors.Errorf("%s does not return an object", selector)
	}
}

// Send sends selector to target and returns the resulting object, or nil if
// the method returned nil or void.
func Send(target *Object, selector string, args ...Arg) (*Object, error) {
	if !target.Valid() {
		return nil, errors.Errorf("message %s sent to a released or nil object", selector)
	}
	out, err := send(target.ptr, selector, args)
	runtime.KeepAlive(target)
	if err != nil {
		return nil, err
	}
	return objectValue(out, selector)
}

func classPointer(class string) (unsafe.Pointer, error) {
	cls := C.mpsg_class(cstr(class))
	if cls == nil {
		return nil, errors.Errorf("Objective-C class %s not found", class)
	}
	return unsafe.Pointer(cls), nil
}

// SendClass sends a class method.
func SendClass(class, selector string, args ...Arg) (*Object, error) {
	cls, err := classPointer(class)
	if err != nil {
		return nil, err
	}
	out, err := send(cls, selector, args)
	if err != nil {
		return nil, err
	}
	return objectValue(out, selector)
}

// HasClass reports whether the Objective-C runtime knows class.
func HasClass(class string) bool {
	_, err := classPointer(class)
	return err == nil
}

// New allocates an instance of class and initializes it with initSelector.
func New(class, initSelector string, args ...Arg) (*Object, error) {
	cSel := C.CString(initSelector)
	defer C.free(unsafe.Pointer(cSel))
	cargs := toCArgs(args)
	var argsPtr *C.MPSGArg
	if len(cargs) > 0 {
		argsPtr = &cargs[0]
	}
	var cErr *C.char
	ptr := C.mpsg_new(cstr(class), cSel, argsPtr, C.int(len(cargs)), &cErr)
	runtime.KeepAlive(args)
	if ptr == nil {
		return nil, errors.Errorf("[%s %s]: %s", class, initSelector, takeCString(cErr))
	}
	return wrap(unsafe.Pointer(ptr)), nil
}

func sendScalar(target *Object, selector string, args []Arg) (C.MPSGValue, error) {
	if !target.Valid() {
		return C.MPSGValue{}, errors.Errorf("message %s sent to a released or nil object", selector)
	}
	out, err := send(target.ptr, selector, args)
	runtime.KeepAlive(target)
	return out, err
}

// SendInt sends selector and returns an integer result.
func SendInt(target *Object, selector string, args ...Arg) (int64, error) {
	out, err := sendScalar(target, selector, args)
	if err != nil {
		return 0, err
	}
	switch out.kind {
	case C.MPSG_VALUE_INT, C.MPSG_VALUE_BOOL:
		return int64(out.i), nil
	case C.MPSG_VALUE_UINT:
		return int64(out.u), nil
	case C.MPSG_VALUE_DOUBLE:
		return int64(out.d), nil
	}
	return 0, errors.Errorf("%s does not return a number", selector)
}

// SendUint sends selector and returns an unsigned integer result.
func SendUint(target *Object, selector string, args ...Arg) (uint64, error) {
	out, err := sendScalar(target, selector, args)
	if err != nil {
		return 0, err
	}
	switch out.kind {
	case C.MPSG_VALUE_INT, C.MPSG_VALUE_BOOL:
		return uint64(out.i), nil
	case C.MPSG_VALUE_UINT:
		return uint64(out.u), nil
	case C.MPSG_VALUE_DOUBLE:
		return uint64(out.d), nil
	}
	return 0, errors.Errorf("%s does not return a number", selector)
}

// SendFloat sends selector and returns a floating point result.
func SendFloat(target *Object, selector string, args ...Arg) (float64, error) {
	out, err := sendScalar(target, selector, args)
	if err != nil {
		return 0, err
	}
	switch out.kind {
	case C.MPSG_VALUE_DOUBLE:
		return float64(out.d), nil
	case C.MPSG_VALUE_INT, C.MPSG_VALUE_BOOL:
		return float64(out.i), nil
	case C.MPSG_VALUE_UINT:
		return float64(out.u), nil
	}
	return 0, errors.Errorf("%s does not return a number", selector)
}

// SendBool sends selector and returns a BOOL result.
func SendBool(target *Object, selector string, args ...Arg) (bool, error) {
	v, err := SendInt(target, selector, args...)
	return v != 0, err
}

// SendVoid sends selector, ignoring any result. Returned objects are released.
func SendVoid(target *Object, selector string, args ...Arg) error {
	out, err := sendScalar(target, selector, args)
	if err != nil {
		return err
	}
	if out.kind == C.MPSG_VALUE_OBJECT && out.object != nil {
		C.mpsg_release(out.object)
	}
	return nil
}

// String creates an NSString.
func String(s string) *Object {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return wrap(unsafe.Pointer(C.mpsg_string(cs)))
}

// GoString converts an NSString.
func GoString(o *Object) string {
	if !o.Valid() {
		return ""
	}
	s := takeCString(C.mpsg_string_utf8(C.MPSGObject(o.ptr)))
	runtime.KeepAlive(o)
	return s
}

func pointers(objs []*Object) []C.MPSGObject {
	ptrs := make([]C.MPSGObject, len(objs))
	for i, o := range objs {
		if o.Valid() {
			ptrs[i] = C.MPSGObject(o.ptr)
		}
	}
	return ptrs
}

// Array creates an NSArray. All objects must be valid: NSArray cannot hold nil.
func Array(objs []*Object) (*Object, error) {
	for i, o := range objs {
		if !o.Valid() {
			return nil, errors.Errorf("array element %d is nil", i)
		}
	}
	ptrs := pointers(objs)
	var p *C.MPSGObject
	if len(ptrs) > 0 {
		p = &ptrs[0]
	}
	arr := wrap(unsafe.Pointer(C.mpsg_array(p, C.int(len(ptrs)))))
	runtime.KeepAlive(objs)
	return arr, nil
}

// Int64Array creates an NSArray<NSNumber*>, the encoding of shapes and axes.
func Int64Array(values []int64) *Object {
	var p *C.int64_t
	if len(values) > 0 {
		p = (*C.int64_t)(unsafe.Pointer(&values[0]))
	}
	return wrap(unsafe.Pointer(C.mpsg_int64_array(p, C.int(len(values)))))
}

// ArrayLen returns the count of an NSArray.
func ArrayLen(arr *Object) int {
	if !arr.Valid() {
		return 0
	}
	n := int(C.mpsg_array_count(C.MPSGObject(arr.ptr)))
	runtime.KeepAlive(arr)
	return n
}

// ArrayObjects returns the elements of an NSArray, each retained.
func ArrayObjects(arr *Object) []*Object {
	n := ArrayLen(arr)
	objs := make([]*Object, n)
	for i := range n {
		objs[i] = wrap(unsafe.Pointer(C.mpsg_array_at(C.MPSGObject(arr.ptr), C.int(i))))
	}
	runtime.KeepAlive(arr)
	return objs
}

// ArrayInt64s reads an NSArray<NSNumber*>.
func ArrayInt64s(arr *Object) []int64 {
	n := ArrayLen(arr)
	values := make([]int64, n)
	for i := range n {
		num := C.mpsg_array_at(C.MPSGObject(arr.ptr), C.int(i))
		values[i] = int64(C.mpsg_number_as_int64(num))
		C.mpsg_release(num)
	}
	runtime.KeepAlive(arr)
	return values
}

// Dictionary creates an NSDictionary from parallel key and value slices.
func Dictionary(keys, values []*Object) (*Object, error) {
	if len(keys) != len(values) {
		return nil, errors.Errorf("dictionary has %d keys but %d values", len(keys), len(values))
	}
	for i := range keys {
		if !keys[i].Valid() || !values[i].Valid() {
			return nil, errors.Errorf("dictionary entry %d is nil", i)
		}
	}
	ks, vs := pointers(keys), pointers(values)
	var kp, vp *C.MPSGObject
	if len(ks) > 0 {
		kp, vp = &ks[0], &vs[0]
	}
	dict := wrap(unsafe.Pointer(C.mpsg_dictionary(kp, vp, C.int(len(ks)))))
	runtime.KeepAlive(keys)
	runtime.KeepAlive(values)
	return dict, nil
}

// DictionaryEntries returns the keys and the matching values of an NSDictionary.
func DictionaryEntries(dict *Object) (keys, values []*Object) {
	if !dict.Valid() {
		return nil, nil
	}
	keyArray := wrap(unsafe.Pointer(C.mpsg_dictionary_keys(C.MPSGObject(dict.ptr))))
	defer keyArray.Release()
	keys = ArrayObjects(keyArray)
	values = make([]*Object, len(keys))
	for i, k := range keys {
		values[i] = wrap(unsafe.Pointer(C.mpsg_dictionary_get(C.MPSGObject(dict.ptr), C.MPSGObject(k.ptr))))
	}
	runtime.KeepAlive(dict)
	return keys, values
}

// Data creates an NSData holding a copy of b.
func Data(b []byte) *Object {
	var p unsafe.Pointer
	if len(b) > 0 {
		p = unsafe.Pointer(&b[0])
	}
	return wrap(unsafe.Pointer(C.mpsg_data(p, C.int64_t(len(b)))))
}

// FileURL creates a file NSURL.
func FileURL(path string) *Object {
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	return wrap(unsafe.Pointer(C.mpsg_file_url(cs)))
}

// ErrorMessage returns the localized description of an NSError.
func ErrorMessage(o *Object) string {
	if !o.Valid() {
		return ""
	}
	msg := takeCString(C.mpsg_error_message(C.MPSGObject(o.ptr)))
	runtime.KeepAlive(o)
	return msg
}

// DefaultDevice returns the system default MTLDevice.
func DefaultDevice() (*Object, error) {
	dev := C.mpsg_default_device()
	if dev == nil {
		return nil, errors.New("MTLCreateSystemDefaultDevice returned nil: no Metal device")
	}
	return wrap(unsafe.Pointer(dev)), nil
}

// ReadNDArray copies the contents of an MPSNDArray into dst, which must be
// at least as large as the array.
func ReadNDArray(ndarray *Object, dst []byte) error {
	if !ndarray.Valid() {
		return errors.New("ReadNDArray on a nil array")
	}
	if len(dst) == 0 {
		return nil
	}
	var cErr *C.char
	ok := C.mpsg_ndarray_read(C.MPSGObject(ndarray.ptr), unsafe.Pointer(&dst[0]), &cErr)
	runtime.KeepAlive(ndarray)
	if !ok {
		return errors.New(takeCString(cErr))
	}
	return nil
}
