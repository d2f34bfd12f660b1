//go:build darwin && cgo

package bridge

/*
#include "bridge.h"
*/
import "C"
import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	blockFuncs  sync.Map // uintptr -> BlockFunc
	nextBlockID atomic.Uintptr
)

// Block is an Objective-C block whose body runs the Go function it was
// created with.
type Block struct {
	*Object
	id uintptr
}

// NewBlock creates a heap block of the given kind calling fn.
//
// The Go function stays registered until Close, after which calls from
// Objective-C are ignored and return nil.
func NewBlock(kind BlockKind, fn BlockFunc) (*Block, error) {
	id := nextBlockID.Add(1)
	blockFuncs.Store(id, fn)
	ptr := C.mpsg_block_new(C.int(kind), C.uintptr_t(id))
	if ptr == nil {
		blockFuncs.Delete(id)
		return nil, errors.Errorf("unknown block kind %d", kind)
	}
	return &Block{Object: wrap(unsafe.Pointer(ptr)), id: id}, nil
}

// Close unregisters the Go function and releases the block.
func (b *Block) Close() {
	if b == nil {
		return
	}
	blockFuncs.Delete(b.id)
	b.Object.Release()
}

//export mpsgGoBlock
func mpsgGoBlock(handle C.uintptr_t, args *C.MPSGObject, nargs C.int) C.MPSGObject {
	value, ok := blockFuncs.Load(uintptr(handle))
	if !ok {
		klog.Warningf("bridge: block %d called after it was closed", uintptr(handle))
		return nil
	}
	fn := value.(BlockFunc)

	goArgs := make([]*Object, int(nargs))
	if nargs > 0 {
		raw := unsafe.Slice(args, int(nargs))
		for i, p := range raw {
			if p != nil {
				C.mpsg_retain(p)
				goArgs[i] = wrap(unsafe.Pointer(p))
			}
		}
	}

	var result *Object
	if exception := exceptions.Try(func() { result = fn(goArgs) }); exception != nil {
		// A panic must not unwind through Objective-C frames.
		klog.Errorf("bridge: panic in block %d: %v", uintptr(handle), exception)
		return nil
	}
	if !result.Valid() {
		return nil
	}
	C.mpsg_retain(C.MPSGObject(result.ptr))
	return C.MPSGObject(result.ptr)
}
