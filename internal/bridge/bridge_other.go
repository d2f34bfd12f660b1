//go:build !darwin || !cgo

package bridge

import "unsafe"

// Available reports whether MPSGraph can be used in this build.
func Available() bool {
	return false
}

func releasePointer(unsafe.Pointer) {}

func retainPointer(unsafe.Pointer) {}

func describe(unsafe.Pointer) string {
	return "<unavailable>"
}

func className(unsafe.Pointer) string {
	return "unavailable"
}

func HasClass(string) bool {
	return false
}

func String(string) *Object {
	return nil
}

func GoString(*Object) string {
	return ""
}

func Int64Array([]int64) *Object {
	return nil
}

func ArrayLen(*Object) int {
	return 0
}

func ArrayObjects(*Object) []*Object {
	return nil
}

func ArrayInt64s(*Object) []int64 {
	return nil
}

func Data([]byte) *Object {
	return nil
}

func FileURL(string) *Object {
	return nil
}

func ErrorMessage(*Object) string {
	return ""
}

func DefaultDevice() (*Object, error) {
	return nil, ErrUnavailable
}

func ReadNDArray(*Object, []byte) error {
	return ErrUnavailable
}

func Array([]*Object) (*Object, error) {
	return nil, ErrUnavailable
}

func Dictionary(keys, values []*Object) (*Object, error) {
	return nil, ErrUnavailable
}

func DictionaryEntries(*Object) (keys, values []*Object) {
	return nil, nil
}

func Send(*Object, string, ...Arg) (*Object, error) {
	return nil, ErrUnavailable
}

func SendClass(string, string, ...Arg) (*Object, error) {
	return nil, ErrUnavailable
}

func New(string, string, ...Arg) (*Object, error) {
	return nil, ErrUnavailable
}

func SendInt(*Object, string, ...Arg) (int64, error) {
	return 0, ErrUnavailable
}

func SendUint(*Object, string, ...Arg) (uint64, error) {
	return 0, ErrUnavailable
}

func SendFloat(*Object, string, ...Arg) (float64, error) {
	return 0, ErrUnavailable
}

func SendBool(*Object, string, ...Arg) (bool, error) {
	return false, ErrUnavailable
}

func SendVoid(*Object, string, ...Arg) error {
	return ErrUnavailable
}

// Block is an Objective-C block; never created on this platform.
type Block struct {
	*Object
	id uintptr
}

func NewBlock(BlockKind, BlockFunc) (*Block, error) {
	return nil, ErrUnavailable
}

func (b *Block) Close() {}
