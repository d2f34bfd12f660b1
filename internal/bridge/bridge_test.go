//go:build darwin && cgo

package bridge

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringRoundTrip(t *testing.T) {
	s := String("héllo, graph")
	require.True(t, s.Valid())
	defer s.Release()
	assert.Equal(t, "héllo, graph", GoString(s))

	n, err := SendUint(s, "length")
	require.NoError(t, err)
	assert.Equal(t, uint64(12), n)
}

func TestInt64Array(t *testing.T) {
	arr := Int64Array([]int64{2, -1, 3})
	defer arr.Release()
	assert.Equal(t, 3, ArrayLen(arr))
	assert.Equal(t, []int64{2, -1, 3}, ArrayInt64s(arr))

	empty := Int64Array(nil)
	defer empty.Release()
	assert.Equal(t, 0, ArrayLen(empty))
}

func TestArrayRejectsNil(t *testing.T) {
	a := String("a")
	_, err := Array([]*Object{a, nil})
	require.Error(t, err)
}

func TestDictionary(t *testing.T) {
	k1, k2 := String("one"), String("two")
	v1, v2 := String("1"), String("2.5")
	dict, err := Dictionary([]*Object{k1, k2}, []*Object{v1, v2})
	require.NoError(t, err)
	keys, values := DictionaryEntries(dict)
	require.Len(t, keys, 2)
	got := map[string]string{}
	for i, k := range keys {
		got[GoString(k)] = GoString(values[i])
	}
	assert.Equal(t, map[string]string{"one": "1", "two": "2.5"}, got)

	_, err = Dictionary([]*Object{k1}, nil)
	require.Error(t, err)
}

func TestData(t *testing.T) {
	in := []byte{1, 2, 3, 4, 5}
	d := Data(in)
	defer d.Release()
	n, err := SendUint(d, "length")
	require.NoError(t, err)
	assert.Equal(t, uint64(len(in)), n)
}

func TestRetainAndRelease(t *testing.T) {
	s := String("retained")
	other := s.Retain()
	assert.True(t, s.Same(other))
	s.Release()
	s.Release()
	assert.False(t, s.Valid())
	assert.Equal(t, "retained", GoString(other))
	other.Release()
}

func TestSendErrors(t *testing.T) {
	s := String("x")
	defer s.Release()
	_, err := Send(s, "noSuchSelectorForTesting")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not respond")

	_, err = SendClass("NoSuchClassForTesting", "new")
	require.Error(t, err)

	_, err = Send(nil, "description")
	require.Error(t, err)
}

func TestNew(t *testing.T) {
	num, err := New("NSNumber", "initWithLongLong:", Int(42))
	require.NoError(t, err)
	defer num.Release()
	assert.Equal(t, int64(42), must.M1(SendInt(num, "longLongValue")))
	assert.Contains(t, num.ClassName(), "Number")
}

func TestSendFloat(t *testing.T) {
	num, err := New("NSNumber", "initWithDouble:", Float(2.5))
	require.NoError(t, err)
	defer num.Release()
	assert.Equal(t, 2.5, must.M1(SendFloat(num, "doubleValue")))
	// Integer results convert.
	assert.Equal(t, 2.0, must.M1(SendFloat(num, "longLongValue")))
}

func TestHasClass(t *testing.T) {
	assert.True(t, HasClass("NSString"))
	assert.False(t, HasClass("NoSuchClassForTesting"))
	assert.Equal(t, HasClass("MPSGraph"), Available())
}

func TestBlockCallsGo(t *testing.T) {
	var calls int
	blk, err := NewBlock(BlockTensors, func(args []*Object) *Object {
		calls++
		assert.Empty(t, args)
		return nil
	})
	require.NoError(t, err)
	defer blk.Close()
	assert.True(t, blk.Valid())
	assert.Equal(t, 0, calls)
}

func TestDefaultDevice(t *testing.T) {
	if !Available() {
		t.Skip("MPSGraph not available")
	}
	dev, err := DefaultDevice()
	require.NoError(t, err)
	name, err := Send(dev, "name")
	require.NoError(t, err)
	assert.NotEmpty(t, GoString(name))
}
