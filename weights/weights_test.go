package weights

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/gomlx/go-mpsgraph/types"
)

func TestWriterLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w"+Ext)
	w := must.M1(NewWriter(path))

	kernel := make([]float32, 64)
	for i := range kernel {
		kernel[i] = float32(i) * 0.5
	}
	require.NoError(t, AddFlat(w, "dense/kernel", kernel, 8, 8))
	require.NoError(t, AddFlat(w, "dense/bias", []int32{1, 2, 3}, 3))
	assert.Equal(t, 2, w.EntryCount())
	id := w.ID()
	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "second Close is a no-op")

	b := must.M1(os.ReadFile(path))
	require.Zero(t, len(b)%Alignment, "file is padded to the alignment")
	assert.Equal(t, Magic, binary.LittleEndian.Uint32(b[0:4]))
	assert.Equal(t, Version, binary.LittleEndian.Uint32(b[4:8]))
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(b[8:12]))
	assert.Equal(t, id[:], b[16:32])

	// First record right after the header.
	assert.Equal(t, RecordSentinel, binary.LittleEndian.Uint32(b[64:68]))
	assert.Equal(t, uint32(types.Float32), binary.LittleEndian.Uint32(b[68:72]))
	assert.Equal(t, uint64(256), binary.LittleEndian.Uint64(b[72:80]))
	dataOffset := binary.LittleEndian.Uint64(b[80:88])
	assert.Zero(t, dataOffset%Alignment)
	// 64 header + 64 metadata + 2 dims + "dense/kernel", aligned.
	assert.Equal(t, uint64(192), dataOffset)
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w"+Ext)
	w := must.M1(NewWriter(path))
	half := []float16.Float16{float16.Fromfloat32(1.5), float16.Fromfloat32(-0.25)}
	require.NoError(t, AddFlat(w, "half", half, 2))
	require.NoError(t, AddFlat(w, "scalar", []int64{42}))
	require.NoError(t, AddFlat(w, "mask", []bool{true, false, true, true}, 2, 2))
	require.NoError(t, w.Close())

	f := must.M1(Read(path))
	assert.Equal(t, w.ID(), f.ID)
	assert.Equal(t, []string{"half", "mask", "scalar"}, f.Names())
	assert.Equal(t, uint64(4+8+4), f.TotalBytes())

	scalar := f.Lookup("scalar")
	require.NotNil(t, scalar)
	assert.Equal(t, types.Shape{}, scalar.Shape)
	assert.Equal(t, types.Int64, scalar.DataType)
	assert.Equal(t, []int64{42}, must.M1(Flat[int64](f, "scalar")))
	assert.Equal(t, half, must.M1(Flat[float16.Float16](f, "half")))
	assert.Equal(t, types.Shape{2, 2}, f.Lookup("mask").Shape)
	assert.Equal(t, "mask: Bool(2, 2) (4 B)", f.Lookup("mask").String())

	_, err := Flat[float32](f, "scalar")
	require.ErrorContains(t, err, "not Float32")
	_, err = Flat[float32](f, "missing")
	require.ErrorContains(t, err, "no tensor")
}

func TestWriterRejects(t *testing.T) {
	w := must.M1(NewWriter(filepath.Join(t.TempDir(), "w"+Ext)))
	defer w.Close()
	require.NoError(t, AddFlat(w, "a", []float32{1}))
	require.ErrorContains(t, AddFlat(w, "a", []float32{1}), "duplicate")
	require.ErrorContains(t, AddFlat(w, "", []float32{1}), "empty")
	require.ErrorContains(t, w.Add("b", types.Float32, types.Shape{2}, make([]byte, 4)), "needs 8 bytes")
	require.ErrorContains(t, w.Add("c", types.Float32, types.Shape{types.Dynamic}, nil), "non-static")
	require.ErrorContains(t, w.Add("d", types.Invalid, types.Shape{1}, nil), "invalid data type")
}

// validFile returns a weights file holding "x" as Float32[2]. Its record
// metadata starts at 64, the dims at 128, the name at 136 and the data at 192.
func validFile(t *testing.T) []byte {
	t.Helper()
	path := filepath.Join(t.TempDir(), "w"+Ext)
	w := must.M1(NewWriter(path))
	require.NoError(t, AddFlat(w, "x", []float32{1, 2}, 2))
	require.NoError(t, w.Close())
	return must.M1(os.ReadFile(path))
}

func TestParseCorrupt(t *testing.T) {
	_, err := Parse([]byte("short"))
	require.Error(t, err)

	b := validFile(t)
	require.Len(t, b, 256)
	_, err = Parse(b)
	require.NoError(t, err)

	_, err = Parse(b[:100])
	require.ErrorContains(t, err, "past end of file")

	put32 := func(at int, v uint32) func([]byte) {
		return func(b []byte) { binary.LittleEndian.PutUint32(b[at:], v) }
	}
	put64 := func(at int, v uint64) func([]byte) {
		return func(b []byte) { binary.LittleEndian.PutUint64(b[at:], v) }
	}
	testCases := []struct {
		name    string
		corrupt []func([]byte)
		want    string
	}{
		{"magic", []func([]byte){put32(0, 0)}, "bad magic"},
		{"version", []func([]byte){put32(4, 7)}, "unsupported version"},
		{"huge count", []func([]byte){put32(8, 0xFFFFFFFF)}, "do not fit"},
		{"count past records", []func([]byte){put32(8, 2)}, "record 1"},
		{"sentinel", []func([]byte){put32(64, 0)}, "bad sentinel"},
		{"data type", []func([]byte){put32(68, 0)}, "invalid data type"},
		{"offset overflow", []func([]byte){put64(80, ^uint64(0)-7), put64(72, 8)}, "out of bounds"},
		{"size overflow", []func([]byte){put64(72, ^uint64(0))}, "out of bounds"},
		{"data before name", []func([]byte){put64(80, 128)}, "out of bounds"},
		{"huge name", []func([]byte){put32(88, 0xFFFFFFFF)}, "past end of file"},
		{"empty name", []func([]byte){put32(88, 0)}, "empty tensor name"},
		{"negative dim", []func([]byte){put64(128, ^uint64(0))}, "negative dimension"},
		{"huge dim", []func([]byte){put64(128, 1<<62)}, "too large"},
		{"size mismatch", []func([]byte){put64(128, 3)}, "want 12"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bad := append([]byte(nil), b...)
			for _, fn := range tc.corrupt {
				fn(bad)
			}
			var err error
			require.NotPanics(t, func() { _, err = Parse(bad) })
			require.ErrorContains(t, err, tc.want)
		})
	}
}

func TestWriterCopiesData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w"+Ext)
	w := must.M1(NewWriter(path))
	values := []float32{1, 2}
	require.NoError(t, AddFlat(w, "x", values, 2))
	values[0] = 100
	require.NoError(t, w.Close())
	assert.Equal(t, []float32{1, 2}, must.M1(Flat[float32](must.M1(Read(path)), "x")))
}
