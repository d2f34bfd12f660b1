package weights

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/gomlx/go-mpsgraph/types"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Writer writes a weights file.
//
// Usage:
//
//	w, err := weights.NewWriter("model.mpsw")
//	if err != nil { ... }
//	if err := weights.AddFlat(w, "dense/kernel", kernel, 784, 128); err != nil { ... }
//	if err := w.Close(); err != nil { ... }
type Writer struct {
	file    *os.File
	id      uuid.UUID
	offset  uint64 // Next free offset.
	entries []entry
	names   map[string]bool
}

type entry struct {
	metadataOffset uint64
	dataOffset     uint64
	name           string
	dtype          types.DataType
	shape          types.Shape
	data           []byte
}

// NewWriter creates the weights file at path with a new random ID. Nothing
// is written until Close.
func NewWriter(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create weights file")
	}
	return &Writer{
		file:   f,
		id:     uuid.New(),
		offset: Alignment,
		names:  make(map[string]bool),
	}, nil
}

// ID returns the ID written in the file header.
func (w *Writer) ID() uuid.UUID {
	return w.id
}

// Add adds a tensor given by its raw little-endian data. data is copied, so
// the caller may reuse it.
func (w *Writer) Add(name string, dtype types.DataType, shape types.Shape, data []byte) error {
	if name == "" {
		return errors.New("weights: empty tensor name")
	}
	if w.names[name] {
		return errors.Errorf("weights: duplicate tensor %q", name)
	}
	if !dtype.Valid() {
		return errors.Errorf("weights: tensor %q has invalid data type %s", name, dtype)
	}
	if !shape.IsStatic() {
		return errors.Errorf("weights: tensor %q has non-static shape %s", name, shape)
	}
	if want := (shape.Size()*int64(dtype.BitSize()) + 7) / 8; int64(len(data)) != want {
		return errors.Errorf("weights: tensor %q %s%s needs %d bytes, got %d", name, dtype, shape, want, len(data))
	}
	w.names[name] = true

	metadataOffset := w.offset
	extra := uint64(8*len(shape) + len(name))
	dataOffset := alignTo(metadataOffset+Alignment+extra, Alignment)
	w.entries = append(w.entries, entry{
		metadataOffset: metadataOffset,
		dataOffset:     dataOffset,
		name:           name,
		dtype:          dtype,
		shape:          shape.Clone(),
		data:           bytes.Clone(data),
	})
	w.offset = alignTo(dataOffset+uint64(len(data)), Alignment)
	return nil
}

// AddFlat adds a tensor from a flat Go slice in row-major order.
func AddFlat[T types.Supported](w *Writer, name string, flat []T, dims ...int64) error {
	return w.Add(name, types.DataTypeOf[T](), types.Make(dims...), types.Bytes(flat))
}

// Close writes the header and every record, then closes the file.
func (w *Writer) Close() error {
	if w.file == nil {
		return nil
	}
	f := w.file
	w.file = nil

	header := Header{
		Magic:   Magic,
		Version: Version,
		Count:   uint32(len(w.entries)),
		ID:      w.id,
	}
	if err := writeAt(f, 0, &header); err != nil {
		f.Close()
		return errors.Wrap(err, "write header")
	}

	for _, e := range w.entries {
		metadata := RecordMetadata{
			Sentinel:    RecordSentinel,
			DataType:    uint32(e.dtype),
			SizeInBytes: uint64(len(e.data)),
			Offset:      e.dataOffset,
			NameLength:  uint32(len(e.name)),
			Rank:        uint32(len(e.shape)),
		}
		if err := writeAt(f, int64(e.metadataOffset), &metadata); err != nil {
			f.Close()
			return errors.Wrapf(err, "write metadata of %q", e.name)
		}
		if err := binary.Write(f, binary.LittleEndian, []int64(e.shape)); err != nil {
			f.Close()
			return errors.Wrapf(err, "write dims of %q", e.name)
		}
		if _, err := io.WriteString(f, e.name); err != nil {
			f.Close()
			return errors.Wrapf(err, "write name of %q", e.name)
		}
		if _, err := f.WriteAt(e.data, int64(e.dataOffset)); err != nil {
			f.Close()
			return errors.Wrapf(err, "write data of %q at offset %d", e.name, e.dataOffset)
		}
	}

	// Pad the last record to the alignment.
	if err := f.Truncate(int64(w.offset)); err != nil {
		f.Close()
		return errors.Wrap(err, "pad weights file")
	}
	klog.V(1).Infof("weights: wrote %d tensors to %s", len(w.entries), f.Name())
	return errors.Wrap(f.Close(), "close weights file")
}

// writeAt writes a struct at offset using little-endian encoding.
func writeAt(f *os.File, offset int64, data any) error {
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	return binary.Write(f, binary.LittleEndian, data)
}

// EntryCount returns the number of tensors added.
func (w *Writer) EntryCount() int {
	return len(w.entries)
}
